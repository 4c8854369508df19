// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/katalvlaran/amita/inference"
	"github.com/katalvlaran/amita/internal/cli/config"
	"github.com/katalvlaran/amita/ols"
	"github.com/katalvlaran/amita/solver"
	"github.com/spf13/cobra"
)

// NewOLSCommand creates the ols command.
func NewOLSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ols <response> <regressor>...",
		Short: "Fit a linear model by ordinary least squares",
		Long: `Fit response on the given regressor columns of the data file and print
the coefficient table.

Standard errors are chosen with --se: homoscedastic, hc1, hc2, hc3 (robust)
or cluster:<column>.`,
		Example: `  amita ols wage age tenure --data panel.csv --se hc3
  amita ols wage age --data panel.csv --se cluster:state`,
		Args: cobra.MinimumNArgs(2),
		RunE: runOLS,
	}
	cmd.Flags().Bool("intercept", config.DefaultIntercept, "Prepend a constant column")
	cmd.Flags().Bool("no-fit", false, "Skip R-squared")
	return cmd
}

func runOLS(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx)

	data, err := loadFrame(cmd, cfg)
	if err != nil {
		return err
	}
	y, x, names, err := design(data, args[0], args[1:], cfg.Intercept)
	if err != nil {
		return err
	}

	modelSE, err := inference.ParseModelSE(cfg.SE)
	if err != nil {
		return err
	}
	se, err := modelSE.ToSolverSE(data)
	if err != nil {
		return err
	}

	noFit, _ := cmd.Flags().GetBool("no-fit")
	s, err := ols.New(y, x,
		ols.WithSE(se),
		ols.WithNames(names...),
		ols.WithGoodnessOfFit(!noFit),
		ols.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	res, err := solver.Run[*ols.Solver, *ols.Results](s)
	if err != nil {
		return err
	}

	out, err := res.Summary()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
