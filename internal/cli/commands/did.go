// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/katalvlaran/amita/did"
	"github.com/katalvlaran/amita/inference"
	"github.com/katalvlaran/amita/internal/cli/config"
	"github.com/spf13/cobra"
)

// NewDiDCommand creates the did command.
func NewDiDCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "did <outcome> <treat> <post> [covariate]...",
		Short: "Estimate a difference-in-differences effect",
		Long: `Regress outcome on covariates, treat, post, treat*post and a constant,
then report the treat*post coefficient as the average treatment effect on
the treated.`,
		Example: `  amita did wage treated after age --data panel.csv --se cluster:state`,
		Args:    cobra.MinimumNArgs(3),
		RunE:    runDiD,
	}
}

func runDiD(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)

	data, err := loadFrame(cmd, cfg)
	if err != nil {
		return err
	}
	modelSE, err := inference.ParseModelSE(cfg.SE)
	if err != nil {
		return err
	}

	m := did.New(data, args[0], args[1], args[2],
		did.WithCovariates(args[3:]...),
		did.WithSE(modelSE),
		did.WithLogger(config.GetLogger(ctx)),
	)
	res, err := m.Fit()
	if err != nil {
		return err
	}
	att, se, p, err := m.Effect(res)
	if err != nil {
		return err
	}

	out, err := res.Summary()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(w, out)
	_, _ = fmt.Fprintf(w, "ATT = %.4f (se %.4f, p %.4f)\n", att, se, p)
	return nil
}
