// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/katalvlaran/amita/internal/cli/config"
	"github.com/katalvlaran/amita/logit"
	"github.com/katalvlaran/amita/solver"
	"github.com/spf13/cobra"
)

// NewLogitCommand creates the logit command.
func NewLogitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logit <response> <regressor>...",
		Short: "Fit a binary logistic regression by maximum likelihood",
		Long: `Fit a 0/1 response on the given regressor columns and print the
coefficient table with z statistics.`,
		Example: `  amita logit employed age educ --data survey.csv --method newton`,
		Args:    cobra.MinimumNArgs(2),
		RunE:    runLogit,
	}
	cmd.Flags().Bool("intercept", config.DefaultIntercept, "Prepend a constant column")
	cmd.Flags().Int("max-iter", config.DefaultMaxIter, "Maximum optimizer iterations")
	cmd.Flags().Float64("tolerance", config.DefaultTolerance, "Gradient norm tolerance")
	cmd.Flags().String("method", config.DefaultMethod, "Optimizer (bfgs|lbfgs|newton|gradient-descent)")

	_ = cmd.RegisterFlagCompletionFunc("method", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"bfgs", "lbfgs", "newton", "gradient-descent"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func runLogit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx)

	method, err := logit.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}

	data, err := loadFrame(cmd, cfg)
	if err != nil {
		return err
	}
	y, x, names, err := design(data, args[0], args[1:], cfg.Intercept)
	if err != nil {
		return err
	}

	s, err := logit.New(y, x,
		logit.WithMethod(method),
		logit.WithMaxIter(cfg.MaxIter),
		logit.WithTolerance(cfg.Tolerance),
		logit.WithNames(names...),
		logit.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	res, err := solver.Run[*logit.Solver, *logit.Results](s)
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
