// SPDX-License-Identifier: MIT

// Package cli provides the command-line interface for amita.
package cli

import (
	"fmt"
	"os"

	"github.com/katalvlaran/amita/internal/cli/commands"
	"github.com/katalvlaran/amita/internal/cli/config"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "amita",
		Short: "amita - OLS and logit estimation from CSV data",
		Long: `amita fits ordinary least squares and binary logit models on CSV data
and prints coefficient tables with standard errors, test statistics and
p-values.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "version" {
				return nil
			}

			cfg, used, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if used != "" {
				logger.Debug("using config file", "path", used)
			}
			cmd.SetContext(config.WithContext(cmd.Context(), cfg, logger))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./amita.yaml)")
	rootCmd.PersistentFlags().StringP("data", "d", "", "CSV data file (- for stdin)")
	rootCmd.PersistentFlags().String("se", config.DefaultSE, "Standard errors (homoscedastic|hc1|hc2|hc3|robust|cluster:<column>)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewOLSCommand())
	rootCmd.AddCommand(commands.NewLogitCommand())
	rootCmd.AddCommand(commands.NewDiDCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
