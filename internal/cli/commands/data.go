// SPDX-License-Identifier: MIT

// Package commands implements the amita subcommands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/amita/frame"
	"github.com/katalvlaran/amita/internal/cli/config"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

// constName labels the intercept column added by --intercept.
const constName = "const"

var errNoData = errors.New("no data file: set --data, AMITA_DATA or data in amita.yaml")

// loadFrame reads the CSV named by cfg.Data; "-" reads the command's stdin.
func loadFrame(cmd *cobra.Command, cfg *config.Config) (*frame.Frame, error) {
	var r io.Reader
	switch cfg.Data {
	case "":
		return nil, errNoData
	case "-":
		r = cmd.InOrStdin()
	default:
		f, err := os.Open(cfg.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to open data: %w", err)
		}
		defer f.Close()
		r = f
	}
	data, err := frame.ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", cfg.Data, err)
	}
	return data, nil
}

// design extracts the response column and the regressor matrix, optionally
// prepending a constant. It returns y, X and the regressor names in column order.
func design(data *frame.Frame, response string, regressors []string, intercept bool) ([]float64, *mat.Dense, []string, error) {
	y, err := data.Float64s(response)
	if err != nil {
		return nil, nil, nil, err
	}

	names := append([]string(nil), regressors...)
	if intercept {
		ones := make([]float64, data.Height())
		for i := range ones {
			ones[i] = 1
		}
		if data, err = data.WithColumn(frame.NewFloat(constName, ones)); err != nil {
			return nil, nil, nil, err
		}
		names = append([]string{constName}, names...)
	}

	x, err := data.Matrix(names...)
	if err != nil {
		return nil, nil, nil, err
	}
	return y, x, names, nil
}
