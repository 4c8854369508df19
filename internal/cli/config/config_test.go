// SPDX-License-Identifier: MIT

package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/amita/internal/cli/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("data", "", "")
	fs.String("se", config.DefaultSE, "")
	fs.Int("max-iter", config.DefaultMaxIter, "")
	fs.Float64("tolerance", config.DefaultTolerance, "")
	fs.String("method", config.DefaultMethod, "")
	fs.Bool("intercept", config.DefaultIntercept, "")
	fs.Bool("verbose", false, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, used, err := config.Load("", nil)
	require.NoError(t, err)
	require.Empty(t, used)
	require.Equal(t, &config.Config{
		SE:        config.DefaultSE,
		Intercept: true,
		MaxIter:   config.DefaultMaxIter,
		Tolerance: config.DefaultTolerance,
		Method:    config.DefaultMethod,
	}, cfg)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "amita.yaml"), []byte(`
data: panel.csv
se: hc1
max_iter: 50
method: newton
intercept: false
`), 0o600))

	// file only
	cfg, used, err := config.Load("", newFlags())
	require.NoError(t, err)
	require.Equal(t, "amita.yaml", used)
	require.Equal(t, "panel.csv", cfg.Data)
	require.Equal(t, "hc1", cfg.SE)
	require.Equal(t, 50, cfg.MaxIter)
	require.Equal(t, "newton", cfg.Method)
	require.False(t, cfg.Intercept)

	// env beats file
	t.Setenv("AMITA_MAX_ITER", "75")
	t.Setenv("AMITA_SE", "cluster:state")
	cfg, _, err = config.Load("", newFlags())
	require.NoError(t, err)
	require.Equal(t, 75, cfg.MaxIter)
	require.Equal(t, "cluster:state", cfg.SE)

	// explicitly set flags beat env; unset flags do not override
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--max-iter", "20", "--tolerance", "1e-6"}))
	cfg, _, err = config.Load("", fs)
	require.NoError(t, err)
	require.Equal(t, 20, cfg.MaxIter)
	require.Equal(t, 1e-6, cfg.Tolerance)
	require.Equal(t, "cluster:state", cfg.SE)
	require.Equal(t, "newton", cfg.Method)
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: true\n"), 0o600))

	cfg, used, err := config.Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.True(t, cfg.Verbose)

	_, _, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name  string
		args  []string
		match string
	}{
		{"max iter", []string{"--max-iter", "0"}, "max_iter"},
		{"tolerance", []string{"--tolerance", "-1"}, "tolerance"},
		{"se", []string{"--se", "hc9"}, "invalid se"},
		{"method", []string{"--method", "simplex"}, "invalid method"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFlags()
			require.NoError(t, fs.Parse(tt.args))
			_, _, err := config.Load("", fs)
			require.ErrorContains(t, err, tt.match)
		})
	}
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, config.DefaultMaxIter, config.FromContext(ctx).MaxIter)
	require.NotNil(t, config.GetLogger(ctx))

	cfg := &config.Config{Data: "x.csv"}
	logger := config.NewLogger(os.Stderr, true)
	ctx = config.WithContext(ctx, cfg, logger)
	require.Same(t, cfg, config.FromContext(ctx))
	require.Same(t, logger, config.GetLogger(ctx))
}
