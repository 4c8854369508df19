// SPDX-License-Identifier: MIT

// Package config provides configuration management for the amita CLI.
//
// Values are layered, lowest to highest priority: built-in defaults,
// amita.yaml, AMITA_* environment variables, explicitly set flags.
package config

// Defaults for every config key.
const (
	DefaultSE        = "homoscedastic"
	DefaultIntercept = true
	DefaultMaxIter   = 1000
	DefaultTolerance = 1e-4
	DefaultMethod    = "bfgs"
)

// Config is the resolved CLI configuration.
type Config struct {
	// Data is the CSV file to read; "-" reads stdin.
	Data string `koanf:"data"`
	// SE is a standard-error request such as "hc3" or "cluster:state".
	SE string `koanf:"se"`
	// Intercept prepends a constant column to the design of ols and logit.
	Intercept bool `koanf:"intercept"`

	MaxIter   int     `koanf:"max_iter"`
	Tolerance float64 `koanf:"tolerance"`
	Method    string  `koanf:"method"`

	Verbose bool `koanf:"verbose"`
}
