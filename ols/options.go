// SPDX-License-Identifier: MIT

package ols

import (
	"log/slog"

	"github.com/katalvlaran/amita/solver"
)

// Defaults (single source of truth for zero-value behaviour).
const (
	// DefaultGoodnessOfFit toggles the R² / adjusted R² stage.
	DefaultGoodnessOfFit = true
)

const panicSETypeInvalid = "ols: WithSE: unknown SE kind"

// Option mutates Options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration of a Solver. Fields are
// unexported; use the With* constructors or the chainable Solver setters.
type Options struct {
	se            solver.SEType
	goodnessOfFit bool
	names         []string
	logger        *slog.Logger
}

// defaultOptions returns the documented defaults: homoscedastic SE, goodness of fit on, silent logger.
func defaultOptions() Options {
	return Options{
		se:            solver.SE(solver.Homoscedastic),
		goodnessOfFit: DefaultGoodnessOfFit,
		logger:        slog.New(slog.DiscardHandler),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// WithSE selects the standard-error variant. Clustered requests carry their own tag copy.
func WithSE(se solver.SEType) Option {
	if !se.Kind.Valid() {
		panic(panicSETypeInvalid)
	}
	if se.Kind == solver.Clustered {
		se = solver.ClusteredSE(se.Clusters)
	}
	return func(o *Options) { o.se = se }
}

// WithGoodnessOfFit enables or disables the R² stage.
func WithGoodnessOfFit(on bool) Option {
	return func(o *Options) { o.goodnessOfFit = on }
}

// WithNames labels the regressors in Summary output, in column order.
func WithNames(names ...string) Option {
	cp := append([]string(nil), names...)
	return func(o *Options) { o.names = cp }
}

// WithLogger routes stage diagnostics to l at Debug level. nil keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}
