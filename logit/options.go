// SPDX-License-Identifier: MIT

package logit

import (
	"log/slog"
	"math"
)

// Defaults (single source of truth for zero-value behaviour).
const (
	// DefaultMaxIter bounds the number of major optimiser iterations.
	DefaultMaxIter = 1000
	// DefaultTolerance is the target Euclidean norm of the mean gradient.
	DefaultTolerance = 1e-4
	// DefaultMethod is the optimisation strategy used when none is given.
	DefaultMethod = BFGS
)

const (
	panicMaxIterInvalid   = "logit: WithMaxIter: max iterations must be >= 1"
	panicToleranceInvalid = "logit: WithTolerance: tolerance must be finite and > 0"
	panicMethodInvalid    = "logit: WithMethod: unknown method"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration of a Solver.
type Options struct {
	maxIter   int
	tolerance float64
	method    Method
	names     []string
	logger    *slog.Logger
}

func defaultOptions() Options {
	return Options{
		maxIter:   DefaultMaxIter,
		tolerance: DefaultTolerance,
		method:    DefaultMethod,
		logger:    slog.New(slog.DiscardHandler),
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

// WithMaxIter caps the number of major iterations. Panics if n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}
	return func(o *Options) { o.maxIter = n }
}

// WithTolerance sets the gradient-norm stopping rule. Panics if tol is not a positive finite number.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}
	return func(o *Options) { o.tolerance = tol }
}

// WithMethod selects the optimisation strategy.
func WithMethod(m Method) Option {
	if !m.Valid() {
		panic(panicMethodInvalid)
	}
	return func(o *Options) { o.method = m }
}

// WithNames labels the regressors in Summary output.
func WithNames(names ...string) Option {
	cp := append([]string(nil), names...)
	return func(o *Options) { o.names = cp }
}

// WithLogger routes optimiser diagnostics to l. nil keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}
