// SPDX-License-Identifier: MIT

package logit

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// Method selects the optimisation strategy used by Solve.
type Method int

const (
	// BFGS is the quasi-Newton default with a More-Thuente line search.
	BFGS Method = iota
	// LBFGS is limited-memory BFGS (memory 10) with a More-Thuente line search.
	LBFGS
	// Newton uses the analytic Hessian of the log-likelihood.
	Newton
	// GradientDescent is steepest descent with backtracking.
	GradientDescent
)

// lbfgsStore is the number of correction pairs kept by LBFGS.
const lbfgsStore = 10

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case BFGS:
		return "bfgs"
	case LBFGS:
		return "lbfgs"
	case Newton:
		return "newton"
	case GradientDescent:
		return "gradient-descent"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Valid reports whether m is a declared strategy.
func (m Method) Valid() bool {
	return m >= BFGS && m <= GradientDescent
}

// ParseMethod maps a strategy name (as printed by String) back to a Method.
// Matching is case-insensitive; "gd" is accepted for GradientDescent.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfgs", "":
		return BFGS, nil
	case "lbfgs", "l-bfgs":
		return LBFGS, nil
	case "newton":
		return Newton, nil
	case "gradient-descent", "gd":
		return GradientDescent, nil
	default:
		return 0, fmt.Errorf("logit: unknown method %q", s)
	}
}

// optimizer returns a fresh gonum method; gonum methods carry state and must
// not be shared between Minimize calls.
func (m Method) optimizer() optimize.Method {
	switch m {
	case LBFGS:
		return &optimize.LBFGS{Linesearcher: &optimize.MoreThuente{}, Store: lbfgsStore}
	case Newton:
		return &optimize.Newton{}
	case GradientDescent:
		return &optimize.GradientDescent{Linesearcher: &optimize.Backtracking{}}
	default:
		return &optimize.BFGS{Linesearcher: &optimize.MoreThuente{}}
	}
}

// gradConverger stops the optimiser once the Euclidean norm of the
// gradient drops below tol.
type gradConverger struct {
	tol float64
}

var _ optimize.Converger = (*gradConverger)(nil)

func (c *gradConverger) Init(int) {}

func (c *gradConverger) Converged(loc *optimize.Location) optimize.Status {
	if loc.Gradient != nil && floats.Norm(loc.Gradient, 2) < c.tol {
		return optimize.GradientThreshold
	}
	return optimize.NotTerminated
}

// settings builds the optimize.Settings for p parameters. The gonum
// infinity-norm threshold is set to tol/√p, which implies ‖∇‖₂ < tol.
func (o Options) settings(p int) *optimize.Settings {
	return &optimize.Settings{
		GradientThreshold: o.tolerance / math.Sqrt(float64(p)),
		MajorIterations:   o.maxIter,
		Converger:         &gradConverger{tol: o.tolerance},
	}
}
