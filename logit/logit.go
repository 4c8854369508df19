// SPDX-License-Identifier: MIT

package logit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/amita/solver"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	opNew   = "logit.New"
	opSolve = "logit.Solve"
)

// Solver is the iterative maximum-likelihood engine for binary responses.
type Solver struct {
	y []float64
	x *mat.Dense

	opts    Options
	stage   solver.Stage
	results *Results
}

var _ solver.Solver[*Solver, *Results] = (*Solver)(nil)

// New validates (y, X) and copies them.
//
// Errors (wrapped with "logit.New"):
//   - solver.ErrEmptyInput, solver.ErrNotSameObservations, solver.ErrNonFinite
//   - solver.ErrNonBinary when y is not made of exactly {0, 1}
func New(y []float64, x mat.Matrix, opts ...Option) (*Solver, error) {
	n, p, err := solver.ValidateShape(y, x)
	if err != nil {
		return nil, solver.Errorf(opNew, err)
	}
	if err = solver.ValidateFinite(y, x); err != nil {
		return nil, solver.Errorf(opNew, err)
	}
	if err = solver.ValidateBinary(y); err != nil {
		return nil, solver.Errorf(opNew, err)
	}

	yc, xc := solver.CloneInputs(y, x)
	o := gatherOptions(opts...)
	return &Solver{
		y:       yc,
		x:       xc,
		opts:    o,
		stage:   solver.Validated,
		results: newResults(n, p, o),
	}, nil
}

// Stage reports the lifecycle position of s.
func (s *Solver) Stage() solver.Stage { return s.stage }

// Results returns the current results snapshot.
func (s *Solver) Results() *Results { return s.results }

// WithMaxIter is the chainable form of the WithMaxIter option.
func (s *Solver) WithMaxIter(n int) *Solver { return s.apply(WithMaxIter(n)) }

// WithTolerance is the chainable form of the WithTolerance option.
func (s *Solver) WithTolerance(tol float64) *Solver { return s.apply(WithTolerance(tol)) }

// WithMethod is the chainable form of the WithMethod option.
func (s *Solver) WithMethod(m Method) *Solver { return s.apply(WithMethod(m)) }

// WithNames is the chainable form of the WithNames option.
func (s *Solver) WithNames(names ...string) *Solver { return s.apply(WithNames(names...)) }

func (s *Solver) apply(opt Option) *Solver {
	if s.stage == solver.Validated {
		opt(&s.opts)
		s.results.method = s.opts.method
		s.results.names = s.opts.names
	}
	return s
}

// Solve minimises the mean negative log-likelihood from β = 0, then derives
// the covariance (n·H)⁻¹, z statistics, normal p-values and fit statistics.
// The receiver becomes Consumed whatever the outcome.
//
// Errors (wrapped with "logit.Solve"):
//   - solver.ErrAlreadySolved when s is not Validated
//   - solver.ErrNotConverged when the iteration cap is hit above tolerance
//   - solver.ErrOptimizer for any other optimiser failure
//   - solver.ErrNotInvertible when the information matrix is singular
func (s *Solver) Solve() (*Solver, error) {
	if s.stage != solver.Validated {
		return nil, solver.Errorf(opSolve, solver.ErrAlreadySolved)
	}
	s.stage = solver.Consumed

	n, p := s.x.Dims()
	res := newResults(n, p, s.opts)
	obj := newObjective(s.x, s.y)
	log := s.opts.logger

	if err := s.solveCoef(obj, res); err != nil {
		return nil, solver.Errorf(opSolve, err)
	}
	log.Debug("logit: optimizer finished",
		"method", s.opts.method.String(), "iterations", res.iterations, "grad_norm", res.gradNorm)

	if err := s.solveVariance(obj, res); err != nil {
		return nil, solver.Errorf(opSolve, err)
	}
	s.solveInference(res)
	s.solveFit(obj, res)
	log.Debug("logit: solved", "loglik", *res.ll, "pseudo_r2", *res.pseudoRSq)

	return &Solver{
		y:       s.y,
		x:       s.x,
		opts:    s.opts,
		stage:   solver.Solved,
		results: res,
	}, nil
}

func (s *Solver) solveCoef(obj *objective, res *Results) error {
	_, p := s.x.Dims()
	problem := optimize.Problem{
		Func: obj.Cost,
		Grad: obj.Grad,
		Hess: obj.Hess,
	}

	out, err := optimize.Minimize(problem, make([]float64, p), s.opts.settings(p), s.opts.method.optimizer())
	if out == nil {
		return solver.Errorfd("coef", s.opts.method.String(), errJoin(solver.ErrOptimizer, err))
	}
	res.iterations = out.Stats.MajorIterations

	grad := make([]float64, p)
	obj.Grad(grad, out.X)
	res.gradNorm = floats.Norm(grad, 2)

	// The gradient norm at the returned point is the acceptance test; the
	// status only decides which error is reported when it fails.
	if res.gradNorm >= s.opts.tolerance {
		s.opts.logger.Debug("logit: optimizer stopped above tolerance",
			"status", out.Status.String(), "grad_norm", res.gradNorm)
		if out.Status != optimize.IterationLimit && err != nil {
			return solver.Errorfd("coef", s.opts.method.String(), errJoin(solver.ErrOptimizer, err))
		}
		return solver.Errorfd("coef", s.opts.method.String(), solver.ErrNotConverged)
	}

	res.coef = solver.CopyFloats(out.X)
	res.cost = out.F
	return nil
}

// solveVariance inverts the observed information n·∇²J(β̂).
func (s *Solver) solveVariance(obj *objective, res *Results) error {
	_, p := s.x.Dims()
	hess := mat.NewSymDense(p, nil)
	obj.Hess(hess, res.coef)

	var info, cov mat.Dense
	info.Scale(float64(res.nObs), hess)
	if err := cov.Inverse(&info); err != nil {
		return solver.Errorfd("variance", "information matrix", solver.ErrNotInvertible)
	}

	se := make([]float64, p)
	for i := range se {
		se[i] = math.Sqrt(math.Max(cov.At(i, i), 0))
	}
	res.cov = &cov
	res.se = se
	return nil
}

// solveInference computes z = β/SE and two-sided p-values against N(0, 1).
func (s *Solver) solveInference(res *Results) {
	dist := distuv.UnitNormal
	z := make([]float64, len(res.coef))
	pv := make([]float64, len(res.coef))
	for i := range res.coef {
		z[i] = res.coef[i] / res.se[i]
		pv[i] = 2 * dist.Survival(math.Abs(z[i]))
	}
	res.z = z
	res.pVals = pv
	res.crit = dist.Quantile(0.975)
}

// solveFit fills probabilities, log-likelihoods and McFadden's pseudo R².
func (s *Solver) solveFit(obj *objective, res *Results) {
	n := float64(res.nObs)
	ll := -n * res.cost

	ybar := floats.Sum(s.y) / n
	ll0 := n * (ybar*math.Log(ybar) + (1-ybar)*math.Log(1-ybar))
	pseudo := 1 - ll/ll0

	res.probs = obj.Probabilities(res.coef)
	res.ll = &ll
	res.ll0 = &ll0
	res.pseudoRSq = &pseudo
}

// errJoin keeps sentinel matchable while carrying the optimiser's own message.
func errJoin(sentinel, err error) error {
	if err == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}
