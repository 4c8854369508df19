// SPDX-License-Identifier: MIT

package ols

import (
	"math"

	"github.com/katalvlaran/amita/solver"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

// Operation tags used when wrapping sentinels.
const (
	opNew   = "ols.New"
	opSolve = "ols.Solve"
)

// rankTol is the relative threshold under which a diagonal entry of R
// counts as zero: |R_jj| ≤ rankTol·max_k |R_kk| means X lost column rank.
const rankTol = 1e-10

// Solver is the closed-form least-squares engine. It owns copies of y and X
// together with the thin QR factors of X (Q: n×p, R: p×p).
type Solver struct {
	y []float64
	x *mat.Dense
	q *mat.Dense
	r *mat.Dense

	opts    Options
	stage   solver.Stage
	results *Results
}

var _ solver.Solver[*Solver, *Results] = (*Solver)(nil)

// New validates (y, X), copies them and QR-factorizes X.
//
// Errors (wrapped with "ols.New"):
//   - solver.ErrEmptyInput, solver.ErrNotSameObservations, solver.ErrNonFinite
//   - solver.ErrNotQRDecomposable when rows < cols or X is column-rank deficient
//   - solver.ErrDegreesOfFreedom when n − p − 1 ≤ 0
//
// Complexity: O(n·p²) for the factorization.
func New(y []float64, x mat.Matrix, opts ...Option) (*Solver, error) {
	n, p, err := solver.ValidateShape(y, x)
	if err != nil {
		return nil, solver.Errorf(opNew, err)
	}
	if err = solver.ValidateFinite(y, x); err != nil {
		return nil, solver.Errorf(opNew, err)
	}
	if n < p {
		return nil, solver.Errorfd(opNew, "regressors X has fewer rows than columns", solver.ErrNotQRDecomposable)
	}

	yc, xc := solver.CloneInputs(y, x)
	q, r, err := thinQR(xc)
	if err != nil {
		return nil, solver.Errorf(opNew, err)
	}
	if n-p-1 <= 0 {
		return nil, solver.Errorf(opNew, solver.ErrDegreesOfFreedom)
	}

	o := gatherOptions(opts...)
	return &Solver{
		y:       yc,
		x:       xc,
		q:       q,
		r:       r,
		opts:    o,
		stage:   solver.Validated,
		results: newResults(n, p, o),
	}, nil
}

// thinQR factorizes x (n×p, n ≥ p) with Householder reflections and returns
// the thin factors Q (n×p, orthonormal columns) and R (p×p, upper triangular).
// Q is accumulated from the reflectors directly, so no n×n matrix is allocated.
func thinQR(x *mat.Dense) (*mat.Dense, *mat.Dense, error) {
	_, p := x.Dims()

	a := mat.DenseCopyOf(x)
	raw := a.RawMatrix()
	tau := make([]float64, p)
	work := []float64{0}
	lapack64.Geqrf(raw, tau, work, -1)
	work = make([]float64, int(work[0]))
	lapack64.Geqrf(raw, tau, work, len(work))

	r := mat.NewDense(p, p, nil)
	var maxDiag float64
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			r.Set(i, j, a.At(i, j))
		}
		maxDiag = math.Max(maxDiag, math.Abs(r.At(i, i)))
	}
	for j := 0; j < p; j++ {
		if math.Abs(r.At(j, j)) <= rankTol*maxDiag || maxDiag == 0 {
			return nil, nil, solver.Errorfd("QR", "regressors X lost column rank", solver.ErrNotQRDecomposable)
		}
	}

	work = []float64{0}
	lapack64.Orgqr(raw, tau, work, -1)
	work = make([]float64, int(work[0]))
	lapack64.Orgqr(raw, tau, work, len(work))

	return a, r, nil
}

// Stage reports the lifecycle position of s.
func (s *Solver) Stage() solver.Stage { return s.stage }

// Results returns the current results snapshot. Before Solve every accessor
// on it fails with solver.ErrNotSolved.
func (s *Solver) Results() *Results { return s.results }

// NObs returns the number of observations.
func (s *Solver) NObs() int { return len(s.y) }

// NRegressors returns the number of columns of X.
func (s *Solver) NRegressors() int {
	_, p := s.x.Dims()
	return p
}

// Factors returns copies of the thin QR factors of X.
func (s *Solver) Factors() (q, r *mat.Dense) {
	return mat.DenseCopyOf(s.q), mat.DenseCopyOf(s.r)
}

// WithSE selects the SE variant for the upcoming Solve. No-op once s left the Validated stage.
func (s *Solver) WithSE(se solver.SEType) *Solver {
	if s.stage == solver.Validated {
		WithSE(se)(&s.opts)
		s.results.seType = s.opts.se
	}
	return s
}

// WithRobustSE is shorthand for WithSE(solver.SE(solver.Robust)).
func (s *Solver) WithRobustSE() *Solver { return s.WithSE(solver.SE(solver.Robust)) }

// WithNonRobustSE is shorthand for WithSE(solver.SE(solver.NonRobust)).
func (s *Solver) WithNonRobustSE() *Solver { return s.WithSE(solver.SE(solver.NonRobust)) }

// WithGoodnessOfFit toggles the R² stage. No-op once s left the Validated stage.
func (s *Solver) WithGoodnessOfFit(on bool) *Solver {
	if s.stage == solver.Validated {
		s.opts.goodnessOfFit = on
	}
	return s
}

// WithNames labels the regressors for Summary. No-op once s left the Validated stage.
func (s *Solver) WithNames(names ...string) *Solver {
	if s.stage == solver.Validated {
		WithNames(names...)(&s.opts)
		s.results.names = s.opts.names
	}
	return s
}

// Solve runs the fixed pipeline coefficients → variance → inference → goodness of fit
// and returns a new Solved value. The receiver becomes Consumed whatever the outcome.
//
// Errors (wrapped with "ols.Solve"):
//   - solver.ErrAlreadySolved when s is not Validated
//   - solver.ErrNotInvertible when R, RᵀR or a leverage correction is singular
//   - solver.ErrClusterLength, solver.ErrTooFewClusters for bad clustered requests
func (s *Solver) Solve() (*Solver, error) {
	if s.stage != solver.Validated {
		return nil, solver.Errorf(opSolve, solver.ErrAlreadySolved)
	}
	s.stage = solver.Consumed

	res := newResults(len(s.y), s.NRegressors(), s.opts)
	log := s.opts.logger

	if err := s.solveCoef(res); err != nil {
		return nil, solver.Errorf(opSolve, err)
	}
	log.Debug("ols: coefficients solved", "n", res.nObs, "p", res.nRegressors)

	if err := s.solveVariance(res); err != nil {
		return nil, solver.Errorf(opSolve, err)
	}
	log.Debug("ols: variance solved", "se", res.seType.String())

	s.solveInference(res)

	if s.opts.goodnessOfFit {
		s.solveFit(res)
		log.Debug("ols: goodness of fit solved", "r2", *res.rSq, "adj_r2", *res.rSqAdj)
	}

	return &Solver{
		y:       s.y,
		x:       s.x,
		q:       s.q,
		r:       s.r,
		opts:    s.opts,
		stage:   solver.Solved,
		results: res,
	}, nil
}
