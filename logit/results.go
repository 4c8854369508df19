// SPDX-License-Identifier: MIT

package logit

import (
	"fmt"

	"github.com/katalvlaran/amita/solver"
	"gonum.org/v1/gonum/mat"
)

// Results is the write-once output of a Logit Solve. Accessors return
// solver.ErrNotSolved while the stage that fills a field has not run.
type Results struct {
	nObs        int
	nRegressors int
	method      Method
	names       []string

	coef  []float64
	se    []float64
	z     []float64
	pVals []float64
	cov   *mat.Dense
	crit  float64
	probs []float64

	cost       float64
	iterations int
	gradNorm   float64

	ll        *float64
	ll0       *float64
	pseudoRSq *float64
}

var _ solver.Results = (*Results)(nil)

func newResults(n, p int, o Options) *Results {
	return &Results{
		nObs:        n,
		nRegressors: p,
		method:      o.method,
		names:       o.names,
	}
}

// Coef returns the maximum-likelihood β.
func (r *Results) Coef() ([]float64, error) { return orNotSolved(r.coef) }

// SE returns √diag((n·H)⁻¹).
func (r *Results) SE() ([]float64, error) { return orNotSolved(r.se) }

// T returns the z statistics βᵢ/seᵢ. The name follows the shared results contract.
func (r *Results) T() ([]float64, error) { return orNotSolved(r.z) }

// PValues returns two-sided p-values against the standard normal.
func (r *Results) PValues() ([]float64, error) { return orNotSolved(r.pVals) }

// Probabilities returns the fitted P(y=1 | xᵢ).
func (r *Results) Probabilities() ([]float64, error) { return orNotSolved(r.probs) }

// Covariance returns a copy of the p×p asymptotic covariance matrix.
func (r *Results) Covariance() (*mat.Dense, error) {
	if r.cov == nil {
		return nil, solver.ErrNotSolved
	}
	return mat.DenseCopyOf(r.cov), nil
}

// LogLikelihood returns ln L(β̂).
func (r *Results) LogLikelihood() (float64, error) { return orNotSolvedScalar(r.ll) }

// NullLogLikelihood returns the log-likelihood of the intercept-only model.
func (r *Results) NullLogLikelihood() (float64, error) { return orNotSolvedScalar(r.ll0) }

// PseudoRSquared returns McFadden's 1 − ln L / ln L₀.
func (r *Results) PseudoRSquared() (float64, error) { return orNotSolvedScalar(r.pseudoRSq) }

// Iterations returns the number of major optimiser iterations.
func (r *Results) Iterations() int { return r.iterations }

// GradientNorm returns ‖∇J(β̂)‖₂ of the mean negative log-likelihood.
func (r *Results) GradientNorm() float64 { return r.gradNorm }

// NObs returns the number of observations.
func (r *Results) NObs() int { return r.nObs }

// NRegressors returns the number of regressors.
func (r *Results) NRegressors() int { return r.nRegressors }

// Method returns the optimisation strategy.
func (r *Results) Method() Method { return r.method }

// Names returns the regressor labels.
func (r *Results) Names() []string { return append([]string(nil), r.names...) }

// Summary renders the coefficient table with z statistics.
func (r *Results) Summary() (string, error) {
	if r.coef == nil || r.se == nil || r.z == nil || r.pVals == nil {
		return "", solver.ErrNotSolved
	}
	info := [][2]string{
		{"Observations", fmt.Sprintf("%d", r.nObs)},
		{"Method", r.method.String()},
		{"Iterations", fmt.Sprintf("%d", r.iterations)},
	}
	if r.ll != nil {
		info = append(info,
			[2]string{"Log-likelihood", fmt.Sprintf("%.4f", *r.ll)},
			[2]string{"LL-null", fmt.Sprintf("%.4f", *r.ll0)},
			[2]string{"Pseudo R-squared", fmt.Sprintf("%.4f", *r.pseudoRSq)},
		)
	}
	return solver.RenderSummary(solver.Summary{
		Title:    "Logit Regression Results",
		StatName: "z",
		Names:    r.names,
		Coef:     r.coef,
		SE:       r.se,
		Stat:     r.z,
		P:        r.pVals,
		Crit:     r.crit,
		Info:     info,
	}), nil
}

func orNotSolved(v []float64) ([]float64, error) {
	if v == nil {
		return nil, solver.ErrNotSolved
	}
	return solver.CopyFloats(v), nil
}

func orNotSolvedScalar(v *float64) (float64, error) {
	if v == nil {
		return 0, solver.ErrNotSolved
	}
	return *v, nil
}
