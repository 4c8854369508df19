// SPDX-License-Identifier: MIT

package ols

import (
	"fmt"

	"github.com/katalvlaran/amita/solver"
	"gonum.org/v1/gonum/mat"
)

// Results is the write-once output of an OLS Solve. A nil field means the
// stage that fills it has not run; its accessor then returns solver.ErrNotSolved.
// Accessors hand out copies, so a Results value never changes once published.
type Results struct {
	nObs        int
	nRegressors int
	df          int // n − p − 1
	seType      solver.SEType
	names       []string

	coef   []float64
	se     []float64
	fitted []float64
	resid  []float64
	t      []float64
	pVals  []float64
	cov    *mat.Dense
	crit   float64 // two-sided 95% Student-t critical value

	rSq    *float64
	rSqAdj *float64
}

var _ solver.Results = (*Results)(nil)

func newResults(n, p int, o Options) *Results {
	return &Results{
		nObs:        n,
		nRegressors: p,
		df:          n - p - 1,
		seType:      o.se,
		names:       o.names,
	}
}

// Coef returns β.
func (r *Results) Coef() ([]float64, error) { return orNotSolved(r.coef) }

// SE returns the standard errors under the configured SE type.
func (r *Results) SE() ([]float64, error) { return orNotSolved(r.se) }

// T returns the t statistics βᵢ/seᵢ.
func (r *Results) T() ([]float64, error) { return orNotSolved(r.t) }

// PValues returns two-sided p-values of H₀: βᵢ = 0.
func (r *Results) PValues() ([]float64, error) { return orNotSolved(r.pVals) }

// Fitted returns ŷ = Xβ.
func (r *Results) Fitted() ([]float64, error) { return orNotSolved(r.fitted) }

// Residuals returns e = y − ŷ.
func (r *Results) Residuals() ([]float64, error) { return orNotSolved(r.resid) }

// Covariance returns a copy of the p×p coefficient covariance matrix.
func (r *Results) Covariance() (*mat.Dense, error) {
	if r.cov == nil {
		return nil, solver.ErrNotSolved
	}
	return mat.DenseCopyOf(r.cov), nil
}

// RSquared returns 1 − RSS/TSS.
func (r *Results) RSquared() (float64, error) {
	if r.rSq == nil {
		return 0, solver.ErrNotSolved
	}
	return *r.rSq, nil
}

// AdjRSquared returns the degrees-of-freedom adjusted R².
func (r *Results) AdjRSquared() (float64, error) {
	if r.rSqAdj == nil {
		return 0, solver.ErrNotSolved
	}
	return *r.rSqAdj, nil
}

// NObs returns the number of observations.
func (r *Results) NObs() int { return r.nObs }

// NRegressors returns the number of regressors.
func (r *Results) NRegressors() int { return r.nRegressors }

// DF returns the residual degrees of freedom used for inference (n − p − 1).
func (r *Results) DF() int { return r.df }

// SEType returns the SE variant the results were (or will be) computed with.
func (r *Results) SEType() solver.SEType { return r.seType }

// Names returns the regressor labels given through WithNames.
func (r *Results) Names() []string { return append([]string(nil), r.names...) }

// Summary renders the coefficient table. It fails with solver.ErrNotSolved
// before the inference stage has run.
func (r *Results) Summary() (string, error) {
	if r.coef == nil || r.se == nil || r.t == nil || r.pVals == nil {
		return "", solver.ErrNotSolved
	}
	info := [][2]string{
		{"Observations", fmt.Sprintf("%d", r.nObs)},
		{"Df residuals", fmt.Sprintf("%d", r.df)},
		{"Covariance type", r.seType.String()},
	}
	if r.rSq != nil {
		info = append(info,
			[2]string{"R-squared", fmt.Sprintf("%.4f", *r.rSq)},
			[2]string{"Adj. R-squared", fmt.Sprintf("%.4f", *r.rSqAdj)},
		)
	}
	return solver.RenderSummary(solver.Summary{
		Title:    "OLS Regression Results",
		StatName: "t",
		Names:    r.names,
		Coef:     r.coef,
		SE:       r.se,
		Stat:     r.t,
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
