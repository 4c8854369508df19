// SPDX-License-Identifier: MIT

package ols

import (
	"math"

	"github.com/katalvlaran/amita/solver"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// leverageTol guards 1 − hᵢ against division by (numerically) zero.
const leverageTol = 1e-12

// solveCoef estimates β from Rβ = Qᵀy by back substitution and derives
// fitted values and residuals.
//
// Complexity: O(n·p + p²).
func (s *Solver) solveCoef(res *Results) error {
	n, p := s.x.Dims()

	y := mat.NewVecDense(n, solver.CopyFloats(s.y))
	var qty mat.VecDense
	qty.MulVec(s.q.T(), y)

	upper := mat.NewTriDense(p, mat.Upper, nil)
	upper.Copy(s.r)
	beta := mat.NewVecDense(p, nil)
	if err := beta.SolveVec(upper, &qty); err != nil {
		return solver.Errorfd("coef", "R matrix from QR-decomposed X", solver.ErrNotInvertible)
	}

	fitted := mat.NewVecDense(n, nil)
	fitted.MulVec(s.x, beta)

	resid := make([]float64, n)
	for i := 0; i < n; i++ {
		resid[i] = s.y[i] - fitted.AtVec(i)
	}

	res.coef = solver.CopyFloats(beta.RawVector().Data)
	res.fitted = solver.CopyFloats(fitted.RawVector().Data)
	res.resid = resid
	return nil
}

// solveVariance dispatches on the configured SE kind and fills cov and se.
func (s *Solver) solveVariance(res *Results) error {
	if res.resid == nil {
		return solver.ErrNotSolved
	}

	var (
		cov *mat.Dense
		err error
	)
	switch s.opts.se.Kind {
	case solver.Homoscedastic:
		cov, err = s.homoscedastic(res.resid)
	case solver.HC1, solver.HC2, solver.HC3:
		cov, err = s.heteroscedastic(res.resid, s.opts.se.Kind)
	case solver.Clustered:
		cov, err = s.clustered(res.resid, s.opts.se.Clusters)
	default:
		err = solver.ErrUnknownSEType
	}
	if err != nil {
		return err
	}

	p, _ := cov.Dims()
	se := make([]float64, p)
	for i := 0; i < p; i++ {
		se[i] = math.Sqrt(math.Max(cov.At(i, i), 0))
	}
	res.cov = cov
	res.se = se
	return nil
}

// gramInverse returns (RᵀR)⁻¹ = (XᵀX)⁻¹ without reforming XᵀX from X.
func (s *Solver) gramInverse() (*mat.Dense, error) {
	var rtr, inv mat.Dense
	rtr.Mul(s.r.T(), s.r)
	if err := inv.Inverse(&rtr); err != nil {
		return nil, solver.Errorfd("variance", "RᵀR matrix from QR-decomposed X", solver.ErrNotInvertible)
	}
	return &inv, nil
}

// homoscedastic: σ² = eᵀe/(n−p), V = σ²(RᵀR)⁻¹.
func (s *Solver) homoscedastic(resid []float64) (*mat.Dense, error) {
	n, p := s.x.Dims()
	bread, err := s.gramInverse()
	if err != nil {
		return nil, err
	}
	sigma2 := floats.Dot(resid, resid) / float64(n-p)

	var cov mat.Dense
	cov.Scale(sigma2, bread)
	return &cov, nil
}

// heteroscedastic builds the sandwich (XᵀX)⁻¹ Xᵀ diag(ω) X (XᵀX)⁻¹ with
//
//	HC1: ωᵢ = eᵢ² · n/(n−p)
//	HC2: ωᵢ = eᵢ² / (1−hᵢ)
//	HC3: ωᵢ = eᵢ² / (1−hᵢ)²
//
// where hᵢ = ‖Qᵢ‖² is the leverage of observation i.
func (s *Solver) heteroscedastic(resid []float64, kind solver.SEKind) (*mat.Dense, error) {
	n, p := s.x.Dims()
	bread, err := s.gramInverse()
	if err != nil {
		return nil, err
	}

	omega := make([]float64, n)
	switch kind {
	case solver.HC1:
		scale := float64(n) / float64(n-p)
		for i, e := range resid {
			omega[i] = e * e * scale
		}
	case solver.HC2, solver.HC3:
		h := s.leverage()
		for i, e := range resid {
			oneMinus := 1 - h[i]
			if oneMinus <= leverageTol {
				return nil, solver.Errorfd("variance", "leverage correction 1−h", solver.ErrNotInvertible)
			}
			if kind == solver.HC2 {
				omega[i] = e * e / oneMinus
			} else {
				omega[i] = e * e / (oneMinus * oneMinus)
			}
		}
	}

	var xw mat.Dense
	xw.Apply(func(i, _ int, v float64) float64 { return v * omega[i] }, s.x)
	var meat mat.Dense
	meat.Mul(s.x.T(), &xw)

	return sandwich(bread, &meat, 1), nil
}

// clustered builds the CR1 sandwich: meat = Σ_g (X_gᵀe_g)(X_gᵀe_g)ᵀ,
// scaled by G/(G−1) · (n−1)/(n−p).
func (s *Solver) clustered(resid []float64, tags []int) (*mat.Dense, error) {
	n, p := s.x.Dims()
	g, err := solver.ValidateClusters(tags, n)
	if err != nil {
		return nil, err
	}
	bread, err := s.gramInverse()
	if err != nil {
		return nil, err
	}

	// Scores are accumulated in first-seen order of the tags.
	slot := make(map[int]int, g)
	scores := mat.NewDense(g, p, nil)
	for i, tag := range tags {
		k, ok := slot[tag]
		if !ok {
			k = len(slot)
			slot[tag] = k
		}
		for j := 0; j < p; j++ {
			scores.Set(k, j, scores.At(k, j)+s.x.At(i, j)*resid[i])
		}
	}

	var meat mat.Dense
	meat.Mul(scores.T(), scores)

	gf, nf, pf := float64(g), float64(n), float64(p)
	scale := gf / (gf - 1) * (nf - 1) / (nf - pf)
	return sandwich(bread, &meat, scale), nil
}

// sandwich returns scale · bread · meat · bread.
func sandwich(bread, meat *mat.Dense, scale float64) *mat.Dense {
	var tmp, cov, scaled mat.Dense
	tmp.Mul(bread, meat)
	cov.Mul(&tmp, bread)
	if scale == 1 {
		return &cov
	}
	scaled.Scale(scale, &cov)
	return &scaled
}

// leverage returns hᵢ = Σ_j Q_ij², the diagonal of the hat matrix.
func (s *Solver) leverage() []float64 {
	n, p := s.q.Dims()
	h := make([]float64, n)
	for i := 0; i < n; i++ {
		var acc float64
		for j := 0; j < p; j++ {
			v := s.q.At(i, j)
			acc += v * v
		}
		h[i] = acc
	}
	return h
}

// solveInference computes tᵢ = βᵢ/seᵢ and two-sided p-values against
// Student's t with n − p − 1 degrees of freedom.
func (s *Solver) solveInference(res *Results) {
	df := float64(res.df)
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	t := make([]float64, len(res.coef))
	pv := make([]float64, len(res.coef))
	for i := range res.coef {
		t[i] = res.coef[i] / res.se[i]
		pv[i] = 2 * dist.Survival(math.Abs(t[i]))
	}
	res.t = t
	res.pVals = pv
	res.crit = dist.Quantile(0.975)
}

// solveFit computes R² = 1 − RSS/TSS and the adjusted R² with
// (n − p − 1) and (n − 1) degrees-of-freedom corrections. A constant
// response has TSS = 0, and both statistics are then NaN.
func (s *Solver) solveFit(res *Results) {
	n := float64(res.nObs)
	mean := floats.Sum(s.y) / n

	var tss float64
	for _, v := range s.y {
		d := v - mean
		tss += d * d
	}
	rss := floats.Dot(res.resid, res.resid)

	rSq, rSqAdj := math.NaN(), math.NaN()
	if tss > 0 {
		rSq = 1 - rss/tss
		rSqAdj = 1 - (rss/float64(res.df))/(tss/(n-1))
	}
	res.rSq = &rSq
	res.rSqAdj = &rSqAdj
}
