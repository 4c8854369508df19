// Package ols fits linear models by ordinary least squares.
//
// What it does:
//
//	Given y (n) and a full-rank design matrix X (n×p), ols.New factorizes
//	X = Q·R once. Solve then runs a fixed pipeline:
//
//	  1. coefficients   β = R⁻¹Qᵀy, ŷ = Xβ, e = y − ŷ
//	  2. variance       one formula per SE kind (see below), SE = √diag(V)
//	  3. inference      tᵢ = βᵢ/seᵢ, p = 2·(1 − T(|tᵢ|; n−p−1))
//	  4. goodness of fit R², adjusted R² (optional, on by default)
//
// Standard errors:
//
//   - Homoscedastic  V = σ²(RᵀR)⁻¹, σ² = eᵀe/(n−p)
//   - HC1            sandwich with eᵢ², scaled by n/(n−p)
//   - HC2            sandwich with eᵢ²/(1−hᵢ)
//   - HC3 (Robust)   sandwich with eᵢ²/(1−hᵢ)²
//   - Clustered      CR1: Σ_g scores, scaled by G/(G−1)·(n−1)/(n−p)
//
// Usage:
//
//	s, err := ols.New(y, x, ols.WithNames("const", "x1"))
//	if err != nil {
//	    return err
//	}
//	solved, err := s.WithRobustSE().Solve()
//	if err != nil {
//	    return err
//	}
//	res := solved.Results()
//	se, _ := res.SE()
//
// Solve consumes its receiver: a second Solve on the same value returns
// solver.ErrAlreadySolved.
//
// Complexity: O(n·p²) to factorize, O(n·p²) per sandwich variance.
package ols
