// Package solver defines the contract shared by amita's estimation engines.
//
// What lives here:
//
//   - Results / Solver : the capability interfaces implemented by ols.Solver
//     and logit.Solver. Solve takes a configured value over and returns a new
//     solved value; the original becomes Consumed (see Stage).
//   - SEType / SEKind : the solver-level standard-error request
//     (Homoscedastic, HC1, HC2, HC3, Clustered; NonRobust and Robust aliases).
//   - Sentinel errors matched with errors.Is across every engine.
//   - Shared input validators and the go-pretty summary renderer.
//
// Usage:
//
//	s, err := ols.New(y, x)
//	if err != nil {
//	    // ErrNotSameObservations, ErrNotQRDecomposable, ...
//	}
//	res, err := solver.Run[*ols.Solver, *ols.Results](s.WithSE(solver.SE(solver.HC3)))
//	coef, _ := res.Coef()
//
// Every accessor on a results value fails with ErrNotSolved until the stage
// that populates it has run.
package solver
