// Package logit fits binary logistic regression by maximum likelihood.
//
// The engine minimises the mean negative log-likelihood
//
//	J(β) = −(1/n) Σ [yᵢ ln σ(xᵢᵀβ) + (1−yᵢ) ln(1−σ(xᵢᵀβ))]
//
// from β = 0 with gonum/optimize. The strategy is chosen with WithMethod:
// BFGS (default), LBFGS, Newton or GradientDescent. Iteration stops when
// ‖∇J‖₂ < tolerance (default 1e-4) or after MaxIter iterations (default 1000);
// the latter is reported as solver.ErrNotConverged.
//
// Inference is asymptotic: V = (n·∇²J(β̂))⁻¹, z = β/SE, two-sided normal p-values.
//
//	s, err := logit.New(y, x, logit.WithMethod(logit.Newton))
//	if err != nil {
//	    return err // solver.ErrNonBinary, solver.ErrNotSameObservations, ...
//	}
//	res, err := solver.Run[*logit.Solver, *logit.Results](s)
package logit
