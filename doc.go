// Package amita is a small econometrics toolkit: linear and binary-response
// estimators over dense matrices, with the inference a regression table needs.
//
// The estimators share one lifecycle. A solver is built and validated by New,
// then Solve (or solver.Run) consumes it and returns immutable results:
//
//	s, err := ols.New(y, X, ols.WithSE(solver.SE(solver.HC1)))
//	if err != nil {
//	    return err
//	}
//	res, err := s.Solve()
//
// Subpackages:
//
//	solver/    shared contract, SE variants, validators, sentinel errors, summary tables
//	ols/       ordinary least squares via QR, homoscedastic/HC/clustered errors, R²
//	logit/     binary logit by maximum likelihood (BFGS, L-BFGS, Newton, gradient descent)
//	frame/     typed columnar tables read from CSV, grouping and joins
//	inference/ model-level SE choices and cluster tag assignment over a frame
//	did/       two-way fixed effects difference-in-differences on top of ols
//
// The amita command (cmd/amita) exposes ols, logit and did over CSV files.
package amita
