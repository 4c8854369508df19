// Package did estimates difference-in-differences effects with a two-way
// fixed-effects OLS regression on a frame.Frame.
//
//	m := did.New(data, "wage", "treated", "after",
//	    did.WithCovariates("age"),
//	    did.WithSE(inference.ClusterBy("state")))
//	res, err := m.Fit()
//	att, se, p, err := m.Effect(res)
package did
