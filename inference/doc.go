// Package inference turns dataset-level standard-error requests into the
// solver-level tags the engines consume.
//
// A ModelSE names a cluster column; ToSolverSE resolves it against a
// frame.Frame into one dense tag per row (ClusterTags), rejecting clusters
// that contain a single observation.
//
//	se, err := inference.ClusterBy("state").ToSolverSE(data)
//	s, err := ols.New(y, x, ols.WithSE(se))
package inference
