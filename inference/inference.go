// SPDX-License-Identifier: MIT

package inference

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/amita/frame"
	"github.com/katalvlaran/amita/solver"
)

// ErrSingleObservationCluster is returned when some cluster holds a single row.
var ErrSingleObservationCluster = errors.New("inference: single observation within cluster")

// ErrUnknownSE is returned by ParseModelSE for an unrecognised name.
var ErrUnknownSE = errors.New("inference: unknown standard error type")

// tagColumn names the dense tag column of the lookup frame built by ClusterTags.
const tagColumn = "__cluster_tag"

// ModelSE is a standard-error request phrased against a dataset: clustering
// names a column instead of carrying per-row tags.
type ModelSE struct {
	Kind      solver.SEKind
	ClusterBy string // column name, used only when Kind == solver.Clustered
}

// Homoscedastic requests classical standard errors.
func Homoscedastic() ModelSE { return ModelSE{Kind: solver.Homoscedastic} }

// NonRobust is an alias for Homoscedastic.
func NonRobust() ModelSE { return Homoscedastic() }

// HC requests a heteroscedasticity-consistent variant (solver.HC1, HC2 or HC3).
func HC(kind solver.SEKind) ModelSE { return ModelSE{Kind: kind} }

// Robust is an alias for HC(solver.HC3).
func Robust() ModelSE { return ModelSE{Kind: solver.Robust} }

// ClusterBy requests cluster-robust standard errors grouped by column.
func ClusterBy(column string) ModelSE {
	return ModelSE{Kind: solver.Clustered, ClusterBy: column}
}

// String renders m in the form accepted by ParseModelSE.
func (m ModelSE) String() string {
	if m.Kind == solver.Clustered {
		return "cluster:" + m.ClusterBy
	}
	return m.Kind.String()
}

// ParseModelSE accepts homoscedastic, nonrobust, hc1, hc2, hc3, robust and
// cluster:<column>, case-insensitively for the kind.
//
// Errors: ErrUnknownSE.
func ParseModelSE(s string) (ModelSE, error) {
	s = strings.TrimSpace(s)
	kind, column, isCluster := strings.Cut(s, ":")
	switch strings.ToLower(kind) {
	case "homoscedastic", "nonrobust", "":
		if !isCluster {
			return Homoscedastic(), nil
		}
	case "hc1":
		return HC(solver.HC1), nil
	case "hc2":
		return HC(solver.HC2), nil
	case "hc3", "robust":
		return Robust(), nil
	case "cluster", "clustered":
		if isCluster && strings.TrimSpace(column) != "" {
			return ClusterBy(strings.TrimSpace(column)), nil
		}
	}
	return ModelSE{}, fmt.Errorf("inference.ParseModelSE: %q: %w", s, ErrUnknownSE)
}

// ToSolverSE resolves m against data. Non-clustered kinds map one to one;
// clustered requests resolve their column into dense tags with ClusterTags.
//
// Errors: solver.ErrUnknownSEType, plus everything ClusterTags returns.
func (m ModelSE) ToSolverSE(data *frame.Frame) (solver.SEType, error) {
	switch m.Kind {
	case solver.Homoscedastic, solver.HC1, solver.HC2, solver.HC3:
		return solver.SE(m.Kind), nil
	case solver.Clustered:
		tags, err := ClusterTags(m.ClusterBy, data)
		if err != nil {
			return solver.SEType{}, err
		}
		return solver.ClusteredSE(tags), nil
	default:
		return solver.SEType{}, fmt.Errorf("inference.ToSolverSE: %w", solver.ErrUnknownSEType)
	}
}

// ClusterTags maps every row of data to a dense cluster tag 0..k−1, assigned
// in first-occurrence order of the values of column.
//
// The column must be Bool, Int or String. Each distinct value must occur at
// least twice.
//
// Errors: frame.ErrColumnNotFound, frame.ErrColumnDataType,
// ErrSingleObservationCluster.
// Complexity: O(n).
func ClusterTags(column string, data *frame.Frame) ([]int, error) {
	const op = "inference.ClusterTags"

	keys, err := data.Column(column)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if dt := keys.DType(); dt == frame.Float {
		return nil, fmt.Errorf("%s: column %q: expected bool, int or string, found %s: %w",
			op, column, dt, frame.ErrColumnDataType)
	}

	groups, err := data.GroupCount(column)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	first := make([]int, len(groups))
	tags := make([]int64, len(groups))
	for g, grp := range groups {
		if grp.Count <= 1 {
			return nil, fmt.Errorf("%s: column %q, value %q: %w", op, column, grp.Key, ErrSingleObservationCluster)
		}
		first[g] = grp.First
		tags[g] = int64(g)
	}

	lookup, err := frame.New(keys.Take(first), frame.NewInt(tagColumn, tags))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	rows, err := frame.New(keys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	joined, err := rows.Join(lookup, column)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	dense, err := joined.Ints(tagColumn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]int, len(dense))
	for i, v := range dense {
		out[i] = int(v)
	}
	return out, nil
}
