// SPDX-License-Identifier: MIT

package solver

import "fmt"

// SEKind names a standard-error variant understood by the engines.
//
//   - Homoscedastic  σ²(XᵀX)⁻¹, constant error variance.
//   - HC1            White sandwich scaled by n/(n−p).
//   - HC2            sandwich with eᵢ²/(1−hᵢ) weights.
//   - HC3            sandwich with eᵢ²/(1−hᵢ)² weights.
//   - Clustered      CR1 cluster-robust sandwich; needs a tag per observation.
type SEKind int

const (
	// Homoscedastic assumes constant error variance.
	Homoscedastic SEKind = iota
	// HC1 is the degrees-of-freedom scaled White estimator.
	HC1
	// HC2 corrects each squared residual by 1/(1−hᵢ).
	HC2
	// HC3 corrects each squared residual by 1/(1−hᵢ)².
	HC3
	// Clustered allows arbitrary correlation within clusters.
	Clustered
)

// Aliases kept for callers that think in robust / non-robust terms.
const (
	// NonRobust is an alias for Homoscedastic.
	NonRobust = Homoscedastic
	// Robust is an alias for HC3.
	Robust = HC3
)

// String returns the canonical lower-case name of the kind.
func (k SEKind) String() string {
	switch k {
	case Homoscedastic:
		return "homoscedastic"
	case HC1:
		return "hc1"
	case HC2:
		return "hc2"
	case HC3:
		return "hc3"
	case Clustered:
		return "clustered"
	default:
		return fmt.Sprintf("SEKind(%d)", int(k))
	}
}

// Valid reports whether k is one of the declared kinds.
func (k SEKind) Valid() bool {
	return k >= Homoscedastic && k <= Clustered
}

// SEType is the solver-level standard-error request. Clusters is only
// meaningful for Kind == Clustered and holds one dense tag (0..k−1) per observation.
type SEType struct {
	Kind     SEKind
	Clusters []int
}

// SE returns an SEType for a non-clustered kind.
func SE(kind SEKind) SEType {
	return SEType{Kind: kind}
}

// ClusteredSE returns a Clustered SEType carrying a private copy of tags.
func ClusteredSE(tags []int) SEType {
	cp := make([]int, len(tags))
	copy(cp, tags)
	return SEType{Kind: Clustered, Clusters: cp}
}

// String renders the kind, with the cluster count for clustered requests.
func (s SEType) String() string {
	if s.Kind != Clustered {
		return s.Kind.String()
	}
	return fmt.Sprintf("clustered (%d clusters)", CountClusters(s.Clusters))
}

// CountClusters returns the number of distinct tags in a dense tag array.
func CountClusters(tags []int) int {
	seen := make(map[int]struct{}, len(tags))
	for _, t := range tags {
		seen[t] = struct{}{}
	}
	return len(seen)
}
