// SPDX-License-Identifier: MIT

package solver

// Stage tags where a solver value sits in its one-way lifecycle.
//
//	Validated ──Solve()──▶ Solved      (new value returned to the caller)
//	    │
//	    └────────────────▶ Consumed    (the value Solve was called on)
//
// There is no backward transition. Only a Validated value accepts option
// changes and may be solved.
type Stage int

const (
	// Validated means inputs were checked (and, for OLS, decomposed).
	Validated Stage = iota
	// Consumed marks a value whose Solve already ran; it can no longer be used.
	Consumed
	// Solved marks the value returned by a successful Solve.
	Solved
)

// String implements fmt.Stringer.
func (s Stage) String() string {
	switch s {
	case Validated:
		return "validated"
	case Consumed:
		return "consumed"
	case Solved:
		return "solved"
	default:
		return "unknown"
	}
}

// Results is the read-only view every engine exposes after solving.
// Each accessor returns ErrNotSolved while its field is unset; no accessor
// returns a placeholder value.
type Results interface {
	Coef() ([]float64, error)
	SE() ([]float64, error)
	T() ([]float64, error)
	PValues() ([]float64, error)
	Summary() (string, error)
}

// Solver is the capability shared by the OLS and Logit engines. S is the
// concrete solver type returned by Solve, R its results type.
//
// Solve takes the value over: on success it returns a new Solved value and
// the receiver becomes Consumed; on failure it returns the zero S and an error
// and the receiver is Consumed as well, since every failure is a deterministic
// function of the input.
type Solver[S any, R Results] interface {
	Stage() Stage
	Results() R
	Solve() (S, error)
}

// Run solves s and returns its results. Consumers that only need the
// contract (e.g. composite models) should go through Run rather than touching
// engine internals.
func Run[S Solver[S, R], R Results](s S) (R, error) {
	solved, err := s.Solve()
	if err != nil {
		var zero R
		return zero, err
	}
	return solved.Results(), nil
}
