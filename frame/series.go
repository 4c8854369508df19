// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"
	"strconv"
)

// DType is the element type of a Series.
type DType int

const (
	Bool DType = iota
	Int
	Float
	String
)

// String implements fmt.Stringer.
func (d DType) String() string {
	switch d {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	default:
		return fmt.Sprintf("DType(%d)", int(d))
	}
}

// Numeric reports whether values of d convert to float64 without loss of meaning.
func (d DType) Numeric() bool {
	return d == Bool || d == Int || d == Float
}

// Series is a named, typed, immutable column. Exactly one backing slice is
// populated, the one matching dtype.
type Series struct {
	name   string
	dtype  DType
	bools  []bool
	ints   []int64
	floats []float64
	strs   []string
}

// NewBool returns a Bool series holding a copy of v.
func NewBool(name string, v []bool) Series {
	return Series{name: name, dtype: Bool, bools: append([]bool{}, v...)}
}

// NewInt returns an Int series holding a copy of v.
func NewInt(name string, v []int64) Series {
	return Series{name: name, dtype: Int, ints: append([]int64{}, v...)}
}

// NewFloat returns a Float series holding a copy of v.
func NewFloat(name string, v []float64) Series {
	return Series{name: name, dtype: Float, floats: append([]float64{}, v...)}
}

// NewString returns a String series holding a copy of v.
func NewString(name string, v []string) Series {
	return Series{name: name, dtype: String, strs: append([]string{}, v...)}
}

// Name returns the column name.
func (s Series) Name() string { return s.name }

// DType returns the element type.
func (s Series) DType() DType { return s.dtype }

// Len returns the number of rows.
func (s Series) Len() int {
	switch s.dtype {
	case Bool:
		return len(s.bools)
	case Int:
		return len(s.ints)
	case Float:
		return len(s.floats)
	default:
		return len(s.strs)
	}
}

// Key returns a canonical string form of row i, used for grouping and joins.
// Two rows of the same dtype compare equal iff their keys are equal.
func (s Series) Key(i int) string {
	switch s.dtype {
	case Bool:
		return strconv.FormatBool(s.bools[i])
	case Int:
		return strconv.FormatInt(s.ints[i], 10)
	case Float:
		return strconv.FormatFloat(s.floats[i], 'g', -1, 64)
	default:
		return s.strs[i]
	}
}

// Take returns a new series with the rows at idx, in idx order.
func (s Series) Take(idx []int) Series {
	out := Series{name: s.name, dtype: s.dtype}
	switch s.dtype {
	case Bool:
		out.bools = make([]bool, len(idx))
		for k, i := range idx {
			out.bools[k] = s.bools[i]
		}
	case Int:
		out.ints = make([]int64, len(idx))
		for k, i := range idx {
			out.ints[k] = s.ints[i]
		}
	case Float:
		out.floats = make([]float64, len(idx))
		for k, i := range idx {
			out.floats[k] = s.floats[i]
		}
	default:
		out.strs = make([]string, len(idx))
		for k, i := range idx {
			out.strs[k] = s.strs[i]
		}
	}
	return out
}

// Float64s converts a numeric series to float64 (bools become 0/1).
//
// Errors: ErrColumnDataType for String series.
func (s Series) Float64s() ([]float64, error) {
	out := make([]float64, s.Len())
	switch s.dtype {
	case Bool:
		for i, v := range s.bools {
			if v {
				out[i] = 1
			}
		}
	case Int:
		for i, v := range s.ints {
			out[i] = float64(v)
		}
	case Float:
		copy(out, s.floats)
	default:
		return nil, dtypeError("Series.Float64s", s.name, "bool, int or float", s.dtype)
	}
	return out, nil
}

// Int64s returns the values of an Int series, or of a Bool series as 0/1.
//
// Errors: ErrColumnDataType for Float and String series.
func (s Series) Int64s() ([]int64, error) {
	switch s.dtype {
	case Int:
		return append([]int64{}, s.ints...), nil
	case Bool:
		out := make([]int64, len(s.bools))
		for i, v := range s.bools {
			if v {
				out[i] = 1
			}
		}
		return out, nil
	default:
		return nil, dtypeError("Series.Int64s", s.name, "int or bool", s.dtype)
	}
}

// Strings returns every row rendered by Key.
func (s Series) Strings() []string {
	out := make([]string, s.Len())
	for i := range out {
		out[i] = s.Key(i)
	}
	return out
}
