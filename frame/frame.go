// SPDX-License-Identifier: MIT

package frame

import (
	"gonum.org/v1/gonum/mat"
)

// Field is one entry of a frame schema.
type Field struct {
	Name  string
	DType DType
}

// Frame is an immutable set of equal-length, uniquely named columns.
// Every method that "changes" a frame returns a new one.
type Frame struct {
	cols   []Series
	index  map[string]int
	height int
}

// New builds a frame from cols, in order.
//
// Errors: ErrEmpty (no columns), ErrDuplicateColumn, ErrLengthMismatch.
func New(cols ...Series) (*Frame, error) {
	if len(cols) == 0 {
		return nil, ErrEmpty
	}
	f := &Frame{
		cols:   make([]Series, 0, len(cols)),
		index:  make(map[string]int, len(cols)),
		height: cols[0].Len(),
	}
	for _, c := range cols {
		if _, dup := f.index[c.name]; dup {
			return nil, frameErrorf("frame.New", c.name, ErrDuplicateColumn)
		}
		if c.Len() != f.height {
			return nil, frameErrorf("frame.New", c.name, ErrLengthMismatch)
		}
		f.index[c.name] = len(f.cols)
		f.cols = append(f.cols, c)
	}
	return f, nil
}

// Height returns the number of rows.
func (f *Frame) Height() int { return f.height }

// Width returns the number of columns.
func (f *Frame) Width() int { return len(f.cols) }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.cols))
	for i, c := range f.cols {
		out[i] = c.name
	}
	return out
}

// Schema returns name and dtype of every column, in order.
func (f *Frame) Schema() []Field {
	out := make([]Field, len(f.cols))
	for i, c := range f.cols {
		out[i] = Field{Name: c.name, DType: c.dtype}
	}
	return out
}

// Field returns the schema entry for name.
//
// Errors: ErrColumnNotFound.
func (f *Frame) Field(name string) (Field, error) {
	c, err := f.Column(name)
	if err != nil {
		return Field{}, err
	}
	return Field{Name: c.name, DType: c.dtype}, nil
}

// Column returns the series called name.
//
// Errors: ErrColumnNotFound.
func (f *Frame) Column(name string) (Series, error) {
	i, ok := f.index[name]
	if !ok {
		return Series{}, frameErrorf("frame.Column", name, ErrColumnNotFound)
	}
	return f.cols[i], nil
}

// WithColumn returns a frame with s appended, or replacing the column of the same name.
//
// Errors: ErrLengthMismatch.
func (f *Frame) WithColumn(s Series) (*Frame, error) {
	if s.Len() != f.height {
		return nil, frameErrorf("frame.WithColumn", s.name, ErrLengthMismatch)
	}
	cols := append([]Series(nil), f.cols...)
	if i, ok := f.index[s.name]; ok {
		cols[i] = s
	} else {
		cols = append(cols, s)
	}
	return New(cols...)
}

// Float64s returns column name converted to float64.
//
// Errors: ErrColumnNotFound, ErrColumnDataType (String columns).
func (f *Frame) Float64s(name string) ([]float64, error) {
	c, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	return c.Float64s()
}

// Ints returns an Int or Bool column as int64.
//
// Errors: ErrColumnNotFound, ErrColumnDataType.
func (f *Frame) Ints(name string) ([]int64, error) {
	c, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	return c.Int64s()
}

// Matrix stacks the named numeric columns into a Height×len(names) matrix.
//
// Errors: ErrEmpty (no names), ErrColumnNotFound, ErrColumnDataType.
// Complexity: O(n·k).
func (f *Frame) Matrix(names ...string) (*mat.Dense, error) {
	if len(names) == 0 || f.height == 0 {
		return nil, ErrEmpty
	}
	m := mat.NewDense(f.height, len(names), nil)
	for j, name := range names {
		v, err := f.Float64s(name)
		if err != nil {
			return nil, err
		}
		m.SetCol(j, v)
	}
	return m, nil
}

// Take returns the rows at idx, in idx order.
func (f *Frame) Take(idx []int) *Frame {
	cols := make([]Series, len(f.cols))
	for i, c := range f.cols {
		cols[i] = c.Take(idx)
	}
	return &Frame{cols: cols, index: f.index, height: len(idx)}
}
