// SPDX-License-Identifier: MIT

package frame

// Group is one distinct value of a column with its row count.
// First is the row index where the value first occurs.
type Group struct {
	Key   string
	Count int
	First int
}

// GroupCount counts rows per distinct value of column name. Groups are
// returned in first-occurrence order, so the result is deterministic.
//
// Errors: ErrColumnNotFound.
// Complexity: O(n).
func (f *Frame) GroupCount(name string) ([]Group, error) {
	c, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	slot := make(map[string]int)
	var groups []Group
	for i := 0; i < c.Len(); i++ {
		k := c.Key(i)
		if g, ok := slot[k]; ok {
			groups[g].Count++
			continue
		}
		slot[k] = len(groups)
		groups = append(groups, Group{Key: k, Count: 1, First: i})
	}
	return groups, nil
}

// Join matches every row of f with exactly one row of right on equality of
// column on, and returns f's columns followed by right's other columns.
// Row order of f is preserved.
//
// Errors:
//   - ErrColumnNotFound when on is missing on either side
//   - ErrColumnDataType when the two key columns have different dtypes
//   - ErrJoinUnmatched when a left key has no partner or a right key repeats
//   - ErrDuplicateColumn when a non-key column name exists on both sides
//
// Complexity: O(n + m).
func (f *Frame) Join(right *Frame, on string) (*Frame, error) {
	lk, err := f.Column(on)
	if err != nil {
		return nil, err
	}
	rk, err := right.Column(on)
	if err != nil {
		return nil, err
	}
	if lk.dtype != rk.dtype {
		return nil, dtypeError("frame.Join", on, lk.dtype.String(), rk.dtype)
	}

	pos := make(map[string]int, rk.Len())
	for j := 0; j < rk.Len(); j++ {
		k := rk.Key(j)
		if _, dup := pos[k]; dup {
			return nil, frameErrorf("frame.Join", on, ErrJoinUnmatched)
		}
		pos[k] = j
	}

	idx := make([]int, f.height)
	for i := 0; i < f.height; i++ {
		j, ok := pos[lk.Key(i)]
		if !ok {
			return nil, frameErrorf("frame.Join", on, ErrJoinUnmatched)
		}
		idx[i] = j
	}

	matched := right.Take(idx)
	cols := append([]Series(nil), f.cols...)
	for _, c := range matched.cols {
		if c.name == on {
			continue
		}
		cols = append(cols, c)
	}
	return New(cols...)
}
