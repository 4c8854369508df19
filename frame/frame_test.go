// SPDX-License-Identifier: MIT

package frame_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/amita/frame"
	"github.com/stretchr/testify/require"
)

const panelCSV = `id,state,year,treated,wage,urban
1,CA,2019,0,10.5,true
2,NY,2019,1,11,false
3,CA,2020,0,12.25,TRUE
4,TX,2020,1,9,false
5,NY,2020,1,13.5,true
`

func readPanel(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.ReadCSV(strings.NewReader(panelCSV))
	require.NoError(t, err)
	return f
}

func TestReadCSV_InfersTypes(t *testing.T) {
	f := readPanel(t)

	require.Equal(t, 5, f.Height())
	require.Equal(t, 6, f.Width())
	require.Equal(t, []frame.Field{
		{Name: "id", DType: frame.Int},
		{Name: "state", DType: frame.String},
		{Name: "year", DType: frame.Int},
		{Name: "treated", DType: frame.Int},
		{Name: "wage", DType: frame.Float},
		{Name: "urban", DType: frame.Bool},
	}, f.Schema())

	wage, err := f.Float64s("wage")
	require.NoError(t, err)
	require.Equal(t, []float64{10.5, 11, 12.25, 9, 13.5}, wage)

	urban, err := f.Float64s("urban")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 1, 0, 1}, urban)

	years, err := f.Ints("year")
	require.NoError(t, err)
	require.Equal(t, []int64{2019, 2019, 2020, 2020, 2020}, years)
}

func TestReadCSV_Narrowing(t *testing.T) {
	f, err := frame.ReadCSV(strings.NewReader(" n , x ,flag,label\n1.0,0.5,False,a \n2,1,true, b\n"))
	require.NoError(t, err)
	require.Equal(t, []frame.Field{
		{Name: "n", DType: frame.Int},
		{Name: "x", DType: frame.Float},
		{Name: "flag", DType: frame.Bool},
		{Name: "label", DType: frame.String},
	}, f.Schema())

	labels, err := f.Column("label")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, labels.Strings())
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"no bytes", "", frame.ErrEmpty},
		{"header only", "a,b\n", frame.ErrMalformedCSV},
		{"every record short", "a,b,c\n1,2\n3,4\n", frame.ErrMalformedCSV},
		{"short record", "a,b\n1,2\n3\n", frame.ErrMissingValue},
		{"blank numeric cell", "a,b\n1,2\n3,\n", frame.ErrMissingValue},
		{"padded numeric cell", "a,b\n1, 2\n3, 4\n", frame.ErrMissingValue},
		{"duplicate header", "a,a\n1,2\n", frame.ErrDuplicateColumn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := frame.ReadCSV(strings.NewReader(tt.in))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFrame_New(t *testing.T) {
	_, err := frame.New()
	require.ErrorIs(t, err, frame.ErrEmpty)

	_, err = frame.New(frame.NewInt("a", []int64{1, 2}), frame.NewFloat("b", []float64{1}))
	require.ErrorIs(t, err, frame.ErrLengthMismatch)

	_, err = frame.New(frame.NewInt("a", []int64{1}), frame.NewString("a", []string{"x"}))
	require.ErrorIs(t, err, frame.ErrDuplicateColumn)
}

func TestFrame_ColumnAccess(t *testing.T) {
	f := readPanel(t)

	_, err := f.Column("missing")
	require.ErrorIs(t, err, frame.ErrColumnNotFound)
	_, err = f.Field("missing")
	require.ErrorIs(t, err, frame.ErrColumnNotFound)

	fld, err := f.Field("state")
	require.NoError(t, err)
	require.Equal(t, frame.String, fld.DType)

	_, err = f.Float64s("state")
	require.ErrorIs(t, err, frame.ErrColumnDataType)
	require.Contains(t, err.Error(), "found string")

	_, err = f.Ints("wage")
	require.ErrorIs(t, err, frame.ErrColumnDataType)
}

func TestFrame_WithColumn(t *testing.T) {
	f := readPanel(t)

	g, err := f.WithColumn(frame.NewFloat("one", []float64{1, 1, 1, 1, 1}))
	require.NoError(t, err)
	require.Equal(t, 7, g.Width())
	require.Equal(t, 6, f.Width())

	h, err := g.WithColumn(frame.NewString("one", []string{"a", "b", "c", "d", "e"}))
	require.NoError(t, err)
	require.Equal(t, 7, h.Width())
	fld, err := h.Field("one")
	require.NoError(t, err)
	require.Equal(t, frame.String, fld.DType)

	_, err = f.WithColumn(frame.NewFloat("short", []float64{1}))
	require.ErrorIs(t, err, frame.ErrLengthMismatch)
}

func TestFrame_Matrix(t *testing.T) {
	f := readPanel(t)

	m, err := f.Matrix("treated", "wage")
	require.NoError(t, err)
	r, c := m.Dims()
	require.Equal(t, 5, r)
	require.Equal(t, 2, c)
	require.Equal(t, 1.0, m.At(1, 0))
	require.Equal(t, 12.25, m.At(2, 1))

	_, err = f.Matrix()
	require.ErrorIs(t, err, frame.ErrEmpty)
	_, err = f.Matrix("wage", "state")
	require.ErrorIs(t, err, frame.ErrColumnDataType)
}

func TestFrame_GroupCount(t *testing.T) {
	f := readPanel(t)

	groups, err := f.GroupCount("state")
	require.NoError(t, err)
	require.Equal(t, []frame.Group{
		{Key: "CA", Count: 2, First: 0},
		{Key: "NY", Count: 2, First: 1},
		{Key: "TX", Count: 1, First: 3},
	}, groups)

	_, err = f.GroupCount("nope")
	require.ErrorIs(t, err, frame.ErrColumnNotFound)
}

func TestFrame_Join(t *testing.T) {
	f := readPanel(t)
	regions, err := frame.New(
		frame.NewString("state", []string{"TX", "CA", "NY"}),
		frame.NewString("region", []string{"south", "west", "east"}),
	)
	require.NoError(t, err)

	j, err := f.Join(regions, "state")
	require.NoError(t, err)
	require.Equal(t, 5, j.Height())
	region, err := j.Column("region")
	require.NoError(t, err)
	require.Equal(t, []string{"west", "east", "west", "south", "east"}, region.Strings())
}

func TestFrame_JoinErrors(t *testing.T) {
	f := readPanel(t)

	partial, _ := frame.New(frame.NewString("state", []string{"CA", "NY"}), frame.NewInt("k", []int64{1, 2}))
	_, err := f.Join(partial, "state")
	require.ErrorIs(t, err, frame.ErrJoinUnmatched)

	dup, _ := frame.New(frame.NewString("state", []string{"CA", "CA", "NY", "TX"}), frame.NewInt("k", []int64{1, 2, 3, 4}))
	_, err = f.Join(dup, "state")
	require.ErrorIs(t, err, frame.ErrJoinUnmatched)

	typed, _ := frame.New(frame.NewInt("state", []int64{1}))
	_, err = f.Join(typed, "state")
	require.ErrorIs(t, err, frame.ErrColumnDataType)

	clash, _ := frame.New(frame.NewString("state", []string{"CA", "NY", "TX"}), frame.NewInt("year", []int64{1, 2, 3}))
	_, err = f.Join(clash, "state")
	require.ErrorIs(t, err, frame.ErrDuplicateColumn)

	_, err = f.Join(clash, "region")
	require.ErrorIs(t, err, frame.ErrColumnNotFound)
}

func TestFrame_Take(t *testing.T) {
	f := readPanel(t)
	sub := f.Take([]int{4, 1})
	require.Equal(t, 2, sub.Height())
	require.Equal(t, f.Schema(), sub.Schema())

	state, err := sub.Column("state")
	require.NoError(t, err)
	require.Equal(t, []string{"NY", "NY"}, state.Strings())
	wage, err := sub.Float64s("wage")
	require.NoError(t, err)
	require.Equal(t, []float64{13.5, 11}, wage)
}

func TestSeries_TakeAndKey(t *testing.T) {
	s := frame.NewFloat("x", []float64{0.5, 2, 3.25})
	taken := s.Take([]int{2, 0, 0})
	require.Equal(t, 3, taken.Len())
	require.Equal(t, []string{"3.25", "0.5", "0.5"}, taken.Strings())
	require.Equal(t, "x", taken.Name())

	b := frame.NewBool("b", []bool{true, false})
	require.Equal(t, "true", b.Key(0))
	ints, err := b.Int64s()
	require.NoError(t, err)
	require.Equal(t, []int64{1, 0}, ints)

	require.True(t, frame.Int.Numeric())
	require.False(t, frame.String.Numeric())
	require.Equal(t, "float", frame.Float.String())
}
