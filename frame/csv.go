// SPDX-License-Identifier: MIT

package frame

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/kshedden/datareader"
)

// maxExactInt bounds the float64 values that convert to int64 exactly.
const maxExactInt = 1 << 53

// ReadCSV reads a header row followed by records. datareader sniffs each
// column as float64 or string on the first 100 records; ReadCSV then narrows
// the result:
//
//	float64, every value integral  -> Int
//	float64                        -> Float
//	string, every value true/false -> Bool (any case)
//	string                         -> String (cells trimmed)
//
// Header names are trimmed. Numeric cells are parsed as they appear, so a
// padded " 1.5" in a numeric column is reported as ErrMissingValue.
//
// Errors:
//   - ErrEmpty when the input has no bytes
//   - ErrMalformedCSV when no record among the first 100 is as wide as the
//     header, which includes a header with no records
//   - ErrMissingValue when a numeric cell does not parse or a record is short
func ReadCSV(r io.Reader) (*Frame, error) {
	br := bufio.NewReader(r)
	if _, err := br.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("frame.ReadCSV: %w", ErrEmpty)
		}
		return nil, fmt.Errorf("frame.ReadCSV: %w", err)
	}

	raw, err := readSeries(br)
	if err != nil {
		return nil, fmt.Errorf("frame.ReadCSV: %w", err)
	}

	cols := make([]Series, len(raw))
	for j, rs := range raw {
		if cols[j], err = fromReaderSeries(rs); err != nil {
			return nil, err
		}
	}
	return New(cols...)
}

// readSeries reads the whole input. datareader indexes past its sniffed type
// table when no record is as wide as the header; that panic is reported as
// ErrMalformedCSV.
func readSeries(r io.Reader) (raw []*datareader.Series, err error) {
	defer func() {
		if p := recover(); p != nil {
			raw, err = nil, fmt.Errorf("%w: %v", ErrMalformedCSV, p)
		}
	}()
	return datareader.NewCSVReader(r).Read(-1)
}

// fromReaderSeries converts one datareader column into a typed Series.
func fromReaderSeries(rs *datareader.Series) (Series, error) {
	name := strings.TrimSpace(rs.Name)
	for i, miss := range rs.Missing() {
		if miss {
			return Series{}, fmt.Errorf("frame.ReadCSV: column %q, record %d: %w", name, i+1, ErrMissingValue)
		}
	}

	switch rs.Data().(type) {
	case []float64:
		v, _, err := rs.AsFloat64Slice()
		if err != nil {
			return Series{}, fmt.Errorf("frame.ReadCSV: column %q: %w", name, err)
		}
		if ints, ok := integral(v); ok {
			return NewInt(name, ints), nil
		}
		return NewFloat(name, v), nil
	case []string:
		v, _, err := rs.StringFunc(strings.TrimSpace).AsStringSlice()
		if err != nil {
			return Series{}, fmt.Errorf("frame.ReadCSV: column %q: %w", name, err)
		}
		if b, ok := bools(v); ok {
			return NewBool(name, b), nil
		}
		return NewString(name, v), nil
	default:
		return Series{}, fmt.Errorf("frame.ReadCSV: column %q: unsupported %T: %w", name, rs.Data(), ErrColumnDataType)
	}
}

func integral(v []float64) ([]int64, bool) {
	if len(v) == 0 {
		return nil, false
	}
	out := make([]int64, len(v))
	for i, f := range v {
		if f != math.Trunc(f) || math.Abs(f) > maxExactInt {
			return nil, false
		}
		out[i] = int64(f)
	}
	return out, true
}

// bools accepts only true/false; 0/1 columns stay numeric.
func bools(v []string) ([]bool, bool) {
	if len(v) == 0 {
		return nil, false
	}
	out := make([]bool, len(v))
	for i, s := range v {
		switch {
		case strings.EqualFold(s, "true"):
			out[i] = true
		case strings.EqualFold(s, "false"):
		default:
			return nil, false
		}
	}
	return out, true
}
