// Package frame is a small in-memory columnar table: typed Series, schema
// lookup, first-occurrence GroupCount, an exact-match key Join, numeric
// extraction into gonum matrices, and CSV ingest with per-column type
// inference.
//
// Frames are immutable; WithColumn and Join return new frames.
//
//	f, err := frame.ReadCSV(file)
//	x, err := f.Matrix("age", "income")
//	groups, err := f.GroupCount("state")
package frame
