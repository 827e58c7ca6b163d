// SPDX-License-Identifier: MIT

// Package dataset reads and writes numeric CSV tables as gonum matrices.
//
// Format:
//   - One sample per record, one feature per field, comma separated.
//   - An optional header: the first record is treated as column names when
//     any of its fields is not a number.
//   - Lines starting with '#' are comments; surrounding spaces are ignored.
//   - Every record must have the same number of fields.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmpty indicates a table with no data records.
	ErrEmpty = errors.New("dataset: no data rows")

	// ErrRagged indicates a record whose field count differs from the first one.
	ErrRagged = errors.New("dataset: ragged row")

	// ErrNotNumeric indicates a data field that does not parse as float64.
	ErrNotNumeric = errors.New("dataset: non-numeric field")
)

// Table is a parsed CSV file.
type Table struct {
	Header []string   // nil when the file has no header
	Data   *mat.Dense // rows × len(columns)
}

// Read parses a numeric CSV table from r.
//
// Errors:
//   - ErrEmpty, ErrRagged, ErrNotNumeric (wrapped with the line number).
//   - I/O and quoting errors from encoding/csv.
func Read(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // checked below to report ErrRagged

	var (
		t     Table
		vals  []float64
		width = -1
		rows  int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("dataset: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if width < 0 {
			width = len(rec)
			if !numeric(rec) {
				t.Header = trimAll(rec)
				continue
			}
		}
		if len(rec) != width {
			return Table{}, fmt.Errorf("line %d: %d fields, want %d: %w", line, len(rec), width, ErrRagged)
		}
		for i, f := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return Table{}, fmt.Errorf("line %d field %d %q: %w", line, i+1, f, ErrNotNumeric)
			}
			vals = append(vals, v)
		}
		rows++
	}
	if rows == 0 || width == 0 {
		return Table{}, ErrEmpty
	}
	t.Data = mat.NewDense(rows, width, vals)

	return t, nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Write encodes m as CSV, preceded by header when it is non-empty.
// Values use the shortest representation that round-trips.
func Write(w io.Writer, m mat.Matrix, header []string) error {
	cw := csv.NewWriter(w)
	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	r, c := m.Dims()
	rec := make([]string, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			rec[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ColumnNames returns n generated names with the given prefix: prefix0, prefix1, ...
func ColumnNames(prefix string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = prefix + strconv.Itoa(i)
	}

	return names
}

func numeric(rec []string) bool {
	for _, f := range rec {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err != nil {
			return false
		}
	}

	return true
}

func trimAll(rec []string) []string {
	out := make([]string, len(rec))
	for i, f := range rec {
		out[i] = strings.TrimSpace(f)
	}

	return out
}
