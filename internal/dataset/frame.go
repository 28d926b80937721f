package dataset

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrColumnNotFound is returned when an operation names an absent column.
	ErrColumnNotFound = errors.New("column not found")
	// ErrLengthMismatch is returned when row or column lengths disagree.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrNotNumeric is returned when a numeric view hits a non-numeric cell.
	ErrNotNumeric = errors.New("value is not numeric")
)

// Frame is an immutable column-major table with a row index.
type Frame struct {
	names   []string
	columns map[string][]any
	index   []int
}

// New builds a frame from a header and row-major values. Row i gets index
// label i.
func New(columns []string, rows [][]any) (*Frame, error) {
	seen := make(map[string]bool, len(columns))
	for _, name := range columns {
		if name == "" {
			return nil, fmt.Errorf("empty column name")
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
	}

	f := &Frame{
		names:   append([]string(nil), columns...),
		columns: make(map[string][]any, len(columns)),
		index:   make([]int, len(rows)),
	}
	for _, name := range columns {
		f.columns[name] = make([]any, len(rows))
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), len(columns), ErrLengthMismatch)
		}
		for j, name := range columns {
			f.columns[name][i] = row[j]
		}
		f.index[i] = i
	}

	return f, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.index)
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.names...)
}

// Has reports whether the column exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.columns[name]
	return ok
}

// Column returns a copy of a column's cells.
func (f *Frame) Column(name string) ([]any, bool) {
	col, ok := f.columns[name]
	if !ok {
		return nil, false
	}
	return append([]any(nil), col...), true
}

// Index returns the row labels.
func (f *Frame) Index() []int {
	return append([]int(nil), f.index...)
}

// Value returns the cell at row position i in the named column.
func (f *Frame) Value(i int, name string) (any, error) {
	col, ok := f.columns[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrColumnNotFound)
	}
	if i < 0 || i >= len(col) {
		return nil, fmt.Errorf("row %d out of range [0,%d)", i, len(col))
	}
	return col[i], nil
}

// Row returns the cells of row position i keyed by column name.
func (f *Frame) Row(i int) (map[string]any, error) {
	if i < 0 || i >= f.Len() {
		return nil, fmt.Errorf("row %d out of range [0,%d)", i, f.Len())
	}
	row := make(map[string]any, len(f.names))
	for _, name := range f.names {
		row[name] = f.columns[name][i]
	}
	return row, nil
}

// Drop removes the named columns. Every name must exist.
func (f *Frame) Drop(names ...string) (*Frame, error) {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		if !f.Has(name) {
			return nil, fmt.Errorf("drop %q: %w", name, ErrColumnNotFound)
		}
		drop[name] = true
	}

	out := &Frame{
		columns: make(map[string][]any, len(f.names)-len(drop)),
		index:   f.Index(),
	}
	for _, name := range f.names {
		if drop[name] {
			continue
		}
		out.names = append(out.names, name)
		out.columns[name] = append([]any(nil), f.columns[name]...)
	}
	return out, nil
}

// Filter keeps the rows for which keep returns true.
func (f *Frame) Filter(keep func(row int) bool) *Frame {
	positions := make([]int, 0, f.Len())
	for i := 0; i < f.Len(); i++ {
		if keep(i) {
			positions = append(positions, i)
		}
	}
	return f.take(positions)
}

// DropMissing removes rows whose cell in the named column is missing.
func (f *Frame) DropMissing(name string) (*Frame, error) {
	col, ok := f.columns[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrColumnNotFound)
	}
	return f.Filter(func(i int) bool { return !IsMissing(col[i]) }), nil
}

// Take returns the rows at the given positions, in that order.
func (f *Frame) Take(positions []int) (*Frame, error) {
	for _, p := range positions {
		if p < 0 || p >= f.Len() {
			return nil, fmt.Errorf("row %d out of range [0,%d)", p, f.Len())
		}
	}
	return f.take(positions), nil
}

func (f *Frame) take(positions []int) *Frame {
	out := &Frame{
		names:   f.Columns(),
		columns: make(map[string][]any, len(f.names)),
		index:   make([]int, len(positions)),
	}
	for _, name := range f.names {
		src := f.columns[name]
		dst := make([]any, len(positions))
		for i, p := range positions {
			dst[i] = src[p]
		}
		out.columns[name] = dst
	}
	for i, p := range positions {
		out.index[i] = f.index[p]
	}
	return out
}

// WithColumn replaces the named column, or appends it when absent.
func (f *Frame) WithColumn(name string, values []any) (*Frame, error) {
	if name == "" {
		return nil, fmt.Errorf("empty column name")
	}
	if len(values) != f.Len() {
		return nil, fmt.Errorf("column %q has %d values, frame has %d rows: %w", name, len(values), f.Len(), ErrLengthMismatch)
	}

	out := &Frame{
		names:   f.Columns(),
		columns: make(map[string][]any, len(f.names)+1),
		index:   f.Index(),
	}
	for _, n := range f.names {
		out.columns[n] = f.columns[n]
	}
	if !f.Has(name) {
		out.names = append(out.names, name)
	}
	out.columns[name] = append([]any(nil), values...)
	return out, nil
}

// Map applies fn to every cell of the named column.
func (f *Frame) Map(name string, fn func(any) any) (*Frame, error) {
	col, ok := f.columns[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrColumnNotFound)
	}
	mapped := make([]any, len(col))
	for i, v := range col {
		mapped[i] = fn(v)
	}
	return f.WithColumn(name, mapped)
}

// Floats returns a numeric view of a column. Missing cells become NaN.
func (f *Frame) Floats(name string) ([]float64, error) {
	col, ok := f.columns[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrColumnNotFound)
	}
	out := make([]float64, len(col))
	for i, v := range col {
		if IsMissing(v) {
			out[i] = math.NaN()
			continue
		}
		x, ok := ToFloat(v)
		if !ok {
			return nil, fmt.Errorf("%q row %d (%T): %w", name, f.index[i], v, ErrNotNumeric)
		}
		out[i] = x
	}
	return out, nil
}
