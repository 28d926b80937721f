package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSchemaMismatch is matched by every *SchemaError.
var ErrSchemaMismatch = errors.New("schema mismatch")

// Kind is the declared type of a column's non-missing cells.
type Kind int

const (
	// KindAny accepts any cell.
	KindAny Kind = iota
	// KindString requires string cells.
	KindString
	// KindNumber requires numeric cells.
	KindNumber
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return "any"
	}
}

func (k Kind) accepts(v any) bool {
	switch k {
	case KindString:
		_, ok := v.(string)
		return ok
	case KindNumber:
		_, ok := ToFloat(v)
		return ok
	default:
		return true
	}
}

// Field declares one required column.
type Field struct {
	Name string
	Kind Kind
}

// Schema is the set of columns a frame must carry.
type Schema []Field

// Names returns the declared column names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Mismatch describes a column whose cells do not match the declared kind.
type Mismatch struct {
	Column string
	Want   Kind
	Row    int // index label of the first offending row
	Got    string
}

// SchemaError lists every problem found at the boundary.
type SchemaError struct {
	Missing    []string
	Mismatched []Mismatch
}

func (e *SchemaError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing columns [%s]", strings.Join(e.Missing, ", ")))
	}
	for _, m := range e.Mismatched {
		parts = append(parts, fmt.Sprintf("column %q row %d: want %s, got %s", m.Column, m.Row, m.Want, m.Got))
	}
	return "schema mismatch: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrSchemaMismatch) hold.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// Validate checks that f has every declared column and that non-missing cells
// match their kind. Missing cells are always accepted.
func (s Schema) Validate(f *Frame) error {
	if f == nil {
		return &SchemaError{Missing: s.Names()}
	}

	var serr SchemaError
	for _, field := range s {
		col, ok := f.columns[field.Name]
		if !ok {
			serr.Missing = append(serr.Missing, field.Name)
			continue
		}
		for i, v := range col {
			if IsMissing(v) || field.Kind.accepts(v) {
				continue
			}
			serr.Mismatched = append(serr.Mismatched, Mismatch{
				Column: field.Name,
				Want:   field.Kind,
				Row:    f.index[i],
				Got:    fmt.Sprintf("%T", v),
			})
			break
		}
	}

	if len(serr.Missing) == 0 && len(serr.Mismatched) == 0 {
		return nil
	}
	return &serr
}
