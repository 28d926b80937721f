// Package dataset provides the in-memory table the domain preparation steps
// operate on.
//
// A Frame is column-major and immutable: every operation returns a new Frame
// and leaves the receiver untouched. Each row carries an index label that
// survives filtering and sampling, so callers can trace an output row back to
// the input row it came from.
//
// Cells are untyped (any). A cell is missing when it is nil or a NaN float.
//
// Boundary checks are declared with a Schema:
//
//	schema := dataset.Schema{
//		{Name: "domainAge", Kind: dataset.KindNumber},
//		{Name: "analystResult", Kind: dataset.KindString},
//	}
//	if err := schema.Validate(frame); err != nil {
//		return err // errors.Is(err, dataset.ErrSchemaMismatch)
//	}
package dataset
