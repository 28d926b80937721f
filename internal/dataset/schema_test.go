package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidate(t *testing.T) {
	f, err := New([]string{"label", "age", "extra"}, [][]any{
		{"TRUE", 3, true},
		{nil, nil, "x"},
	})
	require.NoError(t, err)

	schema := Schema{
		{Name: "label", Kind: KindString},
		{Name: "age", Kind: KindNumber},
		{Name: "extra", Kind: KindAny},
	}
	assert.NoError(t, schema.Validate(f))
}

func TestSchemaValidateReportsEverything(t *testing.T) {
	f, err := New([]string{"label", "age"}, [][]any{
		{"TRUE", 3},
		{true, "old"},
	})
	require.NoError(t, err)

	schema := Schema{
		{Name: "label", Kind: KindString},
		{Name: "age", Kind: KindNumber},
		{Name: "country", Kind: KindAny},
		{Name: "status", Kind: KindAny},
	}

	err = schema.Validate(f)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)

	var serr *SchemaError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, []string{"country", "status"}, serr.Missing)
	require.Len(t, serr.Mismatched, 2)
	assert.Equal(t, Mismatch{Column: "label", Want: KindString, Row: 1, Got: "bool"}, serr.Mismatched[0])
	assert.Equal(t, Mismatch{Column: "age", Want: KindNumber, Row: 1, Got: "string"}, serr.Mismatched[1])

	assert.Contains(t, err.Error(), "missing columns [country, status]")
	assert.Contains(t, err.Error(), `column "age" row 1: want number, got string`)
}

func TestSchemaValidateNilFrame(t *testing.T) {
	schema := Schema{{Name: "a"}, {Name: "b"}}

	err := schema.Validate(nil)
	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, []string{"a", "b"}, serr.Missing)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "any", KindAny.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "number", KindNumber.String())
}
