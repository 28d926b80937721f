package balance

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/GriffinCanCode/domainprep/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// labeledFrame builds a frame with one row per label.
func labeledFrame(t *testing.T, labels ...any) *dataset.Frame {
	t.Helper()
	rows := make([][]any, len(labels))
	for i, l := range labels {
		rows[i] = []any{i, l}
	}
	f, err := dataset.New([]string{"domainAge", LabelColumn}, rows)
	require.NoError(t, err)
	return f
}

func labelsOf(t *testing.T, f *dataset.Frame) []any {
	t.Helper()
	col, ok := f.Column(LabelColumn)
	require.True(t, ok)
	return col
}

func TestBalanceEqualSizes(t *testing.T) {
	tests := []struct {
		name    string
		labels  []any
		perSide int
	}{
		{name: "majority valuable", labels: []any{1, 1, 0, 1, 1, 0, 1}, perSide: 2},
		{name: "already balanced", labels: []any{1, 0, 0, 1}, perSide: 2},
		{name: "no non-valuable", labels: []any{1, 1, 1}, perSide: 0},
		{name: "empty", labels: nil, perSide: 0},
		{name: "float labels", labels: []any{1.0, 0.0, 1.0}, perSide: 1},
		{name: "unmapped labels skipped", labels: []any{1, nil, 0, 1, nil}, perSide: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valuable, nonValuable, err := New(WithSeed(7)).Balance(labeledFrame(t, tt.labels...))
			require.NoError(t, err)

			assert.Equal(t, tt.perSide, valuable.Len())
			assert.Equal(t, valuable.Len(), nonValuable.Len())
			for _, v := range labelsOf(t, valuable) {
				l, _ := dataset.ToInt(v)
				assert.Equal(t, 1, l)
			}
			for _, v := range labelsOf(t, nonValuable) {
				l, _ := dataset.ToInt(v)
				assert.Equal(t, 0, l)
			}
		})
	}
}

func TestBalanceValuableRowsAreDistinctAndValuable(t *testing.T) {
	labels := make([]any, 0, 100)
	for i := 0; i < 80; i++ {
		labels = append(labels, 1)
	}
	for i := 0; i < 20; i++ {
		labels = append(labels, 0)
	}
	f := labeledFrame(t, labels...)

	valuable, nonValuable, err := New().Balance(f)
	require.NoError(t, err)
	require.Equal(t, 20, valuable.Len())

	seen := make(map[int]bool)
	for _, idx := range valuable.Index() {
		assert.Less(t, idx, 80)
		assert.False(t, seen[idx], "row %d sampled twice", idx)
		seen[idx] = true
	}

	want := make([]int, 20)
	for i := range want {
		want[i] = 80 + i
	}
	assert.Equal(t, want, nonValuable.Index())
}

func TestBalanceNonValuableStableAcrossRuns(t *testing.T) {
	f := labeledFrame(t, 1, 0, 1, 1, 0, 1, 1, 1, 0, 1, 1)

	_, first, err := New().Balance(f)
	require.NoError(t, err)
	_, second, err := New().Balance(f)
	require.NoError(t, err)

	assert.Equal(t, first.Index(), second.Index())
	assert.Equal(t, []int{1, 4, 8}, first.Index())
}

func TestBalanceSeededIsRepeatable(t *testing.T) {
	labels := make([]any, 0, 60)
	for i := 0; i < 50; i++ {
		labels = append(labels, 1)
	}
	for i := 0; i < 10; i++ {
		labels = append(labels, 0)
	}
	f := labeledFrame(t, labels...)

	a, _, err := New(WithSeed(42)).Balance(f)
	require.NoError(t, err)
	b, _, err := New(WithSource(rand.NewPCG(42, 42))).Balance(f)
	require.NoError(t, err)

	assert.Equal(t, a.Index(), b.Index())
}

func TestBalanceFullPermutation(t *testing.T) {
	f := labeledFrame(t, 1, 1, 1, 1, 0, 0, 0, 0)

	valuable, _, err := New(WithSeed(3)).Balance(f)
	require.NoError(t, err)

	idx := valuable.Index()
	sort.Ints(idx)
	assert.Equal(t, []int{0, 1, 2, 3}, idx)
}

func TestBalanceMinorityValuable(t *testing.T) {
	f := labeledFrame(t, 1, 0, 0, 0)

	valuable, nonValuable, err := New().Balance(f)
	require.ErrorIs(t, err, ErrClassSizeMismatch)
	assert.Nil(t, valuable)
	assert.Nil(t, nonValuable)
	assert.Contains(t, err.Error(), "1 valuable rows cannot cover 3 non-valuable rows")
}

func TestBalanceSchemaErrors(t *testing.T) {
	t.Run("missing label column", func(t *testing.T) {
		f, err := dataset.New([]string{"domainAge"}, [][]any{{1}})
		require.NoError(t, err)

		_, _, err = New().Balance(f)
		assert.ErrorIs(t, err, dataset.ErrSchemaMismatch)
	})

	t.Run("raw string labels", func(t *testing.T) {
		_, _, err := New().Balance(labeledFrame(t, "TRUE", "FALSE"))
		assert.ErrorIs(t, err, dataset.ErrSchemaMismatch)
	})

	t.Run("nil frame", func(t *testing.T) {
		_, _, err := New().Balance(nil)
		assert.ErrorIs(t, err, dataset.ErrSchemaMismatch)
	})
}

func TestBalanceDoesNotMutateInput(t *testing.T) {
	f := labeledFrame(t, 1, 1, 0)

	_, _, err := New().Balance(f)
	require.NoError(t, err)

	assert.Equal(t, 3, f.Len())
	assert.Equal(t, []int{0, 1, 2}, f.Index())
}
