package pkg

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Iteration int
	Mutators  []string
	Output    string
}

func newSpill[T any](t *testing.T) FileSpill[T] {
	t.Helper()

	spill, err := NewFileSpill[T](t.TempDir())
	require.NoError(t, err)

	t.Cleanup(func() { _ = spill.Close() })

	return spill
}

func TestFileSpill_AppendAndGet(t *testing.T) {
	spill := newSpill[record](t)

	first := record{Iteration: 0, Mutators: []string{"TokenDeleteMutator"}, Output: "aa"}
	second := record{Iteration: 1, Output: "bb"}

	require.NoError(t, spill.Append(first))
	require.NoError(t, spill.Append(second))
	assert.Equal(t, uint64(2), spill.Len())

	got, err := spill.Get(0)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	got, err = spill.Get(1)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	_, err = spill.Get(2)
	assert.ErrorIs(t, err, ErrSpillIndex)
}

func TestFileSpill_DefaultDir(t *testing.T) {
	spill, err := NewFileSpill[int]("")
	require.NoError(t, err)

	defer spill.Close()

	assert.Equal(t, "tokfuzz-spill", filepath.Base(filepath.Dir(spill.Path())))
}

func TestFileSpill_AppendBatchAndRange(t *testing.T) {
	spill := newSpill[int](t)

	require.NoError(t, spill.AppendBatch([]int{10, 20, 30}))
	require.NoError(t, spill.Append(40))

	var (
		indexes []uint64
		values  []int
	)

	err := spill.Range(func(index uint64, v int) error {
		indexes = append(indexes, index)
		values = append(values, v)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1, 2, 3}, indexes)
	assert.Equal(t, []int{10, 20, 30, 40}, values)
}

func TestFileSpill_RangeStops(t *testing.T) {
	spill := newSpill[int](t)
	require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))

	stop := errors.New("stop")
	calls := 0

	err := spill.Range(func(index uint64, _ int) error {
		calls++
		if index == 1 {
			return stop
		}

		return nil
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, calls)
}

func TestFileSpill_Empty(t *testing.T) {
	spill := newSpill[string](t)

	calls := 0
	require.NoError(t, spill.Range(func(uint64, string) error {
		calls++
		return nil
	}))
	assert.Zero(t, calls)

	_, err := spill.Get(0)
	assert.ErrorIs(t, err, ErrSpillIndex)
}

func TestFileSpill_Close(t *testing.T) {
	spill, err := NewFileSpill[string](t.TempDir())
	require.NoError(t, err)

	require.NoError(t, spill.Append("kept"))
	require.NoError(t, spill.Close())
	require.NoError(t, spill.Close())

	assert.ErrorIs(t, spill.Append("late"), ErrSpillClosed)

	got, err := spill.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "kept", got)
}

func BenchmarkFileSpill_Append(b *testing.B) {
	spill, err := NewFileSpill[record](b.TempDir())
	if err != nil {
		b.Fatalf("create spill: %v", err)
	}
	defer spill.Close()

	rec := record{Mutators: []string{"TokenInsertMutator", "TokenSpliceRegionMutator"}, Output: "0123456789abcdef"}

	for i := 0; b.Loop(); i++ {
		rec.Iteration = i
		_ = spill.Append(rec)
	}
}

func BenchmarkFileSpill_Range(b *testing.B) {
	spill, err := NewFileSpill[int](b.TempDir())
	if err != nil {
		b.Fatalf("create spill: %v", err)
	}
	defer spill.Close()

	for i := range 1000 {
		_ = spill.Append(i)
	}

	for b.Loop() {
		_ = spill.Range(func(uint64, int) error { return nil })
	}
}
