package rands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStd_Deterministic(t *testing.T) {
	a := NewStd(42, 7)
	b := NewStd(42, 7)

	for range 32 {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestStd_Below(t *testing.T) {
	r := NewStd(1, 1)

	assert.Equal(t, uint64(0), r.Below(0))
	assert.Equal(t, uint64(0), r.Below(1))

	for range 1000 {
		v := r.Below(10)
		require.Less(t, v, uint64(10))
	}
}

func TestIndex(t *testing.T) {
	r := NewStd(3, 3)

	tests := []struct {
		name string
		n    int
		ok   bool
	}{
		{"zero", 0, false},
		{"negative", -4, false},
		{"one", 1, true},
		{"many", 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := Index(r, tt.n)
			assert.Equal(t, tt.ok, ok)

			if ok {
				assert.GreaterOrEqual(t, idx, 0)
				assert.Less(t, idx, tt.n)
			}
		})
	}
}

func TestChoose(t *testing.T) {
	r := NewStd(9, 9)

	_, ok := Choose(r, []string{})
	assert.False(t, ok)

	seen := map[string]bool{}
	items := []string{"a", "b", "c"}

	for range 200 {
		v, ok := Choose(r, items)
		require.True(t, ok)
		seen[v] = true
	}

	assert.Len(t, seen, len(items))
}
