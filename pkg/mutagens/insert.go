package mutagens

import (
	"gooze.dev/pkg/tokfuzz/pkg/rands"
	"gooze.dev/pkg/tokfuzz/pkg/token"
)

// Insert splices a run of fresh random tokens in at a random position.
type Insert[T token.Token[T]] struct {
	gen token.Generator[T]
}

// NewInsert creates an Insert.
func NewInsert[T token.Token[T]](gen token.Generator[T]) *Insert[T] {
	return &Insert[T]{gen: gen}
}

// Name implements Mutator.
func (m *Insert[T]) Name() string { return "TokenInsertMutator" }

// Mutate implements Mutator.
func (m *Insert[T]) Mutate(state State[T], input *token.Input[T]) (Result, error) {
	r := state.Rand()

	idx, ok := rands.Index(r, input.Len())
	if !ok {
		return Skipped, nil
	}

	count, _ := rands.Index(r, MaxInsert)

	if limit := state.MaxSize(); limit > 0 {
		count = min(count, limit-input.Len())
	}

	if count <= 0 {
		return Skipped, nil
	}

	fresh := make([]T, count)
	for i := range fresh {
		fresh[i] = m.gen.NewRand(r)
	}

	input.InsertAt(idx, fresh...)

	return Mutated, nil
}
