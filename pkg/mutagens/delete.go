package mutagens

import (
	"gooze.dev/pkg/tokfuzz/pkg/rands"
	"gooze.dev/pkg/tokfuzz/pkg/token"
)

// Delete removes a single token.
type Delete[T token.Token[T]] struct{}

// NewDelete creates a Delete.
func NewDelete[T token.Token[T]]() *Delete[T] {
	return &Delete[T]{}
}

// Name implements Mutator.
func (m *Delete[T]) Name() string { return "TokenDeleteMutator" }

// Mutate implements Mutator.
func (m *Delete[T]) Mutate(state State[T], input *token.Input[T]) (Result, error) {
	idx, ok := rands.Index(state.Rand(), input.Len())
	if !ok {
		return Skipped, nil
	}

	input.Remove(idx)

	return Mutated, nil
}

// DeleteMany removes a random run of consecutive tokens and closes the gap.
type DeleteMany[T token.Token[T]] struct{}

// NewDeleteMany creates a DeleteMany.
func NewDeleteMany[T token.Token[T]]() *DeleteMany[T] {
	return &DeleteMany[T]{}
}

// Name implements Mutator.
func (m *DeleteMany[T]) Name() string { return "TokenDeleteManyMutator" }

// Mutate implements Mutator.
func (m *DeleteMany[T]) Mutate(state State[T], input *token.Input[T]) (Result, error) {
	lo, hi, ok := twoIndices(state.Rand(), input.Len())
	if !ok {
		return Skipped, nil
	}

	input.RemoveRange(lo, hi)

	return Mutated, nil
}

// DeleteRegion removes a random region and closes the gap. The closing
// token stays in place.
type DeleteRegion[T token.Token[T]] struct{}

// NewDeleteRegion creates a DeleteRegion.
func NewDeleteRegion[T token.Token[T]]() *DeleteRegion[T] {
	return &DeleteRegion[T]{}
}

// Name implements Mutator.
func (m *DeleteRegion[T]) Name() string { return "TokenDeleteRegionMutator" }

// Mutate implements Mutator.
func (m *DeleteRegion[T]) Mutate(state State[T], input *token.Input[T]) (Result, error) {
	region, ok := RandRegion(state.Rand(), input.Tokens())
	if !ok {
		return Skipped, nil
	}

	input.RemoveRange(region.Start, region.End)

	return Mutated, nil
}
