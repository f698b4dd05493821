package mutagens

import (
	"gooze.dev/pkg/tokfuzz/pkg/rands"
	"gooze.dev/pkg/tokfuzz/pkg/token"
)

// RandReplace replaces one token with a fresh random token.
type RandReplace[T token.Token[T]] struct {
	gen token.Generator[T]
}

// NewRandReplace creates a RandReplace.
func NewRandReplace[T token.Token[T]](gen token.Generator[T]) *RandReplace[T] {
	return &RandReplace[T]{gen: gen}
}

// Name implements Mutator.
func (m *RandReplace[T]) Name() string { return "TokenRandMutator" }

// Mutate implements Mutator.
func (m *RandReplace[T]) Mutate(state State[T], input *token.Input[T]) (Result, error) {
	r := state.Rand()

	idx, ok := rands.Index(r, input.Len())
	if !ok {
		return Skipped, nil
	}

	input.Set(idx, m.gen.NewRand(r))

	return Mutated, nil
}

// SimilarReplace replaces one token with a similar one, as defined by the
// generator.
type SimilarReplace[T token.Token[T]] struct {
	gen token.Generator[T]
}

// NewSimilarReplace creates a SimilarReplace.
func NewSimilarReplace[T token.Token[T]](gen token.Generator[T]) *SimilarReplace[T] {
	return &SimilarReplace[T]{gen: gen}
}

// Name implements Mutator.
func (m *SimilarReplace[T]) Name() string { return "TokenRandSimilarMutator" }

// Mutate implements Mutator.
func (m *SimilarReplace[T]) Mutate(state State[T], input *token.Input[T]) (Result, error) {
	r := state.Rand()

	idx, ok := rands.Index(r, input.Len())
	if !ok {
		return Skipped, nil
	}

	input.Set(idx, token.Similar(m.gen, r, input.Tokens()[idx]))

	return Mutated, nil
}

// RegionSimilarReplace replaces every token of a random region with a
// similar one.
type RegionSimilarReplace[T token.Token[T]] struct {
	gen token.Generator[T]
}

// NewRegionSimilarReplace creates a RegionSimilarReplace.
func NewRegionSimilarReplace[T token.Token[T]](gen token.Generator[T]) *RegionSimilarReplace[T] {
	return &RegionSimilarReplace[T]{gen: gen}
}

// Name implements Mutator.
func (m *RegionSimilarReplace[T]) Name() string { return "TokenReplaceRegionSimilarMutator" }

// Mutate implements Mutator.
func (m *RegionSimilarReplace[T]) Mutate(state State[T], input *token.Input[T]) (Result, error) {
	r := state.Rand()

	region, ok := RandRegion(r, input.Tokens())
	if !ok {
		return Skipped, nil
	}

	tokens := input.Tokens()
	for i := region.Start; i < region.End; i++ {
		tokens[i] = token.Similar(m.gen, r, tokens[i])
	}

	return Mutated, nil
}

// RegionRandReplace replaces every token of a random region with a fresh
// random token.
type RegionRandReplace[T token.Token[T]] struct {
	gen token.Generator[T]
}

// NewRegionRandReplace creates a RegionRandReplace.
func NewRegionRandReplace[T token.Token[T]](gen token.Generator[T]) *RegionRandReplace[T] {
	return &RegionRandReplace[T]{gen: gen}
}

// Name implements Mutator.
func (m *RegionRandReplace[T]) Name() string { return "TokenReplaceRegionRandMutator" }

// Mutate implements Mutator.
func (m *RegionRandReplace[T]) Mutate(state State[T], input *token.Input[T]) (Result, error) {
	r := state.Rand()

	region, ok := RandRegion(r, input.Tokens())
	if !ok {
		return Skipped, nil
	}

	tokens := input.Tokens()
	for i := region.Start; i < region.End; i++ {
		tokens[i] = m.gen.NewRand(r)
	}

	return Mutated, nil
}
