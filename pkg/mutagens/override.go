package mutagens

import "gooze.dev/pkg/tokfuzz/pkg/token"

// Override replaces a run of consecutive tokens with fresh random tokens.
// Both ends of the run are drawn below the current length.
type Override[T token.Token[T]] struct {
	gen token.Generator[T]
}

// NewOverride creates an Override.
func NewOverride[T token.Token[T]](gen token.Generator[T]) *Override[T] {
	return &Override[T]{gen: gen}
}

// Name implements Mutator.
func (m *Override[T]) Name() string { return "TokenOverrideMutator" }

// Mutate implements Mutator.
func (m *Override[T]) Mutate(state State[T], input *token.Input[T]) (Result, error) {
	r := state.Rand()

	lo, hi, ok := twoIndices(r, input.Len())
	if !ok {
		return Skipped, nil
	}

	tokens := input.Tokens()
	for i := lo; i < hi; i++ {
		tokens[i] = m.gen.NewRand(r)
	}

	return Mutated, nil
}

// SimilarOverride replaces a run of consecutive tokens with similar ones.
type SimilarOverride[T token.Token[T]] struct {
	gen token.Generator[T]
}

// NewSimilarOverride creates a SimilarOverride.
func NewSimilarOverride[T token.Token[T]](gen token.Generator[T]) *SimilarOverride[T] {
	return &SimilarOverride[T]{gen: gen}
}

// Name implements Mutator.
func (m *SimilarOverride[T]) Name() string { return "TokenSimilarOverrideMutator" }

// Mutate implements Mutator.
func (m *SimilarOverride[T]) Mutate(state State[T], input *token.Input[T]) (Result, error) {
	r := state.Rand()

	lo, hi, ok := twoIndices(r, input.Len())
	if !ok {
		return Skipped, nil
	}

	tokens := input.Tokens()
	for i := lo; i < hi; i++ {
		tokens[i] = token.Similar(m.gen, r, tokens[i])
	}

	return Mutated, nil
}
