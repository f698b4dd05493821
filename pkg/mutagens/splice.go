package mutagens

import (
	"fmt"
	"slices"

	"gooze.dev/pkg/tokfuzz/pkg/token"
)

// SpliceRegion replaces the contents of a random region with the contents of
// a random region taken from another corpus entry.
type SpliceRegion[T token.Token[T]] struct{}

// NewSpliceRegion creates a SpliceRegion.
func NewSpliceRegion[T token.Token[T]]() *SpliceRegion[T] {
	return &SpliceRegion[T]{}
}

// Name implements Mutator.
func (m *SpliceRegion[T]) Name() string { return "TokenSpliceRegionMutator" }

// Mutate implements Mutator.
//
// The donor entry is only borrowed while its region is copied out; the local
// input is changed after the borrow ends.
func (m *SpliceRegion[T]) Mutate(state State[T], input *token.Input[T]) (Result, error) {
	corpus := state.Corpus()
	if corpus == nil {
		return Skipped, nil
	}

	r := state.Rand()
	current, hasCurrent := state.CurrentID()

	id, ok := RandomCorpusID(corpus, r, current, hasCurrent)
	if !ok {
		return Skipped, nil
	}

	region, ok := RandRegion(r, input.Tokens())
	if !ok {
		return Skipped, nil
	}

	var (
		donor []T
		found bool
	)

	err := corpus.WithInput(id, func(other *token.Input[T]) error {
		otherRegion, ok := RandRegion(r, other.Tokens())
		if !ok {
			return nil
		}

		donor = slices.Clone(other.Tokens()[otherRegion.Start:otherRegion.End])
		found = true

		return nil
	})
	if err != nil {
		return Skipped, fmt.Errorf("splice: load corpus entry %d: %w", id, err)
	}

	if !found {
		return Skipped, nil
	}

	if limit := state.MaxSize(); limit > 0 && input.Len()-region.Len()+len(donor) > limit {
		return Skipped, nil
	}

	input.ReplaceRange(region.Start, region.End, donor...)

	return Mutated, nil
}
