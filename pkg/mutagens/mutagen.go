// Package mutagens contains the structure-aware mutation operators that
// rewrite a token.Input while respecting paired delimiters.
//
// Every operator is a Mutator. A Mutator reports Skipped when it found
// nothing to act on and only returns an error when a capability it depends
// on (the corpus) failed.
package mutagens

import (
	"gooze.dev/pkg/tokfuzz/pkg/rands"
	"gooze.dev/pkg/tokfuzz/pkg/token"
)

// MaxInsert bounds how many tokens a single insertion adds.
const MaxInsert = 64

// Result is the outcome of a mutation attempt.
type Result int

const (
	// Mutated indicates the operator changed the input.
	Mutated Result = iota
	// Skipped indicates nothing was applicable; the input is unchanged.
	Skipped
)

func (r Result) String() string {
	switch r {
	case Mutated:
		return "mutated"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// CorpusID identifies a corpus entry.
type CorpusID int

// IDSource enumerates corpus identifiers.
type IDSource interface {
	// Count returns the number of entries.
	Count() int
	// NthID returns the identifier at position n in [0, Count()).
	NthID(n int) CorpusID
}

// Corpus gives scoped access to stored entries in token form.
type Corpus[T token.Token[T]] interface {
	IDSource

	// WithInput materialises the entry's token form (lexing on demand) and
	// calls fn with exclusive access to it. The input must not be retained
	// after fn returns.
	WithInput(id CorpusID, fn func(in *token.Input[T]) error) error
}

// State is the fuzzer state a mutator may consult.
type State[T token.Token[T]] interface {
	Rand() rands.Rand
	Corpus() Corpus[T]
	// MaxSize is the maximum input length in tokens; 0 disables the limit.
	MaxSize() int
	// CurrentID returns the entry the input being mutated was taken from.
	CurrentID() (CorpusID, bool)
}

// Mutator is one mutation operator.
type Mutator[T token.Token[T]] interface {
	Name() string
	Mutate(state State[T], input *token.Input[T]) (Result, error)
}

// RandomCorpusID draws a uniform identifier. When hasExclude is set, exclude
// is never returned. It reports false when no eligible entry exists.
func RandomCorpusID(ids IDSource, r rands.Rand, exclude CorpusID, hasExclude bool) (CorpusID, bool) {
	count := ids.Count()
	if !hasExclude {
		n, ok := rands.Index(r, count)
		if !ok {
			return 0, false
		}

		return ids.NthID(n), true
	}

	if count < 2 {
		return 0, false
	}

	n, ok := rands.Index(r, count-1)
	if !ok {
		return 0, false
	}

	id := ids.NthID(n)
	if id == exclude {
		id = ids.NthID(count - 1)
	}

	return id, true
}

// All returns one instance of every operator, wired to gen.
func All[T token.Token[T]](gen token.Generator[T]) []Mutator[T] {
	return []Mutator[T]{
		NewRandReplace(gen),
		NewDelete[T](),
		NewSimilarReplace(gen),
		NewRegionSimilarReplace(gen),
		NewRegionRandReplace(gen),
		NewOverride(gen),
		NewSimilarOverride(gen),
		NewDeleteMany[T](),
		NewDeleteRegion[T](),
		NewInsert(gen),
		NewSpliceRegion[T](),
	}
}

// Names returns the names of mutators in order.
func Names[T token.Token[T]](mutators []Mutator[T]) []string {
	names := make([]string, 0, len(mutators))
	for _, m := range mutators {
		names = append(names, m.Name())
	}

	return names
}

// twoIndices draws two indices in [0, n) and returns them ordered.
func twoIndices(r rands.Rand, n int) (int, int, bool) {
	a, ok := rands.Index(r, n)
	if !ok {
		return 0, 0, false
	}

	b, _ := rands.Index(r, n)

	return min(a, b), max(a, b), true
}
