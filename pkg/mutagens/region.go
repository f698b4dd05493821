package mutagens

import (
	"slices"

	"gooze.dev/pkg/tokfuzz/pkg/rands"
	"gooze.dev/pkg/tokfuzz/pkg/token"
)

// Region is the half-open span [Start, End) between an opening token and the
// first later token equal to its closer. Start is the opener itself; End is
// the closer's index and is not part of the span.
type Region struct {
	Start int
	End   int
}

// Len returns the number of tokens in the span.
func (rg Region) Len() int {
	return rg.End - rg.Start
}

// Empty reports whether the span holds no tokens. An opener that closes
// itself yields an empty region.
func (rg Region) Empty() bool {
	return rg.Start == rg.End
}

// RandRegion picks a uniformly random opener in tokens and returns the span
// up to its closer. It reports false when tokens contain no opener or the
// chosen opener is never closed.
func RandRegion[T token.Token[T]](r rands.Rand, tokens []T) (Region, bool) {
	var openers []int

	for i, tok := range tokens {
		if token.IsOpener(tok) {
			openers = append(openers, i)
		}
	}

	start, ok := rands.Choose(r, openers)
	if !ok {
		return Region{}, false
	}

	closer, _ := tokens[start].Closer()

	offset := slices.Index(tokens[start:], closer)
	if offset < 0 {
		return Region{}, false
	}

	return Region{Start: start, End: start + offset}, true
}
