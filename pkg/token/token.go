// Package token defines the token and lexer capabilities of the structure
// aware mutation core and the Input container that holds a lexed testcase.
//
// A grammar is plugged in by providing a token type T that satisfies Token[T]
// plus a Grammar[T] value that can lex bytes into T and generate random T.
package token

import "gooze.dev/pkg/tokfuzz/pkg/rands"

// Token is the unit of structure. Tokens are compared with ==, so T must be
// comparable; two tokens are the same token exactly when they are equal.
type Token[T any] interface {
	comparable

	// Bytes returns the raw encoding of the token.
	Bytes() []byte

	// Closer returns the value of the token that closes a span opened by
	// this token. The closer of '(' is ')'. Tokens that open nothing
	// return false.
	Closer() (T, bool)
}

// Lexer maps raw bytes to tokens. Lex must never panic and never fail:
// spans it cannot interpret are skipped or kept as opaque tokens.
type Lexer[T Token[T]] interface {
	Lex(src []byte) []T
}

// Generator creates fresh random tokens.
type Generator[T Token[T]] interface {
	NewRand(r rands.Rand) T
}

// SimilarGenerator is implemented by generators that know how to replace a
// token with a semantically close one (a keyword with a near-synonym, a
// number with another boundary value, ...).
type SimilarGenerator[T Token[T]] interface {
	Generator[T]
	Similar(r rands.Rand, tok T) T
}

// Grammar bundles everything an embedder supplies for one token type.
type Grammar[T Token[T]] interface {
	Lexer[T]
	Generator[T]
}

// Similar returns a token similar to tok. Generators without a notion of
// similarity fall back to an unrelated fresh random token.
func Similar[T Token[T]](gen Generator[T], r rands.Rand, tok T) T {
	if sg, ok := gen.(SimilarGenerator[T]); ok {
		return sg.Similar(r, tok)
	}

	return gen.NewRand(r)
}

// IsOpener reports whether tok exposes a closing counterpart.
func IsOpener[T Token[T]](tok T) bool {
	_, ok := tok.Closer()
	return ok
}
