// Package model defines the plain data passed between the tokfuzz layers.
package model

// Path represents a file system path.
type Path string

// Entry describes one corpus file and its token form.
type Entry struct {
	ID      int
	Path    Path
	Name    string
	Bytes   int
	Tokens  int
	Openers int
	// Cached is true when the token form came from a token cache file.
	Cached bool
}

// TokenRow is one line of a token listing.
type TokenRow struct {
	Index int
	Kind  string
	Text  string
	Pair  string
	Depth int
}

// LexStats summarises how a file lexed.
type LexStats struct {
	Tokens  int
	Openers int
	// Unclosed counts openers whose closer never appears.
	Unclosed int
	// Lossless reports whether lowering reproduced the input bytes.
	Lossless bool
	// Stable reports whether lexing the lowered bytes again produced the
	// same tokens.
	Stable bool
	Name   string
}
