// Package lexers provides a generic, dialect-driven lexer for programming
// and configuration languages. Its tokens pair opening and closing
// delimiters so the mutation operators can work on bracketed regions.
package lexers

import "fmt"

// Kind classifies a lexed token.
type Kind uint8

const (
	// KindSpace is a run of whitespace.
	KindSpace Kind = iota
	// KindComment is a line comment without its trailing newline.
	KindComment
	// KindIdent is an identifier that is not a keyword.
	KindIdent
	// KindKeyword is an identifier listed as a dialect keyword.
	KindKeyword
	// KindNumber is a numeric literal.
	KindNumber
	// KindString is a quoted literal including its quotes.
	KindString
	// KindOpen is an opening delimiter.
	KindOpen
	// KindClose is a closing delimiter.
	KindClose
	// KindPunct is an operator or separator.
	KindPunct
	// KindRaw is a single byte no other rule matched.
	KindRaw
)

var kindNames = [...]string{
	KindSpace:   "space",
	KindComment: "comment",
	KindIdent:   "ident",
	KindKeyword: "keyword",
	KindNumber:  "number",
	KindString:  "string",
	KindOpen:    "open",
	KindClose:   "close",
	KindPunct:   "punct",
	KindRaw:     "raw",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", k)
}

// Token is one lexeme. Pair holds the closing text for openers and is empty
// for every other kind.
type Token struct {
	Kind Kind   `msgpack:"k"`
	Text string `msgpack:"t"`
	Pair string `msgpack:"p,omitempty"`
}

// Bytes returns the token's source bytes.
func (t Token) Bytes() []byte {
	return []byte(t.Text)
}

// Closer returns the token that closes t. A delimiter whose opening and
// closing text are the same closes itself.
func (t Token) Closer() (Token, bool) {
	if t.Kind != KindOpen || t.Pair == "" {
		return Token{}, false
	}

	if t.Pair == t.Text {
		return t, true
	}

	return Token{Kind: KindClose, Text: t.Pair}, true
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}
