package lexers

import (
	"bytes"
	"cmp"
	"slices"
	"strconv"
	"strings"

	"gooze.dev/pkg/tokfuzz/pkg/rands"
	"gooze.dev/pkg/tokfuzz/pkg/token"
)

var (
	_ token.Grammar[Token]          = (*Lexer)(nil)
	_ token.SimilarGenerator[Token] = (*Lexer)(nil)
)

var interestingNumbers = []string{
	"0", "1", "2", "7", "8", "16", "32", "64", "100", "127", "128", "255", "256",
	"1000", "1024", "4096", "32767", "32768", "65535", "65536",
	"2147483647", "2147483648", "4294967295", "4294967296",
	"9223372036854775807", "18446744073709551615",
	"0x7f", "0xff", "0xffffffff", "1e308", "1e-308", "0.5", "3.14",
}

var spaces = []string{" ", "  ", "\t", "\n", "\r\n"}

var fillers = []string{"", "A", strings.Repeat("A", 64), "%s%s%n", "\\n", "\\u0000", "'\""}

type delim struct {
	raw  []byte
	kind Kind
	pair string
}

// Lexer lexes and generates tokens for one Dialect. It is safe for
// concurrent use once constructed.
type Lexer struct {
	dialect  Dialect
	comments [][]byte
	delims   []delim
	keywords map[string]bool
	quotes   [256]bool
	synonyms map[string][]string
	pools    map[Kind][]Token
	kinds    []Kind
}

// NewLexer compiles d into a Lexer.
func NewLexer(d Dialect) (*Lexer, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	l := &Lexer{
		dialect:  d,
		keywords: make(map[string]bool, len(d.Keywords)),
		synonyms: make(map[string][]string),
		pools:    make(map[Kind][]Token),
	}

	for _, c := range d.LineComments {
		l.comments = append(l.comments, []byte(c))
	}

	slices.SortStableFunc(l.comments, func(a, b []byte) int { return cmp.Compare(len(b), len(a)) })

	for _, q := range d.Quotes {
		l.quotes[q[0]] = true
	}

	for _, kw := range d.Keywords {
		l.keywords[kw] = true
	}

	l.compileDelims()
	l.compileSynonyms()
	l.compilePools()

	return l, nil
}

// Default returns a Lexer for DefaultDialect.
func Default() *Lexer {
	l, err := NewLexer(DefaultDialect())
	if err != nil {
		panic(err)
	}

	return l
}

// Dialect returns the dialect the lexer was built from.
func (l *Lexer) Dialect() Dialect {
	return l.dialect
}

func (l *Lexer) compileDelims() {
	seen := make(map[string]bool)

	add := func(text string, kind Kind, pair string) {
		if seen[text] {
			return
		}

		seen[text] = true
		l.delims = append(l.delims, delim{raw: []byte(text), kind: kind, pair: pair})
	}

	// Brackets shadow punctuation with the same text.
	for _, b := range l.dialect.Brackets {
		add(b.Open, KindOpen, b.Close)
	}

	for _, b := range l.dialect.Brackets {
		if b.Open != b.Close {
			add(b.Close, KindClose, "")
		}
	}

	for _, p := range l.dialect.Punctuation {
		add(p, KindPunct, "")
	}

	slices.SortStableFunc(l.delims, func(a, b delim) int { return cmp.Compare(len(b.raw), len(a.raw)) })
}

func (l *Lexer) compileSynonyms() {
	for _, group := range l.dialect.Synonyms {
		for _, text := range group {
			for _, other := range group {
				if other != text && !slices.Contains(l.synonyms[text], other) {
					l.synonyms[text] = append(l.synonyms[text], other)
				}
			}
		}
	}
}

func (l *Lexer) compilePools() {
	for _, kw := range l.dialect.Keywords {
		l.pools[KindKeyword] = append(l.pools[KindKeyword], Token{Kind: KindKeyword, Text: kw})
	}

	for _, id := range l.dialect.Idents {
		l.pools[KindIdent] = append(l.pools[KindIdent], Token{Kind: KindIdent, Text: id})
	}

	for _, d := range l.delims {
		l.pools[d.kind] = append(l.pools[d.kind], Token{Kind: d.kind, Text: string(d.raw), Pair: d.pair})
	}

	for _, n := range interestingNumbers {
		l.pools[KindNumber] = append(l.pools[KindNumber], Token{Kind: KindNumber, Text: n})
	}

	for _, s := range spaces {
		l.pools[KindSpace] = append(l.pools[KindSpace], Token{Kind: KindSpace, Text: s})
	}

	for _, q := range l.dialect.Quotes {
		for _, f := range fillers {
			l.pools[KindString] = append(l.pools[KindString], Token{Kind: KindString, Text: q + f + q})
		}
	}

	for k := range Kind(len(kindNames)) {
		if len(l.pools[k]) > 0 {
			l.kinds = append(l.kinds, k)
		}
	}
}

// Lex splits src into tokens. Lexing is lossless: concatenating the bytes of
// the result yields src.
func (l *Lexer) Lex(src []byte) []Token {
	var out []Token

	for pos := 0; pos < len(src); {
		n, tok := l.next(src[pos:])
		out = append(out, tok)
		pos += n
	}

	return out
}

func (l *Lexer) next(src []byte) (int, Token) {
	c := src[0]

	if isSpace(c) {
		n := span(src, isSpace)
		return n, Token{Kind: KindSpace, Text: string(src[:n])}
	}

	for _, prefix := range l.comments {
		if bytes.HasPrefix(src, prefix) {
			n := bytes.IndexByte(src, '\n')
			if n < 0 {
				n = len(src)
			}

			return n, Token{Kind: KindComment, Text: string(src[:n])}
		}
	}

	if l.quotes[c] {
		n := scanQuoted(src)
		return n, Token{Kind: KindString, Text: string(src[:n])}
	}

	for _, d := range l.delims {
		if !bytes.HasPrefix(src, d.raw) {
			continue
		}

		// A word-like delimiter must not cut an identifier in half.
		n := len(d.raw)
		if isIdent(d.raw[n-1]) && n < len(src) && isIdent(src[n]) {
			continue
		}

		return n, Token{Kind: d.kind, Text: string(d.raw), Pair: d.pair}
	}

	if isDigit(c) {
		n := span(src, isNumber)
		return n, Token{Kind: KindNumber, Text: string(src[:n])}
	}

	if isIdent(c) {
		n := span(src, isIdent)
		text := string(src[:n])

		if l.keywords[text] {
			return n, Token{Kind: KindKeyword, Text: text}
		}

		return n, Token{Kind: KindIdent, Text: text}
	}

	return 1, Token{Kind: KindRaw, Text: string(src[:1])}
}

// NewRand returns a token drawn from the dialect's vocabulary and a set of
// boundary values.
func (l *Lexer) NewRand(r rands.Rand) Token {
	kind, _ := rands.Choose(r, l.kinds)
	tok, _ := rands.Choose(r, l.pools[kind])

	return tok
}

// Similar returns a variant of tok: a synonym when the dialect lists one, a
// nearby value for numbers, or another token of the same kind.
func (l *Lexer) Similar(r rands.Rand, tok Token) Token {
	if group, ok := l.synonyms[tok.Text]; ok && tok.Kind != KindString && tok.Kind != KindComment {
		alt, _ := rands.Choose(r, group)
		return l.classify(alt, tok.Kind)
	}

	switch tok.Kind {
	case KindNumber:
		return Token{Kind: KindNumber, Text: l.similarNumber(r, tok.Text)}
	case KindComment, KindRaw:
		return tok
	}

	alt, ok := rands.Choose(r, l.pools[tok.Kind])
	if !ok {
		return tok
	}

	return alt
}

func (l *Lexer) similarNumber(r rands.Rand, text string) string {
	v, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		alt, _ := rands.Choose(r, interestingNumbers)
		return alt
	}

	switch r.Below(5) {
	case 0:
		v++
	case 1:
		v--
	case 2:
		v = -v
	case 3:
		v *= 2
	default:
		v = 0
	}

	return strconv.FormatInt(v, 10)
}

// classify lexes text as a single token, falling back to fallback when it
// does not lex as exactly one token.
func (l *Lexer) classify(text string, fallback Kind) Token {
	if text == "" {
		return Token{Kind: fallback}
	}

	n, tok := l.next([]byte(text))
	if n != len(text) {
		return Token{Kind: fallback, Text: text}
	}

	return tok
}

func span(src []byte, pred func(byte) bool) int {
	n := 0
	for n < len(src) && pred(src[n]) {
		n++
	}

	return n
}

func scanQuoted(src []byte) int {
	q := src[0]

	for i := 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case q:
			return i + 1
		}
	}

	return len(src)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNumber(c byte) bool {
	return isDigit(c) || isIdent(c) || c == '.'
}

func isIdent(c byte) bool {
	return c == '_' || c >= 0x80 || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isDigit(c)
}
