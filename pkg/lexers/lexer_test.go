package lexers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/tokfuzz/pkg/mutagens"
	"gooze.dev/pkg/tokfuzz/pkg/rands"
	"gooze.dev/pkg/tokfuzz/pkg/token"
)

func join(tokens []Token) []byte {
	var buf bytes.Buffer
	for _, tok := range tokens {
		buf.Write(tok.Bytes())
	}

	return buf.Bytes()
}

func TestLexer_Lossless(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "empty", src: ""},
		{name: "c function", src: "int main(void) {\n\treturn a[0] + 0x1f; // done\n}\n"},
		{name: "json", src: `{"a": [1, 2.5, true, null], "b": "x\"y"}`},
		{name: "unterminated string", src: `x = "abc`},
		{name: "trailing escape", src: `"abc\`},
		{name: "unicode", src: "let ñandú = 'ü';"},
		{name: "raw bytes", src: "\x00\x01$\xff"},
		{name: "unbalanced", src: ")))((("},
	}

	l := Default()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []byte(tt.src), join(l.Lex([]byte(tt.src))))
		})
	}
}

func TestLexer_Kinds(t *testing.T) {
	got := Default().Lex([]byte(`if (x >= 10) { s = "a b"; } // c`))

	want := []Token{
		{Kind: KindKeyword, Text: "if"},
		{Kind: KindSpace, Text: " "},
		{Kind: KindOpen, Text: "(", Pair: ")"},
		{Kind: KindIdent, Text: "x"},
		{Kind: KindSpace, Text: " "},
		{Kind: KindPunct, Text: ">="},
		{Kind: KindSpace, Text: " "},
		{Kind: KindNumber, Text: "10"},
		{Kind: KindClose, Text: ")"},
		{Kind: KindSpace, Text: " "},
		{Kind: KindOpen, Text: "{", Pair: "}"},
		{Kind: KindSpace, Text: " "},
		{Kind: KindIdent, Text: "s"},
		{Kind: KindSpace, Text: " "},
		{Kind: KindPunct, Text: "="},
		{Kind: KindSpace, Text: " "},
		{Kind: KindString, Text: `"a b"`},
		{Kind: KindPunct, Text: ";"},
		{Kind: KindSpace, Text: " "},
		{Kind: KindClose, Text: "}"},
		{Kind: KindSpace, Text: " "},
		{Kind: KindComment, Text: "// c"},
	}

	assert.Equal(t, want, got)
}

func TestToken_Closer(t *testing.T) {
	l := Default()
	tokens := l.Lex([]byte("(a)"))

	closer, ok := tokens[0].Closer()
	require.True(t, ok)
	assert.Equal(t, tokens[2], closer)

	_, ok = tokens[1].Closer()
	assert.False(t, ok)

	_, ok = tokens[2].Closer()
	assert.False(t, ok)
}

func TestLexer_SelfClosingAndWordBrackets(t *testing.T) {
	d := Dialect{
		Name:     "pipes",
		Brackets: []Bracket{{Open: "|", Close: "|"}, {Open: "begin", Close: "end"}},
	}

	l, err := NewLexer(d)
	require.NoError(t, err)

	tokens := l.Lex([]byte("|x| beginning begin end"))

	assert.Equal(t, Token{Kind: KindOpen, Text: "|", Pair: "|"}, tokens[0])

	closer, ok := tokens[0].Closer()
	require.True(t, ok)
	assert.Equal(t, tokens[2], closer)

	assert.Equal(t, Token{Kind: KindIdent, Text: "beginning"}, tokens[4])
	assert.Equal(t, Token{Kind: KindOpen, Text: "begin", Pair: "end"}, tokens[6])
	assert.Equal(t, Token{Kind: KindClose, Text: "end"}, tokens[8])
}

func TestDialect_Validate(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		wantErr bool
	}{
		{name: "default", dialect: DefaultDialect()},
		{name: "empty", dialect: Dialect{}},
		{name: "empty bracket side", dialect: Dialect{Brackets: []Bracket{{Open: "("}}}, wantErr: true},
		{name: "long quote", dialect: Dialect{Quotes: []string{`""`}}, wantErr: true},
		{name: "empty punctuation", dialect: Dialect{Punctuation: []string{""}}, wantErr: true},
		{name: "empty comment", dialect: Dialect{LineComments: []string{""}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dialect.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDialect)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestLexer_NewRandDeterministic(t *testing.T) {
	l := Default()
	a, b := rands.NewStd(5, 5), rands.NewStd(5, 5)

	for range 100 {
		x, y := l.NewRand(a), l.NewRand(b)
		assert.Equal(t, x, y)
		assert.NotEmpty(t, x.Text)
	}
}

func TestLexer_Similar(t *testing.T) {
	l := Default()
	r := rands.NewStd(1, 2)

	assert.Equal(t, Token{Kind: KindKeyword, Text: "false"}, l.Similar(r, Token{Kind: KindKeyword, Text: "true"}))

	comment := Token{Kind: KindComment, Text: "// keep"}
	assert.Equal(t, comment, l.Similar(r, comment))

	for range 50 {
		num := l.Similar(r, Token{Kind: KindNumber, Text: "10"})
		assert.Equal(t, KindNumber, num.Kind)
		assert.Contains(t, []string{"11", "9", "-10", "20", "0"}, num.Text)

		open := l.Similar(r, Token{Kind: KindOpen, Text: "(", Pair: ")"})
		assert.Equal(t, KindOpen, open.Kind)
		assert.NotEmpty(t, open.Pair)
	}
}

func TestLexer_MutatorsKeepLowering(t *testing.T) {
	l := Default()
	src := token.NewBytesInput([]byte("f(a, [1, 2], {x: \"y\"}) + g(b)"))
	input := token.Lift[Token](l, src)

	r := rands.NewStd(3, 3)
	mutators := mutagens.All[Token](l)

	for i := range 500 {
		m := mutators[i%len(mutators)]
		candidate := input.Clone()

		_, err := m.Mutate(state{r: r}, candidate)
		require.NoError(t, err)

		lowered := token.Lower(candidate)
		assert.Equal(t, join(candidate.Tokens()), lowered.Raw.Bytes())

		if candidate.Len() > 0 {
			input = candidate
		}
	}
}

type state struct {
	r rands.Rand
}

func (s state) Rand() rands.Rand { return s.r }

func (s state) Corpus() mutagens.Corpus[Token] { return nil }

func (s state) MaxSize() int { return 256 }

func (s state) CurrentID() (mutagens.CorpusID, bool) { return 0, false }
