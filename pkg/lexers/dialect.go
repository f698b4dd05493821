package lexers

import (
	"errors"
	"fmt"
)

// ErrInvalidDialect is returned when a dialect cannot drive a lexer.
var ErrInvalidDialect = errors.New("invalid dialect")

// Bracket is a pair of delimiters that open and close a region.
type Bracket struct {
	Open  string `yaml:"open" toml:"open" json:"open"`
	Close string `yaml:"close" toml:"close" json:"close"`
}

// Dialect describes the surface syntax of a language.
type Dialect struct {
	Name         string     `yaml:"name" toml:"name" json:"name"`
	Brackets     []Bracket  `yaml:"brackets" toml:"brackets" json:"brackets"`
	Keywords     []string   `yaml:"keywords" toml:"keywords" json:"keywords"`
	Punctuation  []string   `yaml:"punctuation" toml:"punctuation" json:"punctuation"`
	LineComments []string   `yaml:"line_comments" toml:"line_comments" json:"line_comments"`
	Quotes       []string   `yaml:"quotes" toml:"quotes" json:"quotes"`
	Idents       []string   `yaml:"idents" toml:"idents" json:"idents"`
	Synonyms     [][]string `yaml:"synonyms" toml:"synonyms" json:"synonyms"`
}

// Validate checks the dialect for entries the lexer cannot use.
func (d Dialect) Validate() error {
	for i, b := range d.Brackets {
		if b.Open == "" || b.Close == "" {
			return fmt.Errorf("%w: bracket %d has an empty side", ErrInvalidDialect, i)
		}
	}

	for _, q := range d.Quotes {
		if len(q) != 1 {
			return fmt.Errorf("%w: quote %q must be a single byte", ErrInvalidDialect, q)
		}
	}

	for _, p := range d.Punctuation {
		if p == "" {
			return fmt.Errorf("%w: empty punctuation", ErrInvalidDialect)
		}
	}

	for _, c := range d.LineComments {
		if c == "" {
			return fmt.Errorf("%w: empty line comment prefix", ErrInvalidDialect)
		}
	}

	return nil
}

// DefaultDialect returns a C-like dialect that covers most curly-brace
// languages and JSON reasonably well.
func DefaultDialect() Dialect {
	return Dialect{
		Name: "c-like",
		Brackets: []Bracket{
			{Open: "(", Close: ")"},
			{Open: "[", Close: "]"},
			{Open: "{", Close: "}"},
		},
		Keywords: []string{
			"if", "else", "for", "while", "do", "return", "break", "continue",
			"switch", "case", "default", "func", "function", "var", "let", "const",
			"struct", "class", "new", "true", "false", "null", "nil",
		},
		Punctuation: []string{
			"...", "<<=", ">>=", "==", "!=", "<=", ">=", "&&", "||", "<<", ">>",
			"++", "--", "+=", "-=", "*=", "/=", "->", ":=", "=>",
			"+", "-", "*", "/", "%", "=", "<", ">", "!", "&", "|", "^", "~",
			",", ";", ":", ".", "?", "@", "#",
		},
		LineComments: []string{"//"},
		Quotes:       []string{`"`, `'`, "`"},
		Idents:       []string{"a", "b", "x", "i", "tmp", "self", "this"},
		Synonyms: [][]string{
			{"true", "false"},
			{"null", "nil"},
			{"==", "!="},
			{"<", "<=", ">", ">="},
			{"&&", "||"},
			{"+", "-", "*", "/", "%"},
			{"++", "--"},
			{"break", "continue", "return"},
		},
	}
}
