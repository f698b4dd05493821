package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"gooze.dev/pkg/tokfuzz/internal/controller"
	m "gooze.dev/pkg/tokfuzz/internal/model"
	"gooze.dev/pkg/tokfuzz/pkg/lexers"
	"gooze.dev/pkg/tokfuzz/pkg/token"
)

// Lex lexes one file and displays its tokens together with the round-trip
// checks.
func (w *workflow) Lex(ctx context.Context, args LexArgs) error {
	lexer, err := w.loadLexer(ctx, args.Dialect)
	if err != nil {
		return err
	}

	src, err := w.ReadFile(ctx, args.Path)
	if err != nil {
		slog.Error("Failed to read file", "path", args.Path, "error", err)
		return fmt.Errorf("read %s: %w", args.Path, err)
	}

	in := token.Lift[lexers.Token](lexer, token.NewBytesInput(src))
	lowered := token.Lower(in).Raw.Bytes()

	rows, stats := describeTokens(in.Tokens())
	stats.Name = lexer.Dialect().Name
	stats.Lossless = bytes.Equal(lowered, src)
	stats.Stable = slices.Equal(lexer.Lex(lowered), in.Tokens())

	slog.Debug("Lexed file", "path", args.Path, "tokens", stats.Tokens, "lossless", stats.Lossless)

	if err := w.Start(ctx, controller.WithInspectMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	if err := w.DisplayTokens(ctx, args.Path, rows, stats); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// describeTokens builds the listing rows. Depth counts the brackets open
// before a token; a closer is shown at the depth of its opener.
func describeTokens(tokens []lexers.Token) ([]m.TokenRow, m.LexStats) {
	rows := make([]m.TokenRow, 0, len(tokens))
	stats := m.LexStats{Tokens: len(tokens)}

	var expected []lexers.Token

	for i, tok := range tokens {
		row := m.TokenRow{Index: i, Kind: tok.Kind.String(), Text: tok.Text}

		closer, isOpener := tok.Closer()

		switch {
		case len(expected) > 0 && expected[len(expected)-1] == tok:
			expected = expected[:len(expected)-1]
			row.Depth = len(expected)
		case isOpener:
			stats.Openers++
			row.Pair = closer.Text
			row.Depth = len(expected)
			expected = append(expected, closer)
		default:
			row.Depth = len(expected)
		}

		rows = append(rows, row)
	}

	stats.Unclosed = len(expected)

	return rows, stats
}
