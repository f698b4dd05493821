// Package domain implements the tokfuzz workflows on top of the adapters and
// the token mutation core.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"gooze.dev/pkg/tokfuzz/internal/adapter"
	"gooze.dev/pkg/tokfuzz/internal/controller"
	m "gooze.dev/pkg/tokfuzz/internal/model"
	"gooze.dev/pkg/tokfuzz/pkg/lexers"
)

// LexArgs contains the arguments for lexing a single file.
type LexArgs struct {
	Path    m.Path
	Dialect m.Path
}

// ListArgs contains the arguments for listing a corpus.
type ListArgs struct {
	Corpus  m.Path
	Dialect m.Path
}

// Workflow defines the tokfuzz operations exposed to the commands.
type Workflow interface {
	Lex(ctx context.Context, args LexArgs) error
	List(ctx context.Context, args ListArgs) error
	Mutate(ctx context.Context, args MutateArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.DialectAdapter
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	dialectAdapter adapter.DialectAdapter,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		DialectAdapter:  dialectAdapter,
		UI:              ui,
	}
}

func (w *workflow) loadLexer(ctx context.Context, path m.Path) (*lexers.Lexer, error) {
	dialect, err := w.LoadDialect(ctx, path)
	if err != nil {
		slog.Error("Failed to load dialect", "path", path, "error", err)
		return nil, fmt.Errorf("load dialect: %w", err)
	}

	lexer, err := lexers.NewLexer(dialect)
	if err != nil {
		slog.Error("Failed to compile dialect", "dialect", dialect.Name, "error", err)
		return nil, fmt.Errorf("compile dialect: %w", err)
	}

	return lexer, nil
}

func (w *workflow) loadCorpus(ctx context.Context, root m.Path, lexer *lexers.Lexer) (*adapter.CorpusStore[lexers.Token], error) {
	store := adapter.NewCorpusStore[lexers.Token](w.SourceFSAdapter, lexer, root)
	if err := store.Load(ctx); err != nil {
		slog.Error("Failed to load corpus", "root", root, "error", err)
		return nil, err
	}

	return store, nil
}

// List loads the corpus and displays one row per entry.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	lexer, err := w.loadLexer(ctx, args.Dialect)
	if err != nil {
		return err
	}

	store, err := w.loadCorpus(ctx, args.Corpus, lexer)
	if err != nil {
		return err
	}

	entries, err := store.Entries()
	if err != nil {
		return fmt.Errorf("describe corpus: %w", err)
	}

	if err := w.Start(ctx, controller.WithInspectMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	if err := w.DisplayCorpus(ctx, entries); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}
