package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	m "gooze.dev/pkg/tokfuzz/internal/model"
	"gooze.dev/pkg/tokfuzz/pkg/mutagens"
	"gooze.dev/pkg/tokfuzz/pkg/token"
)

var (
	// ErrEmptyCorpus is returned when a workflow needs at least one entry.
	ErrEmptyCorpus = errors.New("corpus is empty")
	// ErrUnknownEntry is returned for identifiers the store never issued.
	ErrUnknownEntry = errors.New("unknown corpus entry")
)

// TokenCacheDir is the directory below the corpus root that holds msgpack
// encoded token forms. Being hidden, it is never listed as corpus input.
const TokenCacheDir = ".tokens"

const tokenCacheExt = ".mp"

// CorpusStore is an on-disk corpus. Every file below the root is one entry;
// its token form comes from the token cache when that is still in sync with
// the file and from the lexer otherwise.
type CorpusStore[T token.Token[T]] struct {
	fs    SourceFSAdapter
	lexer token.Lexer[T]
	root  m.Path

	mu      sync.RWMutex
	entries []*corpusEntry[T]
	byRel   map[string]mutagens.CorpusID
}

type corpusEntry[T token.Token[T]] struct {
	mu     sync.Mutex
	path   m.Path
	rel    string
	raw    []byte
	input  *token.Input[T]
	cached bool
}

// NewCorpusStore creates an empty store rooted at root. Call Load to read
// the existing files.
func NewCorpusStore[T token.Token[T]](fs SourceFSAdapter, lexer token.Lexer[T], root m.Path) *CorpusStore[T] {
	return &CorpusStore[T]{
		fs:    fs,
		lexer: lexer,
		root:  root,
		byRel: make(map[string]mutagens.CorpusID),
	}
}

// Root returns the corpus directory.
func (c *CorpusStore[T]) Root() m.Path {
	return c.root
}

// Load replaces the store's contents with the files below the root.
func (c *CorpusStore[T]) Load(ctx context.Context) error {
	files, err := c.fs.ListFiles(ctx, c.root)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	entries := make([]*corpusEntry[T], 0, len(files))
	byRel := make(map[string]mutagens.CorpusID, len(files))

	for _, path := range files {
		entry, err := c.loadEntry(ctx, path)
		if err != nil {
			return err
		}

		byRel[entry.rel] = mutagens.CorpusID(len(entries))
		entries = append(entries, entry)
	}

	c.mu.Lock()
	c.entries = entries
	c.byRel = byRel
	c.mu.Unlock()

	slog.Debug("Loaded corpus", "root", c.root, "entries", len(entries))

	return nil
}

func (c *CorpusStore[T]) loadEntry(ctx context.Context, path m.Path) (*corpusEntry[T], error) {
	raw, err := c.fs.ReadFile(ctx, path)
	if err != nil {
		slog.Error("Failed to read corpus entry", "path", path, "error", err)
		return nil, fmt.Errorf("read corpus entry %s: %w", path, err)
	}

	rel, err := c.fs.RelPath(ctx, c.root, path)
	if err != nil {
		slog.Error("Failed to resolve corpus entry", "root", c.root, "path", path, "error", err)
		return nil, fmt.Errorf("resolve corpus entry %s: %w", path, err)
	}

	entry := &corpusEntry[T]{path: path, rel: string(rel), raw: raw}
	entry.input, entry.cached = c.readCache(ctx, entry)

	return entry, nil
}

// readCache returns the cached token form of entry when one exists and still
// lowers to the entry's bytes.
func (c *CorpusStore[T]) readCache(ctx context.Context, entry *corpusEntry[T]) (*token.Input[T], bool) {
	cachePath := c.cachePath(ctx, entry.rel)

	exists, err := c.fs.Exists(ctx, cachePath)
	if err != nil || !exists {
		return nil, false
	}

	data, err := c.fs.ReadFile(ctx, cachePath)
	if err != nil {
		slog.Warn("Ignoring unreadable token cache", "path", cachePath, "error", err)
		return nil, false
	}

	input, err := token.Unmarshal[T](data)
	if err != nil {
		slog.Warn("Ignoring corrupt token cache", "path", cachePath, "error", err)
		return nil, false
	}

	if !bytes.Equal(input.Bytes(), entry.raw) {
		slog.Debug("Ignoring stale token cache", "path", cachePath)
		return nil, false
	}

	return input, true
}

func (c *CorpusStore[T]) cachePath(ctx context.Context, rel string) m.Path {
	return c.fs.JoinPath(ctx, string(c.root), TokenCacheDir, rel+tokenCacheExt)
}

// Count implements mutagens.Corpus.
func (c *CorpusStore[T]) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// NthID implements mutagens.Corpus. Entries are never removed, so the
// identifier of an entry is its position.
func (c *CorpusStore[T]) NthID(n int) mutagens.CorpusID {
	return mutagens.CorpusID(n)
}

func (c *CorpusStore[T]) entry(id mutagens.CorpusID) (*corpusEntry[T], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if id < 0 || int(id) >= len(c.entries) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEntry, id)
	}

	return c.entries[id], nil
}

// WithInput implements mutagens.Corpus. The entry is locked for the duration
// of fn; other entries stay available to other workers.
func (c *CorpusStore[T]) WithInput(id mutagens.CorpusID, fn func(in *token.Input[T]) error) error {
	entry, err := c.entry(id)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.input == nil {
		entry.input = token.Lift(c.lexer, token.NewBytesInput(entry.raw))
	}

	return fn(entry.input)
}

// Snapshot returns a private copy of the entry's token form together with
// the file it came from.
func (c *CorpusStore[T]) Snapshot(id mutagens.CorpusID) (*token.Input[T], m.Path, error) {
	var clone *token.Input[T]

	err := c.WithInput(id, func(in *token.Input[T]) error {
		clone = in.Clone()
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	entry, err := c.entry(id)
	if err != nil {
		return nil, "", err
	}

	return clone, entry.path, nil
}

// Add stores in as a new entry named rel, writing both the raw bytes and
// the token cache. It reports false when an entry with that name already
// exists.
func (c *CorpusStore[T]) Add(ctx context.Context, rel string, in *token.Input[T]) (mutagens.CorpusID, bool, error) {
	c.mu.RLock()
	id, exists := c.byRel[rel]
	c.mu.RUnlock()

	if exists {
		return id, false, nil
	}

	raw := in.Bytes()
	path := c.fs.JoinPath(ctx, string(c.root), rel)

	if err := c.fs.WriteFile(ctx, path, raw); err != nil {
		return 0, false, fmt.Errorf("add corpus entry %s: %w", rel, err)
	}

	data, err := token.Marshal(in)
	if err != nil {
		return 0, false, fmt.Errorf("add corpus entry %s: %w", rel, err)
	}

	if err := c.fs.WriteFile(ctx, c.cachePath(ctx, rel), data); err != nil {
		return 0, false, fmt.Errorf("add token cache %s: %w", rel, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if id, exists := c.byRel[rel]; exists {
		return id, false, nil
	}

	id = mutagens.CorpusID(len(c.entries))
	c.entries = append(c.entries, &corpusEntry[T]{
		path:   path,
		rel:    rel,
		raw:    raw,
		input:  in.Clone(),
		cached: true,
	})
	c.byRel[rel] = id

	slog.Debug("Added corpus entry", "id", id, "path", path, "tokens", in.Len())

	return id, true, nil
}

// Entries describes every entry, lexing those not materialised yet.
func (c *CorpusStore[T]) Entries() ([]m.Entry, error) {
	count := c.Count()
	out := make([]m.Entry, 0, count)

	for n := range count {
		id := c.NthID(n)

		entry, err := c.entry(id)
		if err != nil {
			return nil, err
		}

		err = c.WithInput(id, func(in *token.Input[T]) error {
			openers := 0

			for _, tok := range in.Tokens() {
				if token.IsOpener(tok) {
					openers++
				}
			}

			out = append(out, m.Entry{
				ID:      int(id),
				Path:    entry.path,
				Name:    in.Name(),
				Bytes:   len(entry.raw),
				Tokens:  in.Len(),
				Openers: openers,
				Cached:  entry.cached,
			})

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
