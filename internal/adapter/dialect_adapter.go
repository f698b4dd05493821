package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/tokfuzz/internal/model"
	"gooze.dev/pkg/tokfuzz/pkg/lexers"
)

// ErrUnknownDialectFormat is returned for dialect files with an unsupported
// extension.
var ErrUnknownDialectFormat = errors.New("unknown dialect file format")

// DialectAdapter loads dialect definitions.
type DialectAdapter interface {
	// LoadDialect reads the dialect at path. An empty path selects the
	// built-in default dialect.
	LoadDialect(ctx context.Context, path m.Path) (lexers.Dialect, error)
}

type localDialectAdapter struct {
	fs SourceFSAdapter
}

// NewDialectAdapter creates a DialectAdapter reading through fs. YAML, TOML
// and JSON with comments are supported, chosen by file extension.
func NewDialectAdapter(fs SourceFSAdapter) DialectAdapter {
	return &localDialectAdapter{fs: fs}
}

func (a *localDialectAdapter) LoadDialect(ctx context.Context, path m.Path) (lexers.Dialect, error) {
	if path == "" {
		return lexers.DefaultDialect(), nil
	}

	data, err := a.fs.ReadFile(ctx, path)
	if err != nil {
		slog.Error("Failed to read dialect", "path", path, "error", err)
		return lexers.Dialect{}, fmt.Errorf("read dialect %s: %w", path, err)
	}

	dialect, err := decodeDialect(filepath.Ext(string(path)), data)
	if err != nil {
		slog.Error("Failed to decode dialect", "path", path, "error", err)
		return lexers.Dialect{}, fmt.Errorf("decode dialect %s: %w", path, err)
	}

	if err := dialect.Validate(); err != nil {
		return lexers.Dialect{}, fmt.Errorf("dialect %s: %w", path, err)
	}

	if dialect.Name == "" {
		dialect.Name = strings.TrimSuffix(filepath.Base(string(path)), filepath.Ext(string(path)))
	}

	slog.Debug("Loaded dialect", "path", path, "name", dialect.Name,
		"brackets", len(dialect.Brackets), "keywords", len(dialect.Keywords))

	return dialect, nil
}

func decodeDialect(ext string, data []byte) (lexers.Dialect, error) {
	var dialect lexers.Dialect

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err := dec.Decode(&dialect); err != nil {
			return dialect, err
		}
	case ".toml":
		meta, err := toml.Decode(string(data), &dialect)
		if err != nil {
			return dialect, err
		}

		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return dialect, fmt.Errorf("unknown keys %v", undecoded)
		}
	case ".json", ".jsonc", ".hujson":
		standard, err := hujson.Standardize(data)
		if err != nil {
			return dialect, err
		}

		dec := json.NewDecoder(bytes.NewReader(standard))
		dec.DisallowUnknownFields()

		if err := dec.Decode(&dialect); err != nil {
			return dialect, err
		}
	default:
		return dialect, fmt.Errorf("%w: %q", ErrUnknownDialectFormat, ext)
	}

	return dialect, nil
}
