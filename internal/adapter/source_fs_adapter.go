// Package adapter contains the infrastructure behind the tokfuzz workflows:
// filesystem access, dialect files and the on-disk corpus.
package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/natefinch/atomic"

	m "gooze.dev/pkg/tokfuzz/internal/model"
)

// SourceFSAdapter abstracts the filesystem so workflows can be tested
// without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// ListFiles returns every regular, non-hidden file below root in
	// lexical order. Hidden directories are not descended into.
	ListFiles(ctx context.Context, root m.Path) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile atomically replaces path with content, creating parent
	// directories as needed.
	WriteFile(ctx context.Context, path m.Path, content []byte) error

	// MkdirAll creates path and any missing parents.
	MkdirAll(ctx context.Context, path m.Path) error

	// Exists reports whether path exists.
	Exists(ctx context.Context, path m.Path) (bool, error)

	// RelPath returns the relative path from base to target.
	RelPath(ctx context.Context, base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ListFiles implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) ListFiles(ctx context.Context, root m.Path) ([]m.Path, error) {
	var files []m.Path

	rootStr := string(root)

	err := filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if path != rootStr && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.Type().IsRegular() {
			files = append(files, m.Path(path))
		}

		return nil
	})
	if err != nil {
		slog.Error("Failed to list files", "root", root, "error", err)
		return nil, fmt.Errorf("list files in %s: %w", root, err)
	}

	slices.Sort(files)

	return files, nil
}

// ReadFile implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(string(path))
}

// WriteFile implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte) error {
	if err := a.MkdirAll(ctx, m.Path(filepath.Dir(string(path)))); err != nil {
		return err
	}

	if err := atomic.WriteFile(string(path), bytes.NewReader(content)); err != nil {
		slog.Error("Failed to write file", "path", path, "error", err)
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// MkdirAll implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) MkdirAll(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(string(path), 0o750); err != nil {
		slog.Error("Failed to create directory", "path", path, "error", err)
		return fmt.Errorf("create directory %s: %w", path, err)
	}

	return nil
}

// Exists implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) Exists(ctx context.Context, path m.Path) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := os.Stat(string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// RelPath implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
