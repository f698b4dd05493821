// Package pkg holds small helpers shared by the tokfuzz workflows.
package pkg

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrSpillClosed is returned when appending to a closed spill.
var ErrSpillClosed = errors.New("spill closed")

// ErrSpillIndex is returned by Get for an index past the end.
var ErrSpillIndex = errors.New("spill index out of range")

// FileSpill is an append-only log of records of type T kept on disk as a
// msgpack stream, so campaign results do not have to stay in memory.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(record T) error
	AppendBatch(records []T) error
	Get(index uint64) (T, error)
	Range(fn func(index uint64, record T) error) error
	Close() error
}

type msgpackSpill[T any] struct {
	mu     sync.Mutex
	path   string
	file   *os.File
	w      *bufio.Writer
	enc    *msgpack.Encoder
	length uint64
	closed bool
}

// NewFileSpill creates a spill file in dir. An empty dir selects a
// tokfuzz-spill directory below the system temp dir.
func NewFileSpill[T any](dir string) (FileSpill[T], error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "tokfuzz-spill")
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("failed to create spill directory", "path", dir, "error", err)
		return nil, fmt.Errorf("create spill directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "spill-*.mp")
	if err != nil {
		slog.Error("failed to create spill file", "path", dir, "error", err)
		return nil, fmt.Errorf("create spill file: %w", err)
	}

	w := bufio.NewWriter(file)

	slog.Debug("created spill", "path", file.Name())

	return &msgpackSpill[T]{
		path: file.Name(),
		file: file,
		w:    w,
		enc:  msgpack.NewEncoder(w),
	}, nil
}

// Path implements FileSpill.
func (s *msgpackSpill[T]) Path() string {
	return s.path
}

// Len implements FileSpill.
func (s *msgpackSpill[T]) Len() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.length
}

// Append implements FileSpill.
func (s *msgpackSpill[T]) Append(record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.appendLocked(record)
}

// AppendBatch implements FileSpill. Records are written under one lock so a
// batch is never interleaved with a concurrent Append.
func (s *msgpackSpill[T]) AppendBatch(records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range records {
		if err := s.appendLocked(record); err != nil {
			return err
		}
	}

	return nil
}

func (s *msgpackSpill[T]) appendLocked(record T) error {
	if s.closed {
		return ErrSpillClosed
	}

	if err := s.enc.Encode(record); err != nil {
		slog.Error("failed to encode spill record", "path", s.path, "index", s.length, "error", err)
		return fmt.Errorf("encode spill record %d: %w", s.length, err)
	}

	s.length++

	return nil
}

// Get implements FileSpill. It rescans the stream from the start.
func (s *msgpackSpill[T]) Get(index uint64) (T, error) {
	var found T

	s.mu.Lock()
	length := s.length
	s.mu.Unlock()

	if index >= length {
		return found, fmt.Errorf("%w: %d (length %d)", ErrSpillIndex, index, length)
	}

	err := s.scan(index+1, func(i uint64, record T) error {
		if i == index {
			found = record
		}

		return nil
	})

	return found, err
}

// Range implements FileSpill. An error from fn stops the iteration and is
// returned unchanged.
func (s *msgpackSpill[T]) Range(fn func(index uint64, record T) error) error {
	s.mu.Lock()
	length := s.length
	s.mu.Unlock()

	if err := s.scan(length, fn); err != nil {
		return err
	}

	slog.Debug("spill range completed", "path", s.path, "count", length)

	return nil
}

// scan decodes the first n records.
func (s *msgpackSpill[T]) scan(n uint64, fn func(index uint64, record T) error) error {
	s.mu.Lock()
	if !s.closed {
		if err := s.w.Flush(); err != nil {
			s.mu.Unlock()
			slog.Error("failed to flush spill", "path", s.path, "error", err)

			return fmt.Errorf("flush spill: %w", err)
		}
	}
	s.mu.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		slog.Error("failed to open spill", "path", s.path, "error", err)
		return fmt.Errorf("open spill: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close spill reader", "path", s.path, "error", err)
		}
	}()

	dec := msgpack.NewDecoder(bufio.NewReader(file))

	for i := range n {
		var record T
		if err := dec.Decode(&record); err != nil {
			slog.Error("failed to decode spill record", "path", s.path, "index", i, "error", err)
			return fmt.Errorf("decode spill record %d: %w", i, err)
		}

		if err := fn(i, record); err != nil {
			return err
		}
	}

	return nil
}

// Close implements FileSpill. The file stays on disk; records remain
// readable through Get and Range.
func (s *msgpackSpill[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true

	if err := s.w.Flush(); err != nil {
		slog.Error("failed to flush spill", "path", s.path, "error", err)
		return fmt.Errorf("flush spill: %w", err)
	}

	if err := s.file.Close(); err != nil {
		slog.Error("failed to close spill", "path", s.path, "error", err)
		return fmt.Errorf("close spill: %w", err)
	}

	slog.Debug("closed spill", "path", s.path, "length", s.length)

	return nil
}
