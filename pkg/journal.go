// Package pkg provides reusable utilities for fixpass.
package pkg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Journal is an append-only log of items of type T kept on disk.
type Journal[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	Range(fn func(index uint64, item T) error) error
	Close() error
	// Remove closes the journal and deletes its file.
	Remove() error
}

type journalImpl[T any] struct {
	path    string
	file    *os.File
	writer  *bufio.Writer
	encoder *msgpack.Encoder
	mu      sync.Mutex
	length  uint64
	closed  bool
}

// NewJournal creates a journal file inside dir. An empty dir uses the system temp dir.
func NewJournal[T any](dir string) (Journal[T], error) {
	if dir == "" {
		dir = os.TempDir()
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("failed to create journal directory", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "journal-*.msgpack")
	if err != nil {
		slog.Error("failed to create journal file", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create journal file: %w", err)
	}

	writer := bufio.NewWriter(file)

	slog.Debug("created journal", "path", file.Name())

	return &journalImpl[T]{
		path:    file.Name(),
		file:    file,
		writer:  writer,
		encoder: msgpack.NewEncoder(writer),
	}, nil
}

// Append implements Journal.
func (j *journalImpl[T]) Append(item T) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return fmt.Errorf("journal %s is closed", j.path)
	}

	if err := j.encoder.Encode(item); err != nil {
		slog.Error("failed to encode item", "path", j.path, "index", j.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	j.length++

	return nil
}

// Len implements Journal.
func (j *journalImpl[T]) Len() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.length
}

// Path implements Journal.
func (j *journalImpl[T]) Path() string {
	return j.path
}

// Range implements Journal.
func (j *journalImpl[T]) Range(fn func(index uint64, item T) error) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.closed {
		if err := j.writer.Flush(); err != nil {
			return fmt.Errorf("failed to flush journal: %w", err)
		}
	}

	file, err := os.Open(j.path)
	if err != nil {
		slog.Error("failed to open journal for range", "path", j.path, "error", err)
		return fmt.Errorf("failed to open journal: %w", err)
	}

	defer func() { _ = file.Close() }()

	decoder := msgpack.NewDecoder(bufio.NewReader(file))

	for i := range j.length {
		var item T
		if err := decoder.Decode(&item); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("journal truncated at index %d", i)
			}

			slog.Error("failed to decode item during range", "path", j.path, "index", i, "error", err)

			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

// Close implements Journal.
func (j *journalImpl[T]) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.closeLocked()
}

func (j *journalImpl[T]) closeLocked() error {
	if j.closed {
		return nil
	}

	j.closed = true

	if err := j.writer.Flush(); err != nil {
		_ = j.file.Close()
		return fmt.Errorf("failed to flush journal: %w", err)
	}

	if err := j.file.Close(); err != nil {
		slog.Error("failed to close journal", "path", j.path, "error", err)
		return err
	}

	return nil
}

// Remove implements Journal.
func (j *journalImpl[T]) Remove() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.closeLocked(); err != nil {
		return err
	}

	if err := os.Remove(j.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove journal: %w", err)
	}

	return nil
}
