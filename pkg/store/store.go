// Package store owns the todo.txt document: the ordered items backed by the
// file, and the mutations that rewrite single lines in place.
package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"lsi/pkg/todotxt"
	"lsi/pkg/utils"
)

// ErrInvalidPriority rejects a priority outside A-Z before anything touches
// the file.
var ErrInvalidPriority = errors.New("priority must be a letter A-Z")

// FileError means the backing file could not be read. It is fatal at startup.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("read %s: %s", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// WriteError means a mutation could not be persisted. The in-memory item is
// left unchanged when this is returned.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %s", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Store is the document: all items of the backing file in line order.
// All operations serialize on an internal mutex so a reload never observes a
// half-written line and a user edit never races a watcher-triggered read.
type Store struct {
	path string

	mu    sync.Mutex
	items []todotxt.Item
	now   func() time.Time
}

// New creates a store for the given todo.txt path. Call Load before use.
func New(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads and parses the backing file. An empty file yields an empty
// document; an unreadable file yields a FileError.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Reload is Load under another name: the previous document is replaced
// wholesale, so it tolerates the file shrinking or growing arbitrarily.
func (s *Store) Reload() error {
	return s.Load()
}

func (s *Store) load() error {
	lines, err := s.readLines()
	if err != nil {
		return &FileError{Path: s.path, Err: err}
	}

	items := make([]todotxt.Item, 0, len(lines))
	for i, line := range lines {
		items = append(items, todotxt.Parse(line, i+1))
	}
	s.items = items
	utils.Log.Debug("loaded document", "path", s.path, "items", len(items))
	return nil
}

// Items returns a copy of the current document in file line order.
func (s *Store) Items() []todotxt.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]todotxt.Item, len(s.items))
	copy(out, s.items)
	return out
}

// ItemAt returns the item with the given source line, if present.
func (s *Store) ItemAt(sourceLine int) (todotxt.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, i := s.find(sourceLine)
	if i < 0 {
		return todotxt.Item{}, false
	}
	return it, true
}

// SetPriority rewrites the priority prefix of the item's source line,
// leaving every other byte of the file alone. A zero priority clears it.
func (s *Store) SetPriority(sourceLine int, priority byte) error {
	if priority != 0 && (priority < 'A' || priority > 'Z') {
		return ErrInvalidPriority
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it, i := s.find(sourceLine)
	if i < 0 {
		return &WriteError{Path: s.path, Err: fmt.Errorf("line %d no longer exists", sourceLine)}
	}

	it.Priority = priority
	if err := s.rewriteLine(sourceLine, it.String()); err != nil {
		return err
	}
	s.items[i] = it
	return nil
}

// SetDone sets or clears the completion marker. Completing stamps the
// clock's current date; un-completing removes the completion date. The
// creation date is preserved either way.
func (s *Store) SetDone(sourceLine int, done bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, i := s.find(sourceLine)
	if i < 0 {
		return &WriteError{Path: s.path, Err: fmt.Errorf("line %d no longer exists", sourceLine)}
	}

	it.Done = done
	if done {
		it.CompletionDate = s.now().Format(todotxt.DateLayout)
	} else {
		it.CompletionDate = ""
	}

	if err := s.rewriteLine(sourceLine, it.String()); err != nil {
		return err
	}
	s.items[i] = it
	return nil
}

// find returns the item with the given source line and its index, or -1.
func (s *Store) find(sourceLine int) (todotxt.Item, int) {
	for i, it := range s.items {
		if it.SourceLine == sourceLine {
			return it, i
		}
	}
	return todotxt.Item{}, -1
}

// rewriteLine replaces one line of the file, re-reading it first so lines
// the document doesn't own are preserved byte for byte.
func (s *Store) rewriteLine(sourceLine int, newLine string) error {
	lines, err := s.readLines()
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	if sourceLine < 1 || sourceLine > len(lines) {
		return &WriteError{Path: s.path, Err: fmt.Errorf("line %d no longer exists", sourceLine)}
	}

	lines[sourceLine-1] = newLine
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(s.path, []byte(data), 0644); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	utils.Log.Debug("rewrote line", "path", s.path, "line", sourceLine)
	return nil
}

// readLines splits the file into lines without the newline terminators. The
// terminating newline of the final line does not produce a phantom empty line.
func (s *Store) readLines() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}
