package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleFile = "(A) Buy milk @shopping\nx 2024-01-01 Write report +work\nCall mom @family\n"

func writeSample(t *testing.T, content string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todo.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	s := New(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return s
}

func fileContent(t *testing.T, s *Store) string {
	t.Helper()
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	return string(data)
}

func TestLoad(t *testing.T) {
	s := writeSample(t, sampleFile)

	items := s.Items()
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	for i, it := range items {
		if it.SourceLine != i+1 {
			t.Errorf("item %d: SourceLine = %d, want %d", i, it.SourceLine, i+1)
		}
	}
	if items[0].Priority != 'A' {
		t.Errorf("item 0 priority = %q, want A", items[0].Priority)
	}
	if !items[1].Done || items[1].CompletionDate != "2024-01-01" {
		t.Errorf("item 1 not parsed as completed: %+v", items[1])
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "absent.txt"))
	err := s.Load()
	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("Load err = %v, want *FileError", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	s := writeSample(t, "")
	if got := len(s.Items()); got != 0 {
		t.Errorf("got %d items from empty file, want 0", got)
	}
}

func TestSetPriority(t *testing.T) {
	s := writeSample(t, sampleFile)

	if err := s.SetPriority(3, 'B'); err != nil {
		t.Fatalf("SetPriority: %v", err)
	}

	want := "(A) Buy milk @shopping\nx 2024-01-01 Write report +work\n(B) Call mom @family\n"
	if got := fileContent(t, s); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
	if it, _ := s.ItemAt(3); it.Priority != 'B' {
		t.Errorf("in-memory priority = %q, want B", it.Priority)
	}

	// Applying the same priority again changes nothing.
	if err := s.SetPriority(3, 'B'); err != nil {
		t.Fatalf("SetPriority again: %v", err)
	}
	if got := fileContent(t, s); got != want {
		t.Errorf("file after repeat = %q, want %q", got, want)
	}
}

func TestSetPriorityClear(t *testing.T) {
	s := writeSample(t, sampleFile)

	if err := s.SetPriority(1, 0); err != nil {
		t.Fatalf("SetPriority: %v", err)
	}
	want := "Buy milk @shopping\nx 2024-01-01 Write report +work\nCall mom @family\n"
	if got := fileContent(t, s); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestSetPriorityInvalid(t *testing.T) {
	s := writeSample(t, sampleFile)
	for _, p := range []byte{'a', '1', ' ', '@'} {
		if err := s.SetPriority(1, p); !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("SetPriority(%q) err = %v, want ErrInvalidPriority", p, err)
		}
	}
	// Nothing was written.
	if got := fileContent(t, s); got != sampleFile {
		t.Errorf("file changed by rejected mutation: %q", got)
	}
}

func TestSetDone(t *testing.T) {
	s := writeSample(t, sampleFile)
	s.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }

	if err := s.SetDone(3, true); err != nil {
		t.Fatalf("SetDone: %v", err)
	}
	want := "(A) Buy milk @shopping\nx 2024-01-01 Write report +work\nx 2024-06-15 Call mom @family\n"
	if got := fileContent(t, s); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}

	if err := s.SetDone(3, false); err != nil {
		t.Fatalf("SetDone(false): %v", err)
	}
	if got := fileContent(t, s); got != sampleFile {
		t.Errorf("file = %q, want original %q", got, sampleFile)
	}
}

func TestSetDoneKeepsCreationDate(t *testing.T) {
	s := writeSample(t, "(B) 2024-02-01 Plan trip\n")
	s.now = func() time.Time { return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC) }

	if err := s.SetDone(1, true); err != nil {
		t.Fatalf("SetDone: %v", err)
	}
	want := "x 2024-06-15 (B) 2024-02-01 Plan trip\n"
	if got := fileContent(t, s); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestWriteFailureLeavesMemoryUnchanged(t *testing.T) {
	s := writeSample(t, sampleFile)

	// Turn the backing path into a directory so the rewrite fails.
	if err := os.Remove(s.Path()); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := os.Mkdir(s.Path(), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	err := s.SetDone(3, true)
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("SetDone err = %v, want *WriteError", err)
	}
	if it, ok := s.ItemAt(3); !ok || it.Done {
		t.Errorf("in-memory item mutated despite write failure: %+v", it)
	}
}

func TestReloadAfterShrink(t *testing.T) {
	s := writeSample(t, sampleFile)

	if err := os.WriteFile(s.Path(), []byte("Call mom @family\n"), 0644); err != nil {
		t.Fatalf("shrink: %v", err)
	}
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("got %d items after shrink, want 1", len(items))
	}
	if items[0].SourceLine != 1 || items[0].Text != "Call mom @family" {
		t.Errorf("unexpected item after shrink: %+v", items[0])
	}
}

func TestMutationOnVanishedLine(t *testing.T) {
	s := writeSample(t, sampleFile)

	if err := os.WriteFile(s.Path(), []byte("only line\n"), 0644); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	err := s.SetPriority(3, 'C')
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("SetPriority err = %v, want *WriteError", err)
	}
}
