package store

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestWatchEmitsAfterExternalWrite(t *testing.T) {
	s := writeSample(t, sampleFile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	// Let the watcher goroutine subscribe before touching the file.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(s.Path(), []byte("changed\n"), 0644); err != nil {
		t.Fatalf("external write: %v", err)
	}

	select {
	case _, ok := <-ch:
		if !ok {
			t.Fatal("watch channel closed unexpectedly")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change signal")
	}
}

func TestWatchCoalescesBursts(t *testing.T) {
	s := writeSample(t, sampleFile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	// A burst of writes inside the debounce window.
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(s.Path(), []byte("burst\n"), 0644); err != nil {
			t.Fatalf("external write: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change signal")
	}

	// The burst should have settled into that single signal.
	select {
	case <-ch:
		t.Error("got a second signal for one burst")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	s := writeSample(t, sampleFile)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// Drain a signal that raced the cancel; the close must follow.
			if _, ok := <-ch; ok {
				t.Fatal("channel still open after cancel")
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
