package backend

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func collect(t *testing.T, f *Feeder) []Event {
	t.Helper()
	var out []Event
	timeout := time.After(2 * time.Second)
	for {
		select {
		case evt, ok := <-f.Events():
			if !ok {
				return out
			}
			out = append(out, evt)
		case <-timeout:
			t.Fatalf("timed out waiting for feeder, got %d events", len(out))
		}
	}
}

func TestFeederEmitsEveryLineInOrder(t *testing.T) {
	f := NewFeeder(strings.NewReader("a\nab\n\nabc\n"), time.Millisecond)
	events := collect(t, f)
	want := []string{"a", "ab", "", "abc"}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %#v", len(want), events)
	}
	for i, evt := range events {
		if evt.Err != nil {
			t.Fatalf("unexpected error %v", evt.Err)
		}
		if evt.Text != want[i] || evt.Line != i+1 {
			t.Fatalf("event %d: expected %q at line %d, got %#v", i, want[i], i+1, evt)
		}
	}
}

func TestFeederStopClosesStream(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	f := NewFeeder(pr, time.Millisecond)
	go func() {
		_, _ = pw.Write([]byte("first\n"))
	}()
	select {
	case evt := <-f.Events():
		if evt.Text != "first" {
			t.Fatalf("expected first line, got %#v", evt)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for first line")
	}
	f.Stop()
	// Unblock the scanner so the goroutine can observe cancellation.
	pw.CloseWithError(errors.New("stopped"))
	f.Wait()
	for range f.Events() {
	}
}

func TestOpenFeederMissingFile(t *testing.T) {
	_, err := OpenFeeder(filepath.Join(t.TempDir(), "missing.txt"), time.Millisecond)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestOpenFeederReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.txt")
	if err := os.WriteFile(path, []byte("x\nxy\n"), 0o644); err != nil {
		t.Fatalf("write replay file: %v", err)
	}
	f, err := OpenFeeder(path, time.Millisecond)
	if err != nil {
		t.Fatalf("open feeder: %v", err)
	}
	events := collect(t, f)
	if len(events) != 2 || events[1].Text != "xy" {
		t.Fatalf("unexpected events %#v", events)
	}
}
