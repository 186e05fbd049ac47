package state

import "testing"

func newTestList(count, cursor int) *List {
	l := NewList()
	l.SetCount(count)
	l.Cursor = cursor
	l.refreshFollow()
	return l
}

func TestMoveCursorHome(t *testing.T) {
	l := newTestList(3, 2)
	if !l.MoveCursorHome() {
		t.Fatalf("expected move when rows exist")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
	if l.Follow {
		t.Fatalf("expected follow to stop after leaving the last row")
	}

	empty := NewList()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty list")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEndResumesFollow(t *testing.T) {
	l := newTestList(3, 0)
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 || !l.Follow {
		t.Fatalf("expected cursor 2 with follow, got %d/%v", l.Cursor, l.Follow)
	}
	l.SetCount(5)
	if l.Cursor != 4 {
		t.Fatalf("expected cursor to follow the newest row, got %d", l.Cursor)
	}
}

func TestSetCountWithoutFollowKeepsCursor(t *testing.T) {
	l := newTestList(4, 1)
	l.SetCount(10)
	if l.Cursor != 1 {
		t.Fatalf("expected cursor to stay at 1, got %d", l.Cursor)
	}
	l.SetCount(0)
	if l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("expected reset on empty count, got %d/%d", l.Cursor, l.ViewportOffset)
	}
}

func TestMoveCursorWraps(t *testing.T) {
	l := newTestList(3, 0)
	if !l.MoveCursorUp() || l.Cursor != 2 {
		t.Fatalf("expected wrap to last row, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() || l.Cursor != 0 {
		t.Fatalf("expected wrap to first row, got %d", l.Cursor)
	}
	if NewList().MoveCursorDown() {
		t.Fatalf("expected no movement on empty list")
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestList(5, 0)
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on first page down")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(2) || l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no movement past end")
	}
	if !l.MoveCursorPageUp(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page up, got %d", l.Cursor)
	}
	l.Cursor = 1
	if !l.MoveCursorPageDown(0) || l.Cursor != 4 {
		t.Fatalf("expected jump to end with unknown page size, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisible(t *testing.T) {
	l := newTestList(10, 7)
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 5 {
		t.Fatalf("expected offset 5, got %d", l.ViewportOffset)
	}
	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset 1, got %d", l.ViewportOffset)
	}
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when height unknown, got %d", l.ViewportOffset)
	}
}
