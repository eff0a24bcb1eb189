package eventq

import (
	"testing"

	"github.com/pxlos/pixedit/internal/key"
)

func TestPushPop(t *testing.T) {
	var q Queue

	if _, ok := q.Pop(); ok {
		t.Error("Pop on empty queue should fail")
	}

	if !q.Push(key.PressRune('a')) {
		t.Fatal("Push failed on empty queue")
	}
	if !q.Push(key.PressRune('b')) {
		t.Fatal("Push failed")
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2", q.Len())
	}

	ev, ok := q.Pop()
	if !ok || ev.Rune() != 'a' {
		t.Errorf("Pop() = %v, %t, want 'a'", ev, ok)
	}
	ev, ok = q.Pop()
	if !ok || ev.Rune() != 'b' {
		t.Errorf("Pop() = %v, %t, want 'b'", ev, ok)
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop on drained queue should fail")
	}
}

func TestPushFullDrops(t *testing.T) {
	var q Queue

	for i := 0; i < Capacity; i++ {
		if !q.Push(key.Press(key.ScanLeft, key.ModNone)) {
			t.Fatalf("Push %d failed below capacity", i)
		}
	}
	if q.Push(key.Press(key.ScanRight, key.ModNone)) {
		t.Error("Push on full queue should drop")
	}
	if q.Len() != Capacity {
		t.Errorf("Len() = %d, want %d", q.Len(), Capacity)
	}
}

func TestWraparound(t *testing.T) {
	var q Queue

	// Cycle several times around the ring to exercise the free-running
	// counters crossing the capacity boundary.
	for cycle := 0; cycle < 5; cycle++ {
		for i := 0; i < Capacity; i++ {
			r := rune('a' + i%26)
			if !q.Push(key.PressRune(r)) {
				t.Fatalf("cycle %d: Push %d failed", cycle, i)
			}
		}
		for i := 0; i < Capacity; i++ {
			want := rune('a' + i%26)
			ev, ok := q.Pop()
			if !ok || ev.Rune() != want {
				t.Fatalf("cycle %d: Pop %d = %q, %t, want %q",
					cycle, i, ev.Rune(), ok, want)
			}
		}
	}
}

func TestCursors(t *testing.T) {
	var q Queue

	q.Push(key.PressRune('x'))
	q.Push(key.PressRune('y'))
	q.Pop()

	head, tail := q.Cursors()
	if head != 2 || tail != 1 {
		t.Errorf("Cursors() = %d, %d, want 2, 1", head, tail)
	}
}
