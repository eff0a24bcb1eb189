package host

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestMapTcellKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), "A"},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone), "Shift+A"},
		{"ctrl rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl), "Ctrl+X"},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "Left"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "Enter"},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "Backspace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kev, ok := mapTcellKey(tt.ev)
			if !ok {
				t.Fatal("key not mapped")
			}
			if got := kev.String(); got != tt.want {
				t.Errorf("mapped event = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMapTcellKeyUnmapped(t *testing.T) {
	if _, ok := mapTcellKey(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)); ok {
		t.Error("F5 should not map to an editor key")
	}
}

func TestQuitKeys(t *testing.T) {
	quit := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	}
	for _, ev := range quit {
		if !isQuitKey(ev) {
			t.Errorf("%v should quit", ev.Key())
		}
	}
	if isQuitKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("plain q should not quit")
	}
}

func TestRunScreenInterrupt(t *testing.T) {
	h := newTestHost(t, "")

	sim := tcell.NewSimulationScreen("UTF-8")
	sim.SetSize(80, 24)

	interrupt := make(chan struct{})
	errCh := make(chan error, 1)
	go func() {
		errCh <- h.runScreen(sim, TerminalOptions{Interrupt: interrupt})
	}()

	time.Sleep(50 * time.Millisecond)
	close(interrupt)

	select {
	case err := <-errCh:
		if !errors.Is(err, ErrQuit) {
			t.Fatalf("runScreen returned %v, want ErrQuit", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runScreen did not return after interrupt")
	}
}

func TestRunScreenSimulation(t *testing.T) {
	h := newTestHost(t, "")

	sim := tcell.NewSimulationScreen("UTF-8")
	sim.SetSize(80, 24)

	errCh := make(chan error, 1)
	go func() {
		errCh <- h.runScreen(sim, TerminalOptions{})
	}()

	// Give the loop time to start, then type and quit.
	time.Sleep(50 * time.Millisecond)
	sim.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'i', tcell.ModNone)

	// Let at least one frame tick drain the queue before quitting.
	time.Sleep(100 * time.Millisecond)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-errCh:
		if !errors.Is(err, ErrQuit) {
			t.Fatalf("runScreen returned %v, want ErrQuit", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runScreen did not return after quit key")
	}

	snap := h.Store().Snapshot()
	if snap.TextLength != 2 {
		t.Errorf("TextLength = %d, want 2", snap.TextLength)
	}
	if snap.CursorCol != 2 {
		t.Errorf("CursorCol = %d, want 2", snap.CursorCol)
	}
}
