// Package kernel implements the editor kernel: the single authority that
// drains the key-event queue and mutates the shared state record and text
// storage.
//
// The kernel exposes one operation, Tick, invoked once per host frame. A
// tick is an atomic sequential pass: it runs under the state store's write
// lock, so readers never observe a mid-tick state, and finishes by
// publishing the store version.
//
// No kernel operation faults. Inserting past capacity, navigating past a
// buffer edge, and unrecognized scancodes are silent no-ops; a dropped-input
// counter in the state record is the only trace.
package kernel

import (
	"github.com/pxlos/pixedit/internal/eventq"
	"github.com/pxlos/pixedit/internal/key"
	"github.com/pxlos/pixedit/internal/state"
	"github.com/pxlos/pixedit/internal/textbuf"
)

// Default per-tick bounds.
const (
	DefaultTabWidth      = 4
	DefaultEventsPerTick = 256
)

// Kernel owns mutation of the shared editor state and text storage.
type Kernel struct {
	store *state.Store
	text  *textbuf.Buffer
	queue *eventq.Queue

	tabWidth      int
	eventsPerTick int
}

// Option configures a Kernel.
type Option func(*Kernel)

// WithTabWidth sets the number of spaces a Tab key inserts.
func WithTabWidth(width int) Option {
	return func(k *Kernel) {
		if width > 0 {
			k.tabWidth = width
		}
	}
}

// WithEventsPerTick caps how many queued events one tick drains. The cap
// keeps a tick's cost bounded even if the queue capacity grows.
func WithEventsPerTick(n int) Option {
	return func(k *Kernel) {
		if n > 0 {
			k.eventsPerTick = n
		}
	}
}

// New creates a kernel over the given store, text buffer, and event queue.
// The kernel must be the only writer of all three.
func New(store *state.Store, text *textbuf.Buffer, queue *eventq.Queue, opts ...Option) *Kernel {
	k := &Kernel{
		store:         store,
		text:          text,
		queue:         queue,
		tabWidth:      DefaultTabWidth,
		eventsPerTick: DefaultEventsPerTick,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// SetViewport records the text area size in character cells. The host calls
// this on startup and resize; the kernel uses it to keep the cursor inside
// the scrolled view. The write goes through the kernel so the record keeps
// a single writer.
func (k *Kernel) SetViewport(rows, cols int) {
	k.store.Update(func(r *state.Record) {
		r.ViewRows = rows
		r.ViewCols = cols
	})
	k.store.Publish()
}

// Tick drains pending events and republishes the state record.
//
// The first tick finds Running false and zero-initializes the record. Every
// tick then pops queued events up to the per-tick cap, recomputes the line
// count if an edit marked the record dirty, increments the frame counter,
// and publishes.
func (k *Kernel) Tick() {
	k.store.Update(func(r *state.Record) {
		if !r.Running {
			k.initialize(r)
		}

		for drained := 0; drained < k.eventsPerTick; drained++ {
			ev, ok := k.queue.Pop()
			if !ok {
				break
			}
			k.processKey(r, ev)
		}

		if r.Dirty {
			r.LineCount = k.text.CountLines()
			r.Dirty = false
		}

		r.TextLength = k.text.Len()
		k.clampScroll(r)
		r.QueueHead, r.QueueTail = k.queue.Cursors()
		r.FrameCount++
	})
	k.store.Publish()
}

// initialize resets the record to its defaults. The viewport size survives:
// it belongs to the host's report, not to the editing session.
func (k *Kernel) initialize(r *state.Record) {
	rows, cols := r.ViewRows, r.ViewCols
	*r = state.Record{
		Running:   true,
		LineCount: k.text.CountLines(),
		ViewRows:  rows,
		ViewCols:  cols,
	}
}

// processKey dispatches one event. Releases are ignored.
func (k *Kernel) processKey(r *state.Record, ev key.Event) {
	if !ev.Pressed {
		return
	}

	switch ev.Scancode {
	case key.ScanLeft:
		k.moveLeft(r)
	case key.ScanRight:
		k.moveRight(r)
	case key.ScanUp:
		k.moveUp(r)
	case key.ScanDown:
		k.moveDown(r)
	case key.ScanHome:
		r.CursorCol = 0
	case key.ScanEnd:
		r.CursorCol = k.text.LineLen(r.CursorLine)
	case key.ScanBackspace:
		k.backspace(r)
	case key.ScanDelete:
		k.deleteForward(r)
	case key.ScanEnter:
		k.newline(r)
	case key.ScanTab:
		k.tab(r)
	case key.ScanEscape:
		// Host-level key; nothing to do in the kernel.
	default:
		k.insertPrintable(r, ev)
	}
}

// cursorOffset converts the cursor position to a buffer offset.
func (k *Kernel) cursorOffset(r *state.Record) int {
	return k.text.LineStart(r.CursorLine) + r.CursorCol
}

func (k *Kernel) moveLeft(r *state.Record) {
	if r.CursorCol > 0 {
		r.CursorCol--
		return
	}
	if r.CursorLine > 0 {
		r.CursorLine--
		r.CursorCol = k.text.LineLen(r.CursorLine)
	}
}

func (k *Kernel) moveRight(r *state.Record) {
	if r.CursorCol < k.text.LineLen(r.CursorLine) {
		r.CursorCol++
		return
	}
	if r.CursorLine < r.LineCount-1 {
		r.CursorLine++
		r.CursorCol = 0
	}
}

func (k *Kernel) moveUp(r *state.Record) {
	if r.CursorLine == 0 {
		return
	}
	r.CursorLine--
	k.clampCol(r)
}

func (k *Kernel) moveDown(r *state.Record) {
	if r.CursorLine >= r.LineCount-1 {
		return
	}
	r.CursorLine++
	k.clampCol(r)
}

// clampCol keeps the column within the current line after a vertical move.
func (k *Kernel) clampCol(r *state.Record) {
	if lineLen := k.text.LineLen(r.CursorLine); r.CursorCol > lineLen {
		r.CursorCol = lineLen
	}
}

func (k *Kernel) backspace(r *state.Record) {
	offset := k.cursorOffset(r)
	if offset == 0 {
		return
	}

	if r.CursorCol == 0 {
		// Removing the newline before the cursor merges this line into
		// the previous one; the cursor lands at the join point.
		prevLen := k.text.LineLen(r.CursorLine - 1)
		if _, ok := k.text.DeleteAt(offset - 1); !ok {
			return
		}
		r.CursorLine--
		r.CursorCol = prevLen
		r.LineCount--
		r.Dirty = true
		return
	}

	if _, ok := k.text.DeleteAt(offset - 1); !ok {
		return
	}
	r.CursorCol--
	r.Dirty = true
}

func (k *Kernel) deleteForward(r *state.Record) {
	offset := k.cursorOffset(r)
	removed, ok := k.text.DeleteAt(offset)
	if !ok {
		return
	}
	if removed == textbuf.Newline {
		r.LineCount--
	}
	r.Dirty = true
}

func (k *Kernel) newline(r *state.Record) {
	offset := k.cursorOffset(r)
	if !k.text.InsertAt(offset, textbuf.Newline) {
		r.DroppedInputs++
		return
	}
	r.CursorLine++
	r.CursorCol = 0
	r.LineCount++
	r.Dirty = true
}

func (k *Kernel) tab(r *state.Record) {
	for i := 0; i < k.tabWidth; i++ {
		if !k.text.InsertAt(k.cursorOffset(r), ' ') {
			r.DroppedInputs++
			return
		}
		r.CursorCol++
		r.Dirty = true
	}
}

func (k *Kernel) insertPrintable(r *state.Record, ev key.Event) {
	ch := ev.Rune()
	if ch == 0 {
		// Unrecognized scancode.
		r.DroppedInputs++
		return
	}
	if !k.text.InsertAt(k.cursorOffset(r), ch) {
		r.DroppedInputs++
		return
	}
	r.CursorCol++
	r.Dirty = true
}

// clampScroll keeps the cursor inside the viewport the host reported.
// Skipped until the host reports a size.
func (k *Kernel) clampScroll(r *state.Record) {
	if r.ViewRows > 0 {
		if r.CursorLine < r.ScrollLine {
			r.ScrollLine = r.CursorLine
		} else if r.CursorLine >= r.ScrollLine+r.ViewRows {
			r.ScrollLine = r.CursorLine - r.ViewRows + 1
		}
	}
	if r.ViewCols > 0 {
		if r.CursorCol < r.ScrollCol {
			r.ScrollCol = r.CursorCol
		} else if r.CursorCol >= r.ScrollCol+r.ViewCols {
			r.ScrollCol = r.CursorCol - r.ViewCols + 1
		}
	}
}
