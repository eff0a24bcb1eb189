// Package state holds the shared editor state record.
//
// The record has exactly one writer, the editor kernel, which mutates it
// inside Update and publishes the result. The render stage and host read
// copies through Snapshot and never observe a mid-tick state. Accessors are
// synchronized for cross-goroutine visibility only; there is no contention
// under the single-writer discipline.
package state

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Record is the fixed set of fields shared between the kernel, the render
// stage, and the host.
type Record struct {
	// Cursor position in buffer coordinates.
	CursorLine int
	CursorCol  int

	// Scroll offset: first visible buffer line and text column.
	ScrollLine int
	ScrollCol  int

	// TextLength mirrors the text buffer length after the last tick.
	TextLength int

	// LineCount is 1 plus the number of newlines in the buffer. Never 0.
	LineCount int

	// QueueHead and QueueTail mirror the event queue cursors at publish
	// time. Free-running counters, not slot indices.
	QueueHead uint32
	QueueTail uint32

	// Running is false until the first kernel tick initializes the record.
	Running bool

	// Dirty is set by edits and cleared once the line count is recomputed.
	Dirty bool

	// FrameCount increments once per tick. Drives cursor blink.
	FrameCount uint64

	// ViewRows and ViewCols are the text area size in character cells, as
	// last reported by the host. Zero means unknown; scroll clamping is
	// skipped until the host reports a size.
	ViewRows int
	ViewCols int

	// DroppedInputs counts inserts discarded for capacity and events with
	// unrecognized scancodes. Diagnostic only; no behavior depends on it.
	DroppedInputs uint64
}

// Snapshot is an immutable copy of the record taken at a publish point.
type Snapshot struct {
	Record

	// Version is the publish counter at the time of the copy.
	Version uint64
}

// Store owns the shared record.
type Store struct {
	mu      sync.RWMutex
	rec     Record
	version atomic.Uint64
	session uuid.UUID
}

// NewStore creates a zeroed store with a fresh session ID.
func NewStore() *Store {
	return &Store{session: uuid.New()}
}

// SessionID identifies this editing session in logs and state dumps.
func (s *Store) SessionID() uuid.UUID {
	return s.session
}

// Update runs fn against the record under the write lock. Only the kernel
// may call Update.
func (s *Store) Update(fn func(*Record)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.rec)
}

// Publish marks the end of a tick. The version increment is the release
// point: a Snapshot taken afterwards reflects every write of the tick.
func (s *Store) Publish() uint64 {
	return s.version.Add(1)
}

// Version returns the current publish counter.
func (s *Store) Version() uint64 {
	return s.version.Load()
}

// Snapshot returns a copy of the record with the current version.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Record: s.rec, Version: s.version.Load()}
}
