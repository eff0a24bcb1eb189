package textbuf

import "sync"

// Newline is the line separator code point.
const Newline = '\n'

// DefaultCapacity is the default maximum number of code points.
const DefaultCapacity = 1 << 20

// View is the read-only surface of a Buffer. The render stage and host
// observe the buffer exclusively through this interface; mutation stays
// with the kernel.
type View interface {
	// Len returns the number of stored code points.
	Len() int

	// At returns the code point at offset, or false if out of range.
	At(offset int) (rune, bool)

	// LineStart returns the offset of the first code point of line.
	// Lines past the end of the buffer report the buffer length.
	LineStart(line int) int

	// LineLen returns the length of line, excluding its newline.
	LineLen(line int) int

	// CountLines returns 1 plus the number of newline code points.
	CountLines() int
}

// Buffer is a fixed-capacity flat text store.
// Accessors are synchronized so readers on other goroutines observe
// complete writes; ordering between kernel ticks and render passes is the
// host's responsibility.
type Buffer struct {
	mu       sync.RWMutex
	data     []rune
	length   int
	capacity int
}

// New creates an empty buffer with the given capacity.
// A non-positive capacity falls back to DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		data:     make([]rune, capacity),
		capacity: capacity,
	}
}

// FromString creates a buffer seeded with s.
// Content beyond the usable length is dropped.
func FromString(s string, capacity int) *Buffer {
	b := New(capacity)
	for _, r := range s {
		if b.length >= b.capacity-1 {
			break
		}
		b.data[b.length] = r
		b.length++
	}
	return b
}

// Len returns the number of stored code points.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.length
}

// Cap returns the buffer capacity.
func (b *Buffer) Cap() int {
	return b.capacity
}

// At returns the code point at offset, or false if out of range.
func (b *Buffer) At(offset int) (rune, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if offset < 0 || offset >= b.length {
		return 0, false
	}
	return b.data[offset], true
}

// InsertAt inserts r at offset, shifting the trailing region right.
// Returns false without modifying the buffer when the offset is out of
// range or when at most one slot remains: the final slot is reserved and
// never written, so the stored length stays strictly below the capacity.
func (b *Buffer) InsertAt(offset int, r rune) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.length >= b.capacity-1 || offset < 0 || offset > b.length {
		return false
	}
	copy(b.data[offset+1:b.length+1], b.data[offset:b.length])
	b.data[offset] = r
	b.length++
	return true
}

// DeleteAt removes the code point at offset, shifting the trailing region
// left. Returns the removed code point, or false if offset is out of range.
func (b *Buffer) DeleteAt(offset int) (rune, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if offset < 0 || offset >= b.length {
		return 0, false
	}
	r := b.data[offset]
	copy(b.data[offset:b.length-1], b.data[offset+1:b.length])
	b.length--
	return r, true
}

// LineStart returns the offset of the first code point of line.
// The scan walks forward counting newlines; a line index past the last line
// reports the buffer length.
func (b *Buffer) LineStart(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineStartLocked(line)
}

func (b *Buffer) lineStartLocked(line int) int {
	if line <= 0 {
		return 0
	}
	seen := 0
	for i := 0; i < b.length; i++ {
		if b.data[i] == Newline {
			seen++
			if seen == line {
				return i + 1
			}
		}
	}
	return b.length
}

// LineLen returns the length of line, excluding its terminating newline.
func (b *Buffer) LineLen(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start := b.lineStartLocked(line)
	for i := start; i < b.length; i++ {
		if b.data[i] == Newline {
			return i - start
		}
	}
	return b.length - start
}

// CountLines returns 1 plus the number of newline code points, the
// line-count definition the state record maintains.
func (b *Buffer) CountLines() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	count := 1
	for i := 0; i < b.length; i++ {
		if b.data[i] == Newline {
			count++
		}
	}
	return count
}

// String returns the buffer contents. Intended for tests and diagnostics.
func (b *Buffer) String() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return string(b.data[:b.length])
}
