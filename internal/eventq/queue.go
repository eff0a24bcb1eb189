// Package eventq implements the bounded key-event queue between the host
// and the editor kernel.
//
// The queue is a fixed 64-slot ring with a single producer (the host
// advances head) and a single consumer (the kernel advances tail). Head and
// tail are free-running counters; the slot index is the counter modulo the
// capacity. Atomic loads and stores provide cross-goroutine visibility; the
// single-producer/single-consumer discipline removes any need for locks.
package eventq

import (
	"sync/atomic"

	"github.com/pxlos/pixedit/internal/key"
)

// Capacity is the number of event slots. Must be a power of two.
const Capacity = 64

// Queue is a bounded single-producer/single-consumer ring of key events.
// The zero value is ready to use.
type Queue struct {
	head  atomic.Uint32 // producer cursor, next write position
	tail  atomic.Uint32 // consumer cursor, next read position
	slots [Capacity]key.Event
}

// Push appends an event. Only the host may call Push.
// Returns false when the queue is full; the event is dropped.
func (q *Queue) Push(ev key.Event) bool {
	head := q.head.Load()
	tail := q.tail.Load()
	if head-tail >= Capacity {
		return false
	}
	q.slots[head%Capacity] = ev
	q.head.Store(head + 1)
	return true
}

// Pop removes and returns the oldest event. Only the kernel may call Pop.
// Returns false when the queue is empty.
func (q *Queue) Pop() (key.Event, bool) {
	tail := q.tail.Load()
	if tail == q.head.Load() {
		return key.Event{}, false
	}
	ev := q.slots[tail%Capacity]
	q.tail.Store(tail + 1)
	return ev, true
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return int(q.head.Load() - q.tail.Load())
}

// Cursors returns the raw head and tail counters for the shared state
// record. Free-running; callers wanting slot indices take them modulo
// Capacity.
func (q *Queue) Cursors() (head, tail uint32) {
	return q.head.Load(), q.tail.Load()
}
