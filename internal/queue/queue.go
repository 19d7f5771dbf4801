// Package queue holds the in-memory buffer of not-yet-sent hits.
package queue

import (
	"sync"

	"github.com/bft-labs/hitship/internal/hit"
)

// Queue is an ordered FIFO buffer of pending hits. One Queue exists per
// root visitor; context-derived views share it by reference. All
// operations are safe for concurrent use and none of them block.
type Queue struct {
	mu   sync.Mutex
	hits []hit.Hit
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{}
}

// Append adds a hit to the tail.
func (q *Queue) Append(h hit.Hit) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.hits = append(q.hits, h)
}

// Drain atomically removes and returns up to max hits from the head.
// Fewer are returned if the queue holds fewer; nil if it is empty.
func (q *Queue) Drain(max int) []hit.Hit {
	q.mu.Lock()
	defer q.mu.Unlock()

	if max <= 0 || len(q.hits) == 0 {
		return nil
	}
	if max > len(q.hits) {
		max = len(q.hits)
	}
	out := q.hits[:max:max]
	q.hits = q.hits[max:]
	return out
}

// DrainAll atomically removes and returns every queued hit in order.
// Hits appended after DrainAll returns belong to a later send.
func (q *Queue) DrainAll() []hit.Hit {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.hits
	q.hits = nil
	return out
}

// Len reports the number of queued hits.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.hits)
}
