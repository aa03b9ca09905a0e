// Package frame schedules per-frame callbacks the way a display refresh
// loop does: a callback is requested for the next frame, runs once, and can
// be cancelled at any time before it runs.
package frame

import (
	"sync"
)

// Handle identifies a requested callback. The zero Handle is never issued.
type Handle uint64

type Scheduler interface {
	Request(fn func()) Handle
	Cancel(h Handle)
}

type pending struct {
	id Handle
	fn func()
}

// Queue is a manually stepped scheduler. Callbacks requested while a Step
// is running are deferred to the following Step.
type Queue struct {
	mu      sync.Mutex
	next    Handle
	queue   []pending
	running map[Handle]bool
	frames  int
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Request(fn func()) Handle {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	q.queue = append(q.queue, pending{id: q.next, fn: fn})
	return q.next
}

func (q *Queue) Cancel(h Handle) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.running[h]; ok {
		q.running[h] = false
		return
	}
	for i, p := range q.queue {
		if p.id == h {
			q.queue = append(q.queue[:i], q.queue[i+1:]...)
			return
		}
	}
}

// Step runs every callback that was pending when Step was called and
// returns how many ran. A callback cancelled by an earlier one in the same
// step does not run.
func (q *Queue) Step() int {
	q.mu.Lock()
	batch := q.queue
	q.queue = nil
	q.frames++
	q.running = make(map[Handle]bool, len(batch))
	for _, p := range batch {
		q.running[p.id] = true
	}
	q.mu.Unlock()

	ran := 0
	for _, p := range batch {
		q.mu.Lock()
		live := q.running[p.id]
		q.mu.Unlock()
		if !live {
			continue
		}
		p.fn()
		ran++
	}

	q.mu.Lock()
	q.running = nil
	q.mu.Unlock()
	return ran
}

// Pending returns the number of callbacks waiting for the next Step.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queue)
}

// Frames returns how many times Step has been called.
func (q *Queue) Frames() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.frames
}
