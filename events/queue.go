package events

import "log/slog"

// Capacity is the number of events a Queue holds.
const Capacity = 16

// Queue is a fixed size FIFO of events. When full, new events are dropped
// and counted. It is not safe for concurrent use; the backend fills it from
// its callbacks on the thread that also drains it.
type Queue struct {
	ring  [Capacity]Event
	head  int
	count int

	dropped uint64
	// overflowing is set from the first drop until the queue is drained.
	overflowing bool
}

// Enqueue adds e and reports whether there was room for it.
func (q *Queue) Enqueue(e Event) bool {
	if q.count == Capacity {
		q.dropped++
		if !q.overflowing {
			q.overflowing = true
			slog.Warn("event queue full, dropping events", "capacity", Capacity, "event", e.Kind)
		}
		return false
	}
	q.ring[(q.head+q.count)%Capacity] = e
	q.count++
	return true
}

// HaveEvents reports whether Dequeue may be called.
func (q *Queue) HaveEvents() bool { return q.count > 0 }

// Dequeue removes and returns the oldest event. It panics on an empty queue.
func (q *Queue) Dequeue() Event {
	if q.count == 0 {
		panic("events: dequeue from empty queue")
	}
	e := q.ring[q.head]
	q.head = (q.head + 1) % Capacity
	q.count--
	if q.count == 0 && q.overflowing {
		q.overflowing = false
		slog.Debug("event queue drained", "dropped", q.dropped)
	}
	return e
}

func (q *Queue) Len() int { return q.count }

// Dropped returns how many events were dropped since the queue was created.
func (q *Queue) Dropped() uint64 { return q.dropped }
