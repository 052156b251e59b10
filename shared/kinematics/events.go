package kinematics

// EventKind identifies a deferred phase change.
type EventKind int

const (
	EventSettle EventKind = iota
	EventFlightReady
)

// Event is a deferred phase change. Seq is the jump or flight sequence
// number that scheduled it; the event only applies if that sequence is still
// current when it fires.
type Event struct {
	At   float64
	Kind EventKind
	Seq  uint64
}

// Queue holds pending events ordered by fire time.
type Queue struct {
	pending []Event
}

// Schedule adds an event, keeping the queue ordered by At.
func (q *Queue) Schedule(ev Event) {
	i := len(q.pending)
	for i > 0 && q.pending[i-1].At > ev.At {
		i--
	}
	q.pending = append(q.pending, Event{})
	copy(q.pending[i+1:], q.pending[i:])
	q.pending[i] = ev
}

// Due removes and returns every event with At <= now.
func (q *Queue) Due(now float64) []Event {
	n := 0
	for n < len(q.pending) && q.pending[n].At <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	due := make([]Event, n)
	copy(due, q.pending[:n])
	q.pending = append(q.pending[:0], q.pending[n:]...)
	return due
}

// Len reports the number of pending events.
func (q *Queue) Len() int {
	return len(q.pending)
}
