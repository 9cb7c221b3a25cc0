package oledgfx

// Event is one input notification: an encoder step, a button press, or a
// request to stop the demo loop.
type Event struct {
	// Delta is the rotation since the last event, typically +1 or -1 per
	// encoder detent.
	Delta int
	// Click reports a button press.
	Click bool
	// Quit asks the frame loop to stop. Host ports map their close keys to
	// this; embedded targets never send it.
	Quit bool
}

// InputQueue is a bounded single-producer/single-consumer event queue that
// decouples input handlers from the render loop. Handlers push events at any
// time; the frame loop drains the queue once per frame and applies the
// changes, so scroll positions and object fields are only ever mutated
// between render passes and cannot be torn mid-frame.
type InputQueue struct {
	ch chan Event
}

// NewInputQueue returns a queue holding up to capacity pending events.
func NewInputQueue(capacity int) *InputQueue {
	if capacity <= 0 {
		capacity = 32
	}
	return &InputQueue{ch: make(chan Event, capacity)}
}

// Push enqueues an event without blocking. It reports false when the queue
// is full and the event was dropped, like a missed encoder transition.
func (q *InputQueue) Push(ev Event) bool {
	select {
	case q.ch <- ev:
		return true
	default:
		return false
	}
}

// Drain applies fn to every pending event and returns without blocking.
func (q *InputQueue) Drain(fn func(Event)) {
	for {
		select {
		case ev := <-q.ch:
			fn(ev)
		default:
			return
		}
	}
}

// Len returns the number of pending events.
func (q *InputQueue) Len() int {
	return len(q.ch)
}
