package firework

// FrameID identifies a requested frame callback. The zero value never
// identifies a live request.
type FrameID uint32

// FrameScheduler schedules one-shot callbacks for the next frame, in the
// manner of requestAnimationFrame.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type frameCallback struct {
	id FrameID
	fn func()
}

// FrameQueue is a FrameScheduler driven by the game loop: the owner calls
// Flush once per update. Callbacks requested while a flush is running are
// deferred to the next flush. Not safe for concurrent use; everything runs on
// the game goroutine.
type FrameQueue struct {
	pending []frameCallback
	running []frameCallback
	nextID  FrameID
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame queues fn for the next Flush and returns its id.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.nextID++
	if q.nextID == 0 {
		q.nextID = 1
	}
	q.pending = append(q.pending, frameCallback{id: q.nextID, fn: fn})
	return q.nextID
}

// CancelFrame removes a queued callback. Cancelling an unknown id, the zero
// id, or a callback that already ran is a no-op. A callback cancelled from
// inside a flush does not run if it has not run yet.
func (q *FrameQueue) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	for i := range q.pending {
		if q.pending[i].id == id {
			copy(q.pending[i:], q.pending[i+1:])
			q.pending[len(q.pending)-1] = frameCallback{}
			q.pending = q.pending[:len(q.pending)-1]
			return
		}
	}
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// Pending returns the number of callbacks waiting for the next Flush.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Flush runs every callback that was queued before the call began.
func (q *FrameQueue) Flush() {
	if len(q.pending) == 0 {
		return
	}
	q.running, q.pending = q.pending, q.running[:0]
	for i := range q.running {
		if fn := q.running[i].fn; fn != nil {
			q.running[i].fn = nil
			fn()
		}
	}
	clear(q.running)
	q.running = q.running[:0]
}
