package firework

import "testing"

func TestFrameQueueRunsOnFlush(t *testing.T) {
	q := NewFrameQueue()
	var calls int
	id := q.RequestFrame(func() { calls++ })
	if id == 0 {
		t.Fatal("RequestFrame returned the zero id")
	}
	if calls != 0 {
		t.Fatal("callback ran before Flush")
	}
	q.Flush()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	q.Flush()
	if calls != 1 {
		t.Errorf("calls = %d after second Flush, want 1 (one-shot)", calls)
	}
}

func TestFrameQueueOrder(t *testing.T) {
	q := NewFrameQueue()
	var order []int
	for i := 0; i < 3; i++ {
		q.RequestFrame(func() { order = append(order, i) })
	}
	q.Flush()
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("order = %v, want [0 1 2]", order)
	}
}

func TestFrameQueueDefersNestedRequests(t *testing.T) {
	q := NewFrameQueue()
	var outer, inner int
	q.RequestFrame(func() {
		outer++
		q.RequestFrame(func() { inner++ })
	})
	q.Flush()
	if outer != 1 || inner != 0 {
		t.Fatalf("after first flush outer=%d inner=%d, want 1 0", outer, inner)
	}
	if q.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", q.Pending())
	}
	q.Flush()
	if inner != 1 {
		t.Errorf("inner = %d, want 1", inner)
	}
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	var a, b int
	idA := q.RequestFrame(func() { a++ })
	q.RequestFrame(func() { b++ })
	q.CancelFrame(idA)
	if q.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", q.Pending())
	}
	q.Flush()
	if a != 0 || b != 1 {
		t.Errorf("a=%d b=%d, want 0 1", a, b)
	}
}

func TestFrameQueueCancelDuringFlush(t *testing.T) {
	q := NewFrameQueue()
	var later int
	var laterID FrameID
	q.RequestFrame(func() { q.CancelFrame(laterID) })
	laterID = q.RequestFrame(func() { later++ })
	q.Flush()
	if later != 0 {
		t.Errorf("cancelled callback ran %d times", later)
	}
}

func TestFrameQueueCancelNoop(t *testing.T) {
	q := NewFrameQueue()
	q.CancelFrame(0)
	q.CancelFrame(42)
	id := q.RequestFrame(func() {})
	q.Flush()
	q.CancelFrame(id) // already ran
	if q.Pending() != 0 {
		t.Errorf("pending = %d, want 0", q.Pending())
	}
}

func TestFrameQueueUniqueIDs(t *testing.T) {
	q := NewFrameQueue()
	seen := make(map[FrameID]bool)
	for i := 0; i < 100; i++ {
		id := q.RequestFrame(func() {})
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
}
