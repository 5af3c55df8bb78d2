package firework

import "testing"

func TestViewportSetSizeNotifies(t *testing.T) {
	vp := NewViewport(800, 600)
	var got [][2]int
	vp.OnResize(func(w, h int) { got = append(got, [2]int{w, h}) })

	vp.SetSize(800, 600) // unchanged
	vp.SetSize(1200, 800)
	vp.SetSize(1200, 800) // unchanged

	if len(got) != 1 || got[0] != [2]int{1200, 800} {
		t.Errorf("notifications = %v, want [[1200 800]]", got)
	}
	if w, h := vp.Size(); w != 1200 || h != 800 {
		t.Errorf("Size = %dx%d, want 1200x800", w, h)
	}
}

func TestResizeHandleRemove(t *testing.T) {
	vp := NewViewport(1, 1)
	var a, b int
	ha := vp.OnResize(func(int, int) { a++ })
	vp.OnResize(func(int, int) { b++ })

	ha.Remove()
	ha.Remove()
	vp.SetSize(2, 2)

	if a != 0 || b != 1 {
		t.Errorf("a=%d b=%d, want 0 1", a, b)
	}
}

func TestResizeHandleZeroValue(t *testing.T) {
	var h ResizeHandle
	h.Remove() // must not panic
}

func TestResizeHandleRemoveDuringCallback(t *testing.T) {
	vp := NewViewport(1, 1)
	var calls int
	var h ResizeHandle
	h = vp.OnResize(func(int, int) {
		calls++
		h.Remove()
	})
	vp.SetSize(2, 2)
	vp.SetSize(3, 3)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
