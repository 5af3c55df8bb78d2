package firework

type resizeHandler struct {
	id uint32
	fn func(width, height int)
}

// Viewport tracks the window size and notifies listeners when it changes.
type Viewport struct {
	width, height int
	handlers      []resizeHandler
	nextID        uint32
}

// NewViewport creates a viewport with the given initial size.
func NewViewport(width, height int) *Viewport {
	return &Viewport{width: width, height: height}
}

// Size returns the current viewport size in pixels.
func (v *Viewport) Size() (int, int) {
	return v.width, v.height
}

// SetSize records a new size and fires the resize listeners if it differs
// from the current one.
func (v *Viewport) SetSize(width, height int) {
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	// Iterate over a snapshot so handlers may remove themselves.
	handlers := append([]resizeHandler(nil), v.handlers...)
	for _, h := range handlers {
		h.fn(width, height)
	}
}

// OnResize registers fn to be called after every size change.
func (v *Viewport) OnResize(fn func(width, height int)) ResizeHandle {
	v.nextID++
	v.handlers = append(v.handlers, resizeHandler{id: v.nextID, fn: fn})
	return ResizeHandle{id: v.nextID, vp: v}
}

// ResizeHandle allows removing a registered resize listener.
type ResizeHandle struct {
	id uint32
	vp *Viewport
}

// Remove unregisters the listener. Safe to call on the zero value and more
// than once.
func (h ResizeHandle) Remove() {
	if h.vp == nil {
		return
	}
	s := h.vp.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = resizeHandler{}
			h.vp.handlers = s[:len(s)-1]
			return
		}
	}
}
