package firework

type opKind uint8

const (
	opRect opKind = iota
	opCircle
	opResize
)

type canvasOp struct {
	kind       opKind
	x, y, w, h float64
	r          float64
	c          Color
}

// recordCanvas is a Canvas that records every call instead of drawing.
type recordCanvas struct {
	w, h int
	ops  []canvasOp
}

func newRecordCanvas(w, h int) *recordCanvas {
	return &recordCanvas{w: w, h: h}
}

func (c *recordCanvas) Size() (int, int) { return c.w, c.h }

func (c *recordCanvas) Resize(w, h int) {
	c.w, c.h = w, h
	c.ops = append(c.ops, canvasOp{kind: opResize, w: float64(w), h: float64(h)})
}

func (c *recordCanvas) FillRect(x, y, w, h float64, col Color) {
	c.ops = append(c.ops, canvasOp{kind: opRect, x: x, y: y, w: w, h: h, c: col})
}

func (c *recordCanvas) FillCircle(x, y, r float64, col Color) {
	c.ops = append(c.ops, canvasOp{kind: opCircle, x: x, y: y, r: r, c: col})
}

func (c *recordCanvas) count(kind opKind) int {
	n := 0
	for _, op := range c.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func (c *recordCanvas) reset() {
	c.ops = c.ops[:0]
}
