package firework

import (
	"fmt"
	"os"
	"time"
)

// tickStats holds per-tick timing and collection metrics.
// Only populated when the effect runs in debug mode.
type tickStats struct {
	tickTime time.Duration
	live     int
	dropped  int
}

// debugLog prints tick stats to stderr.
func (e *Effect) debugLog(stats tickStats) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[firework] tick: %v | particles: %d | dropped: %d\n",
		stats.tickTime, stats.live, stats.dropped)
}

// debugResize reports a canvas resize on stderr.
func debugResize(w, h int) {
	_, _ = fmt.Fprintf(os.Stderr, "[firework] resize: %dx%d\n", w, h)
}
