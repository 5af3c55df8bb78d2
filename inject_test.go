package firework

import "testing"

func TestInjectClick(t *testing.T) {
	g := newTestGame(t, RunConfig{})
	g.InjectClick(50, 60)
	if len(g.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(g.injectQueue))
	}

	// Frame 1: press
	g.processInput()
	if len(g.injectQueue) != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", len(g.injectQueue))
	}
	if g.Effect().Bursts() != 0 {
		t.Error("burst should not spawn on press frame")
	}

	// Frame 2: release spawns the burst
	g.processInput()
	if g.Effect().Bursts() != 1 {
		t.Fatalf("Bursts = %d, want 1", g.Effect().Bursts())
	}
	p := g.Effect().Particles()[0]
	if p.X != 50 || p.Y != 60 {
		t.Errorf("burst at (%v, %v), want (50, 60)", p.X, p.Y)
	}
}

func TestInjectReleaseWithoutPress(t *testing.T) {
	g := newTestGame(t, RunConfig{})
	g.InjectRelease(10, 10)
	g.processInput()
	if g.Effect().Bursts() != 0 {
		t.Error("a release with no press must not click")
	}
}

func TestInjectMultipleClicks(t *testing.T) {
	g := newTestGame(t, RunConfig{})
	g.InjectClick(10, 10)
	g.InjectClick(20, 20)
	for i := 0; i < 4; i++ {
		g.processInput()
	}
	if g.Effect().Bursts() != 2 {
		t.Errorf("Bursts = %d, want 2", g.Effect().Bursts())
	}
}
