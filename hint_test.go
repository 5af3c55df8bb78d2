package firework

import "testing"

func TestHintStaysUntilDismissed(t *testing.T) {
	h := newHint()
	for i := 0; i < 100; i++ {
		h.update(1.0/60, false)
	}
	if h.alpha != 1 {
		t.Errorf("alpha = %v, want 1", h.alpha)
	}
}

func TestHintFadesOut(t *testing.T) {
	h := newHint()
	h.update(0.25, true)
	if h.alpha <= 0 || h.alpha >= 1 {
		t.Fatalf("alpha = %v mid-fade, want in (0, 1)", h.alpha)
	}
	mid := h.alpha
	h.update(0.25, true)
	if h.alpha >= mid {
		t.Errorf("alpha = %v, want below %v", h.alpha, mid)
	}
	h.update(hintFadeSeconds, false) // keeps fading once started
	if h.visible() {
		t.Errorf("alpha = %v after the fade, want 0", h.alpha)
	}
}

func TestHintHide(t *testing.T) {
	h := newHint()
	h.hide()
	h.update(1, true)
	if h.visible() || h.fade != nil {
		t.Error("hidden hint should stay hidden without a fade")
	}
}
