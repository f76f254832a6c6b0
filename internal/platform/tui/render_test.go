package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/word-zombies/internal/core"
)

func TestRenderScreenShape(t *testing.T) {
	s := core.NewScreen(12, 4)
	s.DrawTextColor(1, 1, "brain", core.ColorBrightYellow)
	s.DrawTextColor(2, 3, "fog", core.ColorDarkGray)

	out := RenderScreen(s)
	if n := strings.Count(out, "\n"); n != 3 {
		t.Errorf("newlines = %d, expected 3", n)
	}
	for _, want := range []string{"brain", "fog"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestStyleForCoversPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDarkGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
	// unknown colors fall back to the default style
	if got := styleFor(core.Color(250)).Render("x"); got != colorStyles[core.ColorDefault].Render("x") {
		t.Errorf("fallback render = %q", got)
	}
}
