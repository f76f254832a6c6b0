package zombies

import "github.com/vovakirdan/word-zombies/internal/core"

// Sprites are drawn 5x3 at the default 640x480 field on an 80x24 terminal
// and resampled for other sizes.
var (
	playerSprite = core.Image{
		Name:  "player",
		Rows:  []string{" (o) ", "-/|==", " / \\ "},
		Color: core.ColorBrightCyan,
	}
	zombieSprite = core.Image{
		Name:  "zombie",
		Rows:  []string{" [x] ", "</|\\ ", " / | "},
		Color: core.ColorGreen,
	}
	selectedZombieSprite = core.Image{
		Name:  "zombie-selected",
		Rows:  zombieSprite.Rows,
		Color: core.ColorBrightGreen,
	}
)

// Explosion frames, played once over the effect's lifetime.
var explosionFrames = []rune{'*', '✶', '✺', '·'}
