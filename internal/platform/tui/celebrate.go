package tui

import (
	"github.com/vovakirdan/grid-snake/internal/core"
)

// Celebration timing: the effect advances celebrationStep frames per tick
// and ends once it reaches celebrationFrames.
const (
	celebrationStep   = 10
	celebrationFrames = 64
)

var confettiGlyphs = []rune{'*', '+', '·', '✦', '°', '✧'}

// Celebration plays a short confetti burst after a round that beat the high
// score. It only reads the game state; the simulation never sees it.
type Celebration struct {
	frame int
}

// Update advances the effect for one tick of state.
func (c *Celebration) Update(st core.GameState) {
	if !st.Beat {
		c.frame = 0
		return
	}
	if st.GameOver && c.frame < celebrationFrames {
		c.frame = min(c.frame+celebrationStep, celebrationFrames)
	}
}

// Frame returns the current frame index.
func (c *Celebration) Frame() int {
	return c.frame
}

// Active reports whether there is a frame to draw.
func (c *Celebration) Active() bool {
	return c.frame > 0 && c.frame < celebrationFrames
}

// Draw renders the current frame as a confetti strip along the bottom row.
func (c *Celebration) Draw(dst *core.Screen) {
	if !c.Active() || dst.Height() == 0 {
		return
	}

	y := dst.Height() - 1
	phase := c.frame / celebrationStep
	width := min(dst.Width(), 2*phase*len(confettiGlyphs))
	start := (dst.Width() - width) / 2

	for i := range width {
		if (i+phase)%2 != 0 {
			continue
		}
		g := confettiGlyphs[(i+phase)%len(confettiGlyphs)]
		dst.SetColored(start+i, y, g, core.ConfettiColor(i+phase))
	}
}
