package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/grid-snake/internal/core"
)

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, Standard, 1)
	g.fruit = Fruit{Pos: Position{50, 75}, Present: true}
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}

	board := g.BoardRect(80)
	if board.X != 22 || board.W != 35 || board.H != 15 {
		t.Fatalf("BoardRect = %+v", board)
	}

	// Grid row 2 is the upper half of terminal row 1 inside the frame; the
	// fruit on grid row 3 shares the tail's glyph.
	y := board.Y + 1 + 1
	if got := screen.GetCell(board.X+1+5, y); got.Rune != '▀' || got.Color != core.ColorBrightGreen {
		t.Errorf("Head cell = %q/%v, want upper half in bright green", got.Rune, got.Color)
	}
	if got := screen.GetCell(board.X+1+2, y); got.Rune != '█' || got.Color != core.ColorBrightRed {
		t.Errorf("Tail+fruit cell = %q/%v, want full block in bright red", got.Rune, got.Color)
	}
	if got := screen.Get(board.X+1+10, y); got != ' ' {
		t.Errorf("Empty cell = %q, want space", got)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, Standard, 1)
	screen := core.NewScreen(30, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("Expected too-small overlay:\n%s", screen.String())
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		want  []string
	}{
		{
			name: "game over",
			setup: func(g *Game) {
				g.score = Score{Score: 3, HighScore: 7}
				g.status = StatusGameOver
			},
			want: []string{"Your score is: 3", "High score: 7", "Press R to restart!"},
		},
		{
			name:  "paused",
			setup: func(g *Game) { g.paused = true },
			want:  []string{"Paused"},
		},
		{
			name:  "new high score",
			setup: func(g *Game) { g.score = Score{Score: 2, HighScore: 2, Beat: true} },
			want:  []string{"NEW HIGH SCORE!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, Standard, 1)
			tt.setup(g)
			screen := core.NewScreen(80, 24)
			g.Render(screen)

			out := screen.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("Missing %q in:\n%s", w, out)
				}
			}
		})
	}
}

func TestRenderOverlayPinnedOnNarrowScreen(t *testing.T) {
	g := newTestGame(t, Standard, 1)
	screen := core.NewScreen(12, 8)
	g.Render(screen)

	// The overlay is wider than the screen, so it starts at column 0.
	if got := screen.Get(0, 3); got == ' ' {
		t.Errorf("Expected the overlay frame at column 0, row:\n%s", screen.String())
	}
}

func TestRenderHeadPastEdge(t *testing.T) {
	g := newTestGame(t, Standard, 1)
	g.body = NewBody(Position{725, 50}, Position{750, 50}, Position{775, 50}, Position{800, 50})
	g.fruit = Fruit{Pos: Position{500, 500}, Present: true}
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Your score is: 0") {
		t.Errorf("Expected the game-over overlay:\n%s", screen.String())
	}
}
