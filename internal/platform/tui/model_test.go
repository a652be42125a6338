package tui

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-snake/internal/core"
	"github.com/vovakirdan/grid-snake/internal/storage"
)

// fakeGame records what the driver asks of it.
type fakeGame struct {
	resets   int
	steps    []core.InputFrame
	state    core.GameState
	endAfter int // Step number that ends the round; 0 never
}

func (g *fakeGame) ID() string {
	return "fake"
}

func (g *fakeGame) Title() string {
	return "Fake"
}

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())

	res := core.StepResult{}
	if g.state.GameOver && in.Has(core.ActionRestart) {
		g.state.GameOver = false
		g.state.Score = 0
	} else if len(g.steps) == g.endAfter {
		g.state.GameOver = true
		res.Ended = &core.RoundSummary{Score: g.state.Score, Length: 7, Ticks: 12, Cause: "self"}
	}
	res.State = g.state
	return res
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	return g.state
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(g *fakeGame, opts Options) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 9, Seed: 1}, opts)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func tick(m Model) TickMsg {
	return TickMsg{Time: time.Now(), ID: m.loopID}
}

func TestModelStepsOncePerTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if len(g.steps) != 0 {
		t.Fatalf("Keys must not step the game, got %d steps", len(g.steps))
	}

	m = update(t, m, tick(m))
	if len(g.steps) != 1 {
		t.Fatalf("Expected 1 step, got %d", len(g.steps))
	}
	if got := g.steps[0].LastDirection(); got != core.ActionLeft {
		t.Errorf("LastDirection = %v, want Left", got)
	}

	update(t, m, tick(m))
	if len(g.steps) != 2 || len(g.steps[1].Actions) != 0 {
		t.Errorf("Input should be cleared after each tick: %+v", g.steps)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	update(t, m, TickMsg{Time: time.Now(), ID: m.loopID + 1000})
	if len(g.steps) != 0 {
		t.Errorf("Tick from another loop stepped the game")
	}
}

func TestModelRestartPassesThrough(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	m := newTestModel(g, Options{})

	m = update(t, m, tick(m))
	if !m.State().GameOver {
		t.Fatal("Expected game over after first step")
	}

	m = update(t, m, keyRune('r'))
	m = update(t, m, tick(m))

	if g.resets != 1 {
		t.Errorf("Restart must go through Step, not Reset (resets = %d)", g.resets)
	}
	if m.State().GameOver {
		t.Error("Expected a running round after restart")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resets != 1 {
		t.Errorf("Resize reset the game (resets = %d)", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("Screen = %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelRecordsRounds(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "rounds.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{endAfter: 2}
	m := newTestModel(g, Options{Store: store})

	m = update(t, m, tick(m))
	m = update(t, m, tick(m))
	m = update(t, m, tick(m)) // game over ticks do not record again

	if m.Rounds() != 1 {
		t.Errorf("Rounds() = %d, want 1", m.Rounds())
	}
	rounds, err := store.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("Expected 1 recorded round, got %d", len(rounds))
	}
	if rounds[0].Variant != "fake" || rounds[0].Length != 7 || rounds[0].Collision != "self" {
		t.Errorf("Unexpected round: %+v", rounds[0])
	}
}

func TestModelQuitAndBack(t *testing.T) {
	g := &fakeGame{endAfter: 1}

	m := newTestModel(g, Options{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() {
		t.Error("ctrl+c should quit")
	}

	g = &fakeGame{endAfter: 1}
	m = newTestModel(g, Options{Menu: true})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("Back must be ignored while a round is running")
	}
	m = update(t, m, tick(m))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Back after game over should return to menu")
	}

	g = &fakeGame{endAfter: 1}
	m = newTestModel(g, Options{})
	m = update(t, m, tick(m))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("Back without a menu should do nothing")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&fakeGame{}, Options{})
	out := m.View()

	if !strings.Contains(out, "fake") {
		t.Error("View should contain the game frame")
	}
	if !strings.Contains(out, "quit") {
		t.Error("View should contain the help bar")
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{9, time.Second / 9},
		{60, time.Second / 60},
		{0, time.Second / core.DefaultTickRate},
		{-3, time.Second / core.DefaultTickRate},
	}

	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.want {
			t.Errorf("tickInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}

// brokenConfigGame reports a config fallback on every Reset.
type brokenConfigGame struct {
	fakeGame
}

func (g *brokenConfigGame) ConfigError() error {
	return errors.New("bad snake.yaml")
}

func TestInitLogsConfigFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	m := NewModel(&brokenConfigGame{}, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 9, Seed: 1},
		Options{Logger: logger})
	m.Init()

	if !strings.Contains(buf.String(), "bad snake.yaml") {
		t.Errorf("Expected the config error in the log, got %q", buf.String())
	}

	buf.Reset()
	m = NewModel(&fakeGame{}, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 9, Seed: 1},
		Options{Logger: logger})
	m.Init()
	if strings.Contains(buf.String(), "config ignored") {
		t.Errorf("Unexpected warning for a game without config errors: %q", buf.String())
	}
}
