package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/grid-snake/internal/config"
	"github.com/vovakirdan/grid-snake/internal/core"
	"github.com/vovakirdan/grid-snake/internal/registry"
)

// Variant names a registered flavour of the game.
type Variant struct {
	ID    string
	Title string
	// Classic forces OverlapAllow regardless of configuration, reproducing
	// the classic placement where fruit may appear under the snake.
	Classic bool
}

// Registered variants.
var (
	Standard = Variant{ID: "snake", Title: "Snake"}
	Classic  = Variant{ID: "snake_classic", Title: "Snake (Classic)", Classic: true}
)

// configPath is the YAML path set from the CLI; empty uses the search order.
var configPath string

// SetConfigPath sets the custom config path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register(Standard.ID, func() registry.Game {
		return New()
	})
	registry.Register(Classic.ID, func() registry.Game {
		return NewClassic()
	})
}

// settings is the validated, typed form of config.SnakeConfig.
type settings struct {
	bounds      Bounds
	start       []Position
	direction   Direction
	policy      OverlapPolicy
	maxAttempts int
}

func settingsFrom(v Variant, cfg config.SnakeConfig) (settings, error) {
	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}

	s := settings{
		bounds: Bounds{
			Width:    cfg.Board.Width,
			Height:   cfg.Board.Height,
			CellSize: cfg.Board.CellSize,
		},
		maxAttempts: cfg.Fruit.MaxAttempts,
	}
	if err := s.bounds.Validate(); err != nil {
		return settings{}, err
	}

	var err error
	if s.direction, err = ParseDirection(cfg.Snake.Direction); err != nil {
		return settings{}, err
	}
	if s.policy, err = ParseOverlapPolicy(cfg.Fruit.Overlap); err != nil {
		return settings{}, err
	}
	if v.Classic {
		s.policy = OverlapAllow
	}

	s.start = make([]Position, len(cfg.Snake.Start))
	for i, c := range cfg.Snake.Start {
		s.start[i] = Position{X: c[0], Y: c[1]}
	}
	return s, nil
}

// Game is the grid simulation. It owns every piece of round state; renderers
// read it through Snapshot or Render and never mutate it.
type Game struct {
	variant    Variant
	settings   settings
	configured bool  // settings supplied explicitly, skip config loading
	configErr  error // why the last Reset fell back to defaults

	rng     *rand.Rand
	spawner *Spawner

	body       *Body
	direction  Direction
	controller Controller
	fruit      Fruit
	score      Score
	status     Status
	collision  Collision // Cause of the last GameOver
	paused     bool

	tick       uint64 // Steps since Reset
	roundTicks uint64 // Running steps in the current round

	screenW int
	screenH int
}

// New creates a Snake game that avoids spawning fruit under the body.
func New() *Game {
	return &Game{variant: Standard}
}

// NewClassic creates a Snake game that allows fruit under the body.
func NewClassic() *Game {
	return &Game{variant: Classic}
}

// NewWithConfig creates a game with explicit configuration instead of the
// config search path.
func NewWithConfig(v Variant, cfg config.SnakeConfig) (*Game, error) {
	s, err := settingsFrom(v, cfg)
	if err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	return &Game{variant: v, settings: s, configured: true}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// ConfigError reports why the last Reset fell back to the default
// configuration, or nil if the configured file was used.
func (g *Game) ConfigError() error {
	return g.configErr
}

// Bounds returns the board geometry shared with renderers and input mappers.
func (g *Game) Bounds() Bounds {
	return g.settings.bounds
}

// Reset starts a fresh session: new RNG, high score back to zero, new round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.configured {
		g.settings, g.configErr = g.loadSettings()
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.spawner = NewSpawner(g.rng, g.settings.policy, g.settings.maxAttempts)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.score = Score{}

	g.startRound()
}

// loadSettings reads the config search path. A missing or invalid file falls
// back to the defaults and the cause is returned alongside them.
func (g *Game) loadSettings() (settings, error) {
	cfg, err := config.LoadSnake(configPath)
	if err == nil {
		s, serr := settingsFrom(g.variant, cfg)
		if serr == nil {
			return s, nil
		}
		err = serr
	}

	s, defErr := settingsFrom(g.variant, config.DefaultSnakeConfig())
	if defErr != nil {
		panic(fmt.Sprintf("snake: default config is invalid: %v", defErr))
	}
	return s, fmt.Errorf("snake: using default config: %w", err)
}

// startRound resets every round field except the high score.
func (g *Game) startRound() {
	g.body = NewBody(g.settings.start...)
	g.direction = g.settings.direction
	g.controller.Reset()
	g.fruit = Fruit{}
	g.score.ResetRound()
	g.status = StatusRunning
	g.collision = CollisionNone
	g.paused = false
	g.roundTicks = 0

	g.spawner.MaybeRespawn(&g.fruit, g.settings.bounds, g.body)
}

// RequestDirection buffers a direction change for the next aligned tick.
func (g *Game) RequestDirection(d Direction) {
	g.controller.RequestDirection(d)
}

// Restart begins a new round if the current one is over and reports whether
// it did. Requests while Running are ignored.
func (g *Game) Restart() bool {
	if g.status != StatusGameOver {
		return false
	}
	g.startRound()
	return true
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.status == StatusGameOver {
		if input.Has(core.ActionRestart) {
			g.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if d, ok := DirectionFromAction(input.LastDirection()); ok {
		g.controller.RequestDirection(d)
	}

	result := core.StepResult{}
	if g.advance() {
		result.Ended = &core.RoundSummary{
			Score:  g.score.Score,
			Length: g.body.Len(),
			Ticks:  g.roundTicks,
			Cause:  g.collision.String(),
		}
	}
	result.State = g.State()
	return result
}

// advance runs one Running tick and reports whether the round ended.
// Fruit eaten on tick t is replaced at the start of tick t+1, so the snapshot
// taken after the eating tick shows it absent.
func (g *Game) advance() bool {
	g.roundTicks++
	cell := g.settings.bounds.CellSize

	g.spawner.MaybeRespawn(&g.fruit, g.settings.bounds, g.body)

	g.direction = g.controller.Resolve(g.direction, g.body.Head(), cell)
	newHead := NextHead(g.body, g.direction, cell)

	// Detect sees the body as it was before this move, so it runs ahead of
	// Advance; its result applies after movement and scoring.
	hit := Detect(newHead, g.body, g.settings.bounds)
	grew := CheckConsumed(newHead, g.fruit)

	Advance(g.body, g.direction, cell, grew)

	if grew {
		g.fruit.Present = false
		g.score.Add()
	}

	if hit != CollisionNone {
		g.status = StatusGameOver
		g.collision = hit
		return true
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score.Score,
		HighScore: g.score.HighScore,
		Beat:      g.score.Beat,
		GameOver:  g.status == StatusGameOver,
		Paused:    g.paused,
	}
}
