package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	def := DefaultSnakeConfig()
	if cfg.Board != def.Board {
		t.Errorf("board = %+v, expected %+v", cfg.Board, def.Board)
	}
	if len(cfg.Snake.Start) != len(def.Snake.Start) {
		t.Fatalf("start length = %d, expected %d", len(cfg.Snake.Start), len(def.Snake.Start))
	}
	for i := range def.Snake.Start {
		if cfg.Snake.Start[i] != def.Snake.Start[i] {
			t.Errorf("start[%d] = %v, expected %v", i, cfg.Snake.Start[i], def.Snake.Start[i])
		}
	}
	if cfg.Snake.Direction != def.Snake.Direction {
		t.Errorf("direction = %q, expected %q", cfg.Snake.Direction, def.Snake.Direction)
	}
	if cfg.Fruit != def.Fruit {
		t.Errorf("fruit = %+v, expected %+v", cfg.Fruit, def.Fruit)
	}
	if cfg.Timing != def.Timing {
		t.Errorf("timing = %+v, expected %+v", cfg.Timing, def.Timing)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte(`
board:
  width: 400
  height: 300
fruit:
  overlap: allow
timing:
  tick_rate: 12
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	if cfg.Board.Width != 400 || cfg.Board.Height != 300 {
		t.Errorf("board = %dx%d, expected 400x300", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Board.CellSize != 25 {
		t.Errorf("cell size should keep default 25, got %d", cfg.Board.CellSize)
	}
	if cfg.Fruit.Overlap != "allow" {
		t.Errorf("overlap = %q, expected allow", cfg.Fruit.Overlap)
	}
	if cfg.Timing.TickRate != 12 {
		t.Errorf("tick rate = %d, expected 12", cfg.Timing.TickRate)
	}
	if len(cfg.Snake.Start) != 4 {
		t.Errorf("start body should keep default, got %d cells", len(cfg.Snake.Start))
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  cell_size: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSnake(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom config should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		ok     bool
	}{
		{"default", func(*SnakeConfig) {}, true},
		{"zero cell size", func(c *SnakeConfig) { c.Board.CellSize = 0 }, false},
		{"negative width", func(c *SnakeConfig) { c.Board.Width = -25 }, false},
		{"unaligned board", func(c *SnakeConfig) { c.Board.Width = 810 }, false},
		{"no interior", func(c *SnakeConfig) { c.Board.Height = 50 }, false},
		{"short body", func(c *SnakeConfig) { c.Snake.Start = c.Snake.Start[:3] }, false},
		{"unaligned start", func(c *SnakeConfig) { c.Snake.Start[0] = [2]int{51, 50} }, false},
		{"start outside", func(c *SnakeConfig) { c.Snake.Start[0] = [2]int{-25, 50} }, false},
		{"repeated start", func(c *SnakeConfig) { c.Snake.Start[1] = c.Snake.Start[0] }, false},
		{"gap in start", func(c *SnakeConfig) { c.Snake.Start[0] = [2]int{25, 50} }, false},
		{"diagonal start", func(c *SnakeConfig) { c.Snake.Start[0] = [2]int{50, 75} }, false},
		{"heading into neck", func(c *SnakeConfig) { c.Snake.Direction = "left" }, false},
		{"turned start", func(c *SnakeConfig) {
			c.Snake.Start = [][2]int{{50, 50}, {75, 50}, {75, 75}, {50, 75}}
			c.Snake.Direction = "up"
		}, true},
		{"bad direction", func(c *SnakeConfig) { c.Snake.Direction = "north" }, false},
		{"direction case", func(c *SnakeConfig) { c.Snake.Direction = " Up " }, true},
		{"bad overlap", func(c *SnakeConfig) { c.Fruit.Overlap = "maybe" }, false},
		{"zero attempts", func(c *SnakeConfig) { c.Fruit.MaxAttempts = 0 }, false},
		{"zero tick rate", func(c *SnakeConfig) { c.Timing.TickRate = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok {
				if err == nil {
					t.Error("Validate() = nil, expected error")
				} else if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("error %v should wrap ErrInvalidConfig", err)
				}
			}
		})
	}
}
