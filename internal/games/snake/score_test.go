package snake

import "testing"

func TestScoreAdd(t *testing.T) {
	s := Score{HighScore: 2}

	s.Add()
	s.Add()
	if s.Beat {
		t.Error("Matching the high score is not beating it")
	}

	s.Add()
	if s.Score != 3 || s.HighScore != 3 || !s.Beat {
		t.Errorf("After passing the best: %+v", s)
	}
}

func TestScoreResetRound(t *testing.T) {
	s := Score{}
	for range 4 {
		s.Add()
	}
	s.ResetRound()

	if s.Score != 0 || s.Beat {
		t.Errorf("Round fields not cleared: %+v", s)
	}
	if s.HighScore != 4 {
		t.Errorf("HighScore = %d, want 4", s.HighScore)
	}

	s.Add()
	if s.Beat || s.HighScore != 4 {
		t.Errorf("A lower round must not move the best: %+v", s)
	}
}

func TestStatusString(t *testing.T) {
	if StatusRunning.String() != "running" || StatusGameOver.String() != "game_over" {
		t.Error("unexpected status names")
	}
}
