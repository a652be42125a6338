package snake

// Status is the round lifecycle state.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

func (s Status) String() string {
	if s == StatusGameOver {
		return "game_over"
	}
	return "running"
}

// Score tracks the current round score and the process-lifetime best.
type Score struct {
	Score     int
	HighScore int
	// Beat is set once Score passes the previous HighScore and stays set
	// until the next round starts.
	Beat bool
}

// Add counts one eaten fruit.
func (s *Score) Add() {
	s.Score++
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		s.Beat = true
	}
}

// ResetRound clears the round score and Beat, keeping HighScore.
func (s *Score) ResetRound() {
	s.Score = 0
	s.Beat = false
}
