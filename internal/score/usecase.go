package score

import "bowling/internal/frame"

// Validator checks that a game is structurally legal before it is scored.
type Validator interface {
	Validate(g frame.Game) error
}

// FrameScorer produces index-aligned scores for every frame of a game.
type FrameScorer interface {
	FrameScores(g frame.Game) ([]Score, error)
}
