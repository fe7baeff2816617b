package score

import (
	"fmt"
	"sync"

	"bowling/internal/frame"
	"bowling/internal/validation"
)

// Calculator computes per-frame bowling scores.
// Every frame is scored independently from the full frame list, so a game in
// progress yields determined scores for settled frames and Undetermined for
// strikes and spares whose bonus balls are not recorded yet.
// Calculator keeps no state between calls and is safe for concurrent use.
type Calculator struct {
	// validator - rejects structurally illegal input before scoring.
	validator Validator
}

// FrameScores validates g and returns one score per frame, index-aligned with g.
// Invalid input returns nil and the validation error; no partial result is produced.
// An empty game returns an empty slice.
func (c *Calculator) FrameScores(g frame.Game) ([]Score, error) {
	if err := c.validator.Validate(g); err != nil {
		return nil, err
	}

	scores := make([]Score, len(g))
	for i := range g {
		scores[i] = scoreAt(g, i)
	}
	return scores, nil
}

// scoreAt applies the frame rule to index i:
//   - tenth frame: sum of its balls
//   - strike: 10 plus the next two balls, taken from one or two following frames;
//     three strikes in a row score 30, and a strike followed by a strike and a
//     non-strike frame scores 20 plus that frame's first two balls. A strike
//     followed by a strike stays undetermined until a third frame exists, so a
//     ninth-frame strike followed by a tenth-frame strike is never determined
//   - spare: 10 plus the first ball of the next frame
//   - open frame: sum of its balls
func scoreAt(g frame.Game, i int) Score {
	current := g[i]
	if frame.IsFinal(i) {
		return Points(current.Pins())
	}

	switch {
	case current.IsStrike():
		next, found := g.At(i + 1)
		if !found {
			return Undetermined
		}
		if !next.IsStrike() {
			return Points(frame.MaxPins + next.Sum(2))
		}
		afterNext, found := g.At(i + 2)
		if !found {
			return Undetermined
		}
		if afterNext.IsStrike() {
			return Points(3 * frame.MaxPins)
		}
		return Points(2*frame.MaxPins + afterNext.Sum(2))

	case current.IsSpare():
		next, found := g.At(i + 1)
		if !found {
			return Undetermined
		}
		return Points(frame.MaxPins + next.First())
	}

	return Points(current.Pins())
}

// NewCalculator creates a calculator that validates input with validator.
func NewCalculator(validator Validator) *Calculator {
	return &Calculator{validator: validator}
}

var defaultCalculator = sync.OnceValues(func() (*Calculator, error) {
	validator, err := validation.Default()
	if err != nil {
		return nil, fmt.Errorf("unable to initialize default validation rules: %w", err)
	}
	return NewCalculator(validator), nil
})

// Default returns the calculator backed by the embedded validation rules.
func Default() (*Calculator, error) {
	return defaultCalculator()
}

// FrameScores scores g with the default calculator.
func FrameScores(g frame.Game) ([]Score, error) {
	calculator, err := Default()
	if err != nil {
		return nil, err
	}
	return calculator.FrameScores(g)
}
