package score

import "bowling/internal/frame"

// RunningTotals returns the cumulative score after each frame.
// Once a frame is undetermined every later total is undetermined as well,
// since it would depend on the missing bonus balls.
func RunningTotals(scores []Score) []Score {
	totals := make([]Score, len(scores))
	sum := 0
	for i, s := range scores {
		if !s.Determined {
			for j := i; j < len(totals); j++ {
				totals[j] = Undetermined
			}
			break
		}
		sum += s.Points
		totals[i] = Points(sum)
	}
	return totals
}

// Total returns the sum of all frame scores.
// The boolean is false when any frame is still undetermined.
func Total(scores []Score) (int, bool) {
	sum := 0
	for _, s := range scores {
		if !s.Determined {
			return 0, false
		}
		sum += s.Points
	}
	return sum, true
}

// Card is a score sheet of one game.
type Card struct {
	// Frames - recorded balls, as given.
	Frames frame.Game `json:"frames"`
	// Scores - score of each frame, index-aligned with Frames.
	Scores []Score `json:"scores"`
	// Totals - running total after each frame.
	Totals []Score `json:"totals"`
	// Total - score of the whole game so far; undetermined while any frame is.
	Total Score `json:"total"`
	// Complete - the game has ten frames and every frame score is settled.
	Complete bool `json:"complete"`
}

// Card scores g and assembles its score sheet.
func (c *Calculator) Card(g frame.Game) (*Card, error) {
	scores, err := c.FrameScores(g)
	if err != nil {
		return nil, err
	}

	card := Card{
		Frames: g,
		Scores: scores,
		Totals: RunningTotals(scores),
	}
	if total, ok := Total(scores); ok {
		card.Total = Points(total)
		card.Complete = len(g) == frame.MaxFrames
	}
	return &card, nil
}
