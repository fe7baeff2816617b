package score

import (
	"encoding/json"
	"strconv"
)

// Score is the score of a single frame.
// A frame whose bonus balls have not been thrown yet is undetermined;
// its Points are meaningless and always zero.
type Score struct {
	Points     int
	Determined bool
}

// Undetermined is the score of a frame still waiting for bonus balls.
var Undetermined = Score{}

// Points returns a determined score.
func Points(p int) Score {
	return Score{Points: p, Determined: true}
}

// Value returns the points and whether the score is determined.
func (s Score) Value() (int, bool) {
	return s.Points, s.Determined
}

// String renders an undetermined score as "-".
func (s Score) String() string {
	if !s.Determined {
		return "-"
	}
	return strconv.Itoa(s.Points)
}

// MarshalJSON encodes a determined score as a number and an undetermined one as null.
func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Determined {
		return []byte("null"), nil
	}
	return json.Marshal(s.Points)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (s *Score) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Undetermined
		return nil
	}
	var p int
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Points(p)
	return nil
}
