package frame

const (
	// MaxFrames - number of frames in a complete game.
	MaxFrames = 10
	// FinalIndex - index of the tenth frame, which may hold a bonus ball.
	FinalIndex = MaxFrames - 1
	// MaxPins - pins standing at the start of a frame.
	MaxPins = 10
)

// Frame holds the pin counts of the balls thrown in one turn, in throw order.
// Frames 1-9 are recorded with two balls; a strike keeps a zero filler as its
// second ball. The tenth frame holds two balls, or three after a strike or spare.
type Frame []int

// First returns the pin count of the first ball, or 0 for an empty frame.
func (f Frame) First() int {
	if len(f) == 0 {
		return 0
	}
	return f[0]
}

// IsStrike reports whether all pins fell on the first ball.
func (f Frame) IsStrike() bool {
	return len(f) > 0 && f[0] == MaxPins
}

// IsSpare reports whether all pins fell across the first two balls
// without a strike on the first one.
func (f Frame) IsSpare() bool {
	return len(f) > 1 && !f.IsStrike() && f[0]+f[1] == MaxPins
}

// Pins returns the sum of every ball in the frame.
func (f Frame) Pins() int {
	total := 0
	for _, pins := range f {
		total += pins
	}
	return total
}

// Sum returns the pins of the first n balls, or of every ball when the frame is shorter.
func (f Frame) Sum(n int) int {
	if n > len(f) {
		n = len(f)
	}
	return f[:n].Pins()
}

// Game is an ordered sequence of frames; an empty game means nothing was played yet.
type Game []Frame

// IsFinal reports whether index i is the tenth frame.
func IsFinal(i int) bool {
	return i == FinalIndex
}

// At returns the frame at index i and whether it exists.
func (g Game) At(i int) (Frame, bool) {
	if i < 0 || i >= len(g) {
		return nil, false
	}
	return g[i], true
}
