package validation

import (
	"bowling/internal/frame"

	"github.com/google/cel-go/cel"
)

// NewFramesEnv declares the variables visible to validation rules:
//   - frames: every recorded frame, list(list(int))
//   - count: number of frames
//   - head: the frames before the tenth one, list(list(int))
//   - tenth: balls of the tenth frame, empty when the game has fewer frames
func NewFramesEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("frames", cel.ListType(cel.ListType(cel.IntType))),
		cel.Variable("count", cel.IntType),
		cel.Variable("head", cel.ListType(cel.ListType(cel.IntType))),
		cel.Variable("tenth", cel.ListType(cel.IntType)),
	)
	if err != nil {
		return nil, err
	}
	return env, nil
}

// activation converts a game into the variables declared by NewFramesEnv.
func activation(g frame.Game) map[string]any {
	frames := make([][]int64, len(g))
	for i, f := range g {
		balls := make([]int64, len(f))
		for j, pins := range f {
			balls[j] = int64(pins)
		}
		frames[i] = balls
	}

	head := frames
	tenth := []int64{}
	if len(frames) > frame.FinalIndex {
		head = frames[:frame.FinalIndex]
		tenth = frames[frame.FinalIndex]
	}

	return map[string]any{
		"frames": frames,
		"count":  int64(len(frames)),
		"head":   head,
		"tenth":  tenth,
	}
}
