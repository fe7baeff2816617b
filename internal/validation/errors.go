package validation

import "errors"

var (
	// ErrInvalidFrames is matched by every validation failure.
	ErrInvalidFrames = errors.New("invalid frames")

	ErrFrameCountExceeded = errors.New("frame count exceeded")
	ErrTooManyBalls       = errors.New("too many balls")
	ErrTooFewBalls        = errors.New("too few balls")
	ErrPinCountOutOfRange = errors.New("pin count out of range")
	ErrFinalFrameOverflow = errors.New("final frame overflow")
)

// sentinels maps rule names of the embedded rule set to their errors.
var sentinels = map[string]error{
	"frame_count_exceeded":   ErrFrameCountExceeded,
	"too_many_balls":         ErrTooManyBalls,
	"too_few_balls":          ErrTooFewBalls,
	"pin_count_out_of_range": ErrPinCountOutOfRange,
	"final_frame_overflow":   ErrFinalFrameOverflow,
}

// Error is returned when frames violate a validation rule.
// It matches ErrInvalidFrames and, for known rule names, the rule's sentinel error.
type Error struct {
	Rule    string
	Message string
}

// Error returns the rule message, falling back to the rule name.
func (e *Error) Error() string {
	if e.Message == "" {
		return "invalid frames: " + e.Rule
	}
	return e.Message
}

// Is reports whether target is ErrInvalidFrames or the sentinel of the violated rule.
func (e *Error) Is(target error) bool {
	if target == ErrInvalidFrames {
		return true
	}
	sentinel, found := sentinels[e.Rule]
	return found && sentinel == target
}

// NewError creates an Error for the violated rule.
func NewError(rule, message string) *Error {
	return &Error{Rule: rule, Message: message}
}
