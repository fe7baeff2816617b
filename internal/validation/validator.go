package validation

import (
	_ "embed"
	"fmt"
	"log/slog"
	"sync"

	"bowling/internal/frame"
	"bowling/internal/validation/rule"
)

//go:embed rules.yaml
var defaultRules []byte

// Validator checks the structural legality of frames before they are scored.
// Rules are applied in declaration order and the first violation is returned.
// A Validator is immutable after construction and safe for concurrent use.
type Validator struct {
	rules []rule.Rule
}

// Validate returns nil when g may be scored, otherwise an *Error naming the violated rule.
// An empty game is always valid.
func (v *Validator) Validate(g frame.Game) error {
	if len(g) == 0 {
		return nil
	}

	vars := activation(g)
	for i := range v.rules {
		violated, err := v.rules[i].Eval(vars)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidFrames, err)
		}
		if violated {
			slog.Debug("frames rejected", "rule", v.rules[i].Name, "frames", len(g))
			return NewError(v.rules[i].Name, v.rules[i].Message)
		}
	}

	return nil
}

// Rules returns a copy of the active rules in evaluation order.
func (v *Validator) Rules() []rule.Rule {
	rules := make([]rule.Rule, len(v.rules))
	copy(rules, v.rules)
	return rules
}

// New creates a validator from already initialized rules.
func New(rules []rule.Rule) *Validator {
	return &Validator{rules: rules}
}

// Load compiles a YAML rule script into a validator.
func Load(script []byte) (*Validator, error) {
	rules, err := rule.Load(script, NewFramesEnv)
	if err != nil {
		return nil, err
	}
	return New(rules), nil
}

// LoadFromFile compiles the rule script stored in file into a validator.
func LoadFromFile(file string) (*Validator, error) {
	rules, err := rule.LoadFromFile(file, NewFramesEnv)
	if err != nil {
		return nil, fmt.Errorf("unable to load rules %s: %w", file, err)
	}
	return New(rules), nil
}

var loadDefault = sync.OnceValues(func() (*Validator, error) {
	return Load(defaultRules)
})

// Default returns the validator built from the embedded rule set.
// The rules are compiled once per process.
func Default() (*Validator, error) {
	return loadDefault()
}
