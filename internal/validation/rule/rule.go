package rule

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

// Rule represents a structural check over recorded frames.
// The When field contains a CEL expression that is true when the input violates the rule.
// Name identifies the violation, Message describes it to the caller.
// The CEL program is compiled when Init is called and used during evaluation.
type Rule struct {
	// Name - stable identifier of the violation, e.g. "frame_count_exceeded".
	Name string `yaml:"name"`
	// When - CEL expression defining the violation condition.
	// Must return a boolean value.
	When string `yaml:"when"`
	// Message - human readable description reported when the rule is violated.
	Message string `yaml:"message"`
	// program - compiled CEL program used to execute the condition.
	program cel.Program
}

// Init compiles the string expression in the When field into an executable CEL program
// using the provided env environment.
// In case of syntax or semantic errors, or when the expression is not boolean,
// returns the corresponding error.
// After successful initialization, the rule is ready for use in Eval.
func (r *Rule) Init(env *cel.Env) error {
	if r.Name == "" {
		return errors.New("rule name must be specified")
	}

	ast, iss := env.Parse(r.When)
	if iss.Err() != nil {
		return fmt.Errorf("rule %s: %w", r.Name, iss.Err())
	}

	checked, iss := env.Check(ast)
	if iss.Err() != nil {
		return fmt.Errorf("rule %s: %w", r.Name, iss.Err())
	}

	if !checked.OutputType().IsExactType(cel.BoolType) {
		return fmt.Errorf("rule %s: expression must be boolean, got %s", r.Name, checked.OutputType())
	}

	var err error
	r.program, err = env.Program(checked)
	if err != nil {
		return fmt.Errorf("rule %s: %w", r.Name, err)
	}

	return nil
}

// Eval executes the compiled rule against the provided variables.
// Returns true if the condition holds, i.e. the input violates the rule.
// An execution error, e.g. an out of range index, is returned to the caller.
func (r *Rule) Eval(vars map[string]any) (bool, error) {
	if r.program == nil {
		return false, fmt.Errorf("rule %s: not initialized", r.Name)
	}

	result, _, err := r.program.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("rule %s: %w", r.Name, err)
	}

	violated, ok := result.Value().(bool)
	if !ok {
		return false, fmt.Errorf("rule %s: non-boolean result %v", r.Name, result.Value())
	}

	return violated, nil
}
