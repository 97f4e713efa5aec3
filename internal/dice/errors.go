package dice

import "fmt"

// ParseError reports expression text that could not be parsed, either
// because it is malformed or because it exceeds resource limits. The
// original input is preserved so callers can show it back to the user.
type ParseError struct {
	// Input is the original expression text
	Input string

	// Token is the offending piece of the input, when one can be
	// isolated
	Token string

	// Reason describes what is wrong with it
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("invalid dice expression %q: %q %s", e.Input, e.Token, e.Reason)
	}
	return fmt.Sprintf("invalid dice expression %q: %s", e.Input, e.Reason)
}

// EvaluationError reports an expression and mode that cannot be
// evaluated together, or an evaluation attempted without a usable
// random source.
type EvaluationError struct {
	// Expression is the expression text as the evaluator saw it
	Expression string

	// Mode is the requested roll mode
	Mode RollMode

	// Reason describes the incompatibility
	Reason string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("cannot evaluate %q as %s: %s", e.Expression, e.Mode, e.Reason)
}
