package core

import "fmt"

// ErrorMarker is what the display shows for any failed evaluation.
const ErrorMarker = "Syntax ERROR"

// SyntaxError reports an expression the evaluator could not parse.
type SyntaxError struct {
	Expr string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error in %q: %v", e.Expr, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// EvaluationError reports a well-formed expression that could not be
// computed: an undefined name, a domain error, a type mismatch or a result
// that is not a finite number.
type EvaluationError struct {
	Expr string
	Err  error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("cannot evaluate %q: %v", e.Expr, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

// ConversionError reports a decimal/fraction toggle on a value that is not
// a plain number.
type ConversionError struct {
	Value string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q: %v", e.Value, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
