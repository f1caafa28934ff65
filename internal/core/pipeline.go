package core

import (
	"errors"
	"strings"

	"github.com/Rorical/RoriCalc/internal/backend"
	"github.com/Rorical/RoriCalc/internal/calculus"
	"github.com/Rorical/RoriCalc/internal/memory"
	"github.com/Rorical/RoriCalc/internal/numfmt"
	"github.com/Rorical/RoriCalc/internal/rewrite"
)

// Pipeline turns an internal expression into a display string: rewrite,
// build the scope, evaluate, format. It never changes the memory bank;
// committing a result is up to the caller.
type Pipeline struct {
	backend *backend.Backend
	helpers calculus.Helpers
}

// NewPipeline returns a pipeline over b. A nil b gets the default backend.
func NewPipeline(b *backend.Backend) *Pipeline {
	if b == nil {
		b = backend.New(nil)
	}
	return &Pipeline{
		backend: b,
		helpers: calculus.NewHelpers(b),
	}
}

func (p *Pipeline) Backend() *backend.Backend {
	return p.backend
}

// Scope lists every binding an expression can see: the registers, Ans,
// the calculus helpers and the angle unit for the trigonometric functions.
func (p *Pipeline) Scope(bank *memory.Bank, angle AngleMode) backend.Scope {
	return backend.Scope{
		Registers: bank.Bindings(),
		Ans:       bank.AnswerValue(),
		AngleUnit: angle.Unit(),
		Integrate: p.helpers.Integrate,
		Deriv:     p.helpers.Deriv,
	}
}

// Evaluate computes internal and returns the formatted result. Errors are
// *SyntaxError or *EvaluationError.
func (p *Pipeline) Evaluate(internal string, bank *memory.Bank, angle AngleMode) (string, error) {
	rewritten, err := rewrite.Expression(internal)
	if err != nil {
		return "", &SyntaxError{Expr: internal, Err: err}
	}
	if strings.TrimSpace(rewritten) == "" {
		return "", &SyntaxError{Expr: internal, Err: errors.New("empty expression")}
	}

	out, err := p.backend.Evaluate(rewritten, p.Scope(bank, angle))
	if err != nil {
		if errors.Is(err, backend.ErrSyntax) {
			return "", &SyntaxError{Expr: rewritten, Err: err}
		}
		return "", &EvaluationError{Expr: rewritten, Err: err}
	}

	s, err := numfmt.Result(out)
	if err != nil {
		return "", &EvaluationError{Expr: rewritten, Err: err}
	}
	return s, nil
}

// Function compiles internal as a function of the X register, for tables.
// The scope is captured once; later register changes are not seen.
func (p *Pipeline) Function(internal string, bank *memory.Bank, angle AngleMode) (calculus.Func, error) {
	rewritten, err := rewrite.Expression(internal)
	if err != nil {
		return nil, &SyntaxError{Expr: internal, Err: err}
	}
	if strings.TrimSpace(rewritten) == "" {
		return nil, &SyntaxError{Expr: internal, Err: errors.New("empty expression")}
	}
	scope := p.Scope(bank, angle)
	return func(x float64) (float64, error) {
		s := scope
		s.Registers = make(map[string]any, len(scope.Registers)+1)
		for k, v := range scope.Registers {
			s.Registers[k] = v
		}
		s.Registers["X"] = x
		out, err := p.backend.Evaluate(rewritten, s)
		if err != nil {
			if errors.Is(err, backend.ErrSyntax) {
				return 0, &SyntaxError{Expr: rewritten, Err: err}
			}
			return 0, &EvaluationError{Expr: rewritten, Err: err}
		}
		v, err := backend.ToNumber(out)
		if err != nil {
			return 0, &EvaluationError{Expr: rewritten, Err: err}
		}
		return v, nil
	}, nil
}
