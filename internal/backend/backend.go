// Package backend evaluates rewritten calculator expressions with
// expr-lang/expr. Every callable name is registered explicitly, so an
// expression can reach nothing beyond the registry and the scope it is given.
package backend

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/parser"

	"github.com/Rorical/RoriCalc/internal/calculus"
	"github.com/Rorical/RoriCalc/internal/rewrite"
)

var (
	// ErrSyntax marks text the parser rejects.
	ErrSyntax = errors.New("syntax error")
	// ErrEvaluation marks a well-formed expression that cannot be computed:
	// unknown names, type mismatches and domain errors raised by functions.
	ErrEvaluation = errors.New("evaluation error")
)

// Constants bound in every scope, integrands included.
var Constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Scope is everything an expression may refer to besides the registry.
type Scope struct {
	// Registers maps register names to float64, *mat.Dense or *mat.VecDense.
	Registers map[string]any
	// Ans is the previous result, a float64 or a matrix value.
	Ans any
	// AngleUnit is the size of one angle unit in radians. Zero means radians.
	AngleUnit float64
	// Integrate and Deriv back the calculus keys. Nil leaves them undefined.
	Integrate func(body string, a, b float64) (float64, error)
	Deriv     func(body string, x float64) (float64, error)
}

// Backend compiles and runs expressions against a function registry.
type Backend struct {
	registry *Registry
}

// New returns a Backend over r. A nil r gets the default math library.
func New(r *Registry) *Backend {
	if r == nil {
		r = NewRegistry()
		RegisterMathFunctions(r)
	}
	return &Backend{registry: r}
}

func (b *Backend) Registry() *Registry {
	return b.registry
}

// Evaluate computes expression in scope and returns the raw result.
func (b *Backend) Evaluate(expression string, scope Scope) (any, error) {
	expression, err := parse(expression)
	if err != nil {
		return nil, err
	}

	env := make(map[string]any, len(scope.Registers)+len(Constants)+1)
	for name, v := range Constants {
		env[name] = v
	}
	for name, v := range scope.Registers {
		env[name] = v
	}
	if scope.Ans != nil {
		env["Ans"] = scope.Ans
	} else {
		env["Ans"] = 0.0
	}

	opts := append(b.options(env), angleFunctions(scope.AngleUnit)...)
	opts = append(opts, calculusFunctions(scope)...)

	program, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEvaluation, err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEvaluation, err)
	}
	return out, nil
}

// Compile prepares body as a function of X. Integrands see X, the
// constants and the registry, with trigonometry always in radians.
func (b *Backend) Compile(body string) (calculus.Func, error) {
	env := func(x float64) map[string]any {
		m := map[string]any{"X": x}
		for name, v := range Constants {
			m[name] = v
		}
		return m
	}
	body, err := parse(body)
	if err != nil {
		return nil, err
	}
	program, err := expr.Compile(body, b.options(env(0))...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEvaluation, err)
	}
	return func(x float64) (float64, error) {
		out, err := expr.Run(program, env(x))
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrEvaluation, err)
		}
		return ToNumber(out)
	}, nil
}

// parse checks the syntax of text and returns it with integer literals
// beyond the int64 range widened to floats, which the parser would reject.
func parse(text string) (string, error) {
	toks, err := rewrite.Lex(text)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.Text)
		if t.Kind == rewrite.Number && !strings.ContainsAny(t.Text, ".e") {
			if _, err := strconv.ParseInt(t.Text, 10, 64); err != nil {
				sb.WriteString(".0")
			}
		}
	}
	text = sb.String()
	if _, err := parser.Parse(text); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return text, nil
}

// options are shared by Evaluate and Compile: the environment, float-only
// numeric literals, the registry and matrix-aware arithmetic operators.
func (b *Backend) options(env map[string]any) []expr.Option {
	opts := []expr.Option{expr.Env(env), expr.Patch(floatLiterals{})}
	opts = append(opts, b.functions()...)
	return append(opts, matrixOperators()...)
}

func (b *Backend) functions() []expr.Option {
	fns := b.registry.List()
	opts := make([]expr.Option, 0, len(fns))
	for _, fn := range fns {
		opts = append(opts, expr.Function(fn.Name(), fn.Call))
	}
	return opts
}

// angleFunctions overrides the trigonometric functions so that arguments
// and results of the inverse functions are in the given unit.
func angleFunctions(unit float64) []expr.Option {
	if unit == 0 || unit == 1 {
		return nil
	}
	in := func(name string, f func(float64) float64) expr.Option {
		fn := Unary(name, "", func(x float64) float64 { return f(x * unit) })
		return expr.Function(name, fn.Call)
	}
	out := func(name string, f func(float64) float64) expr.Option {
		fn := Unary(name, "", func(x float64) float64 { return f(x) / unit })
		return expr.Function(name, fn.Call)
	}
	return []expr.Option{
		in("sin", math.Sin),
		in("cos", math.Cos),
		in("tan", math.Tan),
		out("asin", math.Asin),
		out("acos", math.Acos),
		out("atan", math.Atan),
	}
}

func calculusFunctions(scope Scope) []expr.Option {
	var opts []expr.Option
	if scope.Integrate != nil {
		opts = append(opts, expr.Function("integrate", func(args ...any) (any, error) {
			if len(args) != 3 {
				return nil, fmt.Errorf("integrate: want 3 arguments, got %d", len(args))
			}
			body, ok := args[0].(string)
			if !ok {
				return nil, fmt.Errorf("integrate: body is %T, not a function of X", args[0])
			}
			a, err := ToNumber(args[1])
			if err != nil {
				return nil, fmt.Errorf("integrate: %w", err)
			}
			bound, err := ToNumber(args[2])
			if err != nil {
				return nil, fmt.Errorf("integrate: %w", err)
			}
			return scope.Integrate(body, a, bound)
		}))
	}
	if scope.Deriv != nil {
		opts = append(opts, expr.Function("deriv", func(args ...any) (any, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("deriv: want 2 arguments, got %d", len(args))
			}
			body, ok := args[0].(string)
			if !ok {
				return nil, fmt.Errorf("deriv: body is %T, not a function of X", args[0])
			}
			x, err := ToNumber(args[1])
			if err != nil {
				return nil, fmt.Errorf("deriv: %w", err)
			}
			return scope.Deriv(body, x)
		}))
	}
	return opts
}
