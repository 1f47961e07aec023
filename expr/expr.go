// SPDX-License-Identifier: MIT

// Package expr compiles textual equations such as "x*x - p" into itp.Func
// values, so the command-line tool can solve equations typed by the user.
//
// Variables:
//   - x        — the unknown;
//   - p        — shorthand for p0, the first parameter;
//   - p0 … pN  — components of the parameter vector.
//
// Functions: sin, cos, tan, exp, log, sqrt, abs, pow(a, b), and the
// special functions digamma(x) and beta(a, b) from gonum's mathext.
// Powers are written "**" ("^" is bitwise xor in the parser).
package expr

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
	"github.com/katalvlaran/rootfind/itp"
	"gonum.org/v1/gonum/mathext"
)

var (
	// ErrParse wraps a syntax error reported by the expression parser.
	ErrParse = errors.New("expr: parse error")

	// ErrUnknownVariable is returned for any variable other than x, p, pN.
	ErrUnknownVariable = errors.New("expr: unknown variable")

	// ErrNotNumber is returned when an expression evaluates to a non-number.
	ErrNotNumber = errors.New("expr: result is not a number")

	// ErrArity is returned when fewer parameters are supplied than referenced.
	ErrArity = errors.New("expr: missing parameter")
)

var paramName = regexp.MustCompile(`^p([0-9]+)$`)

// functions is the fixed function table available to expressions.
var functions = map[string]govaluate.ExpressionFunction{
	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
	"tan":  unary(math.Tan),
	"exp":  unary(math.Exp),
	"log":  unary(math.Log),
	"sqrt": unary(math.Sqrt),
	"abs":  unary(math.Abs),

	"pow":     binary("pow", math.Pow),
	"digamma": unary(mathext.Digamma),
	"beta":    binary("beta", mathext.Beta),
}

// Expression is a compiled equation f(x, p). It is safe for concurrent use.
type Expression struct {
	src   string
	eval  *govaluate.EvaluableExpression
	arity int // 1 + highest parameter index referenced, 0 if none
}

// Compile parses src and checks its variables.
func Compile(src string) (*Expression, error) {
	e, err := govaluate.NewEvaluableExpressionWithFunctions(strings.TrimSpace(src), functions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	arity := 0
	for _, v := range e.Vars() {
		idx, ok := paramIndex(v)
		switch {
		case v == "x":
		case ok:
			if idx+1 > arity {
				arity = idx + 1
			}
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, v)
		}
	}

	return &Expression{src: src, eval: e, arity: arity}, nil
}

// String returns the source text.
func (e *Expression) String() string { return e.src }

// Arity returns the number of parameter components the expression reads.
func (e *Expression) Arity() int { return e.arity }

// Eval evaluates the expression at (x, p).
func (e *Expression) Eval(x float64, p []float64) (float64, error) {
	if len(p) < e.arity {
		return math.NaN(), fmt.Errorf("%w: need %d, have %d", ErrArity, e.arity, len(p))
	}
	v, err := e.eval.Eval(vars{x: x, p: p})
	if err != nil {
		return math.NaN(), err
	}

	return toFloat(v)
}

// Func adapts the expression to itp.Func. Evaluation errors become NaN,
// which itp.Solve reports as itp.ErrNaNInf.
func (e *Expression) Func() itp.Func {
	return func(x float64, p []float64) float64 {
		v, err := e.Eval(x, p)
		if err != nil {
			return math.NaN()
		}

		return v
	}
}

// vars implements govaluate.Parameters without allocating a map per call.
type vars struct {
	x float64
	p []float64
}

func (v vars) Get(name string) (interface{}, error) {
	if name == "x" {
		return v.x, nil
	}
	if idx, ok := paramIndex(name); ok && idx < len(v.p) {
		return v.p[idx], nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
}

// paramIndex maps "p" to 0 and "pN" to N.
func paramIndex(name string) (int, bool) {
	if name == "p" {
		return 0, true
	}
	m := paramName.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	idx, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	return idx, true
}

func unary(fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("want 1 argument, got %d", len(args))
		}
		a, err := toFloat(args[0])
		if err != nil {
			return nil, err
		}

		return fn(a), nil
	}
}

// binary adapts a two-argument math function to the parser's calling convention.
func binary(name string, fn func(a, b float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s: want 2 arguments, got %d", name, len(args))
		}
		a, err := toFloat(args[0])
		if err != nil {
			return nil, err
		}
		b, err := toFloat(args[1])
		if err != nil {
			return nil, err
		}

		return fn(a, b), nil
	}
}

func toFloat(v interface{}) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case bool:
		if t {
			return 1, nil
		}

		return 0, nil
	default:
		return math.NaN(), fmt.Errorf("%w: %T", ErrNotNumber, v)
	}
}
