package calc

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
)

// reLiteral matches a numeric literal. A leading dot keeps the fractional
// part of ".5" from matching as an integer of its own.
var reLiteral = regexp.MustCompile(`\.?[0-9]+(\.[0-9]*)?`)

// floatLiterals rewrites integer literals as floats ("12" to "12.0") so that
// arithmetic is done in float64 and long digit runs still parse.
func floatLiterals(expression string) string {
	return reLiteral.ReplaceAllStringFunc(expression, func(lit string) string {
		if strings.Contains(lit, ".") {
			return lit
		}
		return lit + ".0"
	})
}

// ExprEvaluator evaluates arithmetic with github.com/expr-lang/expr.
type ExprEvaluator struct{}

// NewExprEvaluator returns the built-in evaluator.
func NewExprEvaluator() *ExprEvaluator {
	return &ExprEvaluator{}
}

// Evaluate compiles and runs expression with every literal as a float.
// Compile failures are reported as SyntaxError, run failures as EvalError and
// non-numeric results as TypeError.
func (ExprEvaluator) Evaluate(ctx context.Context, expression string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	program, err := expr.Compile(floatLiterals(expression))
	if err != nil {
		return 0, &EvalError{Kind: KindSyntax, Err: err}
	}
	out, err := expr.Run(program, nil)
	if err != nil {
		return 0, &EvalError{Kind: KindEval, Err: err}
	}
	return toFloat(out)
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, &EvalError{Kind: KindType, Err: fmt.Errorf("unexpected result %T", v)}
}
