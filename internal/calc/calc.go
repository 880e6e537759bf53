// Package calc evaluates expression text produced by the editing engine.
//
// The arithmetic itself is delegated to an Evaluator. The Adapter resolves
// percent tokens first and turns evaluator outcomes into the errors the
// calculator reports.
package calc

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmpty means there is nothing to evaluate. It is never shown.
	ErrEmpty = errors.New("empty expression")
	// ErrDivideByZero is returned when the result is infinite.
	ErrDivideByZero = errors.New("can't divide by zero")
	// ErrUndefined is returned when the result is not a number.
	ErrUndefined = errors.New("result is undefined")
)

// Failure categories reported by the built-in evaluator.
const (
	KindSyntax = "SyntaxError"
	KindEval   = "EvalError"
	KindType   = "TypeError"
)

// EvalError is an evaluator failure tagged with its category.
type EvalError struct {
	Kind string
	Err  error
}

func (e *EvalError) Error() string {
	if e.Err == nil {
		return e.Kind
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// Evaluator parses and evaluates arithmetic text.
type Evaluator interface {
	Evaluate(ctx context.Context, expression string) (float64, error)
}

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc func(ctx context.Context, expression string) (float64, error)

func (f EvaluatorFunc) Evaluate(ctx context.Context, expression string) (float64, error) {
	return f(ctx, expression)
}

// Adapter prepares buffer text for an Evaluator and classifies the outcome.
type Adapter struct {
	eval Evaluator
}

// NewAdapter wraps eval. A nil eval uses the built-in expression evaluator.
func NewAdapter(eval Evaluator) *Adapter {
	if eval == nil {
		eval = NewExprEvaluator()
	}
	return &Adapter{eval: eval}
}

// Evaluate returns the value of text. Failures are ErrEmpty, ErrDivideByZero,
// ErrUndefined or an *EvalError.
func (a *Adapter) Evaluate(ctx context.Context, text string) (float64, error) {
	if text == "" {
		return 0, ErrEmpty
	}
	expression := ResolvePercent(text)

	v, err := a.eval.Evaluate(ctx, expression)
	if err != nil {
		var evalErr *EvalError
		if errors.As(err, &evalErr) {
			return 0, evalErr
		}
		return 0, &EvalError{Kind: KindEval, Err: err}
	}

	switch {
	case math.IsInf(v, 0):
		return 0, ErrDivideByZero
	case math.IsNaN(v):
		return 0, ErrUndefined
	}
	return v, nil
}
