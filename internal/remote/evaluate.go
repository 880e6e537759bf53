// Package remote implements calc.Evaluator against an HTTP evaluation
// service.
package remote

import (
	"context"
	"errors"
	"math"
	"net/http"

	"github.com/Arnthorny/SimlCalc/internal/calc"
)

// Evaluate sends expression to POST /evaluate. A DIVIDE_BY_ZERO response is
// reported as an infinite value; other API errors become *calc.EvalError
// tagged with the response code.
func (c *Client) Evaluate(ctx context.Context, expression string) (float64, error) {
	var out EvaluateResponse
	err := c.do(ctx, http.MethodPost, "/evaluate", EvaluateRequest{Expression: expression}, &out)
	if err == nil {
		return out.Value, nil
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return 0, err
	}
	if apiErr.Code == CodeDivideByZero {
		return math.Inf(1), nil
	}
	kind := apiErr.Code
	if kind == "" {
		kind = calc.KindEval
	}
	return 0, &calc.EvalError{Kind: kind, Err: apiErr}
}

var _ calc.Evaluator = (*Client)(nil)
