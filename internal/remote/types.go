package remote

import "fmt"

// APIError represents an error response from the evaluation service.
type APIError struct {
	Message string `json:"error"`
	Code    string `json:"code"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (code: %s)", e.Message, e.Code)
}

// Error codes with a meaning of their own.
const (
	CodeDivideByZero = "DIVIDE_BY_ZERO"
)

// EvaluateRequest is the request body for POST /evaluate.
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse is the response from POST /evaluate.
type EvaluateResponse struct {
	Value float64 `json:"value"`
}
