package calc

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestResolvePercent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12+3", "12+3"},
		{"50%", "0.5"},
		{"50%+10%", "0.5+0.1"},
		{"12.5%*2", "0.125*2"},
		{"5%*3", "0.05*3"},
		{"(3+4)%", "(3+4)/100"},
		{"(-20%", "(-0.2"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ResolvePercent(tt.in); got != tt.want {
				t.Errorf("ResolvePercent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAdapterEvaluate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"7", 7},
		{"2*(3+4)", 14},
		{"50%+10%", 0.6},
		{"5%*3", 0.15},
		{"(3+4)%", 0.07},
		{"-12.5*2", -25},
		{"(-5)", -5},
		{"10/4", 2.5},
	}

	a := NewAdapter(nil)
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := a.Evaluate(context.Background(), tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAdapterEvaluateEmpty(t *testing.T) {
	_, err := NewAdapter(nil).Evaluate(context.Background(), "")
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestAdapterEvaluateDivideByZero(t *testing.T) {
	for _, in := range []string{"5/0", "(-5)/0"} {
		_, err := NewAdapter(nil).Evaluate(context.Background(), in)
		if !errors.Is(err, ErrDivideByZero) {
			t.Fatalf("Evaluate(%q): expected ErrDivideByZero, got %v", in, err)
		}
	}
}

func TestAdapterEvaluateUndefined(t *testing.T) {
	_, err := NewAdapter(nil).Evaluate(context.Background(), "0/0")
	if !errors.Is(err, ErrUndefined) {
		t.Fatalf("expected ErrUndefined, got %v", err)
	}
}

func TestAdapterEvaluateSyntaxError(t *testing.T) {
	for _, in := range []string{"(-5", "5+", "(3+4*"} {
		_, err := NewAdapter(nil).Evaluate(context.Background(), in)
		var evalErr *EvalError
		if !errors.As(err, &evalErr) {
			t.Fatalf("Evaluate(%q): expected *EvalError, got %v", in, err)
		}
		if evalErr.Kind != KindSyntax {
			t.Errorf("Evaluate(%q): expected kind %q, got %q", in, KindSyntax, evalErr.Kind)
		}
	}
}

func TestAdapterWrapsPlainErrors(t *testing.T) {
	boom := errors.New("boom")
	a := NewAdapter(EvaluatorFunc(func(ctx context.Context, expression string) (float64, error) {
		return 0, boom
	}))
	_, err := a.Evaluate(context.Background(), "1+1")
	var evalErr *EvalError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected *EvalError, got %v", err)
	}
	if evalErr.Kind != KindEval {
		t.Errorf("expected kind %q, got %q", KindEval, evalErr.Kind)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected error to wrap boom")
	}
}

func TestAdapterPassesResolvedText(t *testing.T) {
	var seen string
	a := NewAdapter(EvaluatorFunc(func(ctx context.Context, expression string) (float64, error) {
		seen = expression
		return 1, nil
	}))
	if _, err := a.Evaluate(context.Background(), "50%+(1+1)%"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != "0.5+(1+1)/100" {
		t.Fatalf("expected '0.5+(1+1)/100', got %q", seen)
	}
}

func TestExprEvaluatorHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewExprEvaluator().Evaluate(ctx, "1+1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFloatLiterals(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12+3", "12.0+3.0"},
		{"0.5+0.1", "0.5+0.1"},
		{"4.", "4."},
		{"(-5)*2", "(-5.0)*2.0"},
		{"(3+4)/100", "(3.0+4.0)/100.0"},
		{".5", ".5"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := floatLiterals(tt.in); got != tt.want {
				t.Errorf("floatLiterals(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExprEvaluatorLargeIntegers(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"9999999999*999999999", 9999999999.0 * 999999999.0},
		{"9999999999999999999", 9999999999999999999.0},
		{"99999999999999999999+1", 1e20},
		{"-9223372036854775807-10", -9223372036854775817.0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NewExprEvaluator().Evaluate(context.Background(), tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > math.Abs(tt.want)*1e-12 {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
