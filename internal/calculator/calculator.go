// Package calculator drives an editing session: it applies inputs, keeps the
// live preview current and commits results back into the buffer.
package calculator

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/text/language"

	"github.com/Arnthorny/SimlCalc/internal/calc"
	"github.com/Arnthorny/SimlCalc/internal/format"
	"github.com/Arnthorny/SimlCalc/internal/session"
	"github.com/Arnthorny/SimlCalc/internal/store"
	"github.com/Arnthorny/SimlCalc/internal/token"
)

// Calculator owns one session and its preview.
type Calculator struct {
	sess    *session.Session
	adapter *calc.Adapter
	format  *format.Formatter
	store   store.Store
	preview string
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithEvaluator replaces the built-in evaluator.
func WithEvaluator(e calc.Evaluator) Option {
	return func(c *Calculator) {
		c.adapter = calc.NewAdapter(e)
	}
}

// WithFormatter sets the number formatter.
func WithFormatter(f *format.Formatter) Option {
	return func(c *Calculator) {
		c.format = f
	}
}

// WithStore persists committed results to s.
func WithStore(s store.Store) Option {
	return func(c *Calculator) {
		c.store = s
	}
}

// WithMaxLength sets the session's length limit.
func WithMaxLength(n int) Option {
	return func(c *Calculator) {
		c.sess = session.New(session.WithMaxLength(n))
	}
}

// New returns a calculator with an empty buffer.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		sess:    session.New(),
		adapter: calc.NewAdapter(nil),
		format:  format.New(language.AmericanEnglish),
		store:   store.NewMemory(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resume seeds the buffer with the last committed result, if any.
func (c *Calculator) Resume(ctx context.Context) error {
	last, err := c.store.Load()
	if err != nil {
		return fmt.Errorf("load last result: %w", err)
	}
	if last != "" {
		c.sess.Reset(last)
		c.refresh(ctx)
	}
	return nil
}

// Press applies one input. Edits, backspace and clear refresh the preview;
// commit evaluates in final mode. A rejected edit leaves the buffer as it
// was and returns session.ErrMaxLength.
func (c *Calculator) Press(ctx context.Context, in token.Input) error {
	switch in.Kind {
	case token.KindNone:
		return nil
	case token.KindCommit:
		_, err := c.Commit(ctx)
		return err
	}
	if err := c.Apply(in); err != nil {
		return err
	}
	c.refresh(ctx)
	return nil
}

// Apply edits the buffer without touching the preview. Callers that
// evaluate elsewhere pass the new Text to Evaluate and the outcome to
// SetPreview.
func (c *Calculator) Apply(in token.Input) error {
	if err := c.sess.Apply(in); err != nil {
		log.Printf("rejected %v on %q: %v", in, c.sess.Text(), err)
		return err
	}
	return nil
}

func (c *Calculator) refresh(ctx context.Context) {
	text := c.sess.Text()
	v, err := c.Evaluate(ctx, text)
	c.SetPreview(text, v, err)
}

// Evaluate returns the value of text. It reads no buffer state, so it may
// run off the goroutine that edits the buffer.
func (c *Calculator) Evaluate(ctx context.Context, text string) (float64, error) {
	return c.adapter.Evaluate(ctx, text)
}

// SetPreview records the outcome of evaluating text. It reports false, and
// changes nothing, when the buffer no longer holds text.
func (c *Calculator) SetPreview(text string, v float64, err error) bool {
	if text != c.sess.Text() {
		return false
	}
	if err != nil {
		c.preview = ""
		return true
	}
	c.preview = c.format.Preview(v)
	return true
}

// Result formats v for the buffer.
func (c *Calculator) Result(v float64) string {
	return c.format.Commit(v)
}

// PrepareCommit evaluates the buffer in final mode and returns the result
// formatted for the buffer. The buffer is not touched.
func (c *Calculator) PrepareCommit(ctx context.Context) (string, error) {
	v, err := c.Evaluate(ctx, c.sess.Text())
	if err != nil {
		return "", err
	}
	return c.Result(v), nil
}

// ApplyCommit replaces the buffer with result, clears the preview and saves
// result to the store. A store failure is logged, not returned.
func (c *Calculator) ApplyCommit(result string) {
	c.sess.Reset(result)
	c.preview = ""
	if err := c.store.Save(result); err != nil {
		log.Printf("save result %q: %v", result, err)
	}
	log.Printf("committed %q", result)
}

// Commit is PrepareCommit followed by ApplyCommit. When there is no value
// the buffer is unchanged and the error says why.
func (c *Calculator) Commit(ctx context.Context) (string, error) {
	result, err := c.PrepareCommit(ctx)
	if err != nil {
		return "", err
	}
	c.ApplyCommit(result)
	return result, nil
}

// Text returns the buffer text.
func (c *Calculator) Text() string {
	return c.sess.Text()
}

// Segments returns the buffer's segments.
func (c *Calculator) Segments() []string {
	return c.sess.Segments()
}

// Preview returns the formatted live result, or "" when there is none.
func (c *Calculator) Preview() string {
	return c.preview
}

// MaxLength returns the buffer's length limit.
func (c *Calculator) MaxLength() int {
	return c.sess.MaxLength()
}

// Message returns the notice text for err, or "" when err should not be
// shown.
func Message(err error) string {
	var evalErr *calc.EvalError
	switch {
	case err == nil, errors.Is(err, calc.ErrEmpty):
		return ""
	case errors.Is(err, session.ErrMaxLength):
		return "Maximum limit reached"
	case errors.Is(err, calc.ErrDivideByZero):
		return "Can't divide by zero."
	case errors.Is(err, calc.ErrUndefined):
		return "Result is undefined"
	case errors.As(err, &evalErr):
		return evalErr.Kind
	}
	return err.Error()
}
