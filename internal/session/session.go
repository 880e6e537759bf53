// Package session implements the expression-buffer editing engine: the
// buffer of segments, the primitives that mutate it, and the rules that
// decide which primitives an incoming token triggers.
package session

import (
	"errors"
	"fmt"

	"github.com/Arnthorny/SimlCalc/internal/token"
)

// DefaultMaxLength is the longest expression text a session accepts.
const DefaultMaxLength = 20

// ErrMaxLength is returned when an edit would take the expression past the
// session's maximum length. The buffer is left unchanged.
var ErrMaxLength = errors.New("maximum limit reached")

var rules = map[token.Kind]rule{
	token.KindDigit:    digitRule,
	token.KindOperator: operatorRule,
	token.KindDot:      dotRule,
	token.KindBracket:  bracketRule,
	token.KindNegation: negationRule,
}

// Session is one editing session: a buffer and its length limit.
type Session struct {
	buf    Buffer
	maxLen int
}

// Option configures a Session.
type Option func(*Session)

// WithMaxLength overrides DefaultMaxLength. Non-positive values are ignored.
func WithMaxLength(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxLen = n
		}
	}
}

// WithText seeds the session with a single segment.
func WithText(text string) Option {
	return func(s *Session) {
		s.buf.Reset(text)
	}
}

// New creates an empty session.
func New(opts ...Option) *Session {
	s := &Session{maxLen: DefaultMaxLength}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply feeds one input to the session. Edits go through exactly one rule;
// backspace and clear act on the buffer directly.
func (s *Session) Apply(in token.Input) error {
	switch in.Kind {
	case token.KindBackspace:
		s.buf.Backspace()
		return nil
	case token.KindClear:
		s.buf.Clear()
		return nil
	}

	if !in.Kind.IsEdit() {
		return fmt.Errorf("session: %v is not an edit", in.Kind)
	}
	r := rules[in.Kind]
	if len(s.buf.Text()) >= s.maxLen {
		return ErrMaxLength
	}

	next := Buffer{segments: s.buf.Segments()}
	r(&next, classify(&next), in.Literal)
	if len(next.Text()) > s.maxLen {
		return ErrMaxLength
	}
	s.buf = next
	return nil
}

// Reset replaces the buffer with a single segment holding text.
func (s *Session) Reset(text string) {
	s.buf.Reset(text)
}

// Text returns the expression text.
func (s *Session) Text() string {
	return s.buf.Text()
}

// Segments returns a copy of the buffer's segments.
func (s *Session) Segments() []string {
	return s.buf.Segments()
}

// MaxLength returns the session's length limit.
func (s *Session) MaxLength() int {
	return s.maxLen
}
