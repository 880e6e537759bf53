// Package token classifies calculator input into dispatchable kinds.
package token

// Kind identifies how an input is dispatched.
type Kind int

const (
	KindNone Kind = iota
	KindDigit
	KindOperator
	KindDot
	KindBracket
	KindNegation

	// Actions act on the session as a whole rather than editing it.
	KindBackspace
	KindClear
	KindCommit
)

var kindNames = [...]string{
	KindNone:      "none",
	KindDigit:     "digit",
	KindOperator:  "operator",
	KindDot:       "dot",
	KindBracket:   "bracket",
	KindNegation:  "negation",
	KindBackspace: "backspace",
	KindClear:     "clear",
	KindCommit:    "commit",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsEdit reports whether inputs of this kind go through an editing rule.
func (k Kind) IsEdit() bool {
	return k >= KindDigit && k <= KindNegation
}

// Input is a classified token. Literal holds the text the rule will insert;
// it is empty for actions.
type Input struct {
	Kind    Kind
	Literal string
}

// Digit returns the input for a single decimal digit.
func Digit(d byte) Input { return Input{Kind: KindDigit, Literal: string(d)} }

// Operator returns the input for one of % / * - +.
func Operator(op byte) Input { return Input{Kind: KindOperator, Literal: string(op)} }

func Dot() Input       { return Input{Kind: KindDot, Literal: "."} }
func Bracket() Input   { return Input{Kind: KindBracket, Literal: "("} }
func Negation() Input  { return Input{Kind: KindNegation, Literal: "-"} }
func Backspace() Input { return Input{Kind: KindBackspace} }
func Clear() Input     { return Input{Kind: KindClear} }
func Commit() Input    { return Input{Kind: KindCommit} }

func (in Input) String() string {
	if in.Literal == "" {
		return in.Kind.String()
	}
	return in.Kind.String() + " " + in.Literal
}
