package session

import (
	"regexp"
	"strings"
)

// Shape classifies how the last segment ends.
type Shape int

const (
	ShapeEmpty    Shape = iota // no segments
	ShapeNumber                // bare number: "12", "0.5"
	ShapeDecimal               // ends in a decimal in progress: "(3+0.", "4.25"
	ShapeOperator              // dangling + - * /
	ShapePercent               // ends in %
	ShapeOpen                  // ends in (
	ShapeClosed                // ends in )
	ShapeOther                 // anything else ending in a digit
)

var shapeNames = [...]string{
	ShapeEmpty:    "empty",
	ShapeNumber:   "number",
	ShapeDecimal:  "decimal",
	ShapeOperator: "operator",
	ShapePercent:  "percent",
	ShapeOpen:     "open",
	ShapeClosed:   "closed",
	ShapeOther:    "other",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "unknown"
	}
	return shapeNames[s]
}

var (
	// A zero that follows a nonzero digit or a dot is significant.
	reSignificantZero = regexp.MustCompile(`[1-9.]+0*$`)
	reTrailingNumber  = regexp.MustCompile(`[0-9.]+$`)
	reNegatedNumber   = regexp.MustCompile(`\(-[0-9.]+$|^-[0-9.]+$`)
	reDecimal         = regexp.MustCompile(`([0-9]+\.[0-9]*)+$`)
	reLeadingNumber   = regexp.MustCompile(`^[0-9.%]+`)
)

// edit is the context every rule reads, computed once per token.
type edit struct {
	shape   Shape
	prev    string // last segment
	last    byte   // last character of prev, 0 when empty
	grouped bool   // prev is an unclosed parenthesized group
}

func classify(b *Buffer) edit {
	prev, ok := b.Last()
	if !ok || prev == "" {
		return edit{shape: ShapeEmpty}
	}
	e := edit{
		prev:    prev,
		last:    prev[len(prev)-1],
		grouped: isOpenGroup(prev),
	}
	switch {
	case e.last == '(':
		e.shape = ShapeOpen
	case e.last == ')':
		e.shape = ShapeClosed
	case e.last == '%':
		e.shape = ShapePercent
	case isArithmetic(e.last):
		e.shape = ShapeOperator
	case reDecimal.MatchString(prev):
		e.shape = ShapeDecimal
		if isBareNumber(prev) {
			e.shape = ShapeNumber
		}
	case isBareNumber(prev):
		e.shape = ShapeNumber
	default:
		e.shape = ShapeOther
	}
	return e
}

// isOpenGroup counts brackets in the segment only; depth is not tracked.
func isOpenGroup(seg string) bool {
	return strings.HasPrefix(seg, "(") && strings.Count(seg, "(") > strings.Count(seg, ")")
}

func isBareNumber(seg string) bool {
	return seg != "" && reTrailingNumber.ReplaceAllString(seg, "") == ""
}

func isArithmetic(c byte) bool {
	switch c {
	case '/', '*', '-', '+':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// hasDecimal reports whether prev already ends in a number with a dot.
func (e edit) hasDecimal() bool {
	return e.shape == ShapeDecimal || (e.shape == ShapeNumber && reDecimal.MatchString(e.prev))
}
