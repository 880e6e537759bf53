package session

import "strings"

// rule mutates b for one incoming literal given the precomputed edit context.
type rule func(b *Buffer, e edit, literal string)

// insert merges into the open group when there is one, and appends new
// top-level segments otherwise.
func insert(b *Buffer, e edit, values ...string) {
	if e.grouped {
		b.MergeIntoLast(values...)
		return
	}
	b.Append(values...)
}

func digitRule(b *Buffer, e edit, d string) {
	switch {
	case e.shape == ShapeEmpty:
		b.Append(d)
	case e.last == '0':
		// A lone leading zero is replaced rather than extended.
		if reSignificantZero.MatchString(e.prev) {
			b.MergeIntoLast(d)
		} else {
			b.ReplaceLastSuffix(d)
		}
	case e.shape == ShapePercent, e.shape == ShapeClosed:
		insert(b, e, "*", d)
	case e.shape == ShapeNumber:
		b.MergeIntoLast(d)
	default:
		insert(b, e, d)
	}
}

// operatorRule handles + - * / and %. Pressing the operator the buffer
// already ends in is a no-op, which also covers % after %.
func operatorRule(b *Buffer, e edit, op string) {
	if e.shape == ShapeEmpty || op[0] == e.last {
		return
	}
	switch {
	case e.shape == ShapeOpen:
	case e.shape == ShapePercent:
		insert(b, e, op)
	case e.shape == ShapeOperator:
		if op != "%" {
			b.ReplaceLastSuffix(op)
		}
	case op == "%":
		b.MergeIntoLast(op)
	default:
		insert(b, e, op)
	}
}

func dotRule(b *Buffer, e edit, dot string) {
	switch {
	case e.shape == ShapeEmpty:
		b.Append("0" + dot)
	case e.hasDecimal():
	case isDigit(e.last):
		b.MergeIntoLast(dot)
	case e.shape == ShapeClosed:
		insert(b, e, "*", "0"+dot)
	default:
		insert(b, e, "0"+dot)
	}
}

// bracketRule opens a group, or closes the current one when its last
// operand is complete. Closing brackets are never typed directly.
func bracketRule(b *Buffer, e edit, open string) {
	if e.grouped && e.shape != ShapeOpen && closesGroup(e.last) {
		b.MergeIntoLast(")")
		return
	}
	switch {
	case e.shape == ShapeEmpty:
		b.Append(open)
	case e.shape == ShapeOpen:
		b.MergeIntoLast(open)
	case reLeadingNumber.ReplaceAllString(e.prev, "") == "":
		insert(b, e, "*", open)
	case e.shape == ShapeClosed:
		b.Append("*", open)
	default:
		insert(b, e, open)
	}
}

func closesGroup(c byte) bool {
	return isDigit(c) || c == '.' || c == '%' || c == ')'
}

// negationRule wraps the trailing number in a "(-" marker, or removes the
// marker when the number is already negated.
func negationRule(b *Buffer, e edit, _ string) {
	if e.shape == ShapeEmpty {
		b.Append("(-")
		return
	}
	if loc := reNegatedNumber.FindStringIndex(e.prev); loc != nil {
		num := strings.TrimPrefix(e.prev[loc[0]:], "(")
		b.ReplaceLast(e.prev[:loc[0]] + strings.TrimPrefix(num, "-"))
		return
	}
	if loc := reTrailingNumber.FindStringIndex(e.prev); loc != nil {
		if loc[0] == 0 {
			b.PrependIntoLast("(-")
		} else {
			b.ReplaceLast(e.prev[:loc[0]] + "(-" + e.prev[loc[0]:])
		}
		return
	}
	switch e.shape {
	case ShapeClosed, ShapePercent:
		insert(b, e, "*", "(-")
	default:
		insert(b, e, "(-")
	}
}
