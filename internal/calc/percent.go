package calc

import (
	"regexp"
	"strconv"
	"strings"
)

var rePercent = regexp.MustCompile(`[0-9.]+%`)

// ResolvePercent replaces every "<number>%" with the literal value of
// number/100, then any remaining % (such as after a closing bracket) with
// "/100". Each percent applies to its own number only.
func ResolvePercent(text string) string {
	if !strings.Contains(text, "%") {
		return text
	}
	out := rePercent.ReplaceAllStringFunc(text, func(m string) string {
		v, err := strconv.ParseFloat(strings.TrimSuffix(m, "%"), 64)
		if err != nil {
			return m
		}
		return strconv.FormatFloat(v/100, 'f', -1, 64)
	})
	return strings.ReplaceAll(out, "%", "/100")
}
