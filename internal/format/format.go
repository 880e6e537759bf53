// Package format renders calculator results for display.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MaxFractionDigits is the most fraction digits any result shows.
const MaxFractionDigits = 5

// Formatter formats numbers for a locale.
type Formatter struct {
	preview *message.Printer
	commit  *message.Printer
}

// New returns a Formatter whose previews use the grouping of tag. Committed
// results are always en-US without grouping so that they read back as
// expression text.
func New(tag language.Tag) *Formatter {
	return &Formatter{
		preview: message.NewPrinter(tag),
		commit:  message.NewPrinter(language.AmericanEnglish),
	}
}

// Parse returns a Formatter for a BCP 47 locale string such as "de-DE".
func Parse(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	return New(tag), nil
}

// Preview formats v with digit grouping, e.g. 1,234.5.
func (f *Formatter) Preview(v float64) string {
	return f.preview.Sprint(number.Decimal(v, number.MaxFractionDigits(MaxFractionDigits)))
}

// Commit formats v without grouping, e.g. 1234.5.
func (f *Formatter) Commit(v float64) string {
	return f.commit.Sprint(number.Decimal(v,
		number.MaxFractionDigits(MaxFractionDigits),
		number.NoSeparator(),
	))
}
