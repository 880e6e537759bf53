package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/Arnthorny/SimlCalc/internal/calculator"
	"github.com/Arnthorny/SimlCalc/internal/token"
)

var errColor = color.New(color.FgRed)

// runLine feeds each line of r to c one character at a time and prints
// "<buffer> = <preview>" after it. Unknown characters are skipped.
func runLine(ctx context.Context, c *calculator.Calculator, r io.Reader, out, errOut io.Writer) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		for _, ch := range sc.Text() {
			in, ok := token.FromShortcut(string(ch))
			if !ok {
				continue
			}
			if msg := calculator.Message(c.Press(ctx, in)); msg != "" {
				errColor.Fprintf(errOut, "error: %s\n", msg)
			}
		}
		fmt.Fprintf(out, "%s = %s\n", c.Text(), c.Preview())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
