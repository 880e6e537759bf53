package token

// Button is one key of the on-screen keypad.
type Button struct {
	Label string
	Input Input
}

// Keypad is the on-screen button grid, row by row.
var Keypad = [][]Button{
	{{"C", Clear()}, {"⌫", Backspace()}, {"()", Bracket()}, {"%", Operator('%')}},
	{{"7", Digit('7')}, {"8", Digit('8')}, {"9", Digit('9')}, {"÷", Operator('/')}},
	{{"4", Digit('4')}, {"5", Digit('5')}, {"6", Digit('6')}, {"×", Operator('*')}},
	{{"1", Digit('1')}, {"2", Digit('2')}, {"3", Digit('3')}, {"−", Operator('-')}},
	{{"±", Negation()}, {"0", Digit('0')}, {".", Dot()}, {"+", Operator('+')}},
	{{"=", Commit()}},
}

// ButtonAt returns the button at row, col, clamping both to the grid.
func ButtonAt(row, col int) Button {
	row = clamp(row, 0, len(Keypad)-1)
	r := Keypad[row]
	return r[clamp(col, 0, len(r)-1)]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
