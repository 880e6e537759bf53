package token

// FromKey maps a key name, as reported by the terminal, to an input. Only
// digits, the operators % / * - +, the decimal point, backspace, enter and =
// are recognised; every other key is ignored.
func FromKey(key string) (Input, bool) {
	switch key {
	case "backspace":
		return Backspace(), true
	case "enter", "=":
		return Commit(), true
	}
	if len(key) != 1 {
		return Input{}, false
	}
	c := key[0]
	switch {
	case isDigit(c):
		return Digit(c), true
	case isOperator(c):
		return Operator(c), true
	case c == '.':
		return Dot(), true
	}
	return Input{}, false
}

// FromShortcut extends FromKey with shortcuts for the keypad-only buttons:
// ( for brackets, ~ for negation, and esc or c for clear.
func FromShortcut(key string) (Input, bool) {
	if in, ok := FromKey(key); ok {
		return in, true
	}
	switch key {
	case "(":
		return Bracket(), true
	case "~":
		return Negation(), true
	case "esc", "c":
		return Clear(), true
	}
	return Input{}, false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isOperator(c byte) bool {
	switch c {
	case '%', '/', '*', '-', '+':
		return true
	}
	return false
}
