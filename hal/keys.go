package hal

// Key identifies one keypad key.
type Key uint8

const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyAdd
	KeySub
	KeyMul
	KeyDiv
	KeyEquals
	KeyDecimal

	// KeyNone means no key was observed during a poll.
	KeyNone Key = 0xFF
)

// Digit reports whether k is a digit key and, if so, its value.
func (k Key) Digit() (int, bool) {
	if k <= Key9 {
		return int(k), true
	}
	return 0, false
}

func (k Key) String() string {
	if d, ok := k.Digit(); ok {
		return string(rune('0' + d))
	}
	switch k {
	case KeyAdd:
		return "+"
	case KeySub:
		return "-"
	case KeyMul:
		return "*"
	case KeyDiv:
		return "/"
	case KeyEquals:
		return "="
	case KeyDecimal:
		return "."
	case KeyNone:
		return "none"
	}
	return "?"
}

// KeyForRune maps a typed character to its keypad key. Used by the host
// simulator and by headless key scripts.
func KeyForRune(r rune) (Key, bool) {
	if r >= '0' && r <= '9' {
		return Key0 + Key(r-'0'), true
	}
	switch r {
	case '+':
		return KeyAdd, true
	case '-':
		return KeySub, true
	case '*':
		return KeyMul, true
	case '/':
		return KeyDiv, true
	case '.':
		return KeyDecimal, true
	case '=':
		return KeyEquals, true
	}
	return KeyNone, false
}
