package calc

// numberEntry is the number being typed, before it is committed as a token.
// It holds at most lineLen characters including an optional leading '-' and
// at most one '.'.
type numberEntry struct {
	buf    []byte
	hasDot bool
}

func newNumberEntry() *numberEntry {
	return &numberEntry{buf: make([]byte, 0, lineLen)}
}

func (n *numberEntry) empty() bool  { return len(n.buf) == 0 }
func (n *numberEntry) text() string { return string(n.buf) }

func (n *numberEntry) reset() {
	n.buf = n.buf[:0]
	n.hasDot = false
}

// pushDigit appends one digit. Exceeding the display width records
// FaultNumTooLong and leaves the entry intact.
func (n *numberEntry) pushDigit(st *status, d int) {
	if len(n.buf) >= lineLen {
		st.fail(FaultNumTooLong)
		return
	}
	n.buf = append(n.buf, byte('0'+d))
}

// pushDot appends the decimal point, prefixing "0" when it starts the
// entry. A second dot is a syntax fault; the entry must keep room for the
// dot and at least one digit.
func (n *numberEntry) pushDot(st *status) {
	if n.hasDot {
		st.fail(FaultSyntax)
		return
	}
	if len(n.buf) >= lineLen-1 {
		st.fail(FaultNumTooLong)
		return
	}
	if len(n.buf) == 0 {
		n.buf = append(n.buf, '0')
	}
	n.buf = append(n.buf, '.')
	n.hasDot = true
}

// pushMinus starts a negative entry (unary minus).
func (n *numberEntry) pushMinus(st *status) {
	if len(n.buf) >= lineLen {
		st.fail(FaultNumTooLong)
		return
	}
	n.buf = append(n.buf, '-')
}

// parse converts the entry to its numeric value.
func (n *numberEntry) parse(st *status) float64 {
	return parseNumber(st, string(n.buf))
}

// parseNumber scans the fixed decimal format the keypad can produce: an
// optional leading '-', digits, at most one '.'. No exponents, no leading
// '+', no spaces. An empty string parses to 0 with no fault (no number was
// typed); a lone '-' or '.' is malformed. All fault paths return the
// sentinel 0 — callers must consult the status, not the value.
func parseNumber(st *status, s string) float64 {
	if len(s) == 0 {
		return 0
	}
	if s == "-" || s == "." {
		st.fail(FaultSyntax)
		return 0
	}

	i := 0
	neg := false
	if s[0] == '-' {
		neg = true
		i = 1
	}

	var (
		val    float64
		inFrac bool
		mult   = 0.1
	)
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '.':
			if inFrac {
				st.fail(FaultSyntax)
				return 0
			}
			inFrac = true
		case c >= '0' && c <= '9':
			d := float64(c - '0')
			if !inFrac {
				val = val*10 + d
			} else {
				val += d * mult
				mult *= 0.1
			}
		default:
			st.fail(FaultSyntax)
			return 0
		}
	}
	if neg {
		return -val
	}
	return val
}
