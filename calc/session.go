// Package calc implements the calculator's expression engine and the
// key-by-key session state machine that drives it.
package calc

import "abacus/hal"

type phase uint8

const (
	phaseEntering phase = iota
	phaseErrorShown
	phaseResultShown
)

// Loop pacing, in milliseconds.
const (
	bootBannerMillis = 1000
	idleMillis       = 50
	pollMillis       = 100
)

// Session owns all calculator state and runs the input loop. It is single
// threaded: one key observation per iteration, and all state updates
// complete before the next poll.
type Session struct {
	keys hal.Keypad
	disp hal.Display
	log  hal.Logger
	clk  hal.Time

	st    status
	expr  *exprBuffer
	entry *numberEntry
	phase phase

	// lastOp is true when the previous action pushed a binary operator;
	// it gates the unary-minus rule.
	lastOp bool

	// errPending marks a fault recorded while Entering that has not been
	// shown yet. It surfaces on the next key observation.
	errPending bool
}

func NewSession(keys hal.Keypad, disp hal.Display, log hal.Logger, clk hal.Time) *Session {
	return &Session{
		keys:  keys,
		disp:  disp,
		log:   log,
		clk:   clk,
		expr:  newExprBuffer(),
		entry: newNumberEntry(),
	}
}

// Run polls the keypad forever. It never returns; a finished calculation or
// a fault only parks the session until the next key starts a fresh one.
func (s *Session) Run() {
	s.resetAll()
	s.renderLines("Calculator", "Ready")
	s.clk.Sleep(bootBannerMillis)
	s.renderEntry()
	s.logLine("calc: session start")

	for {
		k := s.keys.ReadKey()
		if k == hal.KeyNone {
			s.clk.Sleep(idleMillis)
			continue
		}
		s.step(k)
		s.clk.Sleep(pollMillis)
	}
}

// step feeds one key observation through the state machine.
func (s *Session) step(k hal.Key) {
	switch s.phase {
	case phaseErrorShown, phaseResultShown:
		wasError := s.phase == phaseErrorShown
		s.resetAll()
		if k == hal.KeyEquals && wasError {
			// '=' only acknowledges the error; there is nothing to
			// re-evaluate on the freshly cleared state.
			s.renderEntry()
			return
		}
		// Any other key starts the next calculation and is processed
		// below as fresh input.
	}

	if s.errPending {
		// A fault recorded on an earlier key surfaces now. The key that
		// revealed it is consumed by the transition.
		s.showError()
		return
	}

	s.handleKey(k)
}

func (s *Session) handleKey(k hal.Key) {
	if d, ok := k.Digit(); ok {
		s.entry.pushDigit(&s.st, d)
		if !s.st.active() {
			s.lastOp = false
		}
		s.afterInputKey()
		return
	}

	switch k {
	case hal.KeyDecimal:
		s.entry.pushDot(&s.st)
		if !s.st.active() {
			s.lastOp = false
		}
		s.afterInputKey()

	case hal.KeyAdd, hal.KeySub, hal.KeyMul, hal.KeyDiv:
		s.handleOperator(opForKey(k))
		s.afterInputKey()

	case hal.KeyEquals:
		s.handleEquals()
	}
}

// afterInputKey applies the post-key display policy for Entering: a fault
// recorded by this key is not shown yet, it surfaces on the next observed
// key. Otherwise the input display refreshes.
func (s *Session) afterInputKey() {
	if s.st.active() {
		if !s.errPending {
			s.errPending = true
			s.logLine("calc: fault " + s.st.message())
		}
		return
	}
	s.renderEntry()
}

func (s *Session) handleOperator(op Op) {
	// Unary minus: '-' starts a negative entry when nothing is pending
	// and there is no left operand in front of it.
	if op == OpSub && s.entry.empty() && (s.expr.len() == 0 || s.lastOp) {
		s.entry.pushMinus(&s.st)
		if !s.st.active() {
			s.lastOp = false
		}
		return
	}

	if !s.entry.empty() {
		s.commitEntry()
	} else if s.expr.len() == 0 || s.expr.lastIsOperator() {
		// No left operand. A stray '+' is tolerated as a no-op prefix;
		// anything else is malformed.
		if op == OpAdd {
			return
		}
		s.st.fail(FaultSyntax)
		return
	}

	if s.st.active() {
		return
	}
	s.expr.pushOperator(&s.st, op)
	if !s.st.active() {
		s.lastOp = true
	}
}

// commitEntry parses the pending entry, pushes it as a number token and
// appends its text to the display history.
func (s *Session) commitEntry() {
	text := s.entry.text()
	v := s.entry.parse(&s.st)
	if !s.st.active() {
		s.expr.pushNumber(&s.st, v)
		s.expr.appendHistory(text)
	}
	s.entry.reset()
}

func (s *Session) handleEquals() {
	hadEntry := !s.entry.empty()
	if hadEntry && !s.st.active() {
		s.commitEntry()
	}
	if !hadEntry && s.expr.len() > 0 && s.expr.lastIsOperator() && !s.st.active() {
		// "5 + =" has no right operand.
		s.st.fail(FaultSyntax)
	}

	var result float64
	if !s.st.active() {
		result = evaluate(&s.st, s.expr)
	}

	var text string
	if !s.st.active() {
		text = formatResult(&s.st, result)
	}

	if s.st.active() {
		// Faults on '=' surface in the same cycle, in place of the result.
		s.showError()
		return
	}

	s.renderLines(text, "")
	s.phase = phaseResultShown
	s.entry.reset()
	s.logLine("calc: result " + text)
}

// showError puts the recorded fault on line 1 and enters ErrorShown.
func (s *Session) showError() {
	s.renderLines(s.st.message(), "")
	s.phase = phaseErrorShown
	s.errPending = false
}

// resetAll clears every piece of session state, faults included. This is
// the only place the sticky fault is released.
func (s *Session) resetAll() {
	s.st.clear()
	s.expr.reset()
	s.entry.reset()
	s.lastOp = false
	s.errPending = false
	s.phase = phaseEntering
}

// renderEntry shows the committed history on line 1 and the pending entry
// on line 2.
func (s *Session) renderEntry() {
	s.renderLines(s.expr.historyTail(lineLen), s.entry.text())
}

func (s *Session) renderLines(line1, line2 string) {
	if s.disp == nil {
		return
	}
	s.disp.Command(hal.CmdClearDisplay)
	s.disp.WriteString(truncate(line1, lineLen))
	s.disp.Command(hal.CmdCursorLine2)
	s.disp.WriteString(truncate(line2, lineLen))
}

func (s *Session) logLine(msg string) {
	if s.log != nil {
		s.log.WriteLineString(msg)
	}
}

func opForKey(k hal.Key) Op {
	switch k {
	case hal.KeyAdd:
		return OpAdd
	case hal.KeySub:
		return OpSub
	case hal.KeyMul:
		return OpMul
	}
	return OpDiv
}
