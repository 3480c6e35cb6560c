package calc

// Fault identifies a calculator fault. The zero value means no fault.
type Fault uint8

const (
	FaultNone Fault = iota
	FaultSyntax
	FaultDivZero
	FaultExprTooLong
	FaultNumTooLong
	FaultStack
	FaultDisplay
)

// Message returns the display form of the fault. Messages fit one line.
func (f Fault) Message() string {
	switch f {
	case FaultSyntax:
		return "Err: Syntax"
	case FaultDivZero:
		return "Err: Div Zero"
	case FaultExprTooLong:
		return "Err: Expr Long"
	case FaultNumTooLong:
		return "Err: Num Len"
	case FaultStack:
		return "Err: Stack"
	case FaultDisplay:
		return "Err: Display"
	}
	return ""
}

// status records the first fault of a session. Once set it is immutable
// until clear; later faults are dropped. Every fallible step checks
// active() before doing work and re-checks after calling into another
// fallible step, so a stored fault is never computed over or overwritten.
type status struct {
	fault Fault
	msg   string
}

func (s *status) fail(f Fault) {
	if s.fault != FaultNone {
		return
	}
	s.fault = f
	s.msg = truncate(f.Message(), lineLen)
}

func (s *status) active() bool { return s.fault != FaultNone }

func (s *status) message() string { return s.msg }

func (s *status) clear() {
	s.fault = FaultNone
	s.msg = ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
