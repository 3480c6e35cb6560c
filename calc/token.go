package calc

// Capacity limits. These are load-bearing: the *TooLong faults are defined
// in terms of them.
const (
	maxTokens  = 50 // committed expression, also sizes the eval stacks
	lineLen    = 16 // display line width, caps entry and fault messages
	historyLen = 32 // committed-expression history used for line 1
)

type tokenKind uint8

const (
	tokNumber tokenKind = iota
	tokOperator
)

// Token is one element of the committed expression.
type Token struct {
	kind tokenKind
	num  float64
	op   Op
}

func numberToken(v float64) Token { return Token{kind: tokNumber, num: v} }
func operatorToken(o Op) Token    { return Token{kind: tokOperator, op: o} }

// exprBuffer holds the committed expression in entry order plus the textual
// history shown on the first display line. Tokens are never removed
// individually; the buffer only resets as part of a full session reset.
type exprBuffer struct {
	toks    []Token
	history []byte
}

func newExprBuffer() *exprBuffer {
	return &exprBuffer{
		toks:    make([]Token, 0, maxTokens),
		history: make([]byte, 0, historyLen),
	}
}

// pushNumber appends a number token. It is a no-op while a fault is active
// and records FaultExprTooLong at capacity.
func (e *exprBuffer) pushNumber(st *status, v float64) {
	if st.active() {
		return
	}
	if len(e.toks) >= maxTokens {
		st.fail(FaultExprTooLong)
		return
	}
	e.toks = append(e.toks, numberToken(v))
}

// pushOperator appends an operator token and its character to the history.
func (e *exprBuffer) pushOperator(st *status, o Op) {
	if st.active() {
		return
	}
	if len(e.toks) >= maxTokens {
		st.fail(FaultExprTooLong)
		return
	}
	e.toks = append(e.toks, operatorToken(o))
	e.appendHistory(o.String())
}

// appendHistory adds s to the display history. The history is presentation
// only; appends that would overflow its capacity are dropped whole.
func (e *exprBuffer) appendHistory(s string) {
	if len(e.history)+len(s) > historyLen {
		return
	}
	e.history = append(e.history, s...)
}

// historyTail returns the last n characters of the history.
func (e *exprBuffer) historyTail(n int) string {
	h := e.history
	if len(h) > n {
		h = h[len(h)-n:]
	}
	return string(h)
}

func (e *exprBuffer) len() int { return len(e.toks) }

func (e *exprBuffer) lastIsOperator() bool {
	return len(e.toks) > 0 && e.toks[len(e.toks)-1].kind == tokOperator
}

func (e *exprBuffer) reset() {
	e.toks = e.toks[:0]
	e.history = e.history[:0]
}
