package calc

import "testing"

func TestExprBufferCapacity(t *testing.T) {
	var st status
	e := newExprBuffer()
	for i := 0; i < maxTokens; i++ {
		if i%2 == 0 {
			e.pushNumber(&st, float64(i))
		} else {
			e.pushOperator(&st, OpAdd)
		}
	}
	if st.active() {
		t.Fatalf("filling the buffer faulted early: %v", st.fault)
	}
	if e.len() != maxTokens {
		t.Fatalf("len = %d, want %d", e.len(), maxTokens)
	}

	e.pushNumber(&st, 1)
	if st.fault != FaultExprTooLong {
		t.Fatalf("overflow push: fault = %v, want %v", st.fault, FaultExprTooLong)
	}
	if e.len() != maxTokens {
		t.Fatalf("overflow push grew the buffer to %d", e.len())
	}
}

func TestExprBufferNoopWhileFaulted(t *testing.T) {
	var st status
	st.fail(FaultSyntax)
	e := newExprBuffer()
	e.pushNumber(&st, 5)
	e.pushOperator(&st, OpMul)
	if e.len() != 0 {
		t.Fatalf("pushes landed under an active fault: len = %d", e.len())
	}
	if st.fault != FaultSyntax {
		t.Fatalf("fault changed: %v", st.fault)
	}
}

func TestExprBufferHistory(t *testing.T) {
	var st status
	e := newExprBuffer()
	e.pushNumber(&st, 12)
	e.appendHistory("12")
	e.pushOperator(&st, OpAdd)
	e.pushNumber(&st, 34)
	e.appendHistory("34")
	if got := e.historyTail(lineLen); got != "12+34" {
		t.Fatalf("historyTail = %q, want %q", got, "12+34")
	}
}

func TestExprBufferHistoryTailClips(t *testing.T) {
	e := newExprBuffer()
	e.appendHistory("123456789012345678")
	got := e.historyTail(4)
	if got != "5678" {
		t.Fatalf("historyTail(4) = %q, want %q", got, "5678")
	}
}

func TestExprBufferHistoryDropsOverflowWhole(t *testing.T) {
	e := newExprBuffer()
	for i := 0; i < historyLen-1; i++ {
		e.appendHistory("9")
	}
	e.appendHistory("42") // would exceed historyLen, dropped entirely
	if got := len(e.historyTail(historyLen)); got != historyLen-1 {
		t.Fatalf("history len = %d, want %d", got, historyLen-1)
	}
}

func TestExprBufferLastIsOperator(t *testing.T) {
	var st status
	e := newExprBuffer()
	if e.lastIsOperator() {
		t.Fatal("empty buffer reports trailing operator")
	}
	e.pushNumber(&st, 1)
	if e.lastIsOperator() {
		t.Fatal("number tail reports trailing operator")
	}
	e.pushOperator(&st, OpSub)
	if !e.lastIsOperator() {
		t.Fatal("operator tail not reported")
	}
}
