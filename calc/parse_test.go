package calc

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		flt  Fault
	}{
		{"", 0, FaultNone},
		{"0", 0, FaultNone},
		{"7", 7, FaultNone},
		{"42", 42, FaultNone},
		{"3.5", 3.5, FaultNone},
		{"0.125", 0.125, FaultNone},
		{"-8", -8, FaultNone},
		{"-0.5", -0.5, FaultNone},
		{"-", 0, FaultSyntax},
		{".", 0, FaultSyntax},
		{"1.2.3", 0, FaultSyntax},
		{"1x2", 0, FaultSyntax},
	}
	for _, c := range cases {
		var st status
		got := parseNumber(&st, c.in)
		if st.fault != c.flt {
			t.Fatalf("parseNumber(%q): fault = %v, want %v", c.in, st.fault, c.flt)
		}
		if c.flt != FaultNone {
			if got != 0 {
				t.Fatalf("parseNumber(%q): fault path returned %v, want 0", c.in, got)
			}
			continue
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("parseNumber(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNumberEntryDigitsAndDot(t *testing.T) {
	var st status
	e := newNumberEntry()

	e.pushDot(&st)
	if st.active() {
		t.Fatalf("leading dot faulted: %v", st.fault)
	}
	if got := e.text(); got != "0." {
		t.Fatalf("text after leading dot = %q, want %q", got, "0.")
	}

	e.pushDigit(&st, 5)
	if got := e.text(); got != "0.5" {
		t.Fatalf("text = %q, want %q", got, "0.5")
	}

	e.pushDot(&st)
	if st.fault != FaultSyntax {
		t.Fatalf("second dot: fault = %v, want %v", st.fault, FaultSyntax)
	}
}

func TestNumberEntryTooLong(t *testing.T) {
	var st status
	e := newNumberEntry()
	for i := 0; i < lineLen; i++ {
		e.pushDigit(&st, 9)
	}
	if st.active() {
		t.Fatalf("filling the entry faulted early: %v", st.fault)
	}
	e.pushDigit(&st, 1)
	if st.fault != FaultNumTooLong {
		t.Fatalf("overflow digit: fault = %v, want %v", st.fault, FaultNumTooLong)
	}
	if len(e.text()) != lineLen {
		t.Fatalf("entry grew past %d chars: %q", lineLen, e.text())
	}
}

func TestNumberEntryDotNeedsRoom(t *testing.T) {
	var st status
	e := newNumberEntry()
	for i := 0; i < lineLen-1; i++ {
		e.pushDigit(&st, 1)
	}
	e.pushDot(&st)
	if st.fault != FaultNumTooLong {
		t.Fatalf("dot with no room for a digit: fault = %v, want %v", st.fault, FaultNumTooLong)
	}
}

func TestNumberEntryMinusParse(t *testing.T) {
	var st status
	e := newNumberEntry()
	e.pushMinus(&st)
	e.pushDigit(&st, 3)
	e.pushDot(&st)
	e.pushDigit(&st, 5)
	if st.active() {
		t.Fatalf("unexpected fault: %v", st.fault)
	}
	got := e.parse(&st)
	if st.active() {
		t.Fatalf("parse faulted: %v", st.fault)
	}
	if math.Abs(got-(-3.5)) > 1e-9 {
		t.Fatalf("parse = %v, want -3.5", got)
	}
}
