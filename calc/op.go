package calc

import "math"

// Op is a binary arithmetic operator.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// divEpsilon guards division: divisors this close to zero fault instead of
// producing an overflowed quotient.
const divEpsilon = 1e-7

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// precedence: * and / bind tighter than + and -.
func (o Op) precedence() int {
	if o == OpMul || o == OpDiv {
		return 2
	}
	return 1
}

// apply computes "a o b". Division by (near) zero reports FaultDivZero with
// a sentinel 0 result.
func (o Op) apply(a, b float64) (float64, Fault) {
	switch o {
	case OpAdd:
		return a + b, FaultNone
	case OpSub:
		return a - b, FaultNone
	case OpMul:
		return a * b, FaultNone
	case OpDiv:
		if math.Abs(b) < divEpsilon {
			return 0, FaultDivZero
		}
		return a / b, FaultNone
	}
	return 0, FaultSyntax
}
