package calc

// evaluate reduces the committed expression to a single value using two
// stacks: numbers go on a value stack, operators are held back until an
// incoming operator of lower or equal precedence forces the stacked ones to
// apply. The <= rule is what keeps equal-precedence runs left associative
// ("10-2+3" is 11, not 9).
//
// All fault paths return the sentinel 0; callers must consult the status.
func evaluate(st *status, e *exprBuffer) float64 {
	if st.active() {
		return 0
	}
	if e.len() == 0 {
		return 0
	}

	toks := e.toks
	if toks[len(toks)-1].kind == tokOperator {
		// An expression cannot end on an operator ("5+ ="). This also
		// rejects a lone operator, which is both first and last.
		st.fail(FaultSyntax)
		return 0
	}
	if len(toks) == 1 {
		return toks[0].num
	}

	var (
		vals      [maxTokens]float64
		ops       [maxTokens]Op
		nVal, nOp int
	)

	applyTop := func() bool {
		if nVal < 2 {
			st.fail(FaultSyntax)
			return false
		}
		op := ops[nOp-1]
		nOp--
		b := vals[nVal-1]
		nVal--
		a := vals[nVal-1]
		nVal--
		r, f := op.apply(a, b)
		if f != FaultNone {
			st.fail(f)
			return false
		}
		vals[nVal] = r
		nVal++
		return true
	}

	for _, t := range toks {
		if t.kind == tokNumber {
			if nVal >= maxTokens {
				st.fail(FaultStack)
				return 0
			}
			vals[nVal] = t.num
			nVal++
			continue
		}
		for nOp > 0 && ops[nOp-1].precedence() >= t.op.precedence() {
			if !applyTop() {
				return 0
			}
		}
		if nOp >= maxTokens {
			st.fail(FaultStack)
			return 0
		}
		ops[nOp] = t.op
		nOp++
	}

	for nOp > 0 {
		if !applyTop() {
			return 0
		}
	}

	if nVal != 1 {
		st.fail(FaultSyntax)
		return 0
	}
	return vals[0]
}
