package calc

import (
	"math"
	"strconv"
	"strings"
)

// intEpsilon decides whether a result displays as an integer.
const intEpsilon = 1e-7

// formatResult renders v for one display line: integers without a fraction,
// other values as fixed point trimmed of trailing zeros, falling back to
// scientific notation when fixed point does not fit. If even scientific
// notation exceeds the line, FaultDisplay.
func formatResult(st *status, v float64) string {
	var s string
	if math.Abs(v-math.Round(v)) < intEpsilon {
		s = strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	} else {
		s = trimZeros(strconv.FormatFloat(v, 'f', 6, 64))
	}
	if len(s) > lineLen {
		s = strconv.FormatFloat(v, 'e', 3, 64)
	}
	if len(s) > lineLen {
		st.fail(FaultDisplay)
		return ""
	}
	return s
}

// trimZeros removes trailing fractional zeros and a then-bare trailing dot.
func trimZeros(s string) string {
	if strings.IndexByte(s, '.') < 0 {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
