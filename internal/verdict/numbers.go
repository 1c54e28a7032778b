package verdict

import (
	"math"
	"regexp"
	"strconv"
)

// numberToken matches optionally signed integers and decimals.
// Leftmost-longest matching means "1420" is extracted as one token, never
// as "142" or "42" — token boundaries come from match maximality plus the
// digit-adjacency check below.
var numberToken = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)

// extractNumbers returns every numeric token in the output. A sign is
// only honored when it is not preceded by a digit, so "10-3" yields 10
// and 3 rather than 10 and -3.
func extractNumbers(output string) []float64 {
	matches := numberToken.FindAllStringIndex(output, -1)
	nums := make([]float64, 0, len(matches))
	for _, m := range matches {
		tok := output[m[0]:m[1]]
		// Drop a leading sign that actually binds to a preceding number,
		// as in "10-3": the "-3" token is really an operator plus "3".
		if (tok[0] == '-' || tok[0] == '+') && m[0] > 0 && isNumberChar(output[m[0]-1]) {
			tok = tok[1:]
		}
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			continue
		}
		nums = append(nums, f)
	}
	return nums
}

func isNumberChar(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.'
}

// anyWithinTolerance reports whether any extracted token equals want
// under the configured tolerance: equal when the absolute difference is
// within AbsTolerance OR within RelTolerance of the expected value. This
// absorbs floating-point formatting drift like "3.0" vs "3" and
// "2.9999999" vs "3".
func anyWithinTolerance(tokens []float64, want float64, cfg Config) bool {
	for _, tok := range tokens {
		if withinTolerance(tok, want, cfg) {
			return true
		}
	}
	return false
}

func withinTolerance(got, want float64, cfg Config) bool {
	diff := math.Abs(got - want)
	if diff <= cfg.AbsTolerance {
		return true
	}
	return diff <= cfg.RelTolerance*math.Abs(want)
}
