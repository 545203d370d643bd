package arithmetic

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sandevgo/fakenews/internal/core"
)

type Verdict int

const (
	VerdictCorrect Verdict = iota
	VerdictIncorrect
	VerdictSkipped
)

// divisionTolerance is the absolute error accepted for division answers.
const divisionTolerance = 1e-6

// Check scores a typed answer. A non-numeric input other than "skip"
// returns core.ErrInvalidAnswer and the caller asks again.
func Check(p Problem, input string) (Verdict, error) {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, "skip") {
		return VerdictSkipped, nil
	}

	got, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(got) || math.IsInf(got, 0) {
		return VerdictIncorrect, fmt.Errorf("%q: %w", input, core.ErrInvalidAnswer)
	}

	want := p.Answer()
	if p.Op == Divide {
		if math.Abs(got-want) < divisionTolerance {
			return VerdictCorrect, nil
		}
		return VerdictIncorrect, nil
	}
	if got == want {
		return VerdictCorrect, nil
	}
	return VerdictIncorrect, nil
}

// FormatAnswer prints integral answers without a fractional part.
func FormatAnswer(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
