// Package arithmetic builds drill problems whose answers stay in simple
// number ranges: subtraction never goes negative and division is always
// exact.
package arithmetic

import (
	"fmt"
	"iter"

	"github.com/sandevgo/fakenews/internal/core"
)

type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
)

// Operators is also the enumeration order of the exhaustive fallback.
var Operators = []Operator{Add, Subtract, Multiply, Divide}

const (
	maxAddend   = 50
	maxFactor   = 12
	maxDivisor  = 12
	maxQuotient = 12
)

type Problem struct {
	A  int
	Op Operator
	B  int
}

// String is also the uniqueness key of the problem.
func (p Problem) String() string {
	return fmt.Sprintf("%d %s %d", p.A, p.Op, p.B)
}

// Answer is the exact result. Division results are exact by construction
// but are still computed as a float.
func (p Problem) Answer() float64 {
	switch p.Op {
	case Add:
		return float64(p.A + p.B)
	case Subtract:
		return float64(p.A - p.B)
	case Multiply:
		return float64(p.A * p.B)
	case Divide:
		return float64(p.A) / float64(p.B)
	}
	return 0
}

// Space is every problem the drill can produce.
type Space struct{}

func (Space) Sample(r core.Rand) Problem {
	op := Operators[r.IntN(len(Operators))]
	switch op {
	case Subtract:
		a := r.IntN(maxAddend + 1)
		return Problem{A: a, Op: op, B: r.IntN(a + 1)}
	case Multiply:
		return Problem{A: r.IntN(maxFactor + 1), Op: op, B: r.IntN(maxFactor + 1)}
	case Divide:
		b := r.IntN(maxDivisor) + 1
		q := r.IntN(maxQuotient + 1)
		return Problem{A: b * q, Op: op, B: b}
	default:
		return Problem{A: r.IntN(maxAddend + 1), Op: op, B: r.IntN(maxAddend + 1)}
	}
}

func (Space) All() iter.Seq[Problem] {
	return func(yield func(Problem) bool) {
		for a := 0; a <= maxAddend; a++ {
			for b := 0; b <= maxAddend; b++ {
				if !yield(Problem{A: a, Op: Add, B: b}) {
					return
				}
			}
		}
		for a := 0; a <= maxAddend; a++ {
			for b := 0; b <= a; b++ {
				if !yield(Problem{A: a, Op: Subtract, B: b}) {
					return
				}
			}
		}
		for a := 0; a <= maxFactor; a++ {
			for b := 0; b <= maxFactor; b++ {
				if !yield(Problem{A: a, Op: Multiply, B: b}) {
					return
				}
			}
		}
		for b := 1; b <= maxDivisor; b++ {
			for q := 0; q <= maxQuotient; q++ {
				if !yield(Problem{A: b * q, Op: Divide, B: b}) {
					return
				}
			}
		}
	}
}

func (Space) Key(p Problem) string {
	return p.String()
}

func (Space) Size() int {
	add := (maxAddend + 1) * (maxAddend + 1)
	sub := (maxAddend + 1) * (maxAddend + 2) / 2
	mul := (maxFactor + 1) * (maxFactor + 1)
	div := maxDivisor * (maxQuotient + 1)
	return add + sub + mul + div
}
