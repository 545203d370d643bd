package generator

import (
	"fmt"
	"iter"

	"github.com/sandevgo/fakenews/internal/core"
)

// KeyFunc builds the key of one pick per catalog.
type KeyFunc func(picks []string) string

// ProductSpace is the Cartesian product of ordered catalogs.
type ProductSpace struct {
	catalogs [][]string
	key      KeyFunc
}

// NewProductSpace panics on an empty catalog list or an empty catalog,
// both are programming errors in the fixed data.
func NewProductSpace(key KeyFunc, catalogs ...[]string) *ProductSpace {
	if len(catalogs) == 0 {
		panic("generator: product space needs at least one catalog")
	}
	for i, c := range catalogs {
		if len(c) == 0 {
			panic(fmt.Sprintf("generator: catalog %d is empty", i))
		}
	}
	return &ProductSpace{catalogs: catalogs, key: key}
}

func (p *ProductSpace) Sample(r core.Rand) []string {
	picks := make([]string, len(p.catalogs))
	for i, c := range p.catalogs {
		picks[i] = c[r.IntN(len(c))]
	}
	return picks
}

// All walks the product like an odometer: the first catalog is the
// outermost loop, the last one the innermost.
func (p *ProductSpace) All() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		idx := make([]int, len(p.catalogs))
		for {
			picks := make([]string, len(p.catalogs))
			for i, c := range p.catalogs {
				picks[i] = c[idx[i]]
			}
			if !yield(picks) {
				return
			}

			pos := len(idx) - 1
			for pos >= 0 {
				idx[pos]++
				if idx[pos] < len(p.catalogs[pos]) {
					break
				}
				idx[pos] = 0
				pos--
			}
			if pos < 0 {
				return
			}
		}
	}
}

func (p *ProductSpace) Key(picks []string) string {
	return p.key(picks)
}

func (p *ProductSpace) Size() int {
	n := 1
	for _, c := range p.catalogs {
		n *= len(c)
	}
	return n
}
