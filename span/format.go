// SPDX-License-Identifier: MIT

package span

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/linspan/matrix"
)

var ratOne = big.NewRat(1, 1)

// FormatCombination renders v as a linear combination of the generators:
// (2, 0, -1/2) → "2*g_1(x) - (1/2)*g_3(x)". Zero coefficients are skipped,
// unit coefficients are omitted, fractions are parenthesized and an
// all-zero vector renders as "0".
func FormatCombination(v matrix.Vector, opts ...Option) string {
	return formatCombination(v, gatherOptions(opts...))
}

func formatCombination(v matrix.Vector, o Options) string {
	var (
		b     strings.Builder
		first = true
		abs   big.Rat
	)
	for i, c := range v {
		if c == nil || c.Sign() == 0 {
			continue
		}

		switch {
		case first && c.Sign() < 0:
			b.WriteString("-")
		case !first && c.Sign() > 0:
			b.WriteString(" + ")
		case !first:
			b.WriteString(" - ")
		}
		first = false

		abs.Abs(c)
		switch {
		case abs.Cmp(ratOne) == 0:
		case abs.IsInt():
			b.WriteString(abs.RatString() + "*")
		default:
			b.WriteString("(" + abs.RatString() + ")*")
		}
		b.WriteString(o.generator + "_" + strconv.Itoa(i+1) + "(" + o.variable + ")")
	}
	if first {
		return "0"
	}

	return b.String()
}
