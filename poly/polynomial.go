// SPDX-License-Identifier: MIT

package poly

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/linspan/matrix"
)

// DefaultVar is the variable name used when Polynomial.Var is empty.
const DefaultVar = "x"

var ratOne = big.NewRat(1, 1)

// Polynomial is a coefficient vector read from x^0 upward:
// Coeffs[k] multiplies Var^k.
type Polynomial struct {
	Coeffs matrix.Vector
	Var    string
}

// New returns a polynomial in DefaultVar over a copy of coeffs.
func New(coeffs matrix.Vector) Polynomial {
	return Polynomial{Coeffs: coeffs.Clone(), Var: DefaultVar}
}

// Degree returns the index of the highest non-zero coefficient,
// or -1 for the zero polynomial.
func (p Polynomial) Degree() int {
	for k := len(p.Coeffs) - 1; k >= 0; k-- {
		if c := p.Coeffs[k]; c != nil && c.Sign() != 0 {
			return k
		}
	}

	return -1
}

// String renders the polynomial from the highest degree down, e.g.
// "3x^2 - x + 1/2". Unit coefficients are omitted except on the constant
// term; the zero polynomial renders as "0".
func (p Polynomial) String() string {
	name := p.Var
	if name == "" {
		name = DefaultVar
	}

	var (
		b     strings.Builder
		first = true
		abs   big.Rat
	)
	for k := len(p.Coeffs) - 1; k >= 0; k-- {
		c := p.Coeffs[k]
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
		if abs.Cmp(ratOne) != 0 || k == 0 {
			b.WriteString(abs.RatString())
		}

		switch k {
		case 0:
		case 1:
			b.WriteString(name)
		default:
			b.WriteString(name + "^" + strconv.Itoa(k))
		}
	}
	if first {
		return "0"
	}

	return b.String()
}
