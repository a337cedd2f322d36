// SPDX-License-Identifier: MIT

package poly

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/shlex"

	"github.com/katalvlaran/linspan/matrix"
)

// ErrInvalidCoefficient is matched (errors.Is) by every *ParseError.
var ErrInvalidCoefficient = errors.New("poly: invalid coefficient")

// ErrTokenize is returned when the input cannot be split into tokens
// (for example an unterminated quote).
var ErrTokenize = errors.New("poly: cannot tokenize input")

// ParseError identifies the offending token of a coefficient string.
type ParseError struct {
	Token string // token as typed by the user
	Index int    // zero-based token position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("poly: %q (token %d) is not a valid number or fraction", e.Token, e.Index+1)
}

// Unwrap lets errors.Is(err, ErrInvalidCoefficient) match.
func (e *ParseError) Unwrap() error { return ErrInvalidCoefficient }

// ParseCoeffs converts a whitespace-separated list of decimal ("0.5"),
// integer ("-3") or fraction ("-1/3") literals into a Vector, in input order.
//
//	ParseCoeffs("1 0.5 -1/3") // (1, 1/2, -1/3)
//
// Tokens may be quoted. An empty or blank string yields an empty Vector.
// The first invalid token aborts parsing with a *ParseError. A word starting
// with '#' is an invalid token, not a comment.
func ParseCoeffs(s string) (matrix.Vector, error) {
	if err := rejectComment(s); err != nil {
		return nil, err
	}
	tokens, err := shlex.Split(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenize, err)
	}

	out := make(matrix.Vector, 0, len(tokens))
	for i, tok := range tokens {
		r, ok := new(big.Rat).SetString(tok)
		if !ok {
			return nil, &ParseError{Token: tok, Index: i}
		}
		out = append(out, r)
	}

	return out, nil
}

// rejectComment reports the first whitespace-delimited word that shlex would
// treat as the start of a comment and silently drop.
func rejectComment(s string) error {
	for i, word := range strings.Fields(s) {
		if strings.HasPrefix(word, "#") {
			return &ParseError{Token: word, Index: i}
		}
	}

	return nil
}

// Align right-pads copies of every vector with zeros up to the longest
// length, so coefficient vectors of different degree can be combined.
// The inputs are not modified. Returns nil for no input.
func Align(vs []matrix.Vector) []matrix.Vector {
	if len(vs) == 0 {
		return nil
	}
	maxLen := 0
	for _, v := range vs {
		if len(v) > maxLen {
			maxLen = len(v)
		}
	}

	out := make([]matrix.Vector, len(vs))
	for i, v := range vs {
		padded := make(matrix.Vector, maxLen)
		for j := range padded {
			if j < len(v) && v[j] != nil {
				padded[j] = new(big.Rat).Set(v[j])
			} else {
				padded[j] = new(big.Rat)
			}
		}
		out[i] = padded
	}

	return out
}
