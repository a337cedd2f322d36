// Package poly holds the polynomial-side collaborators of the span checker:
// parsing coefficient strings, aligning coefficient vectors of different
// degree, and pretty-printing polynomials.
//
// A polynomial is identified with its coefficient vector, lowest degree
// first: "1 0 -2" is 1 - 2x², printed as "-2x^2 + 1".
package poly
