// SPDX-License-Identifier: MIT

// Command linspan checks interactively whether a polynomial f lies in the
// linear span of polynomials g_1..g_k, working over exact rationals.
//
// Usage:
//
//	linspan [-f name] [-g name] [-c name] [-x name]
//
// Coefficients are typed lowest degree first, separated by spaces; decimals
// (0.5) and fractions (-1/3) are accepted:
//
//	f(x) coefficients: 1 2 1
//	number of generators g_i: 2
//	g_1(x) coefficients: 1 1
//	g_2(x) coefficients: 0 1 1
//
// Any input error is reported and the command exits with status 1.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/linspan/matrix"
	"github.com/katalvlaran/linspan/poly"
	"github.com/katalvlaran/linspan/span"
)

const _rule = "============================================================"

// errGeneratorCount reports a generator count that is not a positive integer.
var errGeneratorCount = errors.New("number of generators must be a positive integer")

func main() {
	log.SetFlags(0)

	target := flag.String("f", span.DefaultTargetSymbol, "name of the target polynomial")
	generator := flag.String("g", span.DefaultGeneratorSymbol, "name of the generator polynomials")
	constant := flag.String("c", span.DefaultConstantSymbol, "name of the free parameters")
	variable := flag.String("x", span.DefaultVariable, "name of the polynomial variable")
	flag.Parse()

	for name, v := range map[string]string{"f": *target, "g": *generator, "c": *constant, "x": *variable} {
		if v == "" {
			log.Fatalf("flag -%s must not be empty", name)
		}
	}

	err := run(os.Stdin, os.Stdout,
		span.WithTargetSymbol(*target),
		span.WithGeneratorSymbol(*generator),
		span.WithConstantSymbol(*constant),
		span.WithVariable(*variable),
	)
	if err != nil {
		log.Fatalf("\ncritical error: %v", err)
	}
}

// run drives one interactive session: read f and g_1..g_k from in, print
// the system, its solution and the final linear combination to out.
func run(in io.Reader, out io.Writer, opts ...span.Option) error {
	o := span.NewOptions(opts...)
	sc := bufio.NewScanner(in)

	fmt.Fprintln(out, "=== Does a polynomial belong to the linear span? ===")
	target, gens, err := readInput(sc, out, o)
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}

	aligned := poly.Align(append([]matrix.Vector{target}, gens...))
	fmt.Fprintln(out, "\n--- Your polynomials ---")
	fmt.Fprintf(out, "%s(%s) = %s\n", o.TargetSymbol(), o.Variable(), polynomial(aligned[0], o))
	for i, g := range aligned[1:] {
		fmt.Fprintf(out, "%s_%d(%s) = %s\n", o.GeneratorSymbol(), i+1, o.Variable(), polynomial(g, o))
	}

	res, err := span.Check(target, gens, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n--- Augmented system matrix [G | %s] ---\n", o.TargetSymbol())
	fmt.Fprintln(out, res.System())
	fmt.Fprintln(out, "\n--- Solution of the linear system ---")
	fmt.Fprintln(out, res.Solution())
	fmt.Fprintln(out, "\n--- Final answer ---")
	fmt.Fprintln(out, res.Combination())
	fmt.Fprintln(out, _rule)

	return nil
}

// readInput prompts for the target and the generators.
func readInput(sc *bufio.Scanner, out io.Writer, o span.Options) (matrix.Vector, []matrix.Vector, error) {
	fmt.Fprintln(out, "\n--- Input ---")
	fmt.Fprintln(out, "Enter coefficients separated by spaces, starting from x^0 (e.g. 1 0.5 -1/3)")

	line, err := prompt(sc, out, fmt.Sprintf("%s(%s) coefficients: ", o.TargetSymbol(), o.Variable()))
	if err != nil {
		return nil, nil, err
	}
	target, err := poly.ParseCoeffs(line)
	if err != nil {
		return nil, nil, err
	}

	line, err = prompt(sc, out, fmt.Sprintf("number of generators %s_i: ", o.GeneratorSymbol()))
	if err != nil {
		return nil, nil, err
	}
	k, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || k < 1 {
		return nil, nil, fmt.Errorf("%q: %w", strings.TrimSpace(line), errGeneratorCount)
	}

	var gens []matrix.Vector
	for i := 1; i <= k; i++ {
		line, err = prompt(sc, out, fmt.Sprintf("%s_%d(%s) coefficients: ", o.GeneratorSymbol(), i, o.Variable()))
		if err != nil {
			return nil, nil, err
		}
		g, err := poly.ParseCoeffs(line)
		if err != nil {
			return nil, nil, fmt.Errorf("%s_%d: %w", o.GeneratorSymbol(), i, err)
		}
		gens = append(gens, g)
	}

	return target, gens, nil
}

// prompt writes label and returns the next input line.
func prompt(sc *bufio.Scanner, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}

	return sc.Text(), nil
}

func polynomial(v matrix.Vector, o span.Options) poly.Polynomial {
	return poly.Polynomial{Coeffs: v, Var: o.Variable()}
}
