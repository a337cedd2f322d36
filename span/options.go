// SPDX-License-Identifier: MIT

// Package span: functional configuration for rendering span-membership
// results. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Options only affect rendering; the linear algebra is never configurable.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package span

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultGeneratorSymbol names the generators: g_1(x), g_2(x), ...
	DefaultGeneratorSymbol = "g"

	// DefaultTargetSymbol names the target vector: f(x) = ...
	DefaultTargetSymbol = "f"

	// DefaultConstantSymbol names the free parameters: C1, C2, ...
	DefaultConstantSymbol = "C"

	// DefaultVariable is the argument shown in g_i(x).
	DefaultVariable = "x"
)

// ---------- Internal panic messages ----------

const (
	panicGeneratorEmpty = "span: WithGeneratorSymbol: symbol must be non-empty"
	panicTargetEmpty    = "span: WithTargetSymbol: symbol must be non-empty"
	panicConstantEmpty  = "span: WithConstantSymbol: symbol must be non-empty"
	panicVariableEmpty  = "span: WithVariable: name must be non-empty"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	generator string // DefaultGeneratorSymbol
	target    string // DefaultTargetSymbol
	constant  string // DefaultConstantSymbol
	variable  string // DefaultVariable
}

// WithGeneratorSymbol sets the generator name ("g" → g_1(x)). Panics on "".
func WithGeneratorSymbol(s string) Option {
	if s == "" {
		panic(panicGeneratorEmpty)
	}

	return func(o *Options) { o.generator = s }
}

// WithTargetSymbol sets the target name ("f" → f(x) = ...). Panics on "".
func WithTargetSymbol(s string) Option {
	if s == "" {
		panic(panicTargetEmpty)
	}

	return func(o *Options) { o.target = s }
}

// WithConstantSymbol sets the free-parameter name ("C" → C1, C2). Panics on "".
func WithConstantSymbol(s string) Option {
	if s == "" {
		panic(panicConstantEmpty)
	}

	return func(o *Options) { o.constant = s }
}

// WithVariable sets the argument name shown in g_i(x). Panics on "".
func WithVariable(name string) Option {
	if name == "" {
		panic(panicVariableEmpty)
	}

	return func(o *Options) { o.variable = name }
}

// NewOptions resolves opts on top of the defaults. Exposed for callers that
// want to inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// GeneratorSymbol returns the effective generator name.
func (o Options) GeneratorSymbol() string { return o.generator }

// TargetSymbol returns the effective target name.
func (o Options) TargetSymbol() string { return o.target }

// ConstantSymbol returns the effective free-parameter name.
func (o Options) ConstantSymbol() string { return o.constant }

// Variable returns the effective argument name.
func (o Options) Variable() string { return o.variable }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		generator: DefaultGeneratorSymbol,
		target:    DefaultTargetSymbol,
		constant:  DefaultConstantSymbol,
		variable:  DefaultVariable,
	}
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}
