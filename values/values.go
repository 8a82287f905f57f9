/*
File : curlang/values/values.go
*/

// Package values defines the runtime value model the evaluator operates
// over: every expression reduces to either a number or a function, and
// every function is a closure that may carry captured lexical bindings
// and a partial prefix of accumulated arguments.
package values

import "github.com/curlang/curlang/parser"

// Value is anything the evaluator can produce: a Num or a Fun.
type Value interface {
	valueNode()
}

// Num is a fixed-width unsigned integer, the language's only scalar type.
// Arithmetic on it wraps rather than overflows or traps.
type Num uint64

// Fun wraps a Closure — either a native built-in or a user lambda,
// possibly holding accumulated arguments from a partial application.
type Fun struct {
	Closure *Closure
}

func (Num) valueNode() {}
func (Fun) valueNode() {}

// Binding is a single (name, value) pair, the unit both activation frames
// and captured-binding lists are built from.
type Binding struct {
	Name  string
	Value Value
}

// NativeFunc is the Go-side implementation of a built-in: given the
// caller's runtime (opaquely typed so this package doesn't import eval)
// and the fully-accumulated argument list, it produces a Value or an
// error.
type NativeFunc func(rt any, args []Value) (Value, error)

// Closure is a callable value. Exactly one of Native/User is populated,
// selected by Kind.
type Closure struct {
	Kind ClosureKind

	// Native fields, set when Kind == KindNative. Name is also set on
	// user functions registered by name in the registry.
	Name   string
	Arity  int
	Native NativeFunc

	// User fields, set when Kind == KindUser.
	Lambda *parser.Lambda

	// CapturedBindings are names resolved once (by the bind built-in) and
	// attached to this closure so they are visible on every future call
	// regardless of what the caller's activation stack looks like.
	CapturedBindings []Binding

	// AccumulatedArgs holds the prefix of arguments this partially-applied
	// closure has already received, in call order.
	AccumulatedArgs []Value
}

// ClosureKind distinguishes a native built-in from a user-defined lambda.
type ClosureKind int

const (
	KindNative ClosureKind = iota
	KindUser
)

// declaredArity returns how many arguments this closure needs before it
// fires, independent of how many it has already accumulated.
func (c *Closure) declaredArity() int {
	if c.Kind == KindNative {
		return c.Arity
	}
	return len(c.Lambda.Params)
}

// Ready reports whether this closure's accumulated arguments have
// reached its declared arity — call it after WithArg, not before.
func (c *Closure) Ready() bool {
	return len(c.AccumulatedArgs) >= c.declaredArity()
}

// WithArg returns a new closure identical to c but with arg appended to
// its accumulated arguments. Closures are copied rather than mutated in
// place so that a partially-applied function can be reused from multiple
// call sites without argument lists bleeding into each other.
func (c *Closure) WithArg(arg Value) *Closure {
	next := *c
	next.AccumulatedArgs = append(append([]Value{}, c.AccumulatedArgs...), arg)
	return &next
}

// ParamName returns the name the i-th accumulated argument binds to when
// this closure finally fires, or "" if there is none (natives have no
// parameter names; out-of-range indices can't happen in practice since
// Ready gates the call).
func (c *Closure) ParamName(i int) string {
	if c.Kind != KindUser || i < 0 || i >= len(c.Lambda.Params) {
		return ""
	}
	return c.Lambda.Params[i]
}
