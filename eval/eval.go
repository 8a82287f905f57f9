/*
File : curlang/eval/eval.go
*/

// Package eval walks the program tree produced by the parser package and
// produces values, applying curried call semantics: a Call supplies one
// argument at a time to a closure, which either accumulates it and waits
// for more or, once its declared arity is reached, fires.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/curlang/curlang/parser"
	"github.com/curlang/curlang/scope"
	"github.com/curlang/curlang/values"
)

// Evaluator owns everything a running program needs: the function
// registry, the activation-frame stack, an opaque slot native built-ins
// can stash shared state in, and the writer "print"-style built-ins
// write to.
type Evaluator struct {
	Registry *Registry
	Env      scope.Environment
	Out      io.Writer

	state any
}

// New returns an Evaluator with an empty registry and no host state set,
// writing to os.Stdout.
func New() *Evaluator {
	return &Evaluator{
		Registry: NewRegistry(),
		Out:      os.Stdout,
	}
}

// State returns the current host-state value, or nil if none has been
// set.
func (e *Evaluator) State() any {
	return e.state
}

// SetState installs v as the host-state value, replacing whatever was
// there before.
func (e *Evaluator) SetState(v any) {
	e.state = v
}

// StateAs fetches the evaluator's host state cast to T, so a native
// built-in family can share private state (a heap, a counter, a client)
// without the eval package knowing its concrete type.
func StateAs[T any](e *Evaluator) (T, error) {
	var zero T
	v, ok := e.state.(T)
	if !ok {
		return zero, &WrongStateTypeError{
			Want: fmt.Sprintf("%T", zero),
			Got:  fmt.Sprintf("%T", e.state),
		}
	}
	return v, nil
}

// Eval walks a single program node to a Value.
func (e *Evaluator) Eval(n parser.Node) (values.Value, error) {
	switch node := n.(type) {
	case *parser.Num:
		return values.Num(node.N), nil
	case *parser.Ref:
		return e.resolveRef(node.Name)
	case *parser.Lambda:
		return values.Fun{Closure: &values.Closure{Kind: values.KindUser, Lambda: node}}, nil
	case *parser.Call:
		fnVal, err := e.Eval(node.Fn)
		if err != nil {
			return nil, err
		}
		fv, ok := fnVal.(values.Fun)
		if !ok {
			n, _ := fnVal.(values.Num)
			return nil, &NotAFunctionError{Value: uint64(n)}
		}
		argVal, err := e.Eval(node.Arg)
		if err != nil {
			return nil, err
		}
		return e.Apply(fv, argVal)
	default:
		return nil, fmt.Errorf("eval: unknown node type %T", n)
	}
}

// resolveRef looks a name up on the live activation stack first, then
// falls back to the registry. A stack hit is always a Value already (a
// Num or a Fun with its arguments already bound); a registry hit is
// wrapped fresh as a zero-argument partial application of that closure.
func (e *Evaluator) resolveRef(name string) (values.Value, error) {
	if v, ok := e.Env.Lookup(name); ok {
		return v, nil
	}
	if c, ok := e.Registry.Lookup(name); ok {
		return values.Fun{Closure: c}, nil
	}
	return nil, &UndefinedReferenceError{Name: name}
}

// Apply supplies arg to fn. If fn isn't a function this is a runtime
// error; otherwise the argument is accumulated and, once the closure's
// declared arity is reached, the closure fires.
func (e *Evaluator) Apply(fn, arg values.Value) (values.Value, error) {
	fv, ok := fn.(values.Fun)
	if !ok {
		n, _ := fn.(values.Num)
		return nil, &NotAFunctionError{Value: uint64(n)}
	}
	next := fv.Closure.WithArg(arg)
	if next.Ready() {
		return e.invoke(next)
	}
	return values.Fun{Closure: next}, nil
}

// invoke runs a fully-saturated closure: a native Go function call, or a
// fresh activation frame for a user lambda.
func (e *Evaluator) invoke(c *values.Closure) (values.Value, error) {
	if c.Kind == values.KindNative {
		return c.Native(e, c.AccumulatedArgs)
	}

	frame := make(scope.Frame, 0, len(c.CapturedBindings)+len(c.AccumulatedArgs))
	for i, v := range c.AccumulatedArgs {
		frame = append(frame, values.Binding{Name: c.ParamName(i), Value: v})
	}
	frame = append(frame, c.CapturedBindings...)

	e.Env.Push(frame)
	defer e.Env.Pop()

	if len(c.Lambda.Body) == 0 {
		return nil, &EmptyFunctionError{}
	}
	var last values.Value
	for _, stmt := range c.Lambda.Body {
		v, err := e.Eval(stmt)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

// Run parses and evaluates src as a zero-argument program: it parses to
// an entry Lambda and invokes it with no arguments, matching the file
// driver's and the REPL's top-level evaluation contract.
func (e *Evaluator) Run(src string) (values.Value, error) {
	entry, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return e.RunLambda(entry, nil)
}

// RunLambda invokes entry directly with args already evaluated, without
// going through Apply's accumulation machinery. Run uses it to invoke the
// parsed entry Lambda.
func (e *Evaluator) RunLambda(entry *parser.Lambda, args []values.Value) (values.Value, error) {
	c := &values.Closure{Kind: values.KindUser, Lambda: entry, AccumulatedArgs: args}
	return e.invoke(c)
}

// Thunk invokes v as a zero-argument closure, the "if" contract's way of
// deferring evaluation of its condition and branches. A plain Num is
// returned as-is, matching the abstract contract's "if it is a number,
// use it directly" clause.
func (e *Evaluator) Thunk(v values.Value) (values.Value, error) {
	fv, ok := v.(values.Fun)
	if !ok {
		return v, nil
	}
	return e.invoke(fv.Closure)
}
