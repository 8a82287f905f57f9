/*
File : curlang/builtins/state.go
*/
package builtins

import (
	"github.com/curlang/curlang/eval"
	"github.com/curlang/curlang/values"
)

// Counter is host state private to this file's natives. The evaluator
// never inspects it directly — it only ever holds the opaque any the
// evaluator stores, reached through eval.StateAs.
type Counter struct {
	n uint64
}

// registerState installs "counter-reset" and "counter-inc", a minimal
// pair of natives that exercise the evaluator's host-state slot: one
// initializes it, the other mutates it in place across calls, the way
// an allocator or connection pool built-in would share state the core
// evaluator itself knows nothing about.
func registerState(reg *eval.Registry) {
	reg.RegisterNative("counter-reset", 1, func(rt any, args []values.Value) (values.Value, error) {
		e := rt.(*eval.Evaluator)
		start, err := asNum(args[0])
		if err != nil {
			return nil, err
		}
		e.SetState(&Counter{n: start})
		return values.Num(start), nil
	})

	reg.RegisterNative("counter-inc", 1, func(rt any, args []values.Value) (values.Value, error) {
		e := rt.(*eval.Evaluator)
		delta, err := asNum(args[0])
		if err != nil {
			return nil, err
		}
		c, err := eval.StateAs[*Counter](e)
		if err != nil {
			return nil, &eval.ExplicitlyRaisedMessageError{Message: "counter-inc: " + err.Error()}
		}
		c.n += delta
		return values.Num(c.n), nil
	})
}
