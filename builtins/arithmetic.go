/*
File : curlang/builtins/arithmetic.go
*/

// Package builtins is the reference native registry: arithmetic, the
// control-flow and binding primitives the language's own semantics
// depend on ("if", "let", "bind"), and a host-state-backed "counter"
// family demonstrating the evaluator's opaque state slot.
package builtins

import (
	"math"

	"github.com/curlang/curlang/eval"
	"github.com/curlang/curlang/values"
)

// asNum type-asserts v to a Num, reporting a uniform error otherwise —
// every arithmetic native needs exactly this check on every argument.
func asNum(v values.Value) (uint64, error) {
	n, ok := v.(values.Num)
	if !ok {
		return 0, &eval.ExplicitlyRaisedMessageError{Message: "expected a number argument"}
	}
	return uint64(n), nil
}

// registerArithmetic installs the scalar operations "+", "-", "mul",
// "not" and "number?", all on fixed-width uint64 arithmetic with
// wrapping subtraction.
func registerArithmetic(reg *eval.Registry) {
	reg.RegisterNative("+", 2, func(_ any, args []values.Value) (values.Value, error) {
		a, err := asNum(args[0])
		if err != nil {
			return nil, err
		}
		b, err := asNum(args[1])
		if err != nil {
			return nil, err
		}
		return values.Num(a + b), nil
	})

	reg.RegisterNative("-", 2, func(_ any, args []values.Value) (values.Value, error) {
		a, err := asNum(args[0])
		if err != nil {
			return nil, err
		}
		b, err := asNum(args[1])
		if err != nil {
			return nil, err
		}
		if b > a {
			return values.Num(math.MaxUint64 - (b - a)), nil
		}
		return values.Num(a - b), nil
	})

	reg.RegisterNative("mul", 2, func(_ any, args []values.Value) (values.Value, error) {
		a, err := asNum(args[0])
		if err != nil {
			return nil, err
		}
		b, err := asNum(args[1])
		if err != nil {
			return nil, err
		}
		return values.Num(a * b), nil
	})

	reg.RegisterNative("not", 1, func(_ any, args []values.Value) (values.Value, error) {
		a, err := asNum(args[0])
		if err != nil {
			return nil, err
		}
		if a == 0 {
			return values.Num(1), nil
		}
		return values.Num(0), nil
	})

	reg.RegisterNative("number?", 1, func(_ any, args []values.Value) (values.Value, error) {
		if _, ok := args[0].(values.Num); ok {
			return values.Num(1), nil
		}
		return values.Num(0), nil
	})
}
