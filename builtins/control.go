/*
File : curlang/builtins/control.go
*/
package builtins

import (
	"github.com/curlang/curlang/eval"
	"github.com/curlang/curlang/parser"
	"github.com/curlang/curlang/values"
)

// registerControl installs "if" (in both its observed arities), "let"
// and "bind" — the primitives the language's own control flow and
// binding forms are built from rather than baked into the evaluator.
//
// The registry can only declare one arity per name, so the 2-arg and
// 3-arg forms of "if" are registered under distinct names: "if" is the
// primary 3-arg (cond, then, else) form, "if2" the 2-arg convenience
// form that yields Num(0) when the condition is falsy. Both evaluate
// their condition and selected branch as zero-arg thunks.
func registerControl(reg *eval.Registry) {
	reg.RegisterNative("if", 3, nativeIf3)
	reg.RegisterNative("if2", 2, nativeIf2)
	reg.RegisterNative("let", 2, nativeLet)
	reg.RegisterNative("bind", 2, nativeBind)
	reg.RegisterNative("panic", 1, func(_ any, _ []values.Value) (values.Value, error) {
		return nil, &eval.ExplicitlyRaisedError{}
	})
}

func nativeIf3(rt any, args []values.Value) (values.Value, error) {
	e := rt.(*eval.Evaluator)
	cond, err := e.Thunk(args[0])
	if err != nil {
		return nil, err
	}
	n, ok := cond.(values.Num)
	if !ok {
		return nil, &eval.ExplicitlyRaisedMessageError{Message: "if condition must evaluate to a number"}
	}
	if n != 0 {
		return e.Thunk(args[1])
	}
	return e.Thunk(args[2])
}

func nativeIf2(rt any, args []values.Value) (values.Value, error) {
	e := rt.(*eval.Evaluator)
	cond, err := e.Thunk(args[0])
	if err != nil {
		return nil, err
	}
	n, ok := cond.(values.Num)
	if !ok {
		return nil, &eval.ExplicitlyRaisedMessageError{Message: "if condition must evaluate to a number"}
	}
	if n != 0 {
		return e.Thunk(args[1])
	}
	return values.Num(0), nil
}

// nativeLet implements "let name-holder value": name-holder must be a
// user closure whose first body statement is a bare Ref, whose name
// becomes bound to value in the current top activation frame.
func nativeLet(rt any, args []values.Value) (values.Value, error) {
	e := rt.(*eval.Evaluator)
	holder, ok := args[0].(values.Fun)
	if !ok || holder.Closure.Kind != values.KindUser {
		return nil, &eval.ExplicitlyRaisedMessageError{Message: "let name holder must be a function"}
	}
	if len(holder.Closure.Lambda.Body) == 0 {
		return nil, &eval.ExplicitlyRaisedError{}
	}
	ref, ok := holder.Closure.Lambda.Body[0].(*parser.Ref)
	if !ok {
		return nil, &eval.ExplicitlyRaisedMessageError{Message: "let name holder must contain a single name"}
	}
	e.Env.Bind(ref.Name, args[1])
	return values.Num(0), nil
}

// nativeBind implements "bind names-holder target": for every body
// statement of names-holder that is a bare Ref, resolve its name
// against the live environment and attach the (name, value) pair to a
// copy of target's closure as a captured binding, then return that copy.
func nativeBind(rt any, args []values.Value) (values.Value, error) {
	e := rt.(*eval.Evaluator)
	holder, ok := args[0].(values.Fun)
	if !ok || holder.Closure.Kind != values.KindUser {
		return nil, &eval.ExplicitlyRaisedMessageError{Message: "bind first argument must be a function"}
	}
	target, ok := args[1].(values.Fun)
	if !ok {
		return nil, &eval.ExplicitlyRaisedMessageError{Message: "bind second argument must be a function"}
	}

	result := *target.Closure
	result.CapturedBindings = append([]values.Binding{}, target.Closure.CapturedBindings...)

	for _, stmt := range holder.Closure.Lambda.Body {
		ref, ok := stmt.(*parser.Ref)
		if !ok {
			continue
		}
		v, found := e.Env.Lookup(ref.Name)
		if !found {
			return nil, &eval.ExplicitlyRaisedMessageError{Message: "token to bind not found: " + ref.Name}
		}
		result.CapturedBindings = append(result.CapturedBindings, values.Binding{Name: ref.Name, Value: v})
	}
	return values.Fun{Closure: &result}, nil
}
