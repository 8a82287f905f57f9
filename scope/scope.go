/*
File : curlang/scope/scope.go
*/

// Package scope implements the evaluator's name-resolution environment.
//
// Unlike a conventional lexical scope chain, curlang resolves names
// dynamically: an Environment is a flat stack of activation frames, and
// a lookup walks every frame currently on the stack rather than a chain
// of enclosing lexical parents. Lexical capture is opt-in, performed
// explicitly by the "bind" native rather than implied by where a lambda
// was written.
package scope

import "github.com/curlang/curlang/values"

// Frame is one activation's set of name bindings, in the order they were
// established — parameter bindings first, then whatever "let" adds on
// top during the activation's lifetime.
type Frame []values.Binding

// Environment is the stack of frames live at the current point of
// evaluation. The zero value is an empty stack ready to use.
type Environment struct {
	frames []Frame
}

// Push opens a new activation frame on top of the stack.
func (e *Environment) Push(f Frame) {
	e.frames = append(e.frames, f)
}

// Pop closes the most recently opened activation frame. Callers pair it
// with Push via defer so the stack unwinds correctly even when the
// activation's body returns an error.
func (e *Environment) Pop() {
	e.frames = e.frames[:len(e.frames)-1]
}

// Depth reports how many frames are currently open.
func (e *Environment) Depth() int {
	return len(e.frames)
}

// Bind adds a binding to the topmost open frame, the effect of the "let"
// native: a name introduced mid-activation is visible for the rest of
// that activation and shadows any same-named binding beneath it.
func (e *Environment) Bind(name string, v values.Value) {
	top := len(e.frames) - 1
	e.frames[top] = append(e.frames[top], values.Binding{Name: name, Value: v})
}

// Lookup searches every open frame, oldest to newest, for name. Within
// and across frames the most recently established binding wins: the
// scan never stops at the first hit, it keeps overwriting the result as
// it walks forward, so the last match found — the newest one — is what
// gets returned.
func (e *Environment) Lookup(name string) (values.Value, bool) {
	var found values.Value
	ok := false
	for _, frame := range e.frames {
		for _, b := range frame {
			if b.Name == name {
				found = b.Value
				ok = true
			}
		}
	}
	return found, ok
}
