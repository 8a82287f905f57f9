/*
File : curlang/eval/registry.go
*/
package eval

import (
	"github.com/curlang/curlang/parser"
	"github.com/curlang/curlang/values"
)

// Registry holds every named function the evaluator can resolve a bare
// Ref to: natives registered in Go plus user functions registered with
// ":name { ... }" from the REPL.
//
// Entries are stored newest-first. Registering a name that already
// exists does not remove the old entry — it is simply shadowed, since
// lookup stops at the first match. This mirrors the registration order
// rule built-ins rely on: a user can locally override "+" for the rest
// of a session without losing the ability to, say, re-register it back.
type Registry struct {
	entries []*values.Closure
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterNative adds a built-in implemented in Go.
func (r *Registry) RegisterNative(name string, arity int, fn values.NativeFunc) {
	r.entries = append([]*values.Closure{{
		Kind:   values.KindNative,
		Name:   name,
		Arity:  arity,
		Native: fn,
	}}, r.entries...)
}

// RegisterUser adds (or shadows) a named user-defined function, the
// effect of a top-level ":name { ... }" definition.
func (r *Registry) RegisterUser(name string, lambda *parser.Lambda) {
	r.entries = append([]*values.Closure{{
		Kind:   values.KindUser,
		Name:   name,
		Lambda: lambda,
	}}, r.entries...)
}

// Lookup returns the first (i.e. most recently registered) entry bound
// to name.
func (r *Registry) Lookup(name string) (*values.Closure, bool) {
	for _, c := range r.entries {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Disable removes every entry registered under name, so a subsequent
// lookup of it fails. Used by an operator-supplied config to turn off a
// native without recompiling.
func (r *Registry) Disable(name string) {
	kept := r.entries[:0]
	for _, c := range r.entries {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	r.entries = kept
}

// Alias registers c again under a new name, front-inserted like any
// other registration. Used by an operator-supplied config to rename a
// native.
func (r *Registry) Alias(name string, c *values.Closure) {
	renamed := *c
	renamed.Name = name
	r.entries = append([]*values.Closure{&renamed}, r.entries...)
}
