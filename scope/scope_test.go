/*
File : curlang/scope/scope_test.go
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curlang/curlang/values"
)

func TestEnvironment_LookupFindsNewestBinding(t *testing.T) {
	var env Environment
	env.Push(Frame{{Name: "x", Value: values.Num(1)}})
	env.Push(Frame{{Name: "x", Value: values.Num(2)}})

	v, ok := env.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, values.Num(2), v)
}

func TestEnvironment_PopUnwindsFrame(t *testing.T) {
	var env Environment
	env.Push(Frame{{Name: "x", Value: values.Num(1)}})
	func() {
		env.Push(Frame{{Name: "y", Value: values.Num(2)}})
		defer env.Pop()
		_, ok := env.Lookup("y")
		require.True(t, ok)
	}()

	_, ok := env.Lookup("y")
	assert.False(t, ok)
	_, ok = env.Lookup("x")
	assert.True(t, ok)
}

func TestEnvironment_BindAddsToTopFrame(t *testing.T) {
	var env Environment
	env.Push(Frame{})
	env.Bind("z", values.Num(42))

	v, ok := env.Lookup("z")
	require.True(t, ok)
	assert.Equal(t, values.Num(42), v)
}

func TestEnvironment_LookupMissingName(t *testing.T) {
	var env Environment
	env.Push(Frame{{Name: "x", Value: values.Num(1)}})
	_, ok := env.Lookup("nope")
	assert.False(t, ok)
}
