/*
File : curlang/eval/eval_test.go
*/
package eval_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curlang/curlang/builtins"
	"github.com/curlang/curlang/eval"
	"github.com/curlang/curlang/values"
)

func newEvaluator() *eval.Evaluator {
	e := eval.New()
	builtins.RegisterAll(e.Registry, nil)
	return e
}

func TestEval_Addition(t *testing.T) {
	e := newEvaluator()
	v, err := e.Run("{ + 1 2 ; }")
	require.NoError(t, err)
	assert.Equal(t, values.Num(3), v)
}

func TestEval_SubtractionWraps(t *testing.T) {
	e := newEvaluator()
	v, err := e.Run("{ - 2 5 ; }")
	require.NoError(t, err)
	n, ok := v.(values.Num)
	require.True(t, ok)
	assert.Equal(t, values.Num(^uint64(0)-3), n)
}

func TestEval_LambdaWithParamsCurries(t *testing.T) {
	e := newEvaluator()
	v, err := e.Run("{ { a b => + a b ; } 1 2 ; }")
	require.NoError(t, err)
	assert.Equal(t, values.Num(3), v)
}

func TestEval_LetIntroducesBinding(t *testing.T) {
	e := newEvaluator()
	v, err := e.Run("{ let { x ; } 7 ; + x 1 ; }")
	require.NoError(t, err)
	assert.Equal(t, values.Num(8), v)
}

func TestEval_IfThreeArgThunkedCondition(t *testing.T) {
	e := newEvaluator()
	v, err := e.Run("{ if { not 0 ; } { 42 ; } { 0 ; } ; }")
	require.NoError(t, err)
	assert.Equal(t, values.Num(42), v)
}

func TestEval_IfTwoArgFalsyYieldsZero(t *testing.T) {
	e := newEvaluator()
	v, err := e.Run("{ if2 { 0 ; } { 42 ; } ; }")
	require.NoError(t, err)
	assert.Equal(t, values.Num(0), v)
}

func TestEval_BackTickFlipsApplicationOrder(t *testing.T) {
	e := newEvaluator()
	v, err := e.Run("{ let { double ; } { x => + x 100 ; } ; 5 `double ; }")
	require.NoError(t, err)
	assert.Equal(t, values.Num(105), v)
}

func TestEval_PartialApplicationYieldsClosure(t *testing.T) {
	e := newEvaluator()
	v, err := e.Run("{ + 1 ; }")
	require.NoError(t, err)
	fn, ok := v.(values.Fun)
	require.True(t, ok)
	assert.Equal(t, 1, len(fn.Closure.AccumulatedArgs))
	result, err := e.Apply(fn, values.Num(41))
	require.NoError(t, err)
	assert.Equal(t, values.Num(42), result)
}

func TestEval_UndefinedReference(t *testing.T) {
	e := newEvaluator()
	_, err := e.Run("{ nope ; }")
	require.Error(t, err)
	var undef *eval.UndefinedReferenceError
	require.ErrorAs(t, err, &undef)
}

func TestEval_CallingANumberIsAnError(t *testing.T) {
	e := newEvaluator()
	_, err := e.Run("{ 1 2 ; }")
	require.Error(t, err)
	var notAFn *eval.NotAFunctionError
	require.ErrorAs(t, err, &notAFn)
}

func TestEval_NotAFunctionShortCircuitsBeforeArgEval(t *testing.T) {
	e := newEvaluator()

	_, err := e.Run("{ 1 undefined_var ; }")
	require.Error(t, err)
	var notAFn *eval.NotAFunctionError
	require.ErrorAs(t, err, &notAFn)
	assert.Equal(t, uint64(1), notAFn.Value)

	var buf bytes.Buffer
	e = newEvaluator()
	e.Out = &buf
	_, err = e.Run("{ 1 (print 2) ; }")
	require.ErrorAs(t, err, &notAFn)
	assert.Empty(t, buf.String())
}

func TestEval_CapturedBindingShadowsSameNamedParam(t *testing.T) {
	e := newEvaluator()
	v, err := e.Run(`{
		let { x ; } 100 ;
		let { f ; } { x => + x 1 ; } ;
		bind { x ; } f ;
	}`)
	require.NoError(t, err)

	result, err := e.Apply(v, values.Num(5))
	require.NoError(t, err)
	assert.Equal(t, values.Num(101), result)
}

func TestEval_ActivationStackDepthRestoredAfterTopLevelEval(t *testing.T) {
	e := newEvaluator()
	before := e.Env.Depth()
	_, err := e.Run("{ { a b => + a b ; } 1 2 ; }")
	require.NoError(t, err)
	assert.Equal(t, before, e.Env.Depth())
}

func TestEval_BindCapturesLexicalValue(t *testing.T) {
	e := newEvaluator()
	v, err := e.Run(`{
		let { x ; } 10 ;
		let { adder ; } { y => + x y ; } ;
		bind { x ; } adder ;
	}`)
	require.NoError(t, err)
	fn, ok := v.(values.Fun)
	require.True(t, ok)
	require.Len(t, fn.Closure.CapturedBindings, 1)
	assert.Equal(t, "x", fn.Closure.CapturedBindings[0].Name)
	assert.Equal(t, values.Num(10), fn.Closure.CapturedBindings[0].Value)

	result, err := e.Apply(v, values.Num(5))
	require.NoError(t, err)
	assert.Equal(t, values.Num(15), result)
}
