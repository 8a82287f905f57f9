/*
File : curlang/builtins/builtins_test.go
*/
package builtins_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curlang/curlang/builtins"
	"github.com/curlang/curlang/eval"
	"github.com/curlang/curlang/values"
)

func newEvaluator(t *testing.T) *eval.Evaluator {
	t.Helper()
	e := eval.New()
	builtins.RegisterAll(e.Registry, nil)
	return e
}

func TestCounter_ResetThenIncAccumulates(t *testing.T) {
	e := newEvaluator(t)
	v, err := e.Run("{ counter-reset 10 ; counter-inc 5 ; counter-inc 2 ; }")
	require.NoError(t, err)
	assert.Equal(t, values.Num(17), v)
}

func TestCounter_IncWithoutResetErrors(t *testing.T) {
	e := newEvaluator(t)
	_, err := e.Run("{ counter-inc 1 ; }")
	require.Error(t, err)
}

func TestNot_FlipsZeroAndNonZero(t *testing.T) {
	e := newEvaluator(t)
	v, err := e.Run("{ not 0 ; }")
	require.NoError(t, err)
	assert.Equal(t, values.Num(1), v)

	v, err = e.Run("{ not 5 ; }")
	require.NoError(t, err)
	assert.Equal(t, values.Num(0), v)
}

func TestLet_RejectsNonRefHolder(t *testing.T) {
	e := newEvaluator(t)
	_, err := e.Run("{ let { + 1 2 ; } 7 ; }")
	require.Error(t, err)
}

func TestConfig_DisableRemovesNative(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "builtins.yaml")
	require.NoError(t, os.WriteFile(path, []byte("overrides:\n  - name: mul\n"), 0o644))

	cfg, err := builtins.LoadConfig(path)
	require.NoError(t, err)

	reg := eval.NewRegistry()
	builtins.RegisterAll(reg, cfg)
	_, ok := reg.Lookup("mul")
	assert.False(t, ok)
}

func TestConfig_AliasRenamesNative(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "builtins.yaml")
	require.NoError(t, os.WriteFile(path, []byte("overrides:\n  - name: mul\n    as: times\n"), 0o644))

	cfg, err := builtins.LoadConfig(path)
	require.NoError(t, err)

	reg := eval.NewRegistry()
	builtins.RegisterAll(reg, cfg)
	_, ok := reg.Lookup("times")
	assert.True(t, ok)
}
