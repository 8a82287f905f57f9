/*
File : curlang/main_test.go
*/
package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curlang/curlang/parser"
)

func TestPrintingVisitor_RendersCallTree(t *testing.T) {
	entry, err := parser.Parse("{ + 1 2 ; }")
	require.NoError(t, err)

	v := &PrintingVisitor{}
	v.Visit(entry)
	out := v.Buf.String()

	assert.True(t, strings.Contains(out, "Lambda"))
	assert.True(t, strings.Contains(out, "Call"))
	assert.True(t, strings.Contains(out, "Num(1)"))
	assert.True(t, strings.Contains(out, "Num(2)"))
}
