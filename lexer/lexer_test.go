/*
File : curlang/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenizeCase represents a single Tokenize table-test case.
// Input: source code
// Expected: list of expected tokens
type tokenizeCase struct {
	Name     string
	Input    string
	Expected []Token
}

func TestTokenize_Splitting(t *testing.T) {
	tests := []tokenizeCase{
		{
			Name:  "words and parens",
			Input: "( + 1 2 )",
			Expected: []Token{
				{Kind: LParen, Text: "("},
				{Kind: Word, Text: "+"},
				{Kind: Word, Text: "1"},
				{Kind: Word, Text: "2"},
				{Kind: RParen, Text: ")"},
			},
		},
		{
			Name:  "block with semicolons",
			Input: "{ a b => + a b ; }",
			Expected: []Token{
				{Kind: LBrace, Text: "{"},
				{Kind: Word, Text: "a"},
				{Kind: Word, Text: "b"},
				{Kind: Word, Text: "=>"},
				{Kind: Word, Text: "+"},
				{Kind: Word, Text: "a"},
				{Kind: Word, Text: "b"},
				{Kind: Semicolon, Text: ";"},
				{Kind: RBrace, Text: "}"},
			},
		},
		{
			Name:  "back-tick word is one word",
			Input: "`double",
			Expected: []Token{
				{Kind: Word, Text: "`double"},
			},
		},
		{
			Name:  "whitespace and newlines are discarded",
			Input: "  1\n\t+\r\n2  ",
			Expected: []Token{
				{Kind: Word, Text: "1"},
				{Kind: Word, Text: "+"},
				{Kind: Word, Text: "2"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := Tokenize(tc.Input)
			require.NoError(t, err)
			require.Len(t, got, len(tc.Expected))
			for i, want := range tc.Expected {
				assert.Equal(t, want.Kind, got[i].Kind, "token %d kind", i)
				assert.Equal(t, want.Text, got[i].Text, "token %d text", i)
			}
		})
	}
}

func TestTokenize_RejectsUnbalancedBrace(t *testing.T) {
	_, err := Tokenize("{ 1 + 2 }")
	require.Error(t, err)
	var unbalanced *UnbalancedBraceError
	require.ErrorAs(t, err, &unbalanced)
}

func TestTokenize_AcceptsSemicolonBeforeBrace(t *testing.T) {
	_, err := Tokenize("{ 1 + 2 ; }")
	require.NoError(t, err)
}

func TestCursor_NextRewindPosition(t *testing.T) {
	tokens, err := Tokenize("1 2 3")
	require.NoError(t, err)
	c := NewCursor(tokens)

	tok, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, "1", tok.Text)
	assert.Equal(t, 1, c.Position())

	c.RewindOne()
	assert.Equal(t, 0, c.Position())

	tok, ok = c.Next()
	require.True(t, ok)
	assert.Equal(t, "1", tok.Text)
}

func TestCursor_LookaheadMatches(t *testing.T) {
	tokens, err := Tokenize("a b => + a b")
	require.NoError(t, err)
	c := NewCursor(tokens)

	isArrow := func(tok Token) bool { return tok.IsWord("=>") }
	isBrace := func(tok Token) bool { return tok.Kind == LBrace || tok.Kind == RBrace }

	assert.True(t, c.LookaheadMatches(isBrace, isArrow))

	tokens2, err := Tokenize("a b { + a b")
	require.NoError(t, err)
	c2 := NewCursor(tokens2)
	assert.False(t, c2.LookaheadMatches(isBrace, isArrow))
}
