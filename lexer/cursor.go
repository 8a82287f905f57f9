/*
File : curlang/lexer/cursor.go
*/
package lexer

// Cursor is a random-access walk over an already-tokenized input. It
// supports a one-step rewind (the expression parser pushes a Semicolon
// back when it decides the statement has ended) and a lookahead probe used
// to decide, without consuming anything, whether a block has a parameter
// list.
type Cursor struct {
	tokens []Token
	pos    int
}

// NewCursor wraps a token vector produced by Tokenize.
func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Next returns the next token and advances the cursor, or reports ok=false
// once the stream is exhausted.
func (c *Cursor) Next() (Token, bool) {
	if c.pos >= len(c.tokens) {
		return Token{}, false
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, true
}

// RewindOne steps the cursor back by one token. Calling it with the cursor
// already at zero is a caller error and panics, since it can only mean a
// parser bug (the cursor model only ever supports a single pushed-back
// token at a time).
func (c *Cursor) RewindOne() {
	if c.pos == 0 {
		panic("lexer: RewindOne called at position 0")
	}
	c.pos--
}

// Position reports the cursor's current index into the token vector.
func (c *Cursor) Position() int {
	return c.pos
}

// Reset moves the cursor back to the start of the token vector.
func (c *Cursor) Reset() {
	c.pos = 0
}

// LookaheadMatches scans forward from the current position (without
// consuming any tokens) and reports whether a token matching target is
// reached before any token matching stop. A token satisfying both predicates
// counts as a target match.
func (c *Cursor) LookaheadMatches(stop, target func(Token) bool) bool {
	for i := c.pos; i < len(c.tokens); i++ {
		tok := c.tokens[i]
		if target(tok) {
			return true
		}
		if stop(tok) {
			return false
		}
	}
	return false
}
