/*
File : curlang/parser/expr.go
*/

// Package parser turns a lexer.Token stream into the program tree the
// evaluator walks. It works in two stages: first an untyped expression
// tree that only understands parens, braces, and statement separators
// (this file), then a lowering pass that applies currying and the
// back-tick rewrite to produce the program tree (program.go).
package parser

import "github.com/curlang/curlang/lexer"

// Expr is any node of the expression tree: Group, Block, or Atom.
type Expr interface {
	exprNode()
}

// Group is a parenthesized or top-level sequence of child expressions.
type Group struct {
	Children []Expr
}

// Block is a braced block: zero or more parameter names, then zero or
// more statements, each itself a list of child expressions.
type Block struct {
	Params     []string
	Statements [][]Expr
}

// Atom is a single lexical token. After a successful parse it is always
// a Word token.
type Atom struct {
	Token lexer.Token
}

func (*Group) exprNode() {}
func (*Block) exprNode() {}
func (*Atom) exprNode()  {}

func isBraceToken(t lexer.Token) bool {
	return t.Kind == lexer.LBrace || t.Kind == lexer.RBrace
}

func isArrowWord(t lexer.Token) bool {
	return t.IsWord("=>")
}

// combine applies the expression parser's return-shape rule: a single
// parsed child is returned bare, more than one is wrapped in a Group.
func combine(children []Expr) Expr {
	if len(children) == 1 {
		return children[0]
	}
	return &Group{Children: children}
}

// parseSequence parses a run of expr units (Word / parenthesized
// sub-expression / block) until it hits the sequence's terminator:
//
//   - Semicolon: pushed back; ends the sequence if mayTerminateOnSemicolon,
//     otherwise reports UnclosedParen (an unescaped ';' inside parens).
//   - RParen: always ends the sequence (this call was reading the inside
//     of a '(' ... ')').
//   - RBrace: pushed back; always ends the sequence, handing control back
//     to whichever block-body loop or top-level caller is watching for it.
//   - end of input: ends the sequence if mayTerminateOnSemicolon, otherwise
//     reports UnclosedParen (an unmatched '(').
//
// The returned slice is the raw list of children — callers decide whether
// to wrap it with combine (a single expr position) or keep it as a
// statement's children list (a block body).
func parseSequence(c *lexer.Cursor, mayTerminateOnSemicolon bool) ([]Expr, error) {
	var children []Expr
	for {
		tok, ok := c.Next()
		if !ok {
			if !mayTerminateOnSemicolon {
				return nil, &ExpressionError{Kind: UnclosedParen, Pos: -1}
			}
			return children, nil
		}
		switch tok.Kind {
		case lexer.Word:
			children = append(children, &Atom{Token: tok})
		case lexer.LParen:
			inner, err := parseSequence(c, false)
			if err != nil {
				return nil, err
			}
			children = append(children, combine(inner))
		case lexer.RParen:
			return children, nil
		case lexer.Semicolon:
			c.RewindOne()
			if !mayTerminateOnSemicolon {
				return nil, &ExpressionError{Kind: UnclosedParen, Pos: tok.Pos}
			}
			return children, nil
		case lexer.LBrace:
			block, err := parseBlock(c)
			if err != nil {
				return nil, err
			}
			children = append(children, block)
		case lexer.RBrace:
			c.RewindOne()
			return children, nil
		}
	}
}

// parseBlock parses a block's body after its opening '{' has already been
// consumed by the caller.
func parseBlock(c *lexer.Cursor) (*Block, error) {
	var params []string
	if c.LookaheadMatches(isBraceToken, isArrowWord) {
		for {
			tok, ok := c.Next()
			if !ok {
				return nil, &ExpressionError{Kind: UnclosedBlock, Pos: -1}
			}
			if tok.IsWord("=>") {
				break
			}
			if tok.Kind != lexer.Word {
				return nil, &ExpressionError{Kind: UnexpectedTokenInParams, Pos: tok.Pos}
			}
			params = append(params, tok.Text)
		}
	}

	var statements [][]Expr
	for {
		stmt, err := parseSequence(c, true)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)

		tok, ok := c.Next()
		if !ok {
			return nil, &ExpressionError{Kind: UnclosedBlock, Pos: -1}
		}
		switch tok.Kind {
		case lexer.Semicolon:
			continue
		case lexer.RBrace:
			goto closed
		default:
			return nil, &ExpressionError{Kind: UnclosedBlock, Pos: tok.Pos}
		}
	}
closed:

	// Discard a trailing empty statement — `{ a ; }` has exactly one
	// statement, not a real one followed by an empty one.
	if n := len(statements); n > 0 && len(statements[n-1]) == 0 {
		statements = statements[:n-1]
	}

	// A statement that is exactly one Group is flattened into that
	// group's children: `{ (a b c) ; }` parses the same as `{ a b c ; }`.
	for i, stmt := range statements {
		if len(stmt) == 1 {
			if g, ok := stmt[0].(*Group); ok {
				statements[i] = g.Children
			}
		}
	}

	return &Block{Params: params, Statements: statements}, nil
}

// ParseExpr runs the expression stage over the whole token stream and
// returns the single resulting node (a Group if the input had more than
// one top-level child, e.g. a bare atom followed by something else).
func ParseExpr(tokens []lexer.Token) (Expr, error) {
	c := lexer.NewCursor(tokens)
	children, err := parseSequence(c, true)
	if err != nil {
		return nil, err
	}
	return combine(children), nil
}
