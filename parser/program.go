/*
File : curlang/parser/program.go
*/
package parser

import (
	"strconv"
	"strings"

	"github.com/curlang/curlang/lexer"
)

// Node is any node of the program tree: Call, Lambda, Ref, or Num.
type Node interface {
	programNode()
}

// Call applies Fn to exactly one Arg. Every multi-argument operation in
// the surface language is curried into a chain of these.
type Call struct {
	Fn  Node
	Arg Node
}

// Lambda is a first-class function literal: zero or more parameter names
// and an ordered body of statements.
type Lambda struct {
	Params []string
	Body   []Node
}

// Ref is a symbolic reference resolved at evaluation time. Before
// Finalize runs, a Ref whose Name starts with '`' marks a reversed-
// application site (see the back-tick rule in lowerStatement).
type Ref struct {
	Name string
}

// Num is an unsigned integer literal.
type Num struct {
	N uint64
}

func (*Call) programNode()   {}
func (*Lambda) programNode() {}
func (*Ref) programNode()    {}
func (*Num) programNode()    {}

// lowerAtom turns a single Word token into a Num (if it parses as an
// unsigned decimal integer) or a Ref otherwise.
func lowerAtom(a *Atom) Node {
	if n, err := strconv.ParseUint(a.Token.Text, 10, 64); err == nil {
		return &Num{N: n}
	}
	return &Ref{Name: a.Token.Text}
}

// lowerStatement folds a statement's child expressions left to right into
// a single program node, applying left-associative application and the
// back-tick reversal rule: a back-tick-prefixed Ref is applied TO the
// accumulator instead of the other way around, which is the language's
// sole source of right-to-left composition.
func lowerStatement(children []Expr) (Node, error) {
	var prev Node
	for _, child := range children {
		var curr Node
		switch c := child.(type) {
		case *Group:
			n, err := lowerStatement(c.Children)
			if err != nil {
				return nil, err
			}
			curr = n
		case *Block:
			body := make([]Node, len(c.Statements))
			for i, s := range c.Statements {
				n, err := lowerStatement(s)
				if err != nil {
					return nil, err
				}
				body[i] = n
			}
			curr = &Lambda{Params: c.Params, Body: body}
		case *Atom:
			// Every Atom built by the expression stage wraps a Word
			// token; this check can't fail in practice, but is kept as
			// a defensive mirror of the reference parser's equivalent
			// check.
			if c.Token.Kind != lexer.Word {
				return nil, &ProgramError{Kind: UnexpectedExpressionToken, Detail: c.Token.String()}
			}
			curr = lowerAtom(c)
		}

		if prev == nil {
			prev = curr
			continue
		}
		if ref, ok := curr.(*Ref); ok && strings.HasPrefix(ref.Name, "`") {
			prev = &Call{Fn: curr, Arg: prev}
		} else {
			prev = &Call{Fn: prev, Arg: curr}
		}
	}

	if prev == nil {
		return nil, &ProgramError{Kind: UnexpectedEmptyExpression}
	}
	return prev, nil
}

// lowerTop lowers the whole-input expression tree into the entry Lambda.
// Per the core spec, a top-level input must be a Block (its params become
// the entry function's params) or a bare Atom; a top-level Group is an
// error.
func lowerTop(expr Expr) (*Lambda, error) {
	switch e := expr.(type) {
	case *Block:
		body := make([]Node, len(e.Statements))
		for i, s := range e.Statements {
			n, err := lowerStatement(s)
			if err != nil {
				return nil, err
			}
			body[i] = n
		}
		return &Lambda{Params: e.Params, Body: body}, nil
	case *Atom:
		if e.Token.Kind != lexer.Word {
			return nil, &ProgramError{Kind: UnexpectedNonFunctionToken, Detail: e.Token.String()}
		}
		return &Lambda{Body: []Node{lowerAtom(e)}}, nil
	default:
		return nil, &ProgramError{Kind: UnexpectedTopLevelExpression}
	}
}

// Finalize strips the leading back-tick from every Ref in the tree. After
// it runs, no Ref.Name begins with '`' — the marker was purely a
// parse-time signal for lowerStatement's reversal rule and carries no
// meaning the evaluator needs to know about.
func Finalize(n Node) {
	switch v := n.(type) {
	case *Call:
		Finalize(v.Fn)
		Finalize(v.Arg)
	case *Lambda:
		for _, stmt := range v.Body {
			Finalize(stmt)
		}
	case *Ref:
		if strings.HasPrefix(v.Name, "`") {
			v.Name = v.Name[1:]
		}
	case *Num:
	}
}
