/*
File : curlang/parser/parser.go
*/
package parser

import "github.com/curlang/curlang/lexer"

// Parse runs the full pipeline — tokenize, build the expression tree,
// lower it into the program tree, then finalize the back-tick rewrite —
// and returns the entry Lambda ready for evaluation.
//
// The first error from any stage aborts the parse; there is no error
// recovery, matching the core spec's non-goal of parser error recovery.
func Parse(src string) (*Lambda, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	tree, err := ParseExpr(tokens)
	if err != nil {
		return nil, err
	}
	top, err := lowerTop(tree)
	if err != nil {
		return nil, err
	}
	Finalize(top)
	return top, nil
}
