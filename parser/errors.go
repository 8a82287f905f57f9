/*
File : curlang/parser/errors.go
*/
package parser

import "fmt"

// ExpressionErrorKind distinguishes the ways the expression stage can fail.
type ExpressionErrorKind int

const (
	// UnclosedParen means a '(' was never matched by a ')', or an
	// unescaped ';' was hit while inside one.
	UnclosedParen ExpressionErrorKind = iota
	// UnclosedBlock means a '{' was never matched by a '}'.
	UnclosedBlock
	// UnexpectedTokenInParams means a non-Word token appeared before the
	// '=>' of a block's parameter list.
	UnexpectedTokenInParams
)

func (k ExpressionErrorKind) String() string {
	switch k {
	case UnclosedParen:
		return "UnclosedParen"
	case UnclosedBlock:
		return "UnclosedBlock"
	case UnexpectedTokenInParams:
		return "UnexpectedTokenInParams"
	default:
		return "UnknownExpressionError"
	}
}

// ExpressionError reports a structural problem found while building the
// expression tree, carrying the token position closest to the fault.
type ExpressionError struct {
	Kind ExpressionErrorKind
	Pos  int
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("parser: %s at byte %d", e.Kind, e.Pos)
}

// ProgramErrorKind enumerates the ways lowering the expression tree into
// the program tree can fail. The names match the core spec's taxonomy.
type ProgramErrorKind int

const (
	UnexpectedNonFunctionToken ProgramErrorKind = iota
	UnexpectedExpressionToken
	DidntParseWholeInput
	UnexpectedEmptyExpression
	UnexpectedTopLevelExpression
)

func (k ProgramErrorKind) String() string {
	switch k {
	case UnexpectedNonFunctionToken:
		return "UnexpectedNonFunctionToken"
	case UnexpectedExpressionToken:
		return "UnexpectedExpressionToken"
	case DidntParseWholeInput:
		return "DidntParseWholeInput"
	case UnexpectedEmptyExpression:
		return "UnexpectedEmptyExpression"
	case UnexpectedTopLevelExpression:
		return "UnexpectedTopLevelExpression"
	default:
		return "UnknownProgramError"
	}
}

// ProgramError reports a failure while lowering the expression tree into
// the program tree (calls, lambdas, refs, numbers).
type ProgramError struct {
	Kind   ProgramErrorKind
	Detail string
}

func (e *ProgramError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("parser: %s", e.Kind)
	}
	return fmt.Sprintf("parser: %s: %s", e.Kind, e.Detail)
}
