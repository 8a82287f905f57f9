/*
File : curlang/print_visitor.go
*/
package main

import (
	"bytes"
	"fmt"

	"github.com/curlang/curlang/parser"
)

const indentSize = 2

// PrintingVisitor renders a program tree as indented text, purely for
// interactive inspection — it has no bearing on evaluation.
type PrintingVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

func (p *PrintingVisitor) pad() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// Visit writes n and its children to the visitor's buffer.
func (p *PrintingVisitor) Visit(n parser.Node) {
	switch node := n.(type) {
	case *parser.Call:
		p.pad()
		p.Buf.WriteString("Call\n")
		p.Indent += indentSize
		p.Visit(node.Fn)
		p.Visit(node.Arg)
		p.Indent -= indentSize
	case *parser.Lambda:
		p.pad()
		fmt.Fprintf(&p.Buf, "Lambda(params=%v)\n", node.Params)
		p.Indent += indentSize
		for _, stmt := range node.Body {
			p.Visit(stmt)
		}
		p.Indent -= indentSize
	case *parser.Ref:
		p.pad()
		fmt.Fprintf(&p.Buf, "Ref(%s)\n", node.Name)
	case *parser.Num:
		p.pad()
		fmt.Fprintf(&p.Buf, "Num(%d)\n", node.N)
	default:
		p.pad()
		p.Buf.WriteString("?\n")
	}
}
