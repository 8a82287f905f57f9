/*
File : curlang/main.go
*/

// This root-level main is a small tree-printing demo, not the
// interpreter's entry point — run the real driver with:
//
//	go run ./cmd/curlang
package main

import (
	"fmt"
	"os"

	"github.com/curlang/curlang/parser"
)

func main() {
	src := `{ + 1 2 ; }`
	if len(os.Args) > 1 {
		src = os.Args[1]
	}

	entry, err := parser.Parse(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(1)
	}

	v := &PrintingVisitor{}
	v.Visit(entry)
	fmt.Print(v.Buf.String())
}
