/*
File : curlang/cmd/curlang/main.go
*/

// Command curlang is the file/REPL/server driver for the curlang
// interpreter.
//
// Usage:
//
//	curlang                           start interactive REPL mode
//	curlang <path-to-file>            execute a curlang source file
//	curlang server <port>             start a REPL server on the given port
//	curlang --help | --version
//
// Any of the above accepts a trailing "--builtins <path.yaml>" to load a
// native override table before the registry is built.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/curlang/curlang/builtins"
	"github.com/curlang/curlang/eval"
	"github.com/curlang/curlang/repl"
)

const (
	version = "v0.1.0"
	prompt  = "curlang >>> "
)

var banner = `
   _____ _   _ _____  _              _   _  _____
  / ____| | | |  __ \| |            | \ | |/ ____|
 | |    | | | | |__) | |            |  \| | |  __
 | |    | | | |  _  /| |            | . ' | | |_ |
 | |____| |_| | | \ \| |____        | |\  | |__| |
  \_____|\___/|_|  \_\______|       |_| \_|\_____|
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	args, cfgPath := extractBuiltinsFlag(os.Args[1:])

	var cfg *builtins.Config
	if cfgPath != "" {
		var err error
		cfg, err = builtins.LoadConfig(cfgPath)
		if err != nil {
			redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
			os.Exit(1)
		}
	}

	if len(args) == 0 {
		repl.New(banner, version, prompt).Start(os.Stdout, cfg)
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "server":
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port. Usage: curlang server <port>\n")
			os.Exit(1)
		}
		startServer(args[1], cfg)
	default:
		runFile(args[0], cfg)
	}
}

// extractBuiltinsFlag pulls a "--builtins <path>" pair out of args,
// wherever it appears, and returns the remaining positional args
// alongside the path (empty if the flag was absent).
func extractBuiltinsFlag(args []string) ([]string, string) {
	out := make([]string, 0, len(args))
	path := ""
	for i := 0; i < len(args); i++ {
		if args[i] == "--builtins" && i+1 < len(args) {
			path = args[i+1]
			i++
			continue
		}
		out = append(out, args[i])
	}
	return out, path
}

// runFile reads and executes a curlang source file, reporting any
// parse or runtime error to stderr and exiting non-zero.
func runFile(path string, cfg *builtins.Config) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", path, err)
		os.Exit(1)
	}

	e := eval.New()
	builtins.RegisterAll(e.Registry, cfg)

	v, err := e.Run(string(src))
	if err != nil {
		redColor.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
	yellowColor.Fprintln(os.Stdout, builtins.FormatValue(v))
}

// startServer listens on port and hands each accepted connection its
// own REPL session, writing that session's output to the connection.
// Line input is still read by readline from the process's own stdin,
// not from the connection.
func startServer(port string, cfg *builtins.Config) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] could not listen on :%s: %v\n", port, err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("curlang REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] accept failed: %v\n", err)
			continue
		}
		go handleClient(conn, cfg)
	}
}

// handleClient runs one REPL session for a connected client, tagging
// its log lines with a per-connection session id in addition to the raw
// remote address.
func handleClient(conn net.Conn, cfg *builtins.Config) {
	defer conn.Close()
	session := uuid.New().String()
	cyanColor.Printf("[%s] client connected from %s\n", session, conn.RemoteAddr())
	repl.New(banner, version, prompt).Start(conn, cfg)
	cyanColor.Printf("[%s] client disconnected\n", session)
}

func showHelp() {
	cyanColor.Println("curlang - a curried, expression-oriented toy language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  curlang                         start the REPL")
	yellowColor.Println("  curlang <path>                  run a source file")
	yellowColor.Println("  curlang server <port>           start a REPL server")
	yellowColor.Println("  curlang --builtins <path.yaml>  load a native override table")
	yellowColor.Println("  curlang --help | --version")
}

func showVersion() {
	fmt.Printf("curlang %s\n", version)
}
