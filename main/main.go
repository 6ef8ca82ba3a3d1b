/*
File    : wick/main/main.go
*/

// Package main is the Wick CLI entry point. It provides three modes:
// REPL (no arguments), file mode (one script argument), and a server
// mode that hands each TCP connection its own REPL session. The
// lex-parse-resolve-evaluate pipeline lives in the file package; this
// package only handles argument parsing, the exit-code contract, and
// wiring the chosen Printer/Reporter into it.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/wick-lang/wick/astprinter"
	"github.com/wick-lang/wick/config"
	"github.com/wick-lang/wick/file"
	"github.com/wick-lang/wick/printer"
	"github.com/wick-lang/wick/reporter"
	"github.com/wick-lang/wick/repl"
)

const version = "v0.1.0"

const banner = `
 ██╗    ██╗██╗ ██████╗██╗  ██╗
 ██║    ██║██║██╔════╝██╚██╔╝
 ██║ █╗ ██║██║██║     █████║
 ██║███╗██║██║██║     ██╔██╗
 ╚███╔███╔╝██║╚██████╗██║╚██╗
  ╚══╝╚══╝ ╚═╝ ╚═════╝╚═╝ ╚═╝
`

const line = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// Exit codes per the CLI contract: 0 success, 64 command-line usage
// error, 70 any lex/parse/resolve/runtime error.
const (
	exitOK    = 0
	exitUsage = 64
)

func main() {
	args := os.Args[1:]

	var showAST, noColor bool
	var rest []string
	for _, a := range args {
		switch a {
		case "--ast":
			showAST = true
		case "--no-color":
			noColor = true
		case "--help", "-h":
			showHelp()
			os.Exit(exitOK)
		case "--version", "-v":
			showVersion()
			os.Exit(exitOK)
		default:
			rest = append(rest, a)
		}
	}

	if noColor {
		color.NoColor = true
	}

	cfg, err := config.Load(".wickrc.yaml")
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
	}
	if noColor {
		cfg.Color = false
	}
	if !cfg.Color {
		color.NoColor = true
	}

	switch {
	case len(rest) == 0:
		startRepl(cfg)
	case rest[0] == "server":
		if len(rest) < 2 {
			redColor.Fprintf(os.Stderr, "Usage: wick server <port>\n")
			os.Exit(exitUsage)
		}
		startServer(rest[1], cfg)
	case len(rest) == 1:
		os.Exit(runFile(rest[0], showAST))
	default:
		redColor.Fprintf(os.Stderr, "Usage: wick [script]\n")
		os.Exit(exitUsage)
	}
}

func showHelp() {
	cyanColor.Println("Wick - a small tree-walking interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  wick                   Start interactive REPL mode")
	fmt.Println("  wick <path-to-file>    Run a Wick script")
	fmt.Println("  wick server <port>     Start a REPL server on the given port")
	fmt.Println("  wick --ast <file>      Print the parsed AST before running")
	fmt.Println("  wick --no-color        Disable colored output")
	fmt.Println("  wick --help            Display this help message")
	fmt.Println("  wick --version         Display version information")
}

func showVersion() {
	fmt.Printf("wick %s\n", version)
}

// runFile reads and runs a script, returning the process exit code.
func runFile(path string, showAST bool) int {
	source, err := file.Read(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", path, err)
		return exitUsage
	}

	if showAST {
		printParsedAST(source)
	}

	report := reporter.New()
	p := printer.NewConsole(os.Stdout)
	code := file.Run(source, p, report)
	for _, d := range report.Diagnostics() {
		redColor.Fprintf(os.Stderr, "[line %d] %s\n", d.Line, d.Message)
	}
	return code
}

// printParsedAST re-lexes/parses source purely to render its tree; a
// fresh Reporter is used so a lex/parse error surfaced here doesn't
// double-report once file.Run repeats the same stages.
func printParsedAST(source string) {
	astReport := reporter.New()
	statements, _, ok := file.Compile(source, astReport)
	if !ok {
		return
	}
	fmt.Println(astprinter.Print(statements))
}

func startRepl(cfg config.Config) {
	r := repl.New(banner, version, line, cfg.Prompt, !cfg.Color)
	if !cfg.Banner {
		r.Banner = ""
	}
	r.Start(os.Stdout)
}

func startServer(port string, cfg config.Config) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("Wick REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn, cfg)
	}
}

func handleClient(conn net.Conn, cfg config.Config) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	r := repl.New(banner, version, line, cfg.Prompt, !cfg.Color)
	r.Start(conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}
