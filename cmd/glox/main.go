package main

// This is an interpreter for the Lox programming language written in Go.

import (
	"bufio"
	"fmt"
	"os"

	"github.com/augustwinter/glox/internal/lox"
)

func main() {
	args := os.Args[1:]
	if len(args) > 1 {
		fmt.Println("Usage: glox [script]")
		os.Exit(64)
	}

	reporter := lox.NewSimpleReporter(os.Stderr)
	if len(args) != 1 {
		interpreter := lox.NewInterpreter(os.Stdout, reporter, true)
		runPrompt(interpreter, reporter)
	} else {
		interpreter := lox.NewInterpreter(os.Stdout, reporter, false)
		runFile(args[0], interpreter, reporter)
	}
}

func run(script string, interpreter *lox.Interpreter, reporter lox.Reporter) {
	scanner := lox.NewScanner([]rune(script), reporter)
	tokens := scanner.Scan()
	parser := lox.NewParser(tokens, reporter)
	statements := parser.Parse()
	if reporter.HadError() {
		return
	}
	resolver := lox.NewResolver(interpreter, reporter)
	resolver.Resolve(statements)
	if reporter.HadError() {
		return
	}
	interpreter.Interpret(statements)
}

// runPrompt runs the interpreter as a REPL, printing the value of any
// top-level expression statement other than an assignment, and resetting
// error state between lines.
func runPrompt(interpreter *lox.Interpreter, reporter lox.Reporter) {
	s := bufio.NewScanner(os.Stdin)
	s.Split(bufio.ScanLines)
	for {
		fmt.Print("> ")
		if !s.Scan() {
			break
		}
		run(s.Text(), interpreter, reporter)
		reporter.Reset()
	}
	exitOnError(s.Err(), 64)
}

// runFile runs the interpreter against a script file and exits with the
// status matching the outcome: 65 for a static error, 70 for a runtime
// error, 0 otherwise.
func runFile(fpath string, interpreter *lox.Interpreter, reporter lox.Reporter) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, 64)

	run(string(bytes), interpreter, reporter)
	exitIf(reporter.HadError(), 65)
	exitIf(reporter.HadRuntimeError(), 70)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
