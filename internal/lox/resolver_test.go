package lox

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resolve runs the scanner, parser and resolver over src and returns the
// reporter so a test can assert on the static-semantic diagnostics raised.
// It never reaches the interpreter — these are compile-time checks.
func resolve(t *testing.T, src string) *mockReporter {
	t.Helper()
	report := newMockReporter()
	scanner := NewScanner([]rune(src), report)
	tokens := scanner.Scan()
	parser := NewParser(tokens, report)
	stmts := parser.Parse()
	if report.HadError() {
		return report
	}

	interpreter := NewInterpreter(io.Discard, report, false)
	resolver := NewResolver(interpreter, report)
	resolver.Resolve(stmts)
	return report
}

func TestResolverStaticErrors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		msg  string
	}{
		{
			"self-referencing initializer",
			"{ var a = a; }",
			"Can't read local variable in its own initializer.",
		},
		{
			"duplicate parameter names",
			"fun f(a, a) {}",
			"Already a parameter with this name.",
		},
		{
			"duplicate local declaration",
			"{ var a = 1; var a = 2; }",
			"Already a variable with this name in this scope.",
		},
		{
			"this outside a class",
			"print this;",
			"Can't use 'this' outside of a class.",
		},
		{
			"super outside a class",
			"print super.foo();",
			"Can't use 'super' outside of a class.",
		},
		{
			"super in a class with no superclass",
			"class Foo { bar() { super.baz(); } }",
			"Can't use 'super' in a class with no superclass.",
		},
		{
			"class inheriting from itself",
			"class Foo < Foo {}",
			"A class can't inherit from itself.",
		},
		{
			"return at top level",
			"return 1;",
			"Can't return from top-level code.",
		},
		{
			"return a value from an initializer",
			"class Foo { init() { return 1; } }",
			"Can't return a value from an initializer.",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		report := resolve(t, tc.src)
		assert.True(report.HadError(), tc.name)
		if assert.NotEmpty(report.errors, tc.name) {
			assert.Contains(report.errors[len(report.errors)-1].Error(), tc.msg, tc.name)
		}
	}
}

func TestResolverAcceptsWellFormedPrograms(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{"return without a value inside a function is fine", "fun f() { return; }"},
		{"this inside a method", "class Foo { bar() { return this; } }"},
		{"super inside a subclass method", "class A { bar() {} } class B < A { bar() { super.bar(); } }"},
		{"init returning no value", "class Foo { init() { return; } }"},
		{"shadowing in a nested block is not a redeclaration", "{ var a = 1; { var a = 2; } }"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		report := resolve(t, tc.src)
		assert.False(report.HadError(), tc.name)
	}
}

// TestStaticErrorNeverReachesInterpreter checks that a static error, such as
// a top-level return, is caught by the resolver before any statement runs —
// a driver uses this to decide whether to call Interpret at all.
func TestStaticErrorNeverReachesInterpreter(t *testing.T) {
	assert := assert.New(t)
	report := newMockReporter()

	scanner := NewScanner([]rune("return 1;"), report)
	tokens := scanner.Scan()
	parser := NewParser(tokens, report)
	stmts := parser.Parse()
	assert.False(report.HadError())

	var out io.Writer = io.Discard
	interpreter := NewInterpreter(out, report, false)
	resolver := NewResolver(interpreter, report)
	resolver.Resolve(stmts)
	assert.True(report.HadError())
	assert.False(report.HadRuntimeError())

	// A driver would stop here and exit 65 rather than calling Interpret.
}
