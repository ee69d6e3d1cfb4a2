package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func toks(t ...*Token) []*Token {
	return append(t, tokEOF(1))
}

func TestParsePrimary(t *testing.T) {
	testCases := []struct {
		toks []*Token
		expr Expr
	}{
		{toks(NewToken(NUMBER, "3.14", 3.14, 1), NewToken(SEMICOLON, ";", nil, 1)),
			NewLiteralExpr(3.14)},
		{toks(NewToken(STRING, "\"a string\"", "a string", 1), NewToken(SEMICOLON, ";", nil, 1)),
			NewLiteralExpr("a string")},
		{toks(NewToken(TRUE, "true", true, 1), NewToken(SEMICOLON, ";", nil, 1)),
			NewLiteralExpr(true)},
		{toks(NewToken(FALSE, "false", false, 1), NewToken(SEMICOLON, ";", nil, 1)),
			NewLiteralExpr(false)},
		{toks(NewToken(NIL, "nil", nil, 1), NewToken(SEMICOLON, ";", nil, 1)),
			NewLiteralExpr(nil)},
		{toks(
			NewToken(LEFT_PAREN, "(", nil, 1),
			NewToken(NUMBER, "3.14", 3.14, 1),
			NewToken(RIGHT_PAREN, ")", nil, 1),
			NewToken(SEMICOLON, ";", nil, 1)),
			NewGroupExpr(NewLiteralExpr(3.14))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		report := newMockReporter()
		parse := NewParser(tc.toks, report)
		stmts := parse.Parse()

		assert.False(report.HadError())
		assert.Equal([]Stmt{NewExprStmt(tc.expr)}, stmts)
	}
}

func TestParseVarAndAssignment(t *testing.T) {
	assert := assert.New(t)

	report := newMockReporter()
	parse := NewParser(toks(
		NewToken(VAR, "var", nil, 1),
		NewToken(IDENTIFIER, "a", nil, 1),
		NewToken(EQUAL, "=", nil, 1),
		NewToken(NUMBER, "1", 1.0, 1),
		NewToken(SEMICOLON, ";", nil, 1),
	), report)
	stmts := parse.Parse()

	assert.False(report.HadError())
	assert.Equal([]Stmt{
		NewVarStmt(NewToken(IDENTIFIER, "a", nil, 1), NewLiteralExpr(1.0)),
	}, stmts)
}

func TestParseAssignmentExpr(t *testing.T) {
	assert := assert.New(t)

	name := NewToken(IDENTIFIER, "a", nil, 1)
	report := newMockReporter()
	parse := NewParser(toks(
		name,
		NewToken(EQUAL, "=", nil, 1),
		NewToken(NUMBER, "2", 2.0, 1),
		NewToken(SEMICOLON, ";", nil, 1),
	), report)
	stmts := parse.Parse()

	assert.False(report.HadError())
	assert.Equal([]Stmt{
		NewExprStmt(NewAssignExpr(1, name, NewLiteralExpr(2.0))),
	}, stmts)
}

func TestParseUnary(t *testing.T) {
	testCases := []struct {
		toks []*Token
		expr Expr
	}{
		{toks(NewToken(MINUS, "-", nil, 1), NewToken(NUMBER, "3.14", 3.14, 1), NewToken(SEMICOLON, ";", nil, 1)),
			NewUnaryExpr(NewToken(MINUS, "-", nil, 1), NewLiteralExpr(3.14)),
		},
		{toks(NewToken(BANG, "!", nil, 1), NewToken(TRUE, "true", true, 1), NewToken(SEMICOLON, ";", nil, 1)),
			NewUnaryExpr(NewToken(BANG, "!", nil, 1), NewLiteralExpr(true)),
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		report := newMockReporter()
		parse := NewParser(tc.toks, report)
		stmts := parse.Parse()

		assert.False(report.HadError())
		assert.Equal([]Stmt{NewExprStmt(tc.expr)}, stmts)
	}
}

func TestParseOpPrecedence(t *testing.T) {
	assert := assert.New(t)

	report := newMockReporter()
	parse := NewParser(toks(
		NewToken(NUMBER, "2", 2.0, 1),
		NewToken(STAR, "*", nil, 1),
		NewToken(MINUS, "-", nil, 1),
		NewToken(NUMBER, "3", 3.0, 1),
		NewToken(SEMICOLON, ";", nil, 1),
	), report)
	stmts := parse.Parse()

	assert.False(report.HadError())
	want := NewBinaryExpr(
		NewToken(STAR, "*", nil, 1),
		NewLiteralExpr(2.0),
		NewUnaryExpr(NewToken(MINUS, "-", nil, 1), NewLiteralExpr(3.0)))
	assert.Equal([]Stmt{NewExprStmt(want)}, stmts)
}

func TestParseTernary(t *testing.T) {
	assert := assert.New(t)

	report := newMockReporter()
	parse := NewParser(toks(
		NewToken(TRUE, "true", true, 1),
		NewToken(QUESTION, "?", nil, 1),
		NewToken(NUMBER, "1", 1.0, 1),
		NewToken(COLON, ":", nil, 1),
		NewToken(NUMBER, "2", 2.0, 1),
		NewToken(SEMICOLON, ";", nil, 1),
	), report)
	stmts := parse.Parse()

	assert.False(report.HadError())
	want := NewTernaryExpr(NewLiteralExpr(true), NewLiteralExpr(1.0), NewLiteralExpr(2.0))
	assert.Equal([]Stmt{NewExprStmt(want)}, stmts)
}

func TestParseTernaryRightAssociative(t *testing.T) {
	assert := assert.New(t)

	// a ? b : c ? d : e  ==  a ? b : (c ? d : e)
	report := newMockReporter()
	parse := NewParser(toks(
		NewToken(TRUE, "true", true, 1),
		NewToken(QUESTION, "?", nil, 1),
		NewToken(NUMBER, "1", 1.0, 1),
		NewToken(COLON, ":", nil, 1),
		NewToken(FALSE, "false", false, 1),
		NewToken(QUESTION, "?", nil, 1),
		NewToken(NUMBER, "2", 2.0, 1),
		NewToken(COLON, ":", nil, 1),
		NewToken(NUMBER, "3", 3.0, 1),
		NewToken(SEMICOLON, ";", nil, 1),
	), report)
	stmts := parse.Parse()

	assert.False(report.HadError())
	inner := NewTernaryExpr(NewLiteralExpr(false), NewLiteralExpr(2.0), NewLiteralExpr(3.0))
	want := NewTernaryExpr(NewLiteralExpr(true), NewLiteralExpr(1.0), inner)
	assert.Equal([]Stmt{NewExprStmt(want)}, stmts)
}

func TestParseCallAndGet(t *testing.T) {
	assert := assert.New(t)

	callee := NewToken(IDENTIFIER, "f", nil, 1)
	name := NewToken(IDENTIFIER, "field", nil, 1)
	paren := NewToken(RIGHT_PAREN, ")", nil, 1)

	report := newMockReporter()
	parse := NewParser(toks(
		callee,
		NewToken(LEFT_PAREN, "(", nil, 1),
		paren,
		NewToken(DOT, ".", nil, 1),
		name,
		NewToken(SEMICOLON, ";", nil, 1),
	), report)
	stmts := parse.Parse()

	assert.False(report.HadError())
	want := NewGetExpr(
		NewCallExpr(NewVarExpr(0, callee), paren, nil),
		name,
	)
	assert.Equal([]Stmt{NewExprStmt(want)}, stmts)
}

func TestParseClassDeclWithSuperclass(t *testing.T) {
	assert := assert.New(t)

	className := NewToken(IDENTIFIER, "Derived", nil, 1)
	superName := NewToken(IDENTIFIER, "Base", nil, 1)
	methodName := NewToken(IDENTIFIER, "speak", nil, 1)

	report := newMockReporter()
	parse := NewParser(toks(
		NewToken(CLASS, "class", nil, 1),
		className,
		NewToken(LESS, "<", nil, 1),
		superName,
		NewToken(LEFT_BRACE, "{", nil, 1),
		methodName,
		NewToken(LEFT_PAREN, "(", nil, 1),
		NewToken(RIGHT_PAREN, ")", nil, 1),
		NewToken(LEFT_BRACE, "{", nil, 1),
		NewToken(RIGHT_BRACE, "}", nil, 1),
		NewToken(RIGHT_BRACE, "}", nil, 1),
	), report)
	stmts := parse.Parse()

	assert.False(report.HadError())
	want := NewClassStmt(
		className,
		NewVarExpr(0, superName),
		[]*FunctionStmt{NewFunctionStmt(methodName, nil, nil)},
	)
	assert.Equal([]Stmt{want}, stmts)
}

func TestParseWithErrorsRecoversAtNextStatement(t *testing.T) {
	assert := assert.New(t)

	report := newMockReporter()
	parse := NewParser(toks(
		// missing expression before ';' — reported, then sync() skips to
		// the next statement
		NewToken(SEMICOLON, ";", nil, 1),
		NewToken(PRINT, "print", nil, 1),
		NewToken(NUMBER, "1", 1.0, 1),
		NewToken(SEMICOLON, ";", nil, 1),
	), report)
	stmts := parse.Parse()

	assert.True(report.HadError())
	assert.Len(report.errors, 1)
	assert.Equal([]Stmt{NewPrintStmt(NewLiteralExpr(1.0))}, stmts)
}

func TestParseInvalidAssignmentTargetDoesNotAbortStatement(t *testing.T) {
	assert := assert.New(t)

	report := newMockReporter()
	parse := NewParser(toks(
		NewToken(NUMBER, "1", 1.0, 1),
		NewToken(EQUAL, "=", nil, 1),
		NewToken(NUMBER, "2", 2.0, 1),
		NewToken(SEMICOLON, ";", nil, 1),
	), report)
	stmts := parse.Parse()

	assert.True(report.HadError())
	assert.Len(stmts, 1)
}
