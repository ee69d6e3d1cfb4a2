package lox

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter renders an expression tree as a fully-parenthesized
// s-expression, used by the standalone ast_printer debugging tool to show
// how a snippet was parsed.
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	return printer.parenthesize("= "+expr.Name.Lexeme, expr.Val), nil
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Lhs, expr.Rhs), nil
}

func (printer *AstPrinter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	return printer.parenthesize("call", append([]Expr{expr.Callee}, expr.Args...)...), nil
}

func (printer *AstPrinter) VisitGetExpr(expr *GetExpr) (interface{}, error) {
	return printer.parenthesize("get "+expr.Name.Lexeme, expr.Obj), nil
}

func (printer *AstPrinter) VisitGroupExpr(expr *GroupExpr) (interface{}, error) {
	return printer.parenthesize("group", expr.Expr), nil
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	switch v := expr.Val.(type) {
	case nil:
		return "nil", nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func (printer *AstPrinter) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Lhs, expr.Rhs), nil
}

func (printer *AstPrinter) VisitSetExpr(expr *SetExpr) (interface{}, error) {
	return printer.parenthesize("set "+expr.Name.Lexeme, expr.Obj, expr.Val), nil
}

func (printer *AstPrinter) VisitSuperExpr(expr *SuperExpr) (interface{}, error) {
	return fmt.Sprintf("(super %s)", expr.Method.Lexeme), nil
}

func (printer *AstPrinter) VisitTernaryExpr(expr *TernaryExpr) (interface{}, error) {
	return printer.parenthesize("?:", expr.Cond, expr.Then, expr.Else), nil
}

func (printer *AstPrinter) VisitThisExpr(expr *ThisExpr) (interface{}, error) {
	return "this", nil
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Expr), nil
}

func (printer *AstPrinter) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	return expr.Name.Lexeme, nil
}

func (printer *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, expr := range exprs {
		b.WriteString(" ")
		s, _ := expr.Accept(printer)
		b.WriteString(fmt.Sprintf("%v", s))
	}
	b.WriteString(")")
	return b.String()
}
