package main

import (
	"fmt"

	"github.com/augustwinter/glox/internal/lox"
)

func main() {
	expression := lox.NewBinaryExpr(
		lox.NewToken(lox.STAR, "*", nil, 1),
		lox.NewUnaryExpr(
			lox.NewToken(lox.MINUS, "-", nil, 1),
			lox.NewLiteralExpr(123),
		),
		lox.NewGroupExpr(lox.NewLiteralExpr(45.67)),
	)

	printer := lox.AstPrinter{}
	fmt.Println(printer.Print(expression))
}
