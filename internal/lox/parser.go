package lox

import "fmt"

// Parser composes the syntax tree for the Lox language from the sequence of
// tokens produced by the Scanner, following the grammar documented in
// doc.go. It performs panic-mode error recovery: a parse error is returned
// up to the enclosing top-level declaration, reported, and parsing resumes
// at the next statement boundary after the error so that a single run can
// surface more than one syntax error.
type Parser struct {
	current  int
	tokens   []*Token
	reporter Reporter
	nextID   int64
}

// NewParser creates a new parser for the Lox language.
func NewParser(tokens []*Token, reporter Reporter) *Parser {
	return &Parser{0, tokens, reporter, 0}
}

// id hands out a stable, monotonically increasing identity for each
// variable-referencing expression node, so the resolver's locals side-table
// can key on it instead of on the node's address.
func (parser *Parser) id() int64 {
	id := parser.nextID
	parser.nextID++
	return id
}

// Parse consumes the whole token stream and returns the list of top-level
// statements. Each statement that fails to parse is reported and skipped;
// the caller should check the Reporter before proceeding to resolution.
func (parser *Parser) Parse() []Stmt {
	var statements []Stmt
	for !parser.isEOF() {
		stmt, err := parser.declaration()
		if err != nil {
			parser.reporter.Report(err)
			parser.sync()
			continue
		}
		statements = append(statements, stmt)
	}
	return statements
}

// declaration --> classDecl | funDecl | varDecl | statement ;
func (parser *Parser) declaration() (Stmt, error) {
	switch {
	case parser.match(CLASS):
		return parser.classDecl()
	case parser.match(FUN):
		return parser.function("function")
	case parser.match(VAR):
		return parser.varDecl()
	default:
		return parser.statement()
	}
}

// classDecl --> "class" IDENT ( "<" IDENT )? "{" function* "}" ;
func (parser *Parser) classDecl() (Stmt, error) {
	name, err := parser.consume(IDENTIFIER, "Expect class name.")
	if err != nil {
		return nil, err
	}

	var superclass *VarExpr
	if parser.match(LESS) {
		superName, err := parser.consume(IDENTIFIER, "Expect superclass name.")
		if err != nil {
			return nil, err
		}
		superclass = NewVarExpr(parser.id(), superName)
	}

	if _, err := parser.consume(LEFT_BRACE, "Expect '{' before class body."); err != nil {
		return nil, err
	}

	var methods []*FunctionStmt
	for !parser.check(RIGHT_BRACE) && !parser.isEOF() {
		method, err := parser.function("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, method.(*FunctionStmt))
	}

	if _, err := parser.consume(RIGHT_BRACE, "Expect '}' after class body."); err != nil {
		return nil, err
	}

	return NewClassStmt(name, superclass, methods), nil
}

// function --> IDENT "(" params? ")" block ;
func (parser *Parser) function(kind string) (Stmt, error) {
	name, err := parser.consume(IDENTIFIER, fmt.Sprintf("Expect %s name.", kind))
	if err != nil {
		return nil, err
	}

	if _, err := parser.consume(LEFT_PAREN, fmt.Sprintf("Expect '(' after %s name.", kind)); err != nil {
		return nil, err
	}
	var params []*Token
	if !parser.check(RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				parser.reporter.Report(NewParseError(parser.peek(), "Can't have more than 255 parameters."))
			}
			p, err := parser.consume(IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, p)
			if !parser.match(COMMA) {
				break
			}
		}
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	if _, err := parser.consume(LEFT_BRACE, fmt.Sprintf("Expect '{' before %s body.", kind)); err != nil {
		return nil, err
	}
	body, err := parser.block()
	if err != nil {
		return nil, err
	}

	return NewFunctionStmt(name, params, body), nil
}

// varDecl --> "var" IDENT ( "=" expr )? ";" ;
func (parser *Parser) varDecl() (Stmt, error) {
	name, err := parser.consume(IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var init Expr
	if parser.match(EQUAL) {
		init, err = parser.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := parser.consume(SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return NewVarStmt(name, init), nil
}

// statement --> exprStmt | forStmt | ifStmt | printStmt
//             | returnStmt | whileStmt | block ;
func (parser *Parser) statement() (Stmt, error) {
	switch {
	case parser.match(FOR):
		return parser.forStmt()
	case parser.match(IF):
		return parser.ifStmt()
	case parser.match(PRINT):
		return parser.printStmt()
	case parser.match(RETURN):
		return parser.returnStmt()
	case parser.match(WHILE):
		return parser.whileStmt()
	case parser.match(LEFT_BRACE):
		stmts, err := parser.block()
		if err != nil {
			return nil, err
		}
		return NewBlockStmt(stmts), nil
	default:
		return parser.exprStmt()
	}
}

// forStmt desugars into a block containing the initializer followed by a
// while loop whose body re-appends the increment — this preserves the
// lexical scope of any variable the initializer declares.
//
// forStmt --> "for" "(" ( varDecl | exprStmt | ";" ) expr? ";" expr? ")" stmt ;
func (parser *Parser) forStmt() (Stmt, error) {
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var init Stmt
	var err error
	switch {
	case parser.match(SEMICOLON):
		init = nil
	case parser.match(VAR):
		init, err = parser.varDecl()
	default:
		init, err = parser.exprStmt()
	}
	if err != nil {
		return nil, err
	}

	var cond Expr
	if !parser.check(SEMICOLON) {
		cond, err = parser.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment Expr
	if !parser.check(RIGHT_PAREN) {
		increment, err = parser.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := parser.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = NewBlockStmt([]Stmt{body, NewExprStmt(increment)})
	}
	if cond == nil {
		cond = NewLiteralExpr(true)
	}
	body = NewWhileStmt(cond, body)
	if init != nil {
		body = NewBlockStmt([]Stmt{init, body})
	}
	return body, nil
}

// ifStmt --> "if" "(" expr ")" stmt ( "else" stmt )? ;
func (parser *Parser) ifStmt() (Stmt, error) {
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	thenBranch, err := parser.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch Stmt
	if parser.match(ELSE) {
		elseBranch, err = parser.statement()
		if err != nil {
			return nil, err
		}
	}
	return NewIfStmt(cond, thenBranch, elseBranch), nil
}

// printStmt --> "print" expr ";" ;
func (parser *Parser) printStmt() (Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return NewPrintStmt(expr), nil
}

// returnStmt --> "return" expr? ";" ;
func (parser *Parser) returnStmt() (Stmt, error) {
	keyword := parser.prev()
	var val Expr
	var err error
	if !parser.check(SEMICOLON) {
		val, err = parser.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return NewReturnStmt(keyword, val), nil
}

// whileStmt --> "while" "(" expr ")" stmt ;
func (parser *Parser) whileStmt() (Stmt, error) {
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := parser.statement()
	if err != nil {
		return nil, err
	}
	return NewWhileStmt(cond, body), nil
}

// block --> "{" declaration* "}" ; the opening brace has already been
// consumed by the caller.
func (parser *Parser) block() ([]Stmt, error) {
	var stmts []Stmt
	for !parser.check(RIGHT_BRACE) && !parser.isEOF() {
		stmt, err := parser.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := parser.consume(RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

// exprStmt --> expr ";" ;
func (parser *Parser) exprStmt() (Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return NewExprStmt(expr), nil
}

// expression --> assignment ;
func (parser *Parser) expression() (Expr, error) {
	return parser.assignment()
}

// assignment --> ( call "." )? IDENT "=" assignment | ternary ;
//
// The left side is parsed as a full ternary expression, then re-interpreted
// as an l-value if "=" follows: a bare variable becomes an assignment, a
// property get becomes a property set. Anything else is an invalid
// assignment target — reported, but parsing continues without synchronising
// since the statement is otherwise well-formed.
func (parser *Parser) assignment() (Expr, error) {
	expr, err := parser.ternary()
	if err != nil {
		return nil, err
	}

	if parser.match(EQUAL) {
		equals := parser.prev()
		val, err := parser.assignment()
		if err != nil {
			return nil, err
		}

		switch e := expr.(type) {
		case *VarExpr:
			return NewAssignExpr(parser.id(), e.Name, val), nil
		case *GetExpr:
			return NewSetExpr(e.Obj, e.Name, val), nil
		default:
			parser.reporter.Report(NewParseError(equals, "Invalid assignment target."))
			return expr, nil
		}
	}
	return expr, nil
}

// ternary --> logic_or ( "?" ternary ":" ternary )? ; right-associative.
func (parser *Parser) ternary() (Expr, error) {
	cond, err := parser.or()
	if err != nil {
		return nil, err
	}
	if parser.match(QUESTION) {
		then, err := parser.ternary()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(COLON, "Expect ':' after '?' branch of ternary expression."); err != nil {
			return nil, err
		}
		els, err := parser.ternary()
		if err != nil {
			return nil, err
		}
		return NewTernaryExpr(cond, then, els), nil
	}
	return cond, nil
}

// or --> and ( "or" and )* ;
func (parser *Parser) or() (Expr, error) {
	expr, err := parser.and()
	if err != nil {
		return nil, err
	}
	for parser.match(OR) {
		op := parser.prev()
		rhs, err := parser.and()
		if err != nil {
			return nil, err
		}
		expr = NewLogicalExpr(op, expr, rhs)
	}
	return expr, nil
}

// and --> equality ( "and" equality )* ;
func (parser *Parser) and() (Expr, error) {
	expr, err := parser.equality()
	if err != nil {
		return nil, err
	}
	for parser.match(AND) {
		op := parser.prev()
		rhs, err := parser.equality()
		if err != nil {
			return nil, err
		}
		expr = NewLogicalExpr(op, expr, rhs)
	}
	return expr, nil
}

// equality --> comparison ( ( "!=" | "==" ) comparison )* ;
func (parser *Parser) equality() (Expr, error) {
	expr, err := parser.comparison()
	if err != nil {
		return nil, err
	}
	for parser.match(BANG_EQUAL, EQUAL_EQUAL) {
		op := parser.prev()
		rhs, err := parser.comparison()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, rhs)
	}
	return expr, nil
}

// comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
func (parser *Parser) comparison() (Expr, error) {
	expr, err := parser.term()
	if err != nil {
		return nil, err
	}
	for parser.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		op := parser.prev()
		rhs, err := parser.term()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, rhs)
	}
	return expr, nil
}

// term --> factor ( ( "-" | "+" ) factor )* ;
func (parser *Parser) term() (Expr, error) {
	expr, err := parser.factor()
	if err != nil {
		return nil, err
	}
	for parser.match(MINUS, PLUS) {
		op := parser.prev()
		rhs, err := parser.factor()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, rhs)
	}
	return expr, nil
}

// factor --> unary ( ( "/" | "*" ) unary )* ;
func (parser *Parser) factor() (Expr, error) {
	expr, err := parser.unary()
	if err != nil {
		return nil, err
	}
	for parser.match(SLASH, STAR) {
		op := parser.prev()
		rhs, err := parser.unary()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, rhs)
	}
	return expr, nil
}

// unary --> ( "!" | "-" ) unary | call ;
func (parser *Parser) unary() (Expr, error) {
	if parser.match(BANG, MINUS) {
		op := parser.prev()
		expr, err := parser.unary()
		if err != nil {
			return nil, err
		}
		return NewUnaryExpr(op, expr), nil
	}
	return parser.call()
}

// call --> primary ( "(" args? ")" | "." IDENT )* ;
func (parser *Parser) call() (Expr, error) {
	expr, err := parser.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case parser.match(LEFT_PAREN):
			expr, err = parser.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case parser.match(DOT):
			name, err := parser.consume(IDENTIFIER, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}
			expr = NewGetExpr(expr, name)
		default:
			return expr, nil
		}
	}
}

// args --> expr ( "," expr )* ;
func (parser *Parser) finishCall(callee Expr) (Expr, error) {
	var args []Expr
	if !parser.check(RIGHT_PAREN) {
		for {
			if len(args) >= 255 {
				parser.reporter.Report(NewParseError(parser.peek(), "Can't have more than 255 arguments."))
			}
			arg, err := parser.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !parser.match(COMMA) {
				break
			}
		}
	}
	paren, err := parser.consume(RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return NewCallExpr(callee, paren, args), nil
}

// primary --> NUMBER | STRING | IDENT
//           | "true" | "false" | "nil"
//           | "this" | "super" "." IDENT
//           | "(" expr ")" ;
func (parser *Parser) primary() (Expr, error) {
	switch {
	case parser.match(FALSE):
		return NewLiteralExpr(false), nil
	case parser.match(TRUE):
		return NewLiteralExpr(true), nil
	case parser.match(NIL):
		return NewLiteralExpr(nil), nil
	case parser.match(NUMBER, STRING):
		return NewLiteralExpr(parser.prev().Literal), nil
	case parser.match(SUPER):
		keyword := parser.prev()
		if _, err := parser.consume(DOT, "Expect '.' after 'super'."); err != nil {
			return nil, err
		}
		method, err := parser.consume(IDENTIFIER, "Expect superclass method name.")
		if err != nil {
			return nil, err
		}
		return NewSuperExpr(parser.id(), keyword, method), nil
	case parser.match(THIS):
		return NewThisExpr(parser.id(), parser.prev()), nil
	case parser.match(IDENTIFIER):
		return NewVarExpr(parser.id(), parser.prev()), nil
	case parser.match(LEFT_PAREN):
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return NewGroupExpr(expr), nil
	}
	return nil, NewParseError(parser.peek(), "Expect expression.")
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) (*Token, error) {
	if parser.check(typ) {
		return parser.advance(), nil
	}
	return nil, NewParseError(parser.peek(), message)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}

// sync discards tokens until it reaches a likely statement boundary, so
// parsing can resume after a syntax error instead of cascading into more
// spurious errors.
func (parser *Parser) sync() {
	parser.advance()
	for !parser.isEOF() {
		if parser.prev().Typ == SEMICOLON {
			return
		}
		switch parser.peek().Typ {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return
		}
		parser.advance()
	}
}
