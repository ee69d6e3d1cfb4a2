package lox

import (
	"fmt"
	"io"
)

// Interpreter walks a resolved syntax tree and evaluates it directly,
// without compiling to any intermediate form. It implements both
// ExprVisitor and StmtVisitor.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[int64]int
	output      io.Writer
	reporter    Reporter
	isREPL      bool
}

// NewInterpreter builds an interpreter with its global scope pre-populated
// with the native functions Lox exposes without an import system.
func NewInterpreter(output io.Writer, reporter Reporter, isREPL bool) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", &nativeFnClock{})
	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[int64]int),
		output:      output,
		reporter:    reporter,
		isREPL:      isREPL,
	}
}

// Interpret runs a program top to bottom, stopping and reporting on the
// first error. Between calls — as happens once per line in the REPL — the
// caller is expected to Reset the Reporter.
func (in *Interpreter) Interpret(statements []Stmt) {
	for _, stmt := range statements {
		if _, err := in.exec(stmt); err != nil {
			in.reporter.Report(err)
			break
		}
	}
}

// resolve records that the variable-bearing expression with the given id
// is bound exactly depth scopes out from wherever it's evaluated. Called by
// the Resolver; consulted by lookUpVariable.
func (in *Interpreter) resolve(id int64, depth int) {
	in.locals[id] = depth
}

func (in *Interpreter) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	return nil, in.execBlock(stmt.Stmts, NewEnvironment(in.environment))
}

func (in *Interpreter) VisitClassStmt(stmt *ClassStmt) (interface{}, error) {
	var superclass *Class
	if stmt.Superclass != nil {
		val, err := in.eval(stmt.Superclass)
		if err != nil {
			return nil, err
		}
		class, ok := val.(*Class)
		if !ok {
			return nil, NewRuntimeError(stmt.Superclass.Name, "Superclass must be a class.")
		}
		superclass = class
	}

	in.environment.Define(stmt.Name.Lexeme, nil)

	if stmt.Superclass != nil {
		in.environment = NewEnvironment(in.environment)
		in.environment.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(stmt.Methods))
	for _, method := range stmt.Methods {
		fn := NewFunction(method, in.environment, method.Name.Lexeme == "init")
		methods[method.Name.Lexeme] = fn
	}

	class := NewClass(stmt.Name.Lexeme, superclass, methods)

	if stmt.Superclass != nil {
		in.environment = in.environment.enclosing
	}

	return nil, in.environment.Assign(stmt.Name, class)
}

func (in *Interpreter) VisitExprStmt(stmt *ExprStmt) (interface{}, error) {
	expr, err := in.eval(stmt.Expr)
	if err != nil {
		return nil, err
	}
	if in.isREPL && in.environment == in.globals {
		if _, ok := stmt.Expr.(*AssignExpr); !ok {
			fmt.Fprintln(in.output, stringify(expr))
		}
	}
	return nil, nil
}

func (in *Interpreter) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	fn := NewFunction(stmt, in.environment, false)
	in.environment.Define(stmt.Name.Lexeme, fn)
	return nil, nil
}

func (in *Interpreter) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	cond, err := in.eval(stmt.Cond)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return in.exec(stmt.ThenBranch)
	}
	if stmt.ElseBranch != nil {
		return in.exec(stmt.ElseBranch)
	}
	return nil, nil
}

func (in *Interpreter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	expr, err := in.eval(stmt.Expr)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(in.output, stringify(expr))
	return nil, nil
}

func (in *Interpreter) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	var val interface{}
	if stmt.Val != nil {
		var err error
		val, err = in.eval(stmt.Val)
		if err != nil {
			return nil, err
		}
	}
	return nil, newLoxReturn(val)
}

func (in *Interpreter) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	var initVal interface{}
	if stmt.Init != nil {
		var err error
		initVal, err = in.eval(stmt.Init)
		if err != nil {
			return nil, err
		}
	}
	in.environment.Define(stmt.Name.Lexeme, initVal)
	return nil, nil
}

func (in *Interpreter) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	for {
		cond, err := in.eval(stmt.Cond)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return nil, nil
		}
		if _, err := in.exec(stmt.Body); err != nil {
			return nil, err
		}
	}
}

func (in *Interpreter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	val, err := in.eval(expr.Val)
	if err != nil {
		return nil, err
	}
	if distance, ok := in.locals[expr.Id]; ok {
		if err := in.environment.AssignAt(distance, expr.Name, val); err != nil {
			return nil, err
		}
	} else if err := in.globals.Assign(expr.Name, val); err != nil {
		return nil, err
	}
	return val, nil
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(expr.Rhs)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG_EQUAL:
		return !isEqual(lhs, rhs), nil

	case EQUAL_EQUAL:
		return isEqual(lhs, rhs), nil

	case GREATER:
		leftNum, rightNum, err := checkNumberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum > rightNum, nil

	case GREATER_EQUAL:
		leftNum, rightNum, err := checkNumberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum >= rightNum, nil

	case LESS:
		leftNum, rightNum, err := checkNumberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum < rightNum, nil

	case LESS_EQUAL:
		leftNum, rightNum, err := checkNumberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum <= rightNum, nil

	case MINUS:
		leftNum, rightNum, err := checkNumberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum - rightNum, nil

	case PLUS:
		leftStr, okLeftStr := lhs.(string)
		rightStr, okRightStr := rhs.(string)
		if okLeftStr && okRightStr {
			return leftStr + rightStr, nil
		}
		leftNum, okLeftNum := lhs.(float64)
		rightNum, okRightNum := rhs.(float64)
		if okLeftNum && okRightNum {
			return leftNum + rightNum, nil
		}
		return nil, NewRuntimeError(expr.Op, "Operands must be two numbers or two strings.")

	case SLASH:
		leftNum, rightNum, err := checkNumberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		// Go's float division already yields +/-Inf or NaN for a zero
		// divisor, matching IEEE-754 — no special case needed.
		return leftNum / rightNum, nil

	case STAR:
		leftNum, rightNum, err := checkNumberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum * rightNum, nil
	}
	panic("Unreachable")
}

func (in *Interpreter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	callee, err := in.eval(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, len(expr.Args))
	for i, arg := range expr.Args {
		val, err := in.eval(arg)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, NewRuntimeError(expr.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, NewRuntimeError(expr.Paren,
			fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)))
	}
	return fn.Call(in, args)
}

func (in *Interpreter) VisitGetExpr(expr *GetExpr) (interface{}, error) {
	obj, err := in.eval(expr.Obj)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, NewRuntimeError(expr.Name, "Only instances have properties.")
	}
	return inst.Get(expr.Name)
}

func (in *Interpreter) VisitGroupExpr(expr *GroupExpr) (interface{}, error) {
	return in.eval(expr.Expr)
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return expr.Val, nil
}

func (in *Interpreter) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Lhs)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case OR:
		if isTruthy(lhs) {
			return lhs, nil
		}
	case AND:
		if !isTruthy(lhs) {
			return lhs, nil
		}
	default:
		panic("Unreachable")
	}

	return in.eval(expr.Rhs)
}

func (in *Interpreter) VisitSetExpr(expr *SetExpr) (interface{}, error) {
	obj, err := in.eval(expr.Obj)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, NewRuntimeError(expr.Name, "Only instances have fields.")
	}
	val, err := in.eval(expr.Val)
	if err != nil {
		return nil, err
	}
	inst.Set(expr.Name, val)
	return val, nil
}

func (in *Interpreter) VisitSuperExpr(expr *SuperExpr) (interface{}, error) {
	distance := in.locals[expr.Id]
	superVal, err := in.environment.GetAt(distance, expr.Keyword)
	if err != nil {
		return nil, err
	}
	superclass := superVal.(*Class)

	thisVal, err := in.environment.GetAt(distance-1, &Token{Typ: THIS, Lexeme: "this"})
	if err != nil {
		return nil, err
	}
	inst := thisVal.(*Instance)

	method, ok := superclass.findMethod(expr.Method.Lexeme)
	if !ok {
		return nil, NewRuntimeError(expr.Method, fmt.Sprintf("Undefined property '%s'.", expr.Method.Lexeme))
	}
	return method.bind(inst), nil
}

func (in *Interpreter) VisitTernaryExpr(expr *TernaryExpr) (interface{}, error) {
	cond, err := in.eval(expr.Cond)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return in.eval(expr.Then)
	}
	return in.eval(expr.Else)
}

func (in *Interpreter) VisitThisExpr(expr *ThisExpr) (interface{}, error) {
	return in.lookUpVariable(expr.Id, expr.Keyword)
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	exprVal, err := in.eval(expr.Expr)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG:
		return !isTruthy(exprVal), nil
	case MINUS:
		if exprNum, ok := exprVal.(float64); ok {
			return -exprNum, nil
		}
		return nil, NewRuntimeError(expr.Op, "Operand must be a number.")
	}
	panic("Unreachable")
}

func (in *Interpreter) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	return in.lookUpVariable(expr.Id, expr.Name)
}

// lookUpVariable consults the locals side-table the resolver built; if the
// id isn't there, the variable is assumed global.
func (in *Interpreter) lookUpVariable(id int64, name *Token) (interface{}, error) {
	if distance, ok := in.locals[id]; ok {
		return in.environment.GetAt(distance, name)
	}
	return in.globals.Get(name)
}

func checkNumberOperands(op *Token, lhs, rhs interface{}) (float64, float64, error) {
	leftNum, okLeft := lhs.(float64)
	rightNum, okRight := rhs.(float64)
	if okLeft && okRight {
		return leftNum, rightNum, nil
	}
	return 0, 0, NewRuntimeError(op, "Operands must be numbers.")
}

// execBlock runs statements against a new scope, restoring the previous
// scope afterward even if a statement errors or returns.
func (in *Interpreter) execBlock(statements []Stmt, environment *Environment) error {
	previous := in.environment
	in.environment = environment
	defer func() {
		in.environment = previous
	}()
	for _, stmt := range statements {
		if _, err := in.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) exec(stmt Stmt) (interface{}, error) {
	return stmt.Accept(in)
}

func (in *Interpreter) eval(expr Expr) (interface{}, error) {
	return expr.Accept(in)
}
