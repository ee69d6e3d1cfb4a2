package lox

import (
	"fmt"
	"time"
)

// Callable is implemented by every Lox value that can be invoked with `()`:
// native functions, user-defined functions/closures, bound methods, and
// classes (callable as constructors).
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []interface{}) (interface{}, error)
}

// nativeFnClock is Lox's only standard-library function.
type nativeFnClock struct{}

func (fn *nativeFnClock) Arity() int { return 0 }

func (fn *nativeFnClock) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	return float64(time.Since(time.Unix(0, 0)).Nanoseconds()) / 1e9, nil
}

func (fn *nativeFnClock) String() string {
	return "<native fn>"
}

// Function is a user-defined function or method: a declaration paired with
// the environment active at the point it was declared. That pairing is what
// makes closures work — the function keeps reading and writing the exact
// bindings that were in scope when it was defined, even after those scopes
// have nominally exited.
type Function struct {
	decl          *FunctionStmt
	closure       *Environment
	isInitializer bool
}

// NewFunction wraps a function declaration together with its defining
// environment. isInitializer marks a class's `init` method, which always
// returns `this` regardless of what it `return`s.
func NewFunction(decl *FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{decl, closure, isInitializer}
}

func (fn *Function) Arity() int {
	return len(fn.decl.Params)
}

// bind produces a bound method: a copy of fn whose closure has an additional
// innermost scope defining `this` as inst. Invoking the result uses that
// environment, so method bodies see the right instance.
func (fn *Function) bind(inst *Instance) *Function {
	env := NewEnvironment(fn.closure)
	env.Define("this", inst)
	return NewFunction(fn.decl, env, fn.isInitializer)
}

func (fn *Function) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	// Each call gets its own environment, parented at the closure's captured
	// environment rather than the caller's. Without a fresh environment per
	// call, recursive calls to the same function would stomp on each other's
	// parameter bindings.
	env := NewEnvironment(fn.closure)
	for i, param := range fn.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := in.execBlock(fn.decl.Body, env)
	if ret, ok := err.(*loxReturn); ok {
		if fn.isInitializer {
			this, _ := fn.closure.GetAt(0, &Token{Lexeme: "this"})
			return this, nil
		}
		return ret.val, nil
	}
	if err != nil {
		return nil, err
	}

	if fn.isInitializer {
		this, _ := fn.closure.GetAt(0, &Token{Lexeme: "this"})
		return this, nil
	}
	return nil, nil
}

func (fn *Function) String() string {
	return fmt.Sprintf("<fn %s>", fn.decl.Name.Lexeme)
}

// Class is a callable object whose method table is immutable after creation.
type Class struct {
	Name       string
	superclass *Class
	methods    map[string]*Function
}

// NewClass builds a class with the given method table; methods is not copied
// and must not be mutated afterward.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{name, superclass, methods}
}

func (c *Class) findMethod(name string) (*Function, bool) {
	if method, ok := c.methods[name]; ok {
		return method, true
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil, false
}

// Arity is the arity of `init`, or zero if the class declares none.
func (c *Class) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a fresh instance and runs `init` against it if present.
// The instance, not whatever `init` returns, is always the result.
func (c *Class) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	inst := NewInstance(c)
	if init, ok := c.findMethod("init"); ok {
		if _, err := init.bind(inst).Call(in, args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

func (c *Class) String() string {
	return c.Name
}

// Instance is a runtime object created by calling a Class. Its field table
// is mutable; assignment creates the field if absent. Its class reference is
// shared and immutable.
type Instance struct {
	class  *Class
	fields map[string]interface{}
}

func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]interface{})}
}

// Get looks up a field first, then a method bound to this instance. A method
// retrieved this way is a bound method: it carries `this` pre-bound to inst.
func (inst *Instance) Get(name *Token) (interface{}, error) {
	if value, ok := inst.fields[name.Lexeme]; ok {
		return value, nil
	}
	if method, ok := inst.class.findMethod(name.Lexeme); ok {
		return method.bind(inst), nil
	}
	return nil, NewRuntimeError(name, fmt.Sprintf("Undefined property '%s'.", name.Lexeme))
}

// Set creates or overwrites a field on the instance.
func (inst *Instance) Set(name *Token, value interface{}) {
	inst.fields[name.Lexeme] = value
}

func (inst *Instance) String() string {
	return inst.class.Name + " instance"
}
