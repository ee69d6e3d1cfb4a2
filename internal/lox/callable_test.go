package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNativeFnClock(t *testing.T) {
	assert := assert.New(t)

	fn := &nativeFnClock{}
	assert.Equal(0, fn.Arity())
	assert.Equal("<native fn>", fn.String())

	val, err := fn.Call(nil, nil)
	assert.NoError(err)
	_, ok := val.(float64)
	assert.True(ok)
}

func TestClassFindMethod(t *testing.T) {
	assert := assert.New(t)

	greet := NewFunction(NewFunctionStmt(NewToken(IDENTIFIER, "greet", nil, 1), nil, nil), nil, false)
	base := NewClass("Base", nil, map[string]*Function{"greet": greet})

	bark := NewFunction(NewFunctionStmt(NewToken(IDENTIFIER, "bark", nil, 1), nil, nil), nil, false)
	derived := NewClass("Derived", base, map[string]*Function{"bark": bark})

	method, ok := derived.findMethod("bark")
	assert.True(ok)
	assert.Same(bark, method)

	method, ok = derived.findMethod("greet")
	assert.True(ok)
	assert.Same(greet, method)

	_, ok = derived.findMethod("missing")
	assert.False(ok)
}

func TestClassArity(t *testing.T) {
	assert := assert.New(t)

	params := []*Token{
		NewToken(IDENTIFIER, "a", nil, 1),
		NewToken(IDENTIFIER, "b", nil, 1),
	}
	init := NewFunction(NewFunctionStmt(NewToken(IDENTIFIER, "init", nil, 1), params, nil), nil, true)
	withInit := NewClass("WithInit", nil, map[string]*Function{"init": init})
	assert.Equal(2, withInit.Arity())

	withoutInit := NewClass("WithoutInit", nil, map[string]*Function{})
	assert.Equal(0, withoutInit.Arity())
}

func TestInstanceGetSetAndUndefinedProperty(t *testing.T) {
	assert := assert.New(t)

	speak := NewFunction(NewFunctionStmt(NewToken(IDENTIFIER, "speak", nil, 1), nil, nil), NewEnvironment(nil), false)
	class := NewClass("Dog", nil, map[string]*Function{"speak": speak})
	inst := NewInstance(class)

	inst.Set(NewToken(IDENTIFIER, "name", nil, 1), "Rex")
	val, err := inst.Get(NewToken(IDENTIFIER, "name", nil, 1))
	assert.NoError(err)
	assert.Equal("Rex", val)

	method, err := inst.Get(NewToken(IDENTIFIER, "speak", nil, 1))
	assert.NoError(err)
	bound, ok := method.(*Function)
	assert.True(ok)
	assert.NotSame(speak, bound)

	_, err = inst.Get(NewToken(IDENTIFIER, "missing", nil, 1))
	assert.Error(err)
	assert.IsType(&RuntimeError{}, err)
	assert.Contains(err.Error(), "Undefined property 'missing'.")

	assert.Equal("Dog instance", inst.String())
}

func TestFunctionBindScopesThisPerInstance(t *testing.T) {
	assert := assert.New(t)

	closure := NewEnvironment(nil)
	decl := NewFunctionStmt(NewToken(IDENTIFIER, "speak", nil, 1), nil, nil)
	fn := NewFunction(decl, closure, false)

	class := NewClass("Cat", nil, map[string]*Function{})
	a := NewInstance(class)
	b := NewInstance(class)

	boundA := fn.bind(a)
	boundB := fn.bind(b)

	thisA, err := boundA.closure.Get(NewToken(IDENTIFIER, "this", nil, 1))
	assert.NoError(err)
	assert.Same(a, thisA)

	thisB, err := boundB.closure.Get(NewToken(IDENTIFIER, "this", nil, 1))
	assert.NoError(err)
	assert.Same(b, thisB)

	// the original function's closure is untouched by binding
	_, err = closure.Get(NewToken(IDENTIFIER, "this", nil, 1))
	assert.Error(err)
}

func TestFunctionString(t *testing.T) {
	assert := assert.New(t)

	fn := NewFunction(NewFunctionStmt(NewToken(IDENTIFIER, "add", nil, 1), nil, nil), nil, false)
	assert.Equal("<fn add>", fn.String())
}
