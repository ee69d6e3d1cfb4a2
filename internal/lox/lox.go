package lox

import (
	"fmt"
	"strconv"
)

// stringify renders a runtime value the way `print` and the REPL echo it:
// integral floats drop their trailing ".0", nil prints as "nil", and every
// other Go type falls back to its default formatting.
func stringify(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// isTruthy applies Lox's truthiness rule: nil and false are the only
// falsey values, everything else — including 0 and "" — is truthy.
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if v, ok := value.(bool); ok {
		return v
	}
	return true
}

// isEqual implements Lox's `==`. Values of different dynamic types are never
// equal; Go's built-in `==` already gives the right answer for the numeric,
// string, boolean and nil cases, and for pointer-identity comparison of
// callables and instances.
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}
