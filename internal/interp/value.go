// Package interp is the tree-walking evaluator from spec.md §4.4: it
// consumes either a single expression or a statement list plus the
// resolver's side-table, and produces either a printed value or a
// sequence of side effects, against a chain of lexically-scoped
// environments.
//
// The dispatch shape (one switch per node kind, no visitor interface) is
// grounded on the teacher's runtime/execution/evaluator.go, adapted from
// that file's IR-tree dispatch to this package's expression/statement
// tree.
package interp

import (
	"strconv"
	"strings"
)

// Value is any runtime value the Language can hold: nil (Go nil), bool,
// float64, string, or Callable. Kept as `any` rather than a hand-rolled
// tagged union — Go's interface already is one, and a type switch gives
// the same exhaustiveness at each consumer that a dedicated union would.
type Value = any

// Callable is anything invocable from a Call expression: a user-defined
// Function or a native builtin such as clock.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
	String() string
}

// isTruthy implements spec.md §4.4.1: nil and false are false, everything
// else — including 0 and "" — is true.
func isTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements spec.md §4.4.1's equality rules. NaN != NaN falls out
// of Go's native float64 == operator, so no special case is needed.
func isEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		// Callables: identity equality (pinned per spec.md §9 "Open
		// questions"). Function/nativeFn values are always held behind a
		// pointer, so Go's == on the interface compares pointer identity.
		return a == b
	}
}

// Stringify implements spec.md §4.4.3's canonical textual form.
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return stringifyNumber(val)
	case string:
		return val
	case Callable:
		return val.String()
	default:
		return ""
	}
}

// stringifyNumber trims a trailing ".0" from the decimal representation,
// per spec.md §4.4.3 and the "Number printing" design note in §9: 3.0
// prints as "3", 3.5 prints as "3.5".
func stringifyNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return strings.TrimSuffix(s, ".0")
}
