package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders expr as the parenthesized form spec.md §6.4 defines, used
// by the `parse` pipeline.
func Print(expr Expr) string {
	switch e := expr.(type) {
	case *Literal:
		return stringifyLiteral(e.Value)
	case *Unary:
		return parenthesize(e.Op.Lexeme, e.Operand)
	case *Binary:
		return parenthesize(e.Op.Lexeme, e.Left, e.Right)
	case *Logical:
		return parenthesize(e.Op.Lexeme, e.Left, e.Right)
	case *Grouping:
		return parenthesize("group", e.Inner)
	case *Variable:
		return e.Name.Lexeme
	case *Assign:
		return parenthesizeNamed("=", e.Name.Lexeme, e.Value)
	case *Call:
		args := make([]Expr, 0, len(e.Args)+1)
		args = append(args, e.Callee)
		args = append(args, e.Args...)
		return parenthesize("call", args...)
	default:
		return ""
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(Print(e))
	}
	b.WriteByte(')')
	return b.String()
}

// parenthesizeNamed renders "(= name value)" for Assign nodes, whose first
// operand is a bare identifier rather than a sub-expression.
func parenthesizeNamed(op, name string, value Expr) string {
	return fmt.Sprintf("(%s %s %s)", op, name, Print(value))
}

// stringifyLiteral renders a Literal's value the way spec.md §6.4 and
// §4.4.3 require: nil, bool, number-with-trailing-.0-when-integral, or a
// bare string.
func stringifyLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// formatNumber renders a float64 with a mandatory decimal point, trimming
// nothing but matching the integer-gets-".0" rule from spec.md §6.3/§6.4.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
