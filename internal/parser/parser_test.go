package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparrowlang/sparrow/internal/ast"
	"github.com/sparrowlang/sparrow/internal/lexer"
	"github.com/sparrowlang/sparrow/internal/parser"
)

func parseExpr(t *testing.T, source string) (ast.Expr, *parser.Parser) {
	t.Helper()
	tokens, errs := lexer.New(source).Scan()
	require.Empty(t, errs)
	p := parser.New(tokens)
	return p.ParseExpression(), p
}

func TestParsePrecedence(t *testing.T) {
	expr, p := parseExpr(t, "1 + 2 * 3")
	require.False(t, p.HadError())
	assert.Equal(t, "(+ 1.0 (* 2.0 3.0))", ast.Print(expr))
}

func TestParseGroupingAndUnary(t *testing.T) {
	expr, p := parseExpr(t, "-(1 + 2)")
	require.False(t, p.HadError())
	assert.Equal(t, "(- (group (+ 1.0 2.0)))", ast.Print(expr))
}

func TestParseComparisonChain(t *testing.T) {
	expr, p := parseExpr(t, "1 < 2 == true")
	require.False(t, p.HadError())
	assert.Equal(t, "(== (< 1.0 2.0) true)", ast.Print(expr))
}

func TestParseAssignment(t *testing.T) {
	expr, p := parseExpr(t, "a = 1")
	require.False(t, p.HadError())
	assert.Equal(t, "(= a 1.0)", ast.Print(expr))
}

func TestParseInvalidAssignmentTargetReportsErrorButContinues(t *testing.T) {
	_, p := parseExpr(t, "1 = 2")
	require.True(t, p.HadError())
	require.Len(t, p.Errors(), 1)
	assert.Contains(t, p.Errors()[0].Message, "Invalid assignment target.")
}

func TestParseCall(t *testing.T) {
	expr, p := parseExpr(t, "add(1, 2)")
	require.False(t, p.HadError())
	assert.Equal(t, "(call add 1.0 2.0)", ast.Print(expr))
}

func TestParseMissingClosingParenIsError(t *testing.T) {
	_, p := parseExpr(t, "(1 + 2")
	assert.True(t, p.HadError())
	require.Len(t, p.Errors(), 1)
	assert.Contains(t, p.Errors()[0].Error(), "Expect ')' after expression.")
}

func TestParseProgramVarAndPrint(t *testing.T) {
	tokens, errs := lexer.New("var a = 1; print a;").Scan()
	require.Empty(t, errs)
	p := parser.New(tokens)
	stmts := p.ParseProgram()
	require.False(t, p.HadError())
	require.Len(t, stmts, 2)
	_, isVar := stmts[0].(*ast.Var)
	_, isPrint := stmts[1].(*ast.Print)
	assert.True(t, isVar)
	assert.True(t, isPrint)
}
