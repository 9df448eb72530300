package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparrowlang/sparrow/internal/ast"
	"github.com/sparrowlang/sparrow/internal/lexer"
	"github.com/sparrowlang/sparrow/internal/parser"
	"github.com/sparrowlang/sparrow/internal/resolve"
)

func resolveSource(t *testing.T, source string) *resolve.Resolver {
	t.Helper()
	tokens, errs := lexer.New(source).Scan()
	require.Empty(t, errs)
	p := parser.New(tokens)
	stmts := p.ParseProgram()
	require.False(t, p.HadError())
	r := resolve.New()
	r.Resolve(stmts)
	return r
}

func TestResolveSelfInitializerIsError(t *testing.T) {
	r := resolveSource(t, "var a = 1; { var a = a; }")
	require.True(t, r.HadError())
	require.Len(t, r.Errors(), 1)
	assert.Contains(t, r.Errors()[0].Message, "Can't read local variable in its own initializer.")
}

func TestResolveDuplicateDeclarationInScopeIsError(t *testing.T) {
	r := resolveSource(t, "{ var a = 1; var a = 2; }")
	require.True(t, r.HadError())
	assert.Contains(t, r.Errors()[0].Message, "Already a variable with this name in this scope.")
}

func TestResolveDuplicateAtTopLevelIsAllowed(t *testing.T) {
	r := resolveSource(t, "var a = 1; var a = 2;")
	assert.False(t, r.HadError())
}

func TestResolveLocalRecordsDistance(t *testing.T) {
	tokens, errs := lexer.New("var a = 1; fun f() { var b = 2; print a; print b; }").Scan()
	require.Empty(t, errs)
	p := parser.New(tokens)
	stmts := p.ParseProgram()
	require.False(t, p.HadError())
	r := resolve.New()
	locals := r.Resolve(stmts)
	assert.False(t, r.HadError())
	// "print a" (handle 1) reads a global and stays out of the table;
	// "print b" (handle 2) reads f's local at distance 0.
	assert.Equal(t, map[ast.Handle]int{2: 0}, locals)
}
