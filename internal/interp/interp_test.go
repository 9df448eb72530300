package interp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparrowlang/sparrow/internal/interp"
	"github.com/sparrowlang/sparrow/internal/lexer"
	"github.com/sparrowlang/sparrow/internal/parser"
	"github.com/sparrowlang/sparrow/internal/resolve"
)

func runProgram(t *testing.T, source string) (string, error) {
	t.Helper()
	tokens, scanErrs := lexer.New(source).Scan()
	require.Empty(t, scanErrs)
	p := parser.New(tokens)
	stmts := p.ParseProgram()
	require.False(t, p.HadError())
	r := resolve.New()
	locals := r.Resolve(stmts)
	require.False(t, r.HadError())

	in := interp.New()
	var out bytes.Buffer
	in.Stdout = &out
	err := in.Run(stmts, locals)
	return out.String(), err
}

func evalExpr(t *testing.T, source string) (interp.Value, error) {
	t.Helper()
	tokens, scanErrs := lexer.New(source).Scan()
	require.Empty(t, scanErrs)
	p := parser.New(tokens)
	expr := p.ParseExpression()
	require.False(t, p.HadError())
	in := interp.New()
	return in.EvaluateExpr(expr)
}

func TestRunPrintAndArithmetic(t *testing.T) {
	out, err := runProgram(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestRunClosureCapturesEnvironment(t *testing.T) {
	out, err := runProgram(t, `
		fun makeCounter() {
			var i = 0;
			fun counter() {
				i = i + 1;
				print i;
			}
			return counter;
		}
		var counter = makeCounter();
		counter();
		counter();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestRunWhileLoopAndBlockScoping(t *testing.T) {
	out, err := runProgram(t, `
		var i = 0;
		var sum = 0;
		while (i < 5) {
			sum = sum + i;
			i = i + 1;
		}
		print sum;
	`)
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)
}

func TestRunUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := runProgram(t, `print nope;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'nope'.")
}

func TestRunUndefinedVariableFuzzySuggestion(t *testing.T) {
	_, err := runProgram(t, `
		var undeclared_var = 1;
		print undeclared_vr;
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Did you mean 'undeclared_var'?")
}

func TestEvaluateStringConcatenation(t *testing.T) {
	v, err := evalExpr(t, `"foo" + "bar"`)
	require.NoError(t, err)
	assert.Equal(t, "foobar", v)
}

func TestEvaluateTypeMismatchIsRuntimeError(t *testing.T) {
	_, err := evalExpr(t, `"a" - 1`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Operands must be numbers.")
}

func TestStringifyTrimsTrailingZero(t *testing.T) {
	v, err := evalExpr(t, `1 + 1`)
	require.NoError(t, err)
	assert.Equal(t, "2", interp.Stringify(v))
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, err := runProgram(t, `
		fun add(a, b) { return a + b; }
		add(1);
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 2 arguments but got 1.")
}
