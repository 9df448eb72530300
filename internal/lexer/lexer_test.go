package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparrowlang/sparrow/internal/lexer"
	"github.com/sparrowlang/sparrow/internal/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	tokens, errs := lexer.New("(){}, .+-;*!=<===>=").Scan()
	require.Empty(t, errs)
	require.NotEmpty(t, tokens)
	assert.Equal(t, token.EOF, tokens[len(tokens)-1].Kind)
}

func TestScanNumberLiteral(t *testing.T) {
	tokens, errs := lexer.New("123.45;").Scan()
	require.Empty(t, errs)
	require.Len(t, tokens, 3)
	assert.Equal(t, token.Number, tokens[0].Kind)
	assert.Equal(t, 123.45, tokens[0].Literal)
}

func TestScanStringLiteral(t *testing.T) {
	tokens, errs := lexer.New(`"hello world"`).Scan()
	require.Empty(t, errs)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanIdentifierVsKeyword(t *testing.T) {
	tokens, errs := lexer.New("foo var").Scan()
	require.Empty(t, errs)
	require.Len(t, tokens, 3)
	assert.Equal(t, token.Identifier, tokens[0].Kind)
	assert.Equal(t, token.Var, tokens[1].Kind)
}

func TestScanUnterminatedStringReportsCurrentLine(t *testing.T) {
	// The string spans three lines before EOF; the error must be reported
	// at the line where scanning actually stopped, not where it began.
	tokens, errs := lexer.New("\"abc\ndef\nghi").Scan()
	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Line)
	assert.Contains(t, errs[0].Error(), "Unterminated string.")
	assert.Equal(t, token.EOF, tokens[len(tokens)-1].Kind)
}

func TestScanUnexpectedCharacter(t *testing.T) {
	_, errs := lexer.New("@").Scan()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Unexpected character: @")
}

func TestScanLineTracking(t *testing.T) {
	tokens, errs := lexer.New("var a = 1;\nvar b = 2;").Scan()
	require.Empty(t, errs)
	var secondVarLine int
	for i, tok := range tokens {
		if tok.Kind == token.Var && i > 0 {
			secondVarLine = tok.Line
		}
	}
	assert.Equal(t, 2, secondVarLine)
}
