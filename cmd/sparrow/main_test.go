package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparrowlang/sparrow/internal/diagnostics"
	"github.com/sparrowlang/sparrow/internal/token"
)

func writeTempSource(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.sp")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunTokenizeExitCodes(t *testing.T) {
	var buf bytes.Buffer
	sink := diagnostics.NewSink(&buf, false)

	ok := writeTempSource(t, "var a = 1;")
	assert.Equal(t, 0, runTokenize(ok, sink, false, false))

	bad := writeTempSource(t, "@")
	assert.Equal(t, 65, runTokenize(bad, sink, false, false))
}

func TestRunTokenizeWritesDebugSnapshot(t *testing.T) {
	var buf bytes.Buffer
	sink := diagnostics.NewSink(&buf, false)

	path := writeTempSource(t, "1 + 2;")
	assert.Equal(t, 0, runTokenize(path, sink, true, false))

	data, err := os.ReadFile(path + ".snap")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Contains(t, buf.String(), "source=")
}

func TestRunParseExitCodes(t *testing.T) {
	var buf bytes.Buffer
	sink := diagnostics.NewSink(&buf, false)

	ok := writeTempSource(t, "1 + 2")
	assert.Equal(t, 0, runParse(ok, sink, false, false))

	bad := writeTempSource(t, "(1 + 2")
	assert.Equal(t, 65, runParse(bad, sink, false, false))
}

func TestRunEvaluateExitCodes(t *testing.T) {
	var buf bytes.Buffer
	sink := diagnostics.NewSink(&buf, false)

	ok := writeTempSource(t, "1 + 2")
	assert.Equal(t, 0, runEvaluate(ok, sink))

	runtimeErr := writeTempSource(t, `"a" - 1`)
	assert.Equal(t, 70, runEvaluate(runtimeErr, sink))
}

func TestRunRunExitCodes(t *testing.T) {
	var buf bytes.Buffer
	sink := diagnostics.NewSink(&buf, false)

	ok := writeTempSource(t, "print 1 + 2;")
	assert.Equal(t, 0, runRun(ok, sink))

	resolverErr := writeTempSource(t, "{ var a = a; }")
	assert.Equal(t, 65, runRun(resolverErr, sink))

	runtimeErr := writeTempSource(t, "print undefined_name;")
	assert.Equal(t, 70, runRun(runtimeErr, sink))
}

func TestCheckMinVersionRejectsMalformedVersion(t *testing.T) {
	var buf bytes.Buffer
	sink := diagnostics.NewSink(&buf, false)

	code, ok := checkMinVersion("not-a-version", sink)
	assert.False(t, ok)
	assert.Equal(t, 1, code)
}

func TestCheckMinVersionAcceptsLowFloor(t *testing.T) {
	var buf bytes.Buffer
	sink := diagnostics.NewSink(&buf, false)

	_, ok := checkMinVersion("v0.0.1", sink)
	assert.True(t, ok)
}

func TestCheckMinVersionRejectsHigherThanBinary(t *testing.T) {
	var buf bytes.Buffer
	sink := diagnostics.NewSink(&buf, false)

	code, ok := checkMinVersion("v99.0.0", sink)
	assert.False(t, ok)
	assert.Equal(t, 1, code)
}

func TestFormatTokenizeLineShapes(t *testing.T) {
	num := token.Token{Kind: token.Number, Lexeme: "1", Literal: 1.0, Line: 1}
	assert.Equal(t, "NUMBER 1 1.0", formatTokenizeLine(num))

	str := token.Token{Kind: token.String, Lexeme: `"hi"`, Literal: "hi", Line: 1}
	assert.Equal(t, "STRING \"hi\" hi", formatTokenizeLine(str))

	eof := token.Token{Kind: token.EOF, Lexeme: "", Literal: nil, Line: 1}
	assert.Equal(t, "EOF  null", formatTokenizeLine(eof))
}
