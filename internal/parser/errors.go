package parser

import (
	"github.com/sparrowlang/sparrow/internal/diagnostics"
	"github.com/sparrowlang/sparrow/internal/token"
)

// Error is a parse-time diagnostic carrying the token where the parser gave
// up, grounded on the teacher's runtime/parser/errors.go ParseError type
// (a message plus the offending token), trimmed to the message shape
// spec.md §6.6 requires instead of that file's Rust-style code snippet.
type Error struct {
	Token   token.Token
	Message string
}

func (e *Error) Error() string {
	return diagnostics.FormatAt(e.Token, e.Message)
}
