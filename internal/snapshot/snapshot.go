// Package snapshot encodes a token stream to canonical CBOR so `--debug`
// runs can write a byte-stable `.snap` file alongside the source, useful
// for diffing two scans of the same file across interpreter versions.
//
// Grounded on the teacher's core/planfmt/canonical.go: a plain-data mirror
// struct encoded with cbor.CanonicalEncOptions().EncMode(), which produces
// deterministic output independent of map iteration order (tokens have no
// maps, but the pattern — mirror struct plus canonical EncMode — is kept
// for consistency with the rest of the ambient stack and to make byte-for-
// byte comparison meaningful).
package snapshot

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/sparrowlang/sparrow/internal/token"
)

// Token is the CBOR-serializable mirror of token.Token. A separate type
// (rather than tagging token.Token directly) keeps internal/token free of
// any encoding-library import, matching the teacher's practice of never
// letting its core IR types import their own serialization format.
type Token struct {
	Kind    string `cbor:"kind" json:"kind"`
	Lexeme  string `cbor:"lexeme" json:"lexeme"`
	Literal any    `cbor:"literal,omitempty" json:"literal,omitempty"`
	Line    int    `cbor:"line" json:"line"`
}

// FromTokens converts a scanner token stream into its CBOR mirror form.
func FromTokens(tokens []token.Token) []Token {
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		out[i] = Token{Kind: t.Kind.String(), Lexeme: t.Lexeme, Literal: t.Literal, Line: t.Line}
	}
	return out
}

// Encode canonically encodes a token stream snapshot to CBOR.
func Encode(tokens []token.Token) ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("create CBOR encoder: %w", err)
	}
	data, err := encMode.Marshal(FromTokens(tokens))
	if err != nil {
		return nil, fmt.Errorf("CBOR encode token snapshot: %w", err)
	}
	return data, nil
}

// Decode reverses Encode, returning the mirror tokens (not token.Token —
// Kind round-trips as its wire string, matching what a consumer comparing
// two snapshots across runs actually wants).
func Decode(data []byte) ([]Token, error) {
	var tokens []Token
	if err := cbor.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("CBOR decode token snapshot: %w", err)
	}
	return tokens, nil
}
