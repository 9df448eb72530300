// Package debugschema validates the `--json` debug dump against a fixed
// JSON Schema before it is written, so a malformed dump never reaches a
// consumer silently. Grounded on the teacher's core/types/validation.go,
// which compiles a github.com/santhosh-tekuri/jsonschema/v5 Draft2020
// schema with a locked-down loader; that level of sandboxing (remote $ref,
// custom formats) has no use here since the schema is a single embedded
// literal, but the compile-then-Validate shape is kept as-is.
package debugschema

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaJSON describes the shape of a tokenize/parse `--json` debug dump:
// a source digest, the diagnostic list, and a stage-specific payload.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["source", "stage", "diagnostics"],
  "properties": {
    "source": {"type": "string", "pattern": "^[0-9a-f]{64}$"},
    "stage": {"type": "string", "enum": ["tokenize", "parse", "evaluate", "run"]},
    "diagnostics": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["line", "message"],
        "properties": {
          "line": {"type": "integer", "minimum": 0},
          "where": {"type": "string"},
          "message": {"type": "string"}
        }
      }
    },
    "tokens": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["kind", "lexeme", "line"],
        "properties": {
          "kind": {"type": "string"},
          "lexeme": {"type": "string"},
          "line": {"type": "integer", "minimum": 0}
        }
      }
    },
    "ast": {"type": "string"},
    "result": {}
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compile() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		const url = "schema://debugdump.json"
		if err := compiler.AddResource(url, strings.NewReader(schemaJSON)); err != nil {
			compileErr = fmt.Errorf("add debug dump schema resource: %w", err)
			return
		}
		compiled, compileErr = compiler.Compile(url)
	})
	return compiled, compileErr
}

// Validate checks an already-marshaled `--json` debug dump against the
// fixed schema. Callers marshal their dump struct to bytes first so the
// schema sees the exact wire form, not a Go-side approximation of it.
func Validate(dump []byte) error {
	schema, err := compile()
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(dump, &doc); err != nil {
		return fmt.Errorf("debug dump is not valid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("debug dump failed schema validation: %w", err)
	}
	return nil
}

// Diagnostic is one entry of the dump's diagnostics array.
type Diagnostic struct {
	Line    int    `json:"line"`
	Where   string `json:"where,omitempty"`
	Message string `json:"message"`
}

// Dump is the Go-side shape of a `--json` debug dump. Marshal produces the
// wire form and validates it before returning, so a caller can never write
// an out-of-schema dump to stdout.
type Dump struct {
	Source      string       `json:"source"`
	Stage       string       `json:"stage"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	Tokens      []any        `json:"tokens,omitempty"`
	AST         string       `json:"ast,omitempty"`
	Result      any          `json:"result,omitempty"`
}

// Marshal encodes d and validates the result against the fixed schema.
func Marshal(d Dump) ([]byte, error) {
	if d.Diagnostics == nil {
		d.Diagnostics = []Diagnostic{}
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal debug dump: %w", err)
	}
	if err := Validate(data); err != nil {
		return nil, err
	}
	return data, nil
}
