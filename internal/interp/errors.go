package interp

import (
	"github.com/sparrowlang/sparrow/internal/diagnostics"
	"github.com/sparrowlang/sparrow/internal/token"
)

// RuntimeError is a spec.md §4.4.4 runtime error: raised mid-evaluation,
// propagated up through the call stack (unwinding environments), caught at
// the program's top, and rendered as "MSG\n[line N]".
type RuntimeError struct {
	Token      token.Token
	Message    string
	Suggestion string // set by the undefined-variable suggestion feature
}

func (e *RuntimeError) Error() string {
	msg := e.Message
	if e.Suggestion != "" {
		msg += " " + e.Suggestion
	}
	return diagnostics.FormatRuntime(e.Token.Line, msg)
}

// controlReturn is the non-error control-flow signal a `return` statement
// raises (spec.md §9: "do not conflate with runtime errors"). It satisfies
// the error interface purely so it can travel through the same (Value,
// error) / error return channel that statement execution already uses;
// Function.Call is the only place that ever inspects one.
type controlReturn struct {
	value Value
}

func (c *controlReturn) Error() string { return "return" }
