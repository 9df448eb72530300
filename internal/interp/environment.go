package interp

import (
	"fmt"

	"github.com/sparrowlang/sparrow/internal/token"
)

// Environment is a single scope frame: a name→Value mapping plus an
// optional enclosing frame, per spec.md §3. Lookup and assign walk the
// chain outward; Define is always confined to the receiver frame.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment constructs a frame whose parent is enclosing (nil for the
// single global environment).
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]Value), enclosing: enclosing}
}

// Define binds name to value in this frame, shadowing any binding of the
// same name in an enclosing frame.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get looks up name, walking outward through enclosing frames.
func (e *Environment) Get(name token.Token) (Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}

// GetAt looks up name exactly distance hops out from this frame. The
// resolver guarantees the binding exists there (testable property in
// spec.md §8: "Resolver-evaluator agreement").
func (e *Environment) GetAt(distance int, name string) Value {
	return e.ancestor(distance).values[name]
}

// Assign rebinds name to value, walking outward through enclosing frames;
// unlike Define it never creates a new binding.
func (e *Environment) Assign(name token.Token, value Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}

// AssignAt rebinds name exactly distance hops out from this frame.
func (e *Environment) AssignAt(distance int, name token.Token, value Value) {
	e.ancestor(distance).values[name.Lexeme] = value
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// names returns every binding visible in this frame only (not enclosing
// frames), used by the undefined-variable suggestion feature.
func (e *Environment) names() []string {
	names := make([]string, 0, len(e.values))
	for k := range e.values {
		names = append(names, k)
	}
	return names
}
