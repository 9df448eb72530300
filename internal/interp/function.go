package interp

import "github.com/sparrowlang/sparrow/internal/ast"

// Function is the LoxFunction equivalent from spec.md §3: a reference to
// its Function declaration node plus the environment captured at
// declaration time, which is what makes closures work (spec.md §5:
// "Closures may keep an environment alive beyond its syntactic block —
// this is required semantics, not a leak").
type Function struct {
	decl    *ast.Function
	closure *Environment
}

func (f *Function) Arity() int {
	return len(f.decl.Params)
}

// Call builds a fresh environment parented by the closure, binds
// parameters by position, and executes the body. A controlReturn bubbling
// out yields its value; falling off the end yields nil, per spec.md
// §4.4.3 "Function invocation".
func (f *Function) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.decl.Params {
		env.Define(param.Lexeme, args[i])
	}
	err := in.executeBlock(f.decl.Body, env)
	if err == nil {
		return nil, nil
	}
	if ret, ok := err.(*controlReturn); ok {
		return ret.value, nil
	}
	return nil, err
}

func (f *Function) String() string {
	return "<fn " + f.decl.Name.Lexeme + ">"
}
