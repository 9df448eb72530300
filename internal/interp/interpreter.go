package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/sparrowlang/sparrow/internal/ast"
	"github.com/sparrowlang/sparrow/internal/token"
)

// Interpreter holds everything spec.md §4.4 requires: the single global
// environment, the current environment pointer, the resolver's side-table,
// and (via Run/EvaluateExpr's return value) a sticky runtime-error outcome.
type Interpreter struct {
	Globals *Environment
	env     *Environment
	locals  map[ast.Handle]int

	// Stdout is where `print` statements write (spec.md §5: "Print output
	// is the sole means of observable program output"), kept separate from
	// the diagnostics stream a caller wires up around Run/EvaluateExpr.
	Stdout io.Writer
}

// New constructs an Interpreter with a pre-populated global environment
// (just `clock`, per spec.md §4.4) and Stdout defaulted to os.Stdout.
func New() *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", clockFn())
	return &Interpreter{Globals: globals, env: globals, Stdout: os.Stdout}
}

// Run executes a resolved statement list (the `run` pipeline). locals is
// the resolver's side-table; a nil map is treated as "every variable is
// global," so a read of a block or function local then fails as undefined.
func (in *Interpreter) Run(stmts []ast.Stmt, locals map[ast.Handle]int) error {
	in.locals = locals
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// EvaluateExpr evaluates a single expression (the `evaluate` pipeline).
// There is no resolver pass over a bare expression, so every Variable
// resolves dynamically against the global environment — correct, since a
// single top-level expression has no enclosing block scopes to begin with.
func (in *Interpreter) EvaluateExpr(expr ast.Expr) (Value, error) {
	in.locals = nil
	return in.eval(expr)
}

// ---- statements -----------------------------------------------------------

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := in.eval(s.Expr)
		return err

	case *ast.Print:
		value, err := in.eval(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Stdout, Stringify(value))
		return nil

	case *ast.Var:
		var value Value
		if s.Init != nil {
			var err error
			value, err = in.eval(s.Init)
			if err != nil {
				return err
			}
		}
		in.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.Block:
		return in.executeBlock(s.Stmts, NewEnvironment(in.env))

	case *ast.If:
		cond, err := in.eval(s.Cond)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := in.eval(s.Cond)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.Function:
		fn := &Function{decl: s, closure: in.env}
		in.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		var value Value
		if s.Value != nil {
			var err error
			value, err = in.eval(s.Value)
			if err != nil {
				return err
			}
		}
		return &controlReturn{value: value}

	default:
		return nil
	}
}

// executeBlock pushes env, runs stmts in order, and always restores the
// previous environment on the way out — normal return, runtime error, or a
// return-signal unwind alike — per spec.md §4.4.3.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ---- expressions ----------------------------------------------------------

func (in *Interpreter) eval(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return in.eval(e.Inner)

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Variable:
		return in.lookUpVariable(e.Name, e.H)

	case *ast.Assign:
		return in.evalAssign(e)

	case *ast.Call:
		return in.evalCall(e)

	default:
		return nil, nil
	}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := in.eval(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.Minus:
		n, ok := right.(float64)
		if !ok {
			return nil, &RuntimeError{Token: e.Op, Message: "Operand must be a number."}
		}
		return -n, nil
	case token.Bang:
		return !isTruthy(right), nil
	default:
		return nil, nil
	}
}

func (in *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.Minus, token.Slash, token.Star, token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, rn, ok := numberOperands(left, right)
		if !ok {
			return nil, &RuntimeError{Token: e.Op, Message: "Operands must be numbers."}
		}
		switch e.Op.Kind {
		case token.Minus:
			return ln - rn, nil
		case token.Slash:
			return ln / rn, nil
		case token.Star:
			return ln * rn, nil
		case token.Greater:
			return ln > rn, nil
		case token.GreaterEqual:
			return ln >= rn, nil
		case token.Less:
			return ln < rn, nil
		default: // LessEqual
			return ln <= rn, nil
		}

	case token.Plus:
		if ln, rn, ok := numberOperands(left, right); ok {
			return ln + rn, nil
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, &RuntimeError{Token: e.Op, Message: "Operands must be two numbers or two strings."}

	case token.BangEqual:
		return !isEqual(left, right), nil
	case token.EqualEqual:
		return isEqual(left, right), nil

	default:
		return nil, nil
	}
}

func numberOperands(left, right Value) (float64, float64, bool) {
	ln, ok := left.(float64)
	if !ok {
		return 0, 0, false
	}
	rn, ok := right.(float64)
	if !ok {
		return 0, 0, false
	}
	return ln, rn, true
}

func (in *Interpreter) evalLogical(e *ast.Logical) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.Or {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return in.eval(e.Right)
}

func (in *Interpreter) lookUpVariable(name token.Token, handle ast.Handle) (Value, error) {
	if distance, ok := in.locals[handle]; ok {
		return in.env.GetAt(distance, name.Lexeme), nil
	}
	value, err := in.Globals.Get(name)
	if err != nil {
		return nil, in.decorateUndefined(err, name.Lexeme)
	}
	return value, nil
}

func (in *Interpreter) evalAssign(e *ast.Assign) (Value, error) {
	value, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := in.locals[e.H]; ok {
		in.env.AssignAt(distance, e.Name, value)
		return value, nil
	}
	if err := in.Globals.Assign(e.Name, value); err != nil {
		return nil, in.decorateUndefined(err, e.Name.Lexeme)
	}
	return value, nil
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(e.Args))
	for _, argExpr := range e.Args {
		arg, err := in.eval(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{Token: e.Paren, Message: "Can only call functions and classes."}
	}
	if len(args) != fn.Arity() {
		return nil, &RuntimeError{
			Token:   e.Paren,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)),
		}
	}
	return fn.Call(in, args)
}
