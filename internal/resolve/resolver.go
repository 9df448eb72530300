// Package resolve implements the static resolver from spec.md §4.3: a
// single pass over the statement list that records, for every Variable or
// Assign node, how many enclosing scopes separate it from its binding (an
// entry absent from the table means "look it up in the global
// environment at evaluation time").
//
// The scope stack's two-phase declare/define bookkeeping is grounded on the
// teacher's scope-tracking pattern in runtime/parser/validation.go; keying
// the side-table by ast.Handle rather than by pointer is grounded on
// gogpu/naga's handle-indexed resolution (ir.ResolveExpressionType), see
// internal/ast's doc comment.
package resolve

import (
	"github.com/sparrowlang/sparrow/internal/ast"
	"github.com/sparrowlang/sparrow/internal/diagnostics"
	"github.com/sparrowlang/sparrow/internal/token"
)

// Error is a resolver diagnostic attributed to a token, rendered with the
// same "[line N] Error at '...': MSG" shape the parser uses (spec.md §6.6
// groups parser and resolver diagnostics together).
type Error struct {
	Token   token.Token
	Message string
}

func (e *Error) Error() string {
	return diagnostics.FormatAt(e.Token, e.Message)
}

type varState int

const (
	declared varState = iota
	defined
)

type functionType int

const (
	noFunction functionType = iota
	inFunction
)

// Resolver walks a statement list once, producing a side-table from
// ast.Handle to scope distance.
type Resolver struct {
	scopes          []map[string]varState
	sideTable       map[ast.Handle]int
	currentFunction functionType
	errors          []*Error
}

// New constructs an empty Resolver.
func New() *Resolver {
	return &Resolver{sideTable: make(map[ast.Handle]int)}
}

// Resolve runs the resolver over stmts and returns the completed
// side-table. Call Errors/HadError afterward to check for scope errors.
func (r *Resolver) Resolve(stmts []ast.Stmt) map[ast.Handle]int {
	r.resolveStmts(stmts)
	return r.sideTable
}

// Errors returns every resolver diagnostic recorded so far.
func (r *Resolver) Errors() []*Error {
	return r.errors
}

// HadError reports whether any resolver error has been recorded.
func (r *Resolver) HadError() bool {
	return len(r.errors) > 0
}

func (r *Resolver) report(tok token.Token, message string) {
	r.errors = append(r.errors, &Error{Token: tok, Message: message})
}

// ---- scope stack --------------------------------------------------------

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]varState))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks name as present-but-not-yet-initialized in the innermost
// scope. A no-op at the top level, matching spec.md §4.3: "declare(name) in
// empty stack is a no-op (top level is global, resolved dynamically)."
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name.Lexeme]; exists {
		r.report(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = declared
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = defined
}

// resolveLocal walks the scope stack top-down and, on the first match,
// records the distance between the innermost scope and the one holding
// name.
func (r *Resolver) resolveLocal(handle ast.Handle, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.sideTable[handle] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: leave absent from the side-table, meaning
	// "global" per spec.md §3.
}

// ---- statements -----------------------------------------------------------

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()
	case *ast.Var:
		r.declare(s.Name)
		if s.Init != nil {
			r.resolveExpr(s.Init)
		}
		r.define(s.Name)
	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s)
	case *ast.ExprStmt:
		r.resolveExpr(s.Expr)
	case *ast.Print:
		r.resolveExpr(s.Expr)
	case *ast.If:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.While:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)
	case *ast.Return:
		// spec.md §9 reserves but does not require a top-level-return check;
		// currentFunction is tracked for that purpose and otherwise unused.
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function) {
	enclosing := r.currentFunction
	r.currentFunction = inFunction
	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
	r.currentFunction = enclosing
}

// ---- expressions ----------------------------------------------------------

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if state, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && state == declared {
				r.report(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e.H, e.Name.Lexeme)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.H, e.Name.Lexeme)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Unary:
		r.resolveExpr(e.Operand)
	case *ast.Grouping:
		r.resolveExpr(e.Inner)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}
	case *ast.Literal:
		// contributes nothing
	}
}
