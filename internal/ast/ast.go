// Package ast defines the expression and statement node kinds produced by
// internal/parser and walked by internal/resolve and internal/interp.
//
// Nodes are handle-identified rather than pointer-identified: every
// expression that the resolver can bind (Variable, Assign) carries a stable
// Handle assigned at construction time, and the resolver's side-table is
// keyed by that Handle. This is grounded on the arena/handle-indexed IR
// style found elsewhere in the example pack (gogpu/naga's
// ir.ExpressionHandle, resolved by array index rather than by pointer) —
// the teacher's own AST is a conventional pointer tree, but a stable
// integer key survives copies and re-serialization better than a pointer
// does, and keeps the resolver's side-table a plain, comparable map.
package ast

import "github.com/sparrowlang/sparrow/internal/token"

// Handle identifies one resolvable expression node (a Variable or an
// Assign) within a single parse. Zero is never issued by Handles.Next.
type Handle int

// Handles hands out unique, increasing Handle values for one parse. A
// *parser.Parser owns exactly one Handles and allocates from it as nodes
// are constructed.
type Handles struct {
	next Handle
}

// Next returns a fresh Handle.
func (h *Handles) Next() Handle {
	h.next++
	return h.next
}

// Expr is the sum type of expression nodes.
type Expr interface {
	exprNode()
}

// Literal is a constant value baked into the source: a number, string,
// boolean, or nil.
type Literal struct {
	Value any
}

func (*Literal) exprNode() {}

// Unary is a prefix operator applied to one operand ("-x", "!x").
type Unary struct {
	Op      token.Token
	Operand Expr
}

func (*Unary) exprNode() {}

// Binary is an infix arithmetic/comparison/equality operator. Distinct
// from Logical because Binary always evaluates both operands.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Binary) exprNode() {}

// Grouping is a parenthesized sub-expression, kept as its own node so that
// the parenthesized-tree printer (the `parse` pipeline) can render it.
type Grouping struct {
	Inner Expr
}

func (*Grouping) exprNode() {}

// Variable is a read of a named binding. H is the resolver's lookup key.
type Variable struct {
	H    Handle
	Name token.Token
}

func (*Variable) exprNode() {}

// Assign writes a new value to an existing named binding. H is the
// resolver's lookup key, distinct from any Variable node's handle.
type Assign struct {
	H     Handle
	Name  token.Token
	Value Expr
}

func (*Assign) exprNode() {}

// Logical is "and"/"or"; unlike Binary it may short-circuit and skip
// evaluating Right.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Logical) exprNode() {}

// Call invokes Callee with Args. Paren is the closing ")" token, used to
// attribute call-site runtime errors (arity mismatch, non-callable) to a
// line.
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (*Call) exprNode() {}

// Stmt is the sum type of statement nodes.
type Stmt interface {
	stmtNode()
}

// ExprStmt evaluates Expr and discards the result.
type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

// Print evaluates Expr, stringifies it, and emits one line of output.
type Print struct {
	Expr Expr
}

func (*Print) stmtNode() {}

// Var declares Name in the current scope, optionally initialized by Init.
// Init is nil when the declaration has no initializer ("var x;").
type Var struct {
	Name token.Token
	Init Expr
}

func (*Var) stmtNode() {}

// Block introduces a nested lexical scope around Stmts.
type Block struct {
	Stmts []Stmt
}

func (*Block) stmtNode() {}

// If is a conditional. Else is nil when there is no else-branch.
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

func (*If) stmtNode() {}

// While repeats Body while Cond is truthy.
type While struct {
	Cond Expr
	Body Stmt
}

func (*While) stmtNode() {}

// Function is a function declaration: a name, its parameter list, and its
// body. Executing it creates a closure over the current environment.
type Function struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (*Function) stmtNode() {}

// Return unwinds to the enclosing function call with Value (nil means the
// function returns the Language's nil).
type Return struct {
	Keyword token.Token
	Value   Expr
}

func (*Return) stmtNode() {}
