package ast

import "stelaro/internal/source"

// StmtKind discriminates the forms a statement can take.
type StmtKind uint8

const (
	// StmtLet is `let Pat [: Ty]? = Init;`.
	StmtLet StmtKind = iota
	// StmtSemi is an expression statement with a trailing semicolon. A
	// tail expression with no semicolon is not a Stmt at all: it is held
	// directly by the enclosing Block's Tail field.
	StmtSemi
	// StmtWhile is `while Cond Body`.
	StmtWhile
	// StmtReturn is `return Value?;`.
	StmtReturn
	// StmtPrint is `print Value;`.
	StmtPrint
)

// Local is the binding introduced by a `let` statement.
type Local struct {
	Id   NodeId
	Span source.Span
	Pat  *Pattern
	// Ty is the optional `: Ty` annotation; nil when omitted.
	Ty *Type
	// Init is the optional `= Expr` initializer; nil when omitted.
	Init *Expr
}

// Stmt is a statement node. Only the fields relevant to Kind are populated.
type Stmt struct {
	Id   NodeId
	Span source.Span
	Kind StmtKind

	// Let: the declared local.
	Local *Local

	// Semi: the wrapped expression.
	Expr *Expr

	// While: `while Cond Body`. Body is always an ExprBlock.
	Cond *Expr
	Body *Expr

	// Return: `return Value?;`. Value is nil for a bare `return;`.
	Value *Expr

	// Print: `print Value;`.
	Print *Expr
}
