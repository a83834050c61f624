package ast

import (
	"stelaro/internal/source"
	"stelaro/internal/symbol"
)

// ExprKind discriminates the forms an expression can take.
type ExprKind uint8

const (
	ExprCall ExprKind = iota
	ExprIf
	ExprBlock
	ExprBinary
	ExprUnary
	ExprLit
	ExprReturn
	ExprParen
	ExprAssign
	ExprAssignOp
	ExprPath
)

// BinaryOp is the operator of a Binary expression.
type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinEq
	BinNotEq
	BinLt
	BinLtEq
	BinGt
	BinGtEq
	BinAnd
	BinOr
)

// UnaryOp is the operator of a Unary expression.
type UnaryOp uint8

const (
	// UnNeg is arithmetic negation, `-x`.
	UnNeg UnaryOp = iota
	// UnNot is logical negation, `!x`.
	UnNot
)

// LitKind discriminates the literal forms a Lit expression stores.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitBool
	LitString
	LitNull
)

// Expr is an expression node. Only the fields relevant to Kind are
// populated; the rest stay zero.
type Expr struct {
	Id   NodeId
	Span source.Span
	Kind ExprKind

	// Call: `Callee(Args...)`.
	Callee *Expr
	Args   []*Expr

	// If: `if Cond Then [else Else]`. Then is always an ExprBlock; Else is
	// either an ExprBlock or a nested ExprIf (a chained `else if`), or nil.
	Cond *Expr
	Then *Expr
	Else *Expr

	// Block: `{ Stmts...; Tail? }`. Tail is the block's trailing
	// expression-without-semicolon, or nil if the block ends in a
	// statement.
	Stmts []Stmt
	Tail  *Expr

	// Binary: `Lhs Op Rhs`.
	Op  BinaryOp
	Lhs *Expr
	Rhs *Expr

	// Unary: `UnOp Operand`.
	UnOp    UnaryOp
	Operand *Expr

	// Lit: a literal token's decoded kind and its interned source spelling.
	LitKind LitKind
	Lit     symbol.Symbol

	// Return: `return Value?`. Value is nil for a bare `return;`.
	Value *Expr

	// Paren: `(Inner)`.
	Inner *Expr

	// Assign: `Target = RHS`. AssignOp: `Target Op= RHS`, where Op names
	// the implied binary operator (e.g. BinAdd for `+=`).
	Target *Expr
	RHS    *Expr

	// Path: a name reference, e.g. `foo` or `mod::foo`.
	Path *Path
}
