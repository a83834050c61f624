package sir

import (
	"stelaro/internal/ast"
	"stelaro/internal/source"
	"stelaro/internal/symbol"
)

// NodeKind discriminates the form a node takes within its owner's dense
// local-id region. Only the fields relevant to Kind are populated, the
// same convention the AST's own node shapes use.
type NodeKind uint8

const (
	// NodeOwner is always at local id Zero: the function or module this
	// region belongs to.
	NodeOwner NodeKind = iota
	// NodeParam is a function parameter, bound (HasIdent) or `_`.
	NodeParam
	NodeExprCall
	NodeExprIf
	NodeExprBlock
	NodeExprBinary
	NodeExprUnary
	NodeExprLit
	NodeExprReturn
	NodeExprParen
	NodeExprAssign
	NodeExprPath
	NodeStmtLet
	NodeStmtSemi
	NodeStmtWhile
	NodeStmtReturn
)

// IntrinsicKind names a compiler-provided callee a NodeExprCall may
// invoke instead of a user-defined function. `print e;` has no dedicated
// statement kind: it lowers to a call of IntrinsicPrint.
type IntrinsicKind uint8

const (
	// IntrinsicNone means the call's Callee is a real lowered expression.
	IntrinsicNone IntrinsicKind = iota
	IntrinsicPrint
)

// Node is one entry of an owner's node region.
type Node struct {
	Span source.Span
	Kind NodeKind

	// Owner: Ident names the function or module; Params holds the
	// function's parameter list in order (empty for a module owner).
	Ident  symbol.Symbol
	Params []ItemLocalId

	// Param: HasIdent is false for the wildcard `_` parameter. Ty is the
	// parameter's declared type.
	HasIdent bool
	Ty       *Type

	// Call: Callee is MaxItemLocalId when Intrinsic != IntrinsicNone
	// (the callee is compiler-provided, not a lowered expression).
	Callee    ItemLocalId
	Args      []ItemLocalId
	Intrinsic IntrinsicKind

	// If / StmtWhile share Cond; If additionally uses Then/Else.
	Cond ItemLocalId
	Then ItemLocalId
	Else ItemLocalId // MaxItemLocalId when there is no `else`

	// Block
	Stmts []ItemLocalId
	Tail  ItemLocalId // MaxItemLocalId when the block ends in a statement

	// Binary
	Op  ast.BinaryOp
	Lhs ItemLocalId
	Rhs ItemLocalId

	// Unary
	UnOp    ast.UnaryOp
	Operand ItemLocalId

	// Lit: the literal's semantic value, decoded from its token spelling
	// during lowering.
	LitKind   ast.LitKind
	LitInt    int64
	LitFloat  float64
	LitBool   bool
	LitString symbol.Symbol

	// Return / StmtReturn / StmtSemi: the wrapped expression.
	// MaxItemLocalId where optional and absent.
	Value ItemLocalId

	// Paren
	Inner ItemLocalId

	// Assign
	Target ItemLocalId
	RHS    ItemLocalId

	// Path: ExprPath and a type's TypePath both carry one, but a Type's
	// own Path lives on the Type value referenced from Ty, not here.
	Path *Path

	// StmtLet: Ty above is the optional annotation; Init is
	// MaxItemLocalId when the `let` has no initializer. The bound pattern
	// itself is recorded the same way a parameter is, via HasIdent/Ident.
	Init ItemLocalId

	// StmtWhile
	Body ItemLocalId
}

// ParentedNode pairs a node with the local id of its parent within the
// same owner, giving O(1) parent lookups inside an owner's region.
type ParentedNode struct {
	Node   Node
	Parent ItemLocalId
}
