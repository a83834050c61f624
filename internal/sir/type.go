package sir

import "stelaro/internal/ast"

// TypeKind reuses the AST's own discriminant: lowering a type annotation
// never changes what form it takes, only how its path is addressed.
type TypeKind = ast.TypeKind

// Type is a lowered type annotation.
type Type struct {
	Id   SirId
	Kind TypeKind

	// Path is valid when Kind == ast.TypePath.
	Path *Path
}
