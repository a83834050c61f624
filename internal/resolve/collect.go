package resolve

import (
	"stelaro/internal/ast"
	"stelaro/internal/defs"
	"stelaro/internal/diag"
)

// DefCollector is Phase A, part one: walk the AST once, calling
// CreateDef for every item (a function goes in ValueNS, a module in
// TypeNS) and recording the AST NodeId -> LocalDefId mapping that
// lowering later consumes to build owner scopes.
type DefCollector struct {
	dcx       diag.DiagCtxtHandle
	table     *defs.DefPathTable
	NodeToDef map[ast.NodeId]defs.LocalDefId
}

// NewDefCollector creates a collector backed by table.
func NewDefCollector(dcx diag.DiagCtxtHandle, table *defs.DefPathTable) *DefCollector {
	return &DefCollector{
		dcx:       dcx,
		table:     table,
		NodeToDef: make(map[ast.NodeId]defs.LocalDefId),
	}
}

// Collect walks stelo's items (and recursively, inline module contents),
// creating one definition per item under parent (defs.SteloRootIndex for
// the stelo's own top-level items).
func (c *DefCollector) Collect(stelo *ast.Stelo) {
	c.NodeToDef[stelo.Id] = defs.SteloRootDef
	c.collectItems(stelo.Items, defs.DefIndex(defs.SteloRootDef))
}

func (c *DefCollector) collectItems(items []*ast.Item, parent defs.DefIndex) {
	for _, item := range items {
		switch item.Kind {
		case ast.ItemFunction:
			id := c.table.CreateDef(c.dcx, item.Span, parent, defs.NewValueNsData(item.Ident))
			c.NodeToDef[item.Id] = id
		case ast.ItemMod:
			id := c.table.CreateDef(c.dcx, item.Span, parent, defs.NewTypeNsData(item.Ident))
			c.NodeToDef[item.Id] = id
			c.collectItems(item.Items, defs.DefIndex(id))
		}
	}
}
