package resolve

import (
	"stelaro/internal/ast"
	"stelaro/internal/defs"
	"stelaro/internal/diag"
)

// Result is everything downstream lowering needs out of resolution: the
// definition table built during Phase A, the NodeId -> LocalDefId map
// DefCollector recorded, and the per-path Res table LateResolutionVisitor
// recorded.
type Result struct {
	Table     *defs.DefPathTable
	NodeToDef map[ast.NodeId]defs.LocalDefId
	Modules   Modules
	PathRes   map[ast.NodeId]Res
}

// Resolve runs both phases over stelo: definition collection and
// module-graph build (Phase A), then late resolution of every path and
// pattern (Phase B).
func Resolve(dcx diag.DiagCtxtHandle, steloName string, stelo *ast.Stelo) Result {
	table := defs.NewDefPathTable(defs.NewStableSteloId(steloName))

	collector := NewDefCollector(dcx, table)
	collector.Collect(stelo)

	graph := NewModuleGraphBuilder(dcx, collector)
	root := graph.Build(stelo)

	late := NewLateResolutionVisitor(dcx, graph.Modules, root)
	late.Resolve(stelo)

	return Result{
		Table:     table,
		NodeToDef: collector.NodeToDef,
		Modules:   graph.Modules,
		PathRes:   late.PathRes,
	}
}
