package resolve

import (
	"fmt"

	"stelaro/internal/ast"
	"stelaro/internal/defs"
	"stelaro/internal/diag"
	"stelaro/internal/source"
	"stelaro/internal/symbol"
)

// ModuleGraphBuilder is Phase A, part two: visit items again (now that
// every item has a LocalDefId from DefCollector) and populate each
// module's namespace tables. A name defined twice in the same namespace
// of the same container reports code 300 against the second definition.
type ModuleGraphBuilder struct {
	dcx       diag.DiagCtxtHandle
	collector *DefCollector

	// Modules indexes every module (including the stelo root) by its own
	// LocalDefId, for late resolution to look up by owning definition.
	Modules map[defs.LocalDefId]*ModuleData
}

// NewModuleGraphBuilder creates a builder driven by collector's
// NodeId -> LocalDefId map.
func NewModuleGraphBuilder(dcx diag.DiagCtxtHandle, collector *DefCollector) *ModuleGraphBuilder {
	return &ModuleGraphBuilder{
		dcx:       dcx,
		collector: collector,
		Modules:   make(map[defs.LocalDefId]*ModuleData),
	}
}

// Build populates and returns the stelo root's ModuleData, pre-seeded
// with the built-in ground type names in TypeNS.
func (b *ModuleGraphBuilder) Build(stelo *ast.Stelo) *ModuleData {
	root := NewModuleData(defs.SteloRootDef, nil)
	seedPrimTypes(root)
	b.Modules[defs.SteloRootDef] = root
	b.visitItems(stelo.Items, root)
	return root
}

// seedPrimTypes binds every built-in ground type name into the stelo
// root's TypeNS table, the same way a prelude would, since this
// grammar's lexer does not reserve them as keywords.
func seedPrimTypes(root *ModuleData) {
	for name, prim := range primTyNames {
		root.define(TypeNS, symbol.Intern(name), Res{Kind: ResPrimTy, Prim: prim}, ast.DummyNodeId)
	}
}

func (b *ModuleGraphBuilder) visitItems(items []*ast.Item, container *ModuleData) {
	spans := make(map[ast.NodeId]source.Span, len(items))
	for _, item := range items {
		switch item.Kind {
		case ast.ItemFunction:
			def := b.collector.NodeToDef[item.Id]
			res := Res{Kind: ResDef, DefKind: DefKindFn, Def: def.ToDefId()}
			b.defineOrReport(container, ValueNS, item, res, spans)
		case ast.ItemMod:
			def := b.collector.NodeToDef[item.Id]
			res := Res{Kind: ResDef, DefKind: DefKindMod, Def: def.ToDefId()}
			b.defineOrReport(container, TypeNS, item, res, spans)

			child := NewModuleData(def, container)
			b.Modules[def] = child
			b.visitItems(item.Items, child)
		}
	}
}

func (b *ModuleGraphBuilder) defineOrReport(container *ModuleData, ns Namespace, item *ast.Item, res Res, spans map[ast.NodeId]source.Span) {
	spans[item.Id] = item.Span
	firstAt, ok := container.define(ns, item.Ident, res, item.Id)
	if ok {
		return
	}
	firstSpan, known := spans[firstAt]
	if !known {
		firstSpan = item.Span
	}
	b.dcx.EmitError(diag.SynNameDefinedMultipleTimes, item.Span,
		fmt.Sprintf("the name is defined multiple times in the same %s namespace", ns),
		diag.Note{Span: firstSpan, Msg: "first defined here"})
}
