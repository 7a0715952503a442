package transform

import (
	"veil/internal/ast"
	"veil/internal/codegen"
	"veil/internal/pipeline"
)

// MemberIndexer converts dot property access into computed bracket access
// with a string key, so a later encoding pass can obscure the property name
// the same way it obscures ordinary string literals.
type MemberIndexer struct{}

func (t *MemberIndexer) Name() string { return "member-indexer" }

func (t *MemberIndexer) Stages() pipeline.StageSet {
	return pipeline.NewStageSet(pipeline.StageConverting)
}

func (t *MemberIndexer) Apply(prog *ast.Program) (*ast.Program, error) {
	ast.RewriteExprs(prog, func(e ast.Expr) ast.Expr {
		m, ok := e.(*ast.Member)
		if !ok || m.Computed {
			return e
		}
		id, ok := m.Prop.(*ast.Ident)
		if !ok {
			return e
		}
		m.Computed = true
		m.Prop = &ast.String{Value: id.Name, Raw: codegen.Quote(id.Name), Loc: id.Loc}
		return m
	})
	return prog, nil
}
