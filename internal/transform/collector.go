package transform

import (
	"veil/internal/ast"
	"veil/internal/pipeline"
)

// ScopeCollector records every declared name into the shared state. It runs
// twice: during preparing to seed the name table for injection passes, and
// during finalizing to refresh the table against the rewritten tree so the
// recorded bindings describe the program that is actually generated.
type ScopeCollector struct {
	state *State
}

func (t *ScopeCollector) Name() string { return "scope-collector" }

func (t *ScopeCollector) Stages() pipeline.StageSet {
	return pipeline.NewStageSet(pipeline.StagePreparing, pipeline.StageFinalizing)
}

func (t *ScopeCollector) Apply(prog *ast.Program) (*ast.Program, error) {
	t.state.Declared = make(map[string]struct{})
	for name := range CollectDeclared(prog) {
		t.state.Claim(name)
	}
	return prog, nil
}

// CollectFreeNames returns every spelling that occurs as a reference no
// enclosing declaration resolves. A spelling can be both declared and free
// when a local shadows a global of the same name used elsewhere.
func CollectFreeNames(prog *ast.Program) map[string]struct{} {
	free := make(map[string]struct{})
	scope := &scopeChain{names: hoistedDecls(prog.Body)}
	for _, s := range prog.Body {
		scanFree(s, scope, free)
	}
	return free
}

// scopeChain is one function scope in a lexical chain.
type scopeChain struct {
	parent *scopeChain
	names  map[string]struct{}
}

func (s *scopeChain) resolves(name string) bool {
	for sc := s; sc != nil; sc = sc.parent {
		if _, ok := sc.names[name]; ok {
			return true
		}
	}
	return false
}

// hoistedDecls gathers names declared directly in one function scope: var
// declarators and function declarations at any statement depth, without
// crossing into nested function bodies.
func hoistedDecls(stmts []ast.Stmt) map[string]struct{} {
	out := make(map[string]struct{})
	for _, s := range stmts {
		ast.Walk(s, func(n ast.Node) bool {
			switch v := n.(type) {
			case *ast.VarDecl:
				for _, d := range v.Decls {
					out[d.Name.Name] = struct{}{}
				}
			case *ast.FuncDecl:
				out[v.Name.Name] = struct{}{}
				return false
			case *ast.FuncLit:
				return false
			}
			return true
		})
	}
	return out
}

func funcScope(parent *scopeChain, self *ast.Ident, params []*ast.Ident, body *ast.BlockStmt) *scopeChain {
	names := make(map[string]struct{})
	if body != nil {
		names = hoistedDecls(body.Body)
	}
	if self != nil {
		names[self.Name] = struct{}{}
	}
	for _, p := range params {
		names[p.Name] = struct{}{}
	}
	return &scopeChain{parent: parent, names: names}
}

// scanFree records unresolved identifier references under n. Binding
// positions and non-computed property names are not references.
func scanFree(n ast.Node, scope *scopeChain, free map[string]struct{}) {
	ast.Walk(n, func(m ast.Node) bool {
		switch v := m.(type) {
		case *ast.Ident:
			if !scope.resolves(v.Name) {
				free[v.Name] = struct{}{}
			}
		case *ast.Member:
			scanFree(v.Obj, scope, free)
			if v.Computed {
				scanFree(v.Prop, scope, free)
			}
			return false
		case *ast.Object:
			for _, p := range v.Props {
				if p.Computed {
					scanFree(p.Key, scope, free)
				}
				scanFree(p.Value, scope, free)
			}
			return false
		case *ast.FuncDecl:
			scanFree(v.Body, funcScope(scope, nil, v.Params, v.Body), free)
			return false
		case *ast.FuncLit:
			inner := funcScope(scope, v.Name, v.Params, v.Body)
			if v.Body != nil {
				scanFree(v.Body, inner, free)
			}
			if v.ExprBody != nil {
				scanFree(v.ExprBody, inner, free)
			}
			return false
		}
		return true
	})
}

// CollectDeclared gathers every name bound by declarations, function names
// and parameters in the tree.
func CollectDeclared(prog *ast.Program) map[string]struct{} {
	out := make(map[string]struct{})
	ast.Walk(prog, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.VarDecl:
			for _, d := range v.Decls {
				out[d.Name.Name] = struct{}{}
			}
		case *ast.FuncDecl:
			out[v.Name.Name] = struct{}{}
			for _, p := range v.Params {
				out[p.Name] = struct{}{}
			}
		case *ast.FuncLit:
			if v.Name != nil {
				out[v.Name.Name] = struct{}{}
			}
			for _, p := range v.Params {
				out[p.Name] = struct{}{}
			}
		}
		return true
	})
	return out
}
