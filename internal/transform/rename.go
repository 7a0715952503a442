package transform

import (
	"sort"

	"veil/internal/ast"
	"veil/internal/pipeline"
	"veil/internal/rng"
)

// reservedNames are identifiers that carry runtime meaning and must keep
// their spelling even when they appear in binding position.
var reservedNames = map[string]struct{}{
	"arguments": {},
	"eval":      {},
	"undefined": {},
}

// IdentifierRenamer replaces every program-declared name with a fresh hex
// name. Names listed in the preserve set, reserved runtime names, and
// references to bindings the program never declares (globals like console)
// keep their original spelling. A declared name whose spelling also occurs
// as an undeclared reference, such as a parameter shadowing a global, is
// left alone entirely rather than corrupting the global uses.
type IdentifierRenamer struct {
	enabled  bool
	gen      *rng.Generator
	state    *State
	preserve []string
}

func (t *IdentifierRenamer) Name() string { return "identifier-renamer" }

func (t *IdentifierRenamer) Stages() pipeline.StageSet {
	return pipeline.NewStageSet(pipeline.StageObfuscating)
}

func (t *IdentifierRenamer) Apply(prog *ast.Program) (*ast.Program, error) {
	if !t.enabled {
		return prog, nil
	}

	keep := make(map[string]struct{}, len(t.preserve))
	for _, name := range t.preserve {
		keep[name] = struct{}{}
	}

	declared := CollectDeclared(prog)
	free := CollectFreeNames(prog)

	// Fresh names are drawn in sorted order so the same seed yields the
	// same mapping on every run.
	names := make([]string, 0, len(declared))
	for name := range declared {
		names = append(names, name)
	}
	sort.Strings(names)

	renames := make(map[string]string, len(names))
	for _, name := range names {
		if _, ok := keep[name]; ok {
			continue
		}
		if _, ok := reservedNames[name]; ok {
			continue
		}
		// A declared spelling that also occurs as an unresolved reference
		// is a local shadowing a global; the flat rename map cannot tell
		// the two apart, so the spelling stays.
		if _, ok := free[name]; ok {
			continue
		}
		renames[name] = t.state.freshName(t.gen)
	}
	if len(renames) == 0 {
		return prog, nil
	}

	rename := func(id *ast.Ident) {
		if to, ok := renames[id.Name]; ok {
			id.Name = to
		}
	}

	// Binding positions first: declarator names, function names, parameters.
	ast.Walk(prog, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.VarDecl:
			for _, d := range v.Decls {
				rename(d.Name)
			}
		case *ast.FuncDecl:
			rename(v.Name)
			for _, p := range v.Params {
				rename(p)
			}
		case *ast.FuncLit:
			if v.Name != nil {
				rename(v.Name)
			}
			for _, p := range v.Params {
				rename(p)
			}
		}
		return true
	})

	// Then every identifier in value position.
	ast.RewriteExprs(prog, func(e ast.Expr) ast.Expr {
		if id, ok := e.(*ast.Ident); ok {
			rename(id)
		}
		return e
	})
	return prog, nil
}
