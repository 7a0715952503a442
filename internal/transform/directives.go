package transform

import (
	"veil/internal/ast"
	"veil/internal/pipeline"
)

// DirectivePlacer hoists directive-prologue statements ("use strict" and
// friends) to the front of the program and of every function body, keeping
// their relative order, so later passes can treat statement lists uniformly.
type DirectivePlacer struct{}

func (t *DirectivePlacer) Name() string { return "directive-placer" }

func (t *DirectivePlacer) Stages() pipeline.StageSet {
	return pipeline.NewStageSet(pipeline.StagePreparing)
}

func (t *DirectivePlacer) Apply(prog *ast.Program) (*ast.Program, error) {
	prog.Body = hoistDirectives(prog.Body)
	ast.Walk(prog, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.FuncDecl:
			v.Body.Body = hoistDirectives(v.Body.Body)
		case *ast.FuncLit:
			if v.Body != nil {
				v.Body.Body = hoistDirectives(v.Body.Body)
			}
		}
		return true
	})
	return prog, nil
}

func hoistDirectives(body []ast.Stmt) []ast.Stmt {
	var directives, rest []ast.Stmt
	for _, s := range body {
		if es, ok := s.(*ast.ExprStmt); ok && es.Directive != "" {
			directives = append(directives, s)
			continue
		}
		rest = append(rest, s)
	}
	if len(directives) == 0 {
		return body
	}
	return append(directives, rest...)
}
