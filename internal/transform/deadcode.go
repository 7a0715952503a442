package transform

import (
	"veil/internal/ast"
	"veil/internal/codegen"
	"veil/internal/pipeline"
	"veil/internal/rng"
	"veil/internal/token"
)

// DeadCodeInjector inserts unreachable guarded blocks into statement lists.
// Each injected block is guarded by a comparison of two distinct random
// strings, so the branch can never execute; the injected bodies only have to
// look plausible. Synthesized names are drawn through the shared state so
// they cannot shadow real bindings.
type DeadCodeInjector struct {
	threshold float64
	gen       *rng.Generator
	state     *State
}

func (t *DeadCodeInjector) Name() string { return "dead-code-injector" }

func (t *DeadCodeInjector) Stages() pipeline.StageSet {
	return pipeline.NewStageSet(pipeline.StageDeadCodeInjection)
}

func (t *DeadCodeInjector) Apply(prog *ast.Program) (*ast.Program, error) {
	// Collect targets up front: injecting while walking would offer the
	// freshly injected blocks as targets of their own.
	var targets []*[]ast.Stmt
	ast.Blocks(prog, func(list *[]ast.Stmt) {
		if len(*list) > 0 {
			targets = append(targets, list)
		}
	})

	for _, list := range targets {
		if !t.gen.Chance(t.threshold) {
			continue
		}
		idx := t.pickIndex(*list)
		block := t.deadBlock()
		updated := make([]ast.Stmt, 0, len(*list)+1)
		updated = append(updated, (*list)[:idx]...)
		updated = append(updated, block)
		updated = append(updated, (*list)[idx:]...)
		*list = updated
	}
	return prog, nil
}

// pickIndex chooses an insertion point after any directive prologue.
func (t *DeadCodeInjector) pickIndex(list []ast.Stmt) int {
	lo := 0
	for lo < len(list) {
		es, ok := list[lo].(*ast.ExprStmt)
		if !ok || es.Directive == "" {
			break
		}
		lo++
	}
	return lo + t.gen.IntN(len(list)-lo+1)
}

// deadBlock builds `if ("a" === "b") { ... }` with guaranteed-unequal guard
// strings.
func (t *DeadCodeInjector) deadBlock() ast.Stmt {
	left := t.randomKey()
	right := t.randomKey()
	for right == left {
		right = t.randomKey()
	}
	return &ast.IfStmt{
		Cond: &ast.Binary{
			Op: token.EqEqEq,
			L:  strLit(left),
			R:  strLit(right),
		},
		Then: &ast.BlockStmt{Body: t.deadBody()},
	}
}

// deadBody synthesizes a small plausible statement sequence.
func (t *DeadCodeInjector) deadBody() []ast.Stmt {
	name := t.state.freshName(t.gen)
	id := func() *ast.Ident { return &ast.Ident{Name: name} }

	body := []ast.Stmt{
		&ast.VarDecl{
			Kind: ast.DeclVar,
			Decls: []*ast.Declarator{{
				Name: &ast.Ident{Name: name},
				Init: strLit(t.randomKey()),
			}},
		},
	}
	switch t.gen.IntN(3) {
	case 0:
		body = append(body, &ast.ExprStmt{X: &ast.Assign{
			Op:     token.PlusAssign,
			Target: id(),
			Value:  strLit(t.randomKey()),
		}})
	case 1:
		body = append(body, &ast.ExprStmt{X: &ast.Call{
			Callee: &ast.Member{
				Obj:  &ast.Ident{Name: "console"},
				Prop: &ast.Ident{Name: "log"},
			},
			Args: []ast.Expr{id()},
		}})
	default:
		// Top-level lists are valid targets, so no return statements here.
		body = append(body, &ast.ExprStmt{X: &ast.Assign{
			Op:     token.Assign,
			Target: id(),
			Value: &ast.Binary{
				Op: token.Plus,
				L:  id(),
				R:  strLit(t.randomKey()),
			},
		}})
	}
	return body
}

// randomKey produces a short random letter string for guards and fillers.
func (t *DeadCodeInjector) randomKey() string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	buf := make([]byte, 5)
	for i := range buf {
		buf[i] = letters[t.gen.IntN(len(letters))]
	}
	return string(buf)
}

func strLit(value string) *ast.String {
	return &ast.String{Value: value, Raw: codegen.Quote(value)}
}
