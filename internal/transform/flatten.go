package transform

import (
	"strconv"
	"strings"

	"veil/internal/ast"
	"veil/internal/codegen"
	"veil/internal/pipeline"
	"veil/internal/rng"
	"veil/internal/token"
)

// ControlFlowFlattener rewrites eligible function bodies into a
// switch-dispatch loop driven by a shuffled order string:
//
//	var _0xabc = "2|0|1".split("|"), _0xdef = 0;
//	while (true) {
//	    switch (_0xabc[_0xdef++]) { case "0": ...; continue; ... }
//	    break;
//	}
//
// The order string preserves execution order while the case bodies appear
// shuffled in the generated source.
type ControlFlowFlattener struct {
	threshold float64
	gen       *rng.Generator
	state     *State
}

func (t *ControlFlowFlattener) Name() string { return "control-flow-flattener" }

func (t *ControlFlowFlattener) Stages() pipeline.StageSet {
	return pipeline.NewStageSet(pipeline.StageControlFlowFlattening)
}

func (t *ControlFlowFlattener) Apply(prog *ast.Program) (*ast.Program, error) {
	var bodies []*ast.BlockStmt
	ast.Walk(prog, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.FuncDecl:
			bodies = append(bodies, v.Body)
		case *ast.FuncLit:
			if v.Body != nil {
				bodies = append(bodies, v.Body)
			}
		}
		return true
	})

	for _, body := range bodies {
		if !t.gen.Chance(t.threshold) {
			continue
		}
		t.flatten(body)
	}
	return prog, nil
}

// flatten rewrites one function body in place when it is eligible.
func (t *ControlFlowFlattener) flatten(body *ast.BlockStmt) {
	prologue := 0
	for prologue < len(body.Body) {
		es, ok := body.Body[prologue].(*ast.ExprStmt)
		if !ok || es.Directive == "" {
			break
		}
		prologue++
	}
	stmts := body.Body[prologue:]
	if len(stmts) < 2 || !flattenable(stmts) {
		return
	}

	n := len(stmts)
	labels := t.gen.Perm(n)

	orderParts := make([]string, n)
	for step := range n {
		orderParts[step] = strconv.Itoa(labels[step])
	}
	orderRaw := strings.Join(orderParts, "|")

	cases := make([]*ast.SwitchCase, n)
	for i, s := range stmts {
		caseBody := []ast.Stmt{s}
		if !endsWithReturn(s) {
			caseBody = append(caseBody, &ast.ContinueStmt{})
		}
		cases[i] = &ast.SwitchCase{
			Test: strLit(strconv.Itoa(labels[i])),
			Body: caseBody,
		}
	}
	// Present the cases in label order, which is shuffled relative to
	// execution order.
	sortCasesByLabel(cases)

	orderName := t.state.freshName(t.gen)
	counterName := t.state.freshName(t.gen)

	decl := &ast.VarDecl{
		Kind: ast.DeclVar,
		Decls: []*ast.Declarator{
			{
				Name: &ast.Ident{Name: orderName},
				Init: &ast.Call{
					Callee: &ast.Member{
						Obj:  &ast.String{Value: orderRaw, Raw: codegen.Quote(orderRaw)},
						Prop: &ast.Ident{Name: "split"},
					},
					Args: []ast.Expr{strLit("|")},
				},
			},
			{
				Name: &ast.Ident{Name: counterName},
				Init: &ast.Number{Value: 0, Raw: "0"},
			},
		},
	}

	dispatch := &ast.SwitchStmt{
		Disc: &ast.Member{
			Obj: &ast.Ident{Name: orderName},
			Prop: &ast.Update{
				Op: token.PlusPlus,
				X:  &ast.Ident{Name: counterName},
			},
			Computed: true,
		},
		Cases: cases,
	}
	loop := &ast.WhileStmt{
		Cond: &ast.Bool{Value: true},
		Body: &ast.BlockStmt{Body: []ast.Stmt{dispatch, &ast.BreakStmt{}}},
	}

	rewritten := make([]ast.Stmt, 0, prologue+2)
	rewritten = append(rewritten, body.Body[:prologue]...)
	rewritten = append(rewritten, decl, loop)
	body.Body = rewritten
}

// flattenable reports whether every statement can move into a switch case
// without changing semantics: expression statements, var declarations
// (function-scoped, so hoisting survives) and returns. Control transfer
// statements and block-scoped declarations disqualify the body.
func flattenable(stmts []ast.Stmt) bool {
	for _, s := range stmts {
		switch v := s.(type) {
		case *ast.ExprStmt:
		case *ast.ReturnStmt:
		case *ast.VarDecl:
			if v.Kind != ast.DeclVar {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func endsWithReturn(s ast.Stmt) bool {
	_, ok := s.(*ast.ReturnStmt)
	return ok
}

func sortCasesByLabel(cases []*ast.SwitchCase) {
	for i := 1; i < len(cases); i++ {
		for j := i; j > 0 && caseLabel(cases[j-1]) > caseLabel(cases[j]); j-- {
			cases[j-1], cases[j] = cases[j], cases[j-1]
		}
	}
}

func caseLabel(c *ast.SwitchCase) int {
	str, ok := c.Test.(*ast.String)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(str.Value)
	if err != nil {
		return 0
	}
	return n
}
