package transform

import (
	"strings"
	"testing"

	"veil/internal/ast"
	"veil/internal/rng"
)

func TestFlattenRewritesEligibleBody(t *testing.T) {
	prog := parseProgram(t, `
function f() {
	var a = 1;
	a = a + 2;
	return a;
}
`)
	unit := &ControlFlowFlattener{threshold: 1, gen: rng.New("seed"), state: NewState()}
	out, err := unit.Apply(prog)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	body := findFunc(t, out).Body.Body
	if len(body) != 2 {
		t.Fatalf("flattened body has %d statements, want 2", len(body))
	}

	decl, ok := body[0].(*ast.VarDecl)
	if !ok || len(decl.Decls) != 2 {
		t.Fatalf("first statement is %T with %d declarators, want var with 2", body[0], len(decl.Decls))
	}
	loop, ok := body[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("second statement is %T, want *ast.WhileStmt", body[1])
	}
	cond, ok := loop.Cond.(*ast.Bool)
	if !ok || !cond.Value {
		t.Fatalf("loop condition is %v, want true literal", loop.Cond)
	}
	loopBody := loop.Body.(*ast.BlockStmt).Body
	if len(loopBody) != 2 {
		t.Fatalf("loop body has %d statements, want switch+break", len(loopBody))
	}
	sw, ok := loopBody[0].(*ast.SwitchStmt)
	if !ok {
		t.Fatalf("loop body starts with %T, want *ast.SwitchStmt", loopBody[0])
	}
	if _, ok := loopBody[1].(*ast.BreakStmt); !ok {
		t.Fatalf("loop body ends with %T, want *ast.BreakStmt", loopBody[1])
	}
	if len(sw.Cases) != 3 {
		t.Fatalf("switch has %d cases, want 3", len(sw.Cases))
	}

	// The order string replays the original statement order.
	orderRaw := decl.Decls[0].Init.(*ast.Call).Callee.(*ast.Member).Obj.(*ast.String).Value
	order := strings.Split(orderRaw, "|")
	if len(order) != 3 {
		t.Fatalf("order string %q has %d steps, want 3", orderRaw, len(order))
	}
	byLabel := make(map[string]*ast.SwitchCase, len(sw.Cases))
	for _, c := range sw.Cases {
		byLabel[c.Test.(*ast.String).Value] = c
	}

	first := byLabel[order[0]]
	if _, ok := first.Body[0].(*ast.VarDecl); !ok {
		t.Fatalf("first executed case holds %T, want the var declaration", first.Body[0])
	}
	last := byLabel[order[2]]
	if _, ok := last.Body[0].(*ast.ReturnStmt); !ok {
		t.Fatalf("last executed case holds %T, want the return", last.Body[0])
	}
	// Non-terminal cases re-enter the loop; the return case must not.
	if _, ok := first.Body[len(first.Body)-1].(*ast.ContinueStmt); !ok {
		t.Fatal("non-terminal case does not continue")
	}
	if len(last.Body) != 1 {
		t.Fatalf("return case has %d statements, want 1", len(last.Body))
	}
}

func TestFlattenSkipsIneligibleBodies(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"single statement", "function f() { return 1; }"},
		{"control flow", "function f() { if (a) { b(); } c(); }"},
		{"block-scoped declaration", "function f() { let a = 1; a = 2; }"},
		{"loop", "function f() { while (a) { b(); } c(); }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parseProgram(t, tt.input)
			before := generateCompact(t, parseProgram(t, tt.input))
			unit := &ControlFlowFlattener{threshold: 1, gen: rng.New("seed"), state: NewState()}
			out, err := unit.Apply(prog)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if got := generateCompact(t, out); got != before {
				t.Fatalf("ineligible body rewritten:\n%s\n---\n%s", before, got)
			}
		})
	}
}

func TestFlattenKeepsDirectivePrologue(t *testing.T) {
	prog := parseProgram(t, `
function f() {
	'use strict';
	var a = 1;
	a = 2;
	return a;
}
`)
	unit := &ControlFlowFlattener{threshold: 1, gen: rng.New("seed"), state: NewState()}
	out, err := unit.Apply(prog)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	body := findFunc(t, out).Body.Body
	es, ok := body[0].(*ast.ExprStmt)
	if !ok || es.Directive == "" {
		t.Fatalf("directive displaced: first statement is %T", body[0])
	}
	if len(body) != 3 {
		t.Fatalf("flattened body has %d statements, want directive+var+loop", len(body))
	}
}

func TestFlattenZeroThreshold(t *testing.T) {
	input := "function f() { var a = 1; return a; }"
	prog := parseProgram(t, input)
	unit := &ControlFlowFlattener{threshold: 0, gen: rng.New("seed"), state: NewState()}
	out, err := unit.Apply(prog)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := generateCompact(t, out); got != generateCompact(t, parseProgram(t, input)) {
		t.Fatal("threshold 0 still rewrote the body")
	}
}
