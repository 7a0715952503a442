package transform

import (
	"testing"

	"veil/internal/ast"
	"veil/internal/rng"
)

func TestDeadCodeInjectorAlwaysFires(t *testing.T) {
	prog := parseProgram(t, "function f(a) { return a; }\nvar x = 1;")
	unit := &DeadCodeInjector{threshold: 1, gen: rng.New("seed"), state: NewState()}

	out, err := unit.Apply(prog)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// Threshold 1 injects into both non-empty statement lists: the program
	// body and the function body.
	if len(out.Body) != 3 {
		t.Fatalf("program body has %d statements, want 3", len(out.Body))
	}
	fn := findFunc(t, out)
	if len(fn.Body.Body) != 2 {
		t.Fatalf("function body has %d statements, want 2", len(fn.Body.Body))
	}

	// The result must still render.
	code := generateCompact(t, out)
	if code == "" {
		t.Fatal("injected program rendered empty")
	}
}

func TestDeadCodeInjectorZeroThreshold(t *testing.T) {
	prog := parseProgram(t, "var x = 1;")
	unit := &DeadCodeInjector{threshold: 0, gen: rng.New("seed"), state: NewState()}
	out, err := unit.Apply(prog)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(out.Body) != 1 {
		t.Fatalf("threshold 0 injected: %d statements", len(out.Body))
	}
}

func TestDeadBlockGuardNeverTrue(t *testing.T) {
	unit := &DeadCodeInjector{threshold: 1, gen: rng.New("seed"), state: NewState()}
	for i := 0; i < 50; i++ {
		stmt := unit.deadBlock()
		ifs, ok := stmt.(*ast.IfStmt)
		if !ok {
			t.Fatalf("deadBlock returned %T, want *ast.IfStmt", stmt)
		}
		cmp, ok := ifs.Cond.(*ast.Binary)
		if !ok {
			t.Fatalf("guard is %T, want *ast.Binary", ifs.Cond)
		}
		left := cmp.L.(*ast.String).Value
		right := cmp.R.(*ast.String).Value
		if left == right {
			t.Fatalf("guard strings equal: %q", left)
		}
	}
}

func TestDeadCodeInjectionSkipsDirectivePrologue(t *testing.T) {
	prog := parseProgram(t, "'use strict';\nvar a = 1;")
	unit := &DeadCodeInjector{threshold: 1, gen: rng.New("seed"), state: NewState()}
	out, err := unit.Apply(prog)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	es, ok := out.Body[0].(*ast.ExprStmt)
	if !ok || es.Directive == "" {
		t.Fatalf("first statement is no longer the directive: %T", out.Body[0])
	}
}

func TestDeadCodeInjectionDeterministic(t *testing.T) {
	first, err := (&DeadCodeInjector{threshold: 0.5, gen: rng.New("s"), state: NewState()}).
		Apply(parseProgram(t, "var a = 1;\nvar b = 2;\nfunction f() { g(); }"))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	second, err := (&DeadCodeInjector{threshold: 0.5, gen: rng.New("s"), state: NewState()}).
		Apply(parseProgram(t, "var a = 1;\nvar b = 2;\nfunction f() { g(); }"))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if generateCompact(t, first) != generateCompact(t, second) {
		t.Fatal("same seed produced different injections")
	}
}

func findFunc(t *testing.T, prog *ast.Program) *ast.FuncDecl {
	t.Helper()
	for _, s := range prog.Body {
		if fn, ok := s.(*ast.FuncDecl); ok {
			return fn
		}
	}
	t.Fatal("no function declaration in program")
	return nil
}
