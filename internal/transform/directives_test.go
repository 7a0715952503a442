package transform

import (
	"testing"

	"veil/internal/ast"
)

func TestDirectivePlacerRestoresPrologue(t *testing.T) {
	prog := parseProgram(t, "'use strict';\nvar a = 1;")
	// Simulate an earlier rewrite that pushed a statement ahead of the
	// prologue.
	prog.Body[0], prog.Body[1] = prog.Body[1], prog.Body[0]

	if _, err := (&DirectivePlacer{}).Apply(prog); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	es, ok := prog.Body[0].(*ast.ExprStmt)
	if !ok || es.Directive != "use strict" {
		t.Fatalf("first statement is %T, want the directive", prog.Body[0])
	}
}

func TestDirectivePlacerKeepsRelativeOrder(t *testing.T) {
	input := "'use strict';\n'use asm';\nvar a = 1;"
	prog := parseProgram(t, input)
	if _, err := (&DirectivePlacer{}).Apply(prog); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := generateCompact(t, prog); got != "'use strict';'use asm';var a=1;" {
		t.Fatalf("prologue reordered: %q", got)
	}
}

func TestDirectivePlacerFunctionBodies(t *testing.T) {
	prog := parseProgram(t, "function f() { 'use strict'; var a = 1; }")
	fn := findFunc(t, prog)
	fn.Body.Body[0], fn.Body.Body[1] = fn.Body.Body[1], fn.Body.Body[0]

	if _, err := (&DirectivePlacer{}).Apply(prog); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	es, ok := fn.Body.Body[0].(*ast.ExprStmt)
	if !ok || es.Directive == "" {
		t.Fatalf("function prologue not restored: first statement is %T", fn.Body.Body[0])
	}
}
