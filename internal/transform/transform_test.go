package transform

import (
	"testing"

	"veil/internal/ast"
	"veil/internal/codegen"
	"veil/internal/config"
	"veil/internal/parser"
	"veil/internal/rng"
	"veil/internal/source"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	file := source.New("test.js", []byte(input), source.FileVirtual)
	prog, err := parser.Parse(file, parser.Options{AttachComments: true})
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	return prog
}

func generateCompact(t *testing.T, prog *ast.Program) string {
	t.Helper()
	out, err := codegen.Generate(prog, nil, codegen.Options{Compact: true})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return out.Code
}

func TestNewRegistryOrder(t *testing.T) {
	reg, err := NewRegistry(config.Default(), rng.New("seed"))
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	want := []string{
		"directive-placer",
		"scope-collector",
		"dead-code-injector",
		"control-flow-flattener",
		"member-indexer",
		"string-encoder",
		"number-to-hex",
		"identifier-renamer",
		"comment-stripper",
	}
	got := reg.Names()
	if len(got) != len(want) {
		t.Fatalf("registry names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("registry names = %v, want %v", got, want)
		}
	}
}

func TestNewRegistryKeepsInertUnits(t *testing.T) {
	// Disabled toggles make units inert but never unregister them.
	cfg := config.Default()
	cfg.StringEncoding = config.EncodingNone
	cfg.NumbersToHex = false
	cfg.RenameIdentifiers = false
	reg, err := NewRegistry(cfg, rng.New("seed"))
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if reg.Len() != 9 {
		t.Fatalf("registry has %d units, want 9", reg.Len())
	}
}

func TestStateFreshName(t *testing.T) {
	state := NewState()
	state.Claim("taken")
	gen := rng.New("seed")
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		name := state.freshName(gen)
		if seen[name] {
			t.Fatalf("freshName repeated %q", name)
		}
		if !state.Taken(name) {
			t.Fatalf("freshName did not claim %q", name)
		}
		seen[name] = true
	}
}

func TestCollectDeclared(t *testing.T) {
	prog := parseProgram(t, `
var a = 1, b = 2;
function f(p, q) {
	var inner = p;
	var g = function named(r) { return r; };
}
`)
	got := CollectDeclared(prog)
	for _, name := range []string{"a", "b", "f", "p", "q", "inner", "g", "named", "r"} {
		if _, ok := got[name]; !ok {
			t.Errorf("CollectDeclared missing %q", name)
		}
	}
	if _, ok := got["console"]; ok {
		t.Error("CollectDeclared includes an undeclared global")
	}
}

func TestScopeCollectorRefreshes(t *testing.T) {
	state := NewState()
	state.Claim("stale")
	collector := &ScopeCollector{state: state}
	prog := parseProgram(t, "var fresh = 1;")
	if _, err := collector.Apply(prog); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if state.Taken("stale") {
		t.Error("collector kept a binding the program no longer declares")
	}
	if !state.Taken("fresh") {
		t.Error("collector missed a declared binding")
	}
}
