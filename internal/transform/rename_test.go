package transform

import (
	"strings"
	"testing"

	"veil/internal/ast"
	"veil/internal/rng"
)

func newRenamer(preserve ...string) *IdentifierRenamer {
	return &IdentifierRenamer{enabled: true, gen: rng.New("seed"), state: NewState(), preserve: preserve}
}

func TestIdentifierRenamerRenamesConsistently(t *testing.T) {
	prog := parseProgram(t, `
var count = 1;
function add(a, b) { return a + b + count; }
add(count, 2);
`)
	if _, err := newRenamer().Apply(prog); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	declName := prog.Body[0].(*ast.VarDecl).Decls[0].Name.Name
	fn := prog.Body[1].(*ast.FuncDecl)
	call := prog.Body[2].(*ast.ExprStmt).X.(*ast.Call)

	for _, name := range []string{declName, fn.Name.Name, fn.Params[0].Name, fn.Params[1].Name} {
		if !strings.HasPrefix(name, "_0x") {
			t.Errorf("binding %q not renamed to a hex name", name)
		}
	}
	if got := call.Callee.(*ast.Ident).Name; got != fn.Name.Name {
		t.Errorf("call site %q does not match function name %q", got, fn.Name.Name)
	}
	if got := call.Args[0].(*ast.Ident).Name; got != declName {
		t.Errorf("argument %q does not match declarator name %q", got, declName)
	}

	// The reference inside the function body follows the declaration too.
	ret := fn.Body.Body[0].(*ast.ReturnStmt).Arg.(*ast.Binary)
	if got := ret.R.(*ast.Ident).Name; got != declName {
		t.Errorf("closure reference %q does not match declarator name %q", got, declName)
	}
}

func TestIdentifierRenamerKeepsUndeclaredGlobals(t *testing.T) {
	prog := parseProgram(t, "var msg = 1; console.log(msg);")
	if _, err := newRenamer().Apply(prog); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	code := generateCompact(t, prog)
	if !strings.Contains(code, "console.log") {
		t.Fatalf("global reference rewritten: %q", code)
	}
	if strings.Contains(code, "msg") {
		t.Fatalf("declared name survived renaming: %q", code)
	}
}

func TestIdentifierRenamerPreserve(t *testing.T) {
	prog := parseProgram(t, "var api = 1; var tmp = api;")
	if _, err := newRenamer("api").Apply(prog); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	code := generateCompact(t, prog)
	if !strings.Contains(code, "api") {
		t.Fatalf("preserved name renamed: %q", code)
	}
	if strings.Contains(code, "tmp") {
		t.Fatalf("unpreserved name survived: %q", code)
	}
}

func TestIdentifierRenamerKeepsReservedNames(t *testing.T) {
	// Declaring these shadows runtime meaning; renaming them would change
	// behavior at every implicit use site.
	prog := parseProgram(t, "var undefined = 1; var eval = 2;")
	if _, err := newRenamer().Apply(prog); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := generateCompact(t, prog); got != "var undefined=1;var eval=2;" {
		t.Fatalf("reserved names rewritten: %q", got)
	}
}

func TestIdentifierRenamerDisabled(t *testing.T) {
	prog := parseProgram(t, "var a = 1;")
	unit := &IdentifierRenamer{enabled: false, gen: rng.New("seed"), state: NewState()}
	if _, err := unit.Apply(prog); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := generateCompact(t, prog); got != "var a=1;" {
		t.Fatalf("disabled renamer rewrote program: %q", got)
	}
}

func TestIdentifierRenamerDeterministicOrder(t *testing.T) {
	// Enough bindings that an unordered traversal of the declared set
	// would scramble the name assignment between runs.
	src := `
var alpha = 1; var bravo = 2; var charlie = 3; var delta = 4;
function echo(foxtrot, golf) { return foxtrot + golf + alpha; }
echo(bravo, charlie + delta);
`
	run := func() string {
		prog := parseProgram(t, src)
		if _, err := newRenamer().Apply(prog); err != nil {
			t.Fatalf("Apply: %v", err)
		}
		return generateCompact(t, prog)
	}
	first := run()
	for i := 0; i < 8; i++ {
		if got := run(); got != first {
			t.Fatalf("same seed produced different output:\n%q\n%q", first, got)
		}
	}
}

func TestIdentifierRenamerKeepsShadowedGlobalSpelling(t *testing.T) {
	// The parameter shadows the console global; renaming the spelling
	// would rewrite the genuine global use on the last line too.
	prog := parseProgram(t, "function f(console) { console.log(1); } console.log(2);")
	if _, err := newRenamer().Apply(prog); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	code := generateCompact(t, prog)
	if got := strings.Count(code, "console"); got != 3 {
		t.Fatalf("expected console spelling kept at all 3 sites, got %d in %q", got, code)
	}
	fn := prog.Body[0].(*ast.FuncDecl)
	if !strings.HasPrefix(fn.Name.Name, "_0x") {
		t.Errorf("non-conflicting function name %q not renamed", fn.Name.Name)
	}
}

func TestIdentifierRenamerAvoidsExistingBindings(t *testing.T) {
	prog := parseProgram(t, "var a = 1; var b = 2;")
	unit := newRenamer()
	// Pretend a prior pass collected the program's bindings; fresh names
	// must not collide with them or with each other.
	for name := range CollectDeclared(prog) {
		unit.state.Claim(name)
	}
	if _, err := unit.Apply(prog); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	first := prog.Body[0].(*ast.VarDecl).Decls[0].Name.Name
	second := prog.Body[1].(*ast.VarDecl).Decls[0].Name.Name
	if first == second {
		t.Fatalf("two bindings renamed to the same name %q", first)
	}
}
