// Package codegen renders a program tree back into JavaScript text and,
// when requested, records the positional mapping between generated and
// original code.
package codegen

import (
	"fmt"

	"veil/internal/ast"
	"veil/internal/source"
	"veil/internal/sourcemap"
)

// Options configures one generation run.
type Options struct {
	// Compact suppresses cosmetic whitespace.
	Compact bool
	// SourceMap requests a positional mapping artifact.
	SourceMap bool
	// OriginalText, when non-empty, is embedded in the mapping as
	// sourcesContent for self-contained maps.
	OriginalText string
}

// Output is the result of one generation run.
type Output struct {
	Code string
	Map  *sourcemap.Map // nil unless Options.SourceMap was set
}

// Error reports a tree shape the generator cannot render. Reaching it means
// a transformation stage broke its well-formedness contract.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return "codegen: " + e.Msg
}

type genBail struct{ err *Error }

type generator struct {
	w    *Writer
	file *source.File
	smap *sourcemap.Builder
}

// Generate renders prog to text. file provides position resolution for the
// mapping and may be nil when no mapping is requested.
func Generate(prog *ast.Program, file *source.File, opts Options) (out Output, err error) {
	if prog == nil {
		return Output{}, &Error{Msg: "nil program"}
	}
	g := &generator{w: NewWriter(opts.Compact), file: file}
	if opts.SourceMap && file != nil {
		g.smap = sourcemap.NewBuilder(file.Path, opts.OriginalText)
	}

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(genBail)
			if !ok {
				panic(r)
			}
			out = Output{}
			err = b.err
		}
	}()

	g.comments(prog.Comments)
	for _, s := range prog.Body {
		g.stmt(s)
	}

	out.Code = g.w.String()
	if g.smap != nil {
		out.Map = g.smap.Build()
	}
	return out, nil
}

func (g *generator) failf(format string, args ...any) {
	panic(genBail{err: &Error{Msg: fmt.Sprintf(format, args...)}})
}

// mark records a mapping segment for a node carrying a real source span.
func (g *generator) mark(n ast.Node) {
	if g.smap == nil {
		return
	}
	span := n.Span()
	if span.Empty() {
		return
	}
	genLine, genCol := g.w.Pos()
	pos := g.file.Pos(span.Start)
	g.smap.Add(genLine, genCol, mustInt32(int(pos.Line-1)), mustInt32(int(pos.Col-1)))
}

func (g *generator) comments(comments []ast.Comment) {
	for _, c := range comments {
		if c.Block {
			g.w.Write("/*" + c.Text + "*/")
			g.w.Newline()
		} else {
			g.w.Write("//" + c.Text)
			g.w.newlineAlways()
		}
	}
}

func (g *generator) stmt(s ast.Stmt) {
	g.comments(ast.LeadingComments(s))
	g.mark(s)

	switch v := s.(type) {
	case *ast.VarDecl:
		g.varDecl(v)
		g.w.Write(";")
		g.w.Newline()
	case *ast.FuncDecl:
		g.w.Write("function ")
		g.mark(v.Name)
		g.w.Write(v.Name.Name)
		g.params(v.Params)
		g.w.Space()
		g.block(v.Body)
		g.w.Newline()
	case *ast.ExprStmt:
		if needsStmtParens(v.X) {
			g.w.Write("(")
			g.expr(v.X, 0)
			g.w.Write(")")
		} else {
			g.expr(v.X, 0)
		}
		g.w.Write(";")
		g.w.Newline()
	case *ast.ReturnStmt:
		g.w.Write("return")
		if v.Arg != nil {
			g.w.Sep()
			g.expr(v.Arg, 0)
		}
		g.w.Write(";")
		g.w.Newline()
	case *ast.IfStmt:
		g.ifStmt(v)
		g.w.Newline()
	case *ast.WhileStmt:
		g.w.Write("while")
		g.w.Space()
		g.w.Write("(")
		g.expr(v.Cond, 0)
		g.w.Write(")")
		g.nestedStmt(v.Body)
		g.w.Newline()
	case *ast.ForStmt:
		g.forStmt(v)
		g.w.Newline()
	case *ast.SwitchStmt:
		g.switchStmt(v)
		g.w.Newline()
	case *ast.BlockStmt:
		g.block(v)
		g.w.Newline()
	case *ast.BreakStmt:
		g.w.Write("break;")
		g.w.Newline()
	case *ast.ContinueStmt:
		g.w.Write("continue;")
		g.w.Newline()
	case *ast.EmptyStmt:
		g.w.Write(";")
		g.w.Newline()
	default:
		g.failf("unsupported statement node %T", s)
	}
}

func (g *generator) varDecl(v *ast.VarDecl) {
	g.w.Write(v.Kind.String())
	g.w.Sep()
	for i, d := range v.Decls {
		if i > 0 {
			g.w.Write(",")
			g.w.Space()
		}
		g.mark(d.Name)
		g.w.Write(d.Name.Name)
		if d.Init != nil {
			g.w.Space()
			g.w.Write("=")
			g.w.Space()
			g.expr(d.Init, precAssign)
		}
	}
}

func (g *generator) ifStmt(v *ast.IfStmt) {
	g.w.Write("if")
	g.w.Space()
	g.w.Write("(")
	g.expr(v.Cond, 0)
	g.w.Write(")")
	g.nestedStmt(v.Then)
	if v.Else == nil {
		return
	}
	if _, ok := v.Then.(*ast.BlockStmt); ok {
		g.w.Space()
	} else {
		g.w.Sep()
	}
	g.w.Write("else")
	if elseIf, ok := v.Else.(*ast.IfStmt); ok {
		g.w.Sep()
		g.ifStmt(elseIf)
		return
	}
	g.nestedStmtAfterKeyword(v.Else)
}

func (g *generator) forStmt(v *ast.ForStmt) {
	g.w.Write("for")
	g.w.Space()
	g.w.Write("(")
	switch init := v.Init.(type) {
	case nil:
	case *ast.VarDecl:
		g.varDecl(init)
	case *ast.ExprStmt:
		g.expr(init.X, 0)
	default:
		g.failf("unsupported for-init node %T", v.Init)
	}
	g.w.Write(";")
	if v.Cond != nil {
		g.w.Space()
		g.expr(v.Cond, 0)
	}
	g.w.Write(";")
	if v.Post != nil {
		g.w.Space()
		g.expr(v.Post, 0)
	}
	g.w.Write(")")
	g.nestedStmt(v.Body)
}

func (g *generator) switchStmt(v *ast.SwitchStmt) {
	g.w.Write("switch")
	g.w.Space()
	g.w.Write("(")
	g.expr(v.Disc, 0)
	g.w.Write(")")
	g.w.Space()
	g.w.Write("{")
	g.w.Newline()
	g.w.Indent()
	for _, c := range v.Cases {
		if c.Test != nil {
			g.w.Write("case ")
			g.expr(c.Test, precAssign)
			g.w.Write(":")
		} else {
			g.w.Write("default:")
		}
		g.w.Newline()
		g.w.Indent()
		for _, s := range c.Body {
			g.stmt(s)
		}
		g.w.Outdent()
	}
	g.w.Outdent()
	g.w.Write("}")
}

// nestedStmt prints a sub-statement of if/while/for. Blocks stay on the same
// line; single statements follow after a space.
func (g *generator) nestedStmt(s ast.Stmt) {
	if b, ok := s.(*ast.BlockStmt); ok {
		g.w.Space()
		g.block(b)
		return
	}
	g.w.Space()
	g.inlineStmt(s)
}

// nestedStmtAfterKeyword is nestedStmt for positions right after a keyword
// where a separator is mandatory even in compact mode.
func (g *generator) nestedStmtAfterKeyword(s ast.Stmt) {
	if b, ok := s.(*ast.BlockStmt); ok {
		g.w.Space()
		g.block(b)
		return
	}
	g.w.Sep()
	g.inlineStmt(s)
}

// inlineStmt prints a statement without the trailing line break.
func (g *generator) inlineStmt(s ast.Stmt) {
	switch v := s.(type) {
	case *ast.ExprStmt:
		g.mark(v)
		g.expr(v.X, 0)
		g.w.Write(";")
	case *ast.ReturnStmt:
		g.mark(v)
		g.w.Write("return")
		if v.Arg != nil {
			g.w.Sep()
			g.expr(v.Arg, 0)
		}
		g.w.Write(";")
	case *ast.BreakStmt:
		g.w.Write("break;")
	case *ast.ContinueStmt:
		g.w.Write("continue;")
	case *ast.EmptyStmt:
		g.w.Write(";")
	default:
		// Fall back to full statement printing for nested compounds.
		g.stmt(s)
	}
}

func (g *generator) block(b *ast.BlockStmt) {
	g.w.Write("{")
	if len(b.Body) == 0 {
		g.w.Write("}")
		return
	}
	g.w.Newline()
	g.w.Indent()
	for _, s := range b.Body {
		g.stmt(s)
	}
	g.w.Outdent()
	g.w.Write("}")
}

func (g *generator) params(params []*ast.Ident) {
	g.w.Write("(")
	for i, p := range params {
		if i > 0 {
			g.w.Write(",")
			g.w.Space()
		}
		g.mark(p)
		g.w.Write(p.Name)
	}
	g.w.Write(")")
}
