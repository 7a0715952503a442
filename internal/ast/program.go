package ast

import "veil/internal/source"

// Comment is a source comment attached ahead of a statement or the program.
type Comment struct {
	Block bool   // true for /* */, false for //
	Text  string // interior text without delimiters
	Loc   source.Span
}

// Program is the root node of a parsed source file.
type Program struct {
	Body     []Stmt
	Comments []Comment // comments preceding the first statement
	Loc      source.Span
}

func (p *Program) Span() source.Span { return p.Loc }

// Empty reports whether the program is the canonical empty shape: no
// top-level statements and no leading comments.
func (p *Program) Empty() bool {
	return p != nil && len(p.Body) == 0 && len(p.Comments) == 0
}
