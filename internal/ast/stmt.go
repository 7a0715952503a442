package ast

import "veil/internal/source"

// Node is implemented by every tree node.
type Node interface {
	Span() source.Span
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// DeclKind distinguishes var/let/const declarations.
type DeclKind uint8

const (
	// DeclVar is a 'var' declaration.
	DeclVar DeclKind = iota
	// DeclLet is a 'let' declaration.
	DeclLet
	// DeclConst is a 'const' declaration.
	DeclConst
)

func (k DeclKind) String() string {
	switch k {
	case DeclVar:
		return "var"
	case DeclLet:
		return "let"
	case DeclConst:
		return "const"
	}
	return "var"
}

// Declarator is one name/initializer pair within a VarDecl.
type Declarator struct {
	Name *Ident
	Init Expr // nil when absent
	Loc  source.Span
}

func (d *Declarator) Span() source.Span { return d.Loc }

// VarDecl is a var/let/const declaration statement.
type VarDecl struct {
	Kind     DeclKind
	Decls    []*Declarator
	Comments []Comment
	Loc      source.Span
}

// FuncDecl is a function declaration statement.
type FuncDecl struct {
	Name     *Ident
	Params   []*Ident
	Body     *BlockStmt
	Comments []Comment
	Loc      source.Span
}

// ExprStmt is an expression statement. Directive carries the raw directive
// text ("use strict") when the statement is a directive-prologue candidate.
type ExprStmt struct {
	X         Expr
	Directive string
	Comments  []Comment
	Loc       source.Span
}

// ReturnStmt is a return statement with optional argument.
type ReturnStmt struct {
	Arg      Expr // nil when absent
	Comments []Comment
	Loc      source.Span
}

// IfStmt is an if/else statement.
type IfStmt struct {
	Cond     Expr
	Then     Stmt
	Else     Stmt // nil when absent
	Comments []Comment
	Loc      source.Span
}

// WhileStmt is a while loop.
type WhileStmt struct {
	Cond     Expr
	Body     Stmt
	Comments []Comment
	Loc      source.Span
}

// ForStmt is a classic three-clause for loop; any clause may be nil.
type ForStmt struct {
	Init     Stmt // VarDecl or ExprStmt
	Cond     Expr
	Post     Expr
	Body     Stmt
	Comments []Comment
	Loc      source.Span
}

// SwitchCase is one case (or default, when Test is nil) within a switch.
type SwitchCase struct {
	Test Expr // nil for default
	Body []Stmt
	Loc  source.Span
}

func (c *SwitchCase) Span() source.Span { return c.Loc }

// SwitchStmt is a switch statement.
type SwitchStmt struct {
	Disc     Expr
	Cases    []*SwitchCase
	Comments []Comment
	Loc      source.Span
}

// BlockStmt is a braced statement list.
type BlockStmt struct {
	Body     []Stmt
	Comments []Comment
	Loc      source.Span
}

// BreakStmt is a break statement.
type BreakStmt struct {
	Comments []Comment
	Loc      source.Span
}

// ContinueStmt is a continue statement.
type ContinueStmt struct {
	Comments []Comment
	Loc      source.Span
}

// EmptyStmt is a lone semicolon.
type EmptyStmt struct {
	Comments []Comment
	Loc      source.Span
}

func (s *VarDecl) Span() source.Span      { return s.Loc }
func (s *FuncDecl) Span() source.Span     { return s.Loc }
func (s *ExprStmt) Span() source.Span     { return s.Loc }
func (s *ReturnStmt) Span() source.Span   { return s.Loc }
func (s *IfStmt) Span() source.Span       { return s.Loc }
func (s *WhileStmt) Span() source.Span    { return s.Loc }
func (s *ForStmt) Span() source.Span      { return s.Loc }
func (s *SwitchStmt) Span() source.Span   { return s.Loc }
func (s *BlockStmt) Span() source.Span    { return s.Loc }
func (s *BreakStmt) Span() source.Span    { return s.Loc }
func (s *ContinueStmt) Span() source.Span { return s.Loc }
func (s *EmptyStmt) Span() source.Span    { return s.Loc }

func (*VarDecl) stmtNode()      {}
func (*FuncDecl) stmtNode()     {}
func (*ExprStmt) stmtNode()     {}
func (*ReturnStmt) stmtNode()   {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*ForStmt) stmtNode()      {}
func (*SwitchStmt) stmtNode()   {}
func (*BlockStmt) stmtNode()    {}
func (*BreakStmt) stmtNode()    {}
func (*ContinueStmt) stmtNode() {}
func (*EmptyStmt) stmtNode()    {}

// LeadingComments returns the comments attached to a statement, if any.
func LeadingComments(s Stmt) []Comment {
	switch st := s.(type) {
	case *VarDecl:
		return st.Comments
	case *FuncDecl:
		return st.Comments
	case *ExprStmt:
		return st.Comments
	case *ReturnStmt:
		return st.Comments
	case *IfStmt:
		return st.Comments
	case *WhileStmt:
		return st.Comments
	case *ForStmt:
		return st.Comments
	case *SwitchStmt:
		return st.Comments
	case *BlockStmt:
		return st.Comments
	case *BreakStmt:
		return st.Comments
	case *ContinueStmt:
		return st.Comments
	case *EmptyStmt:
		return st.Comments
	}
	return nil
}

// SetLeadingComments replaces the comments attached to a statement.
func SetLeadingComments(s Stmt, comments []Comment) {
	switch st := s.(type) {
	case *VarDecl:
		st.Comments = comments
	case *FuncDecl:
		st.Comments = comments
	case *ExprStmt:
		st.Comments = comments
	case *ReturnStmt:
		st.Comments = comments
	case *IfStmt:
		st.Comments = comments
	case *WhileStmt:
		st.Comments = comments
	case *ForStmt:
		st.Comments = comments
	case *SwitchStmt:
		st.Comments = comments
	case *BlockStmt:
		st.Comments = comments
	case *BreakStmt:
		st.Comments = comments
	case *ContinueStmt:
		st.Comments = comments
	case *EmptyStmt:
		st.Comments = comments
	}
}
