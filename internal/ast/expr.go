package ast

import (
	"veil/internal/source"
	"veil/internal/token"
)

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Ident is an identifier reference or binding.
type Ident struct {
	Name string
	Loc  source.Span
}

// Number is a numeric literal. Raw is the exact text the code generator
// emits; transformers may rewrite Raw (e.g. to hex form) without touching
// Value.
type Number struct {
	Value float64
	Raw   string
	Loc   source.Span
}

// String is a string literal. Raw is the quoted text the code generator
// emits verbatim; transformers may re-encode it as long as it evaluates to
// Value.
type String struct {
	Value string
	Raw   string
	Loc   source.Span
}

// Bool is a boolean literal.
type Bool struct {
	Value bool
	Loc   source.Span
}

// Null is the null literal.
type Null struct {
	Loc source.Span
}

// This is the this expression.
type This struct {
	Loc source.Span
}

// Array is an array literal.
type Array struct {
	Elems []Expr
	Loc   source.Span
}

// Property is one key/value pair within an object literal.
type Property struct {
	Key      Expr // *Ident, *String or *Number
	Value    Expr
	Computed bool
	Loc      source.Span
}

func (p *Property) Span() source.Span { return p.Loc }

// Object is an object literal.
type Object struct {
	Props []*Property
	Loc   source.Span
}

// FuncLit is a function expression. Arrow marks single-parameter arrow
// functions; when Arrow is set and ExprBody is non-nil the body is a bare
// expression rather than a block.
type FuncLit struct {
	Name     *Ident // nil for anonymous functions
	Params   []*Ident
	Body     *BlockStmt // nil when ExprBody is set
	ExprBody Expr
	Arrow    bool
	Loc      source.Span
}

// Unary is a prefix operator expression (!x, -x, typeof x, ...).
type Unary struct {
	Op  token.Kind
	X   Expr
	Loc source.Span
}

// Update is an increment/decrement expression.
type Update struct {
	Op     token.Kind // PlusPlus or MinusMinus
	Prefix bool
	X      Expr
	Loc    source.Span
}

// Binary is an arithmetic, relational or bitwise binary expression.
type Binary struct {
	Op   token.Kind
	L, R Expr
	Loc  source.Span
}

// Logical is a && or || expression.
type Logical struct {
	Op   token.Kind
	L, R Expr
	Loc  source.Span
}

// Assign is an assignment expression.
type Assign struct {
	Op     token.Kind // Assign, PlusAssign, ...
	Target Expr
	Value  Expr
	Loc    source.Span
}

// Cond is a ternary conditional expression.
type Cond struct {
	Test, Then, Else Expr
	Loc              source.Span
}

// Seq is a comma expression.
type Seq struct {
	Exprs []Expr
	Loc   source.Span
}

// Call is a function call.
type Call struct {
	Callee Expr
	Args   []Expr
	Loc    source.Span
}

// New is a constructor call.
type New struct {
	Callee Expr
	Args   []Expr
	Loc    source.Span
}

// Member is a property access. When Computed is false Prop is an *Ident
// accessed with dot syntax; otherwise Prop is an arbitrary expression in
// bracket syntax.
type Member struct {
	Obj      Expr
	Prop     Expr
	Computed bool
	Loc      source.Span
}

func (e *Ident) Span() source.Span   { return e.Loc }
func (e *Number) Span() source.Span  { return e.Loc }
func (e *String) Span() source.Span  { return e.Loc }
func (e *Bool) Span() source.Span    { return e.Loc }
func (e *Null) Span() source.Span    { return e.Loc }
func (e *This) Span() source.Span    { return e.Loc }
func (e *Array) Span() source.Span   { return e.Loc }
func (e *Object) Span() source.Span  { return e.Loc }
func (e *FuncLit) Span() source.Span { return e.Loc }
func (e *Unary) Span() source.Span   { return e.Loc }
func (e *Update) Span() source.Span  { return e.Loc }
func (e *Binary) Span() source.Span  { return e.Loc }
func (e *Logical) Span() source.Span { return e.Loc }
func (e *Assign) Span() source.Span  { return e.Loc }
func (e *Cond) Span() source.Span    { return e.Loc }
func (e *Seq) Span() source.Span     { return e.Loc }
func (e *Call) Span() source.Span    { return e.Loc }
func (e *New) Span() source.Span     { return e.Loc }
func (e *Member) Span() source.Span  { return e.Loc }

func (*Ident) exprNode()   {}
func (*Number) exprNode()  {}
func (*String) exprNode()  {}
func (*Bool) exprNode()    {}
func (*Null) exprNode()    {}
func (*This) exprNode()    {}
func (*Array) exprNode()   {}
func (*Object) exprNode()  {}
func (*FuncLit) exprNode() {}
func (*Unary) exprNode()   {}
func (*Update) exprNode()  {}
func (*Binary) exprNode()  {}
func (*Logical) exprNode() {}
func (*Assign) exprNode()  {}
func (*Cond) exprNode()    {}
func (*Seq) exprNode()     {}
func (*Call) exprNode()    {}
func (*New) exprNode()     {}
func (*Member) exprNode()  {}
