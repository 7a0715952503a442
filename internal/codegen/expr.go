package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"veil/internal/ast"
	"veil/internal/token"
)

// Expression precedence levels used for parenthesization decisions. Higher
// binds tighter; a child is parenthesized when its level is below the
// minimum its context requires.
const (
	precSeq     = 0
	precAssign  = 1
	precCond    = 2
	precOr      = 3
	precAnd     = 4
	precBitOr   = 5
	precBitXor  = 6
	precBitAnd  = 7
	precEq      = 8
	precRel     = 9
	precShift   = 10
	precAdd     = 11
	precMul     = 12
	precUnary   = 13
	precPostfix = 14
	precNew     = 15
	precCall    = 16
	precPrimary = 17
)

var binaryLevel = map[token.Kind]int{
	token.Pipe:         precBitOr,
	token.Caret:        precBitXor,
	token.Amp:          precBitAnd,
	token.EqEq:         precEq,
	token.NotEq:        precEq,
	token.EqEqEq:       precEq,
	token.NotEqEq:      precEq,
	token.Lt:           precRel,
	token.Gt:           precRel,
	token.Le:           precRel,
	token.Ge:           precRel,
	token.KwIn:         precRel,
	token.KwInstanceof: precRel,
	token.Shl:          precShift,
	token.Shr:          precShift,
	token.UShr:         precShift,
	token.Plus:         precAdd,
	token.Minus:        precAdd,
	token.Star:         precMul,
	token.Slash:        precMul,
	token.Percent:      precMul,
}

func exprLevel(e ast.Expr) int {
	switch v := e.(type) {
	case *ast.Seq:
		return precSeq
	case *ast.Assign:
		return precAssign
	case *ast.FuncLit:
		if v.Arrow {
			return precAssign
		}
		return precPrimary
	case *ast.Cond:
		return precCond
	case *ast.Logical:
		if v.Op == token.PipePipe {
			return precOr
		}
		return precAnd
	case *ast.Binary:
		if lvl, ok := binaryLevel[v.Op]; ok {
			return lvl
		}
		return precPrimary
	case *ast.Unary:
		return precUnary
	case *ast.Update:
		if v.Prefix {
			return precUnary
		}
		return precPostfix
	case *ast.New:
		return precNew
	case *ast.Call, *ast.Member:
		return precCall
	}
	return precPrimary
}

// needsStmtParens reports whether an expression statement must be wrapped in
// parentheses because its leftmost token would be parsed as a declaration or
// block opener.
func needsStmtParens(e ast.Expr) bool {
	for {
		switch v := e.(type) {
		case *ast.FuncLit:
			return !v.Arrow
		case *ast.Object:
			return true
		case *ast.Assign:
			e = v.Target
		case *ast.Binary:
			e = v.L
		case *ast.Logical:
			e = v.L
		case *ast.Cond:
			e = v.Test
		case *ast.Seq:
			if len(v.Exprs) == 0 {
				return false
			}
			e = v.Exprs[0]
		case *ast.Call:
			e = v.Callee
		case *ast.Member:
			e = v.Obj
		case *ast.Update:
			if v.Prefix {
				return false
			}
			e = v.X
		default:
			return false
		}
	}
}

func (g *generator) expr(e ast.Expr, minLevel int) {
	if e == nil {
		g.failf("nil expression")
	}
	if exprLevel(e) < minLevel {
		g.w.Write("(")
		g.exprInner(e)
		g.w.Write(")")
		return
	}
	g.exprInner(e)
}

func (g *generator) exprInner(e ast.Expr) {
	switch v := e.(type) {
	case *ast.Ident:
		g.mark(v)
		g.w.Write(v.Name)

	case *ast.Number:
		g.mark(v)
		g.w.Write(numberRaw(v))

	case *ast.String:
		g.mark(v)
		g.w.Write(stringRaw(v))

	case *ast.Bool:
		g.mark(v)
		if v.Value {
			g.w.Write("true")
		} else {
			g.w.Write("false")
		}

	case *ast.Null:
		g.w.Write("null")

	case *ast.This:
		g.w.Write("this")

	case *ast.Array:
		g.w.Write("[")
		for i, el := range v.Elems {
			if i > 0 {
				g.w.Write(",")
				g.w.Space()
			}
			g.expr(el, precAssign)
		}
		g.w.Write("]")

	case *ast.Object:
		g.objectLit(v)

	case *ast.FuncLit:
		g.funcLit(v)

	case *ast.Unary:
		g.unary(v)

	case *ast.Update:
		if v.Prefix {
			g.w.Write(v.Op.String())
			g.expr(v.X, precUnary)
		} else {
			g.expr(v.X, precPostfix)
			g.w.Write(v.Op.String())
		}

	case *ast.Binary:
		lvl, ok := binaryLevel[v.Op]
		if !ok {
			g.failf("unsupported binary operator %q", v.Op.String())
		}
		g.expr(v.L, lvl)
		g.binOp(v.Op)
		g.expr(v.R, lvl+1)

	case *ast.Logical:
		lvl := exprLevel(v)
		g.expr(v.L, lvl)
		g.w.Space()
		g.w.Write(v.Op.String())
		g.w.Space()
		g.expr(v.R, lvl+1)

	case *ast.Assign:
		g.expr(v.Target, precPostfix)
		g.w.Space()
		g.w.Write(v.Op.String())
		g.w.Space()
		g.expr(v.Value, precAssign)

	case *ast.Cond:
		g.expr(v.Test, precOr)
		g.w.Space()
		g.w.Write("?")
		g.w.Space()
		g.expr(v.Then, precAssign)
		g.w.Space()
		g.w.Write(":")
		g.w.Space()
		g.expr(v.Else, precAssign)

	case *ast.Seq:
		for i, x := range v.Exprs {
			if i > 0 {
				g.w.Write(",")
				g.w.Space()
			}
			g.expr(x, precAssign)
		}

	case *ast.Call:
		g.mark(v)
		g.expr(v.Callee, precCall)
		g.args(v.Args)

	case *ast.New:
		g.w.Write("new ")
		g.expr(v.Callee, precCall)
		g.args(v.Args)

	case *ast.Member:
		g.expr(v.Obj, precCall)
		if v.Computed {
			g.w.Write("[")
			g.expr(v.Prop, 0)
			g.w.Write("]")
		} else {
			id, ok := v.Prop.(*ast.Ident)
			if !ok {
				g.failf("non-identifier property in dot member access")
			}
			g.w.Write(".")
			g.mark(id)
			g.w.Write(id.Name)
		}

	default:
		g.failf("unsupported expression node %T", e)
	}
}

// binOp writes a binary operator, keeping keyword operators separated.
func (g *generator) binOp(op token.Kind) {
	if op == token.KwIn || op == token.KwInstanceof {
		g.w.Sep()
		g.w.Write(op.String())
		g.w.Sep()
		return
	}
	g.w.Space()
	g.w.Write(op.String())
	g.w.Space()
}

func (g *generator) unary(v *ast.Unary) {
	switch v.Op {
	case token.KwTypeof, token.KwVoid, token.KwDelete:
		g.w.Write(v.Op.String())
		g.w.Sep()
		g.expr(v.X, precUnary)
		return
	}
	g.w.Write(v.Op.String())
	// `- -x` and `+ +x` must not collapse into -- / ++.
	if sameSignPrefix(v.Op, v.X) {
		g.w.Sep()
	}
	g.expr(v.X, precUnary)
}

func sameSignPrefix(op token.Kind, x ast.Expr) bool {
	switch v := x.(type) {
	case *ast.Unary:
		return v.Op == op && (op == token.Plus || op == token.Minus)
	case *ast.Update:
		return v.Prefix &&
			((op == token.Plus && v.Op == token.PlusPlus) ||
				(op == token.Minus && v.Op == token.MinusMinus))
	case *ast.Number:
		return op == token.Minus && strings.HasPrefix(numberRaw(v), "-")
	}
	return false
}

func (g *generator) objectLit(v *ast.Object) {
	g.w.Write("{")
	for i, p := range v.Props {
		if i > 0 {
			g.w.Write(",")
			g.w.Space()
		}
		if p.Computed {
			g.w.Write("[")
			g.expr(p.Key, precAssign)
			g.w.Write("]")
		} else {
			switch key := p.Key.(type) {
			case *ast.Ident:
				g.w.Write(key.Name)
			case *ast.String:
				g.w.Write(stringRaw(key))
			case *ast.Number:
				g.w.Write(numberRaw(key))
			default:
				g.failf("unsupported object key node %T", p.Key)
			}
		}
		g.w.Write(":")
		g.w.Space()
		g.expr(p.Value, precAssign)
	}
	g.w.Write("}")
}

func (g *generator) funcLit(v *ast.FuncLit) {
	if v.Arrow {
		if len(v.Params) == 1 {
			g.mark(v.Params[0])
			g.w.Write(v.Params[0].Name)
		} else {
			g.params(v.Params)
		}
		g.w.Space()
		g.w.Write("=>")
		g.w.Space()
		if v.Body != nil {
			g.block(v.Body)
			return
		}
		if v.ExprBody == nil {
			g.failf("arrow function without body")
		}
		// Object-literal bodies would parse as blocks.
		if _, ok := v.ExprBody.(*ast.Object); ok {
			g.w.Write("(")
			g.expr(v.ExprBody, 0)
			g.w.Write(")")
			return
		}
		g.expr(v.ExprBody, precAssign)
		return
	}

	g.w.Write("function")
	if v.Name != nil {
		g.w.Sep()
		g.mark(v.Name)
		g.w.Write(v.Name.Name)
	}
	g.params(v.Params)
	g.w.Space()
	if v.Body == nil {
		g.failf("function expression without body")
	}
	g.block(v.Body)
}

func (g *generator) args(list []ast.Expr) {
	g.w.Write("(")
	for i, a := range list {
		if i > 0 {
			g.w.Write(",")
			g.w.Space()
		}
		g.expr(a, precAssign)
	}
	g.w.Write(")")
}

func numberRaw(v *ast.Number) string {
	if v.Raw != "" {
		return v.Raw
	}
	return strconv.FormatFloat(v.Value, 'g', -1, 64)
}

func stringRaw(v *ast.String) string {
	if v.Raw != "" {
		return v.Raw
	}
	return Quote(v.Value)
}

// Quote renders a string value as a double-quoted JavaScript literal.
func Quote(value string) string {
	var sb strings.Builder
	sb.Grow(len(value) + 2)
	sb.WriteByte('"')
	for _, r := range value {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&sb, `\x%02x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
