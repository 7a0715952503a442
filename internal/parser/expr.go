package parser

import (
	"veil/internal/ast"
	"veil/internal/token"
)

// parseExpression parses a full expression including comma sequences.
func (p *Parser) parseExpression() ast.Expr {
	start := p.lx.Peek().Span
	first := p.parseAssignExpr()
	if !p.at(token.Comma) {
		return first
	}
	seq := &ast.Seq{Exprs: []ast.Expr{first}}
	for p.at(token.Comma) {
		p.next()
		seq.Exprs = append(seq.Exprs, p.parseAssignExpr())
	}
	seq.Loc = p.spanFrom(start)
	return seq
}

func (p *Parser) parseAssignExpr() ast.Expr {
	start := p.lx.Peek().Span
	left := p.parseCondExpr()

	op := p.lx.Peek()
	if !op.Kind.IsAssign() {
		return left
	}
	if !isAssignTarget(left) {
		p.fail(op.Span, "invalid assignment target")
	}
	p.next()
	value := p.parseAssignExpr() // right-associative
	return &ast.Assign{Op: op.Kind, Target: left, Value: value, Loc: p.spanFrom(start)}
}

func isAssignTarget(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Ident, *ast.Member:
		return true
	}
	return false
}

func (p *Parser) parseCondExpr() ast.Expr {
	start := p.lx.Peek().Span
	test := p.parseBinaryExpr(1)
	if !p.at(token.Question) {
		return test
	}
	p.next()
	then := p.parseAssignExpr()
	p.expect(token.Colon)
	els := p.parseAssignExpr()
	return &ast.Cond{Test: test, Then: then, Else: els, Loc: p.spanFrom(start)}
}

func (p *Parser) parseBinaryExpr(minPrec int) ast.Expr {
	start := p.lx.Peek().Span
	left := p.parseUnaryExpr()

	for {
		op := p.lx.Peek()
		prec, ok := binaryPrec[op.Kind]
		if !ok || prec < minPrec {
			return left
		}
		p.next()
		right := p.parseBinaryExpr(prec + 1)
		if isLogical(op.Kind) {
			left = &ast.Logical{Op: op.Kind, L: left, R: right, Loc: p.spanFrom(start)}
		} else {
			left = &ast.Binary{Op: op.Kind, L: left, R: right, Loc: p.spanFrom(start)}
		}
	}
}

func (p *Parser) parseUnaryExpr() ast.Expr {
	tok := p.lx.Peek()
	if isUnaryOp(tok.Kind) {
		p.next()
		x := p.parseUnaryExpr()
		return &ast.Unary{Op: tok.Kind, X: x, Loc: p.spanFrom(tok.Span)}
	}
	if tok.Kind == token.PlusPlus || tok.Kind == token.MinusMinus {
		p.next()
		x := p.parseUnaryExpr()
		if !isAssignTarget(x) {
			p.fail(tok.Span, "invalid increment/decrement target")
		}
		return &ast.Update{Op: tok.Kind, Prefix: true, X: x, Loc: p.spanFrom(tok.Span)}
	}
	return p.parsePostfixExpr()
}

func (p *Parser) parsePostfixExpr() ast.Expr {
	start := p.lx.Peek().Span
	x := p.parseCallExpr()

	if tok := p.lx.Peek(); tok.Kind == token.PlusPlus || tok.Kind == token.MinusMinus {
		if !isAssignTarget(x) {
			p.fail(tok.Span, "invalid increment/decrement target")
		}
		p.next()
		return &ast.Update{Op: tok.Kind, Prefix: false, X: x, Loc: p.spanFrom(start)}
	}
	return x
}

func (p *Parser) parseCallExpr() ast.Expr {
	start := p.lx.Peek().Span
	x := p.parsePrimary()

	for {
		switch p.lx.Peek().Kind {
		case token.Dot:
			p.next()
			prop := p.next()
			if prop.Kind != token.Ident && !prop.Kind.IsKeyword() {
				p.fail(prop.Span, "expected property name, found %q", describe(prop))
			}
			x = &ast.Member{
				Obj:  x,
				Prop: &ast.Ident{Name: prop.Text, Loc: p.span(prop)},
				Loc:  p.spanFrom(start),
			}
		case token.LBracket:
			p.next()
			idx := p.parseExpression()
			p.expect(token.RBracket)
			x = &ast.Member{Obj: x, Prop: idx, Computed: true, Loc: p.spanFrom(start)}
		case token.LParen:
			args := p.parseArgs()
			x = &ast.Call{Callee: x, Args: args, Loc: p.spanFrom(start)}
		default:
			return x
		}
	}
}

func (p *Parser) parseArgs() []ast.Expr {
	p.expect(token.LParen)
	var args []ast.Expr
	for !p.at(token.RParen) {
		args = append(args, p.parseAssignExpr())
		if !p.at(token.Comma) {
			break
		}
		p.next()
	}
	p.expect(token.RParen)
	return args
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Number:
		p.next()
		value, err := decodeNumber(tok.Text)
		if err != nil {
			p.fail(tok.Span, "invalid numeric literal %q", tok.Text)
		}
		return &ast.Number{Value: value, Raw: tok.Text, Loc: p.span(tok)}

	case token.String:
		p.next()
		value, err := decodeString(tok.Text)
		if err != nil {
			p.fail(tok.Span, "invalid string literal %q", tok.Text)
		}
		return &ast.String{Value: value, Raw: tok.Text, Loc: p.span(tok)}

	case token.KwTrue, token.KwFalse:
		p.next()
		return &ast.Bool{Value: tok.Kind == token.KwTrue, Loc: p.span(tok)}

	case token.KwNull:
		p.next()
		return &ast.Null{Loc: p.span(tok)}

	case token.KwThis:
		p.next()
		return &ast.This{Loc: p.span(tok)}

	case token.Ident:
		p.next()
		id := &ast.Ident{Name: tok.Text, Loc: p.span(tok)}
		// Single-parameter arrow function: x => body.
		if p.at(token.Arrow) {
			return p.parseArrowTail(id, tok)
		}
		return id

	case token.LParen:
		p.next()
		x := p.parseExpression()
		p.expect(token.RParen)
		return x

	case token.LBracket:
		return p.parseArrayLit()

	case token.LBrace:
		return p.parseObjectLit()

	case token.KwFunction:
		return p.parseFuncLit()

	case token.KwNew:
		return p.parseNewExpr()

	case token.Invalid:
		p.next()
		p.fail(tok.Span, "unexpected character sequence %q", tok.Text)
	}

	p.next()
	p.fail(tok.Span, "unexpected %q", describe(tok))
	return nil
}

func (p *Parser) parseArrowTail(param *ast.Ident, start token.Token) ast.Expr {
	p.expect(token.Arrow)
	fn := &ast.FuncLit{Arrow: true, Params: []*ast.Ident{param}}
	if p.at(token.LBrace) {
		fn.Body = p.parseBlock()
	} else {
		fn.ExprBody = p.parseAssignExpr()
	}
	fn.Loc = p.spanFrom(start.Span)
	return fn
}

func (p *Parser) parseArrayLit() ast.Expr {
	open := p.expect(token.LBracket)
	arr := &ast.Array{}
	for !p.at(token.RBracket) {
		arr.Elems = append(arr.Elems, p.parseAssignExpr())
		if !p.at(token.Comma) {
			break
		}
		p.next()
	}
	p.expect(token.RBracket)
	arr.Loc = p.spanFrom(open.Span)
	return arr
}

func (p *Parser) parseObjectLit() ast.Expr {
	open := p.expect(token.LBrace)
	obj := &ast.Object{}
	for !p.at(token.RBrace) {
		obj.Props = append(obj.Props, p.parseProperty())
		if !p.at(token.Comma) {
			break
		}
		p.next()
	}
	p.expect(token.RBrace)
	obj.Loc = p.spanFrom(open.Span)
	return obj
}

func (p *Parser) parseProperty() *ast.Property {
	tok := p.lx.Peek()
	prop := &ast.Property{}
	switch {
	case tok.Kind == token.LBracket:
		p.next()
		prop.Key = p.parseAssignExpr()
		prop.Computed = true
		p.expect(token.RBracket)
	case tok.Kind == token.Ident || tok.Kind.IsKeyword():
		p.next()
		prop.Key = &ast.Ident{Name: tok.Text, Loc: p.span(tok)}
	case tok.Kind == token.String:
		p.next()
		value, err := decodeString(tok.Text)
		if err != nil {
			p.fail(tok.Span, "invalid string literal %q", tok.Text)
		}
		prop.Key = &ast.String{Value: value, Raw: tok.Text, Loc: p.span(tok)}
	case tok.Kind == token.Number:
		p.next()
		value, err := decodeNumber(tok.Text)
		if err != nil {
			p.fail(tok.Span, "invalid numeric literal %q", tok.Text)
		}
		prop.Key = &ast.Number{Value: value, Raw: tok.Text, Loc: p.span(tok)}
	default:
		p.fail(tok.Span, "expected property key, found %q", describe(tok))
	}
	p.expect(token.Colon)
	prop.Value = p.parseAssignExpr()
	prop.Loc = p.spanFrom(tok.Span)
	return prop
}

func (p *Parser) parseFuncLit() ast.Expr {
	kw := p.expect(token.KwFunction)
	fn := &ast.FuncLit{}
	if p.at(token.Ident) {
		name := p.next()
		fn.Name = &ast.Ident{Name: name.Text, Loc: p.span(name)}
	}
	fn.Params = p.parseParams()
	fn.Body = p.parseBlock()
	fn.Loc = p.spanFrom(kw.Span)
	return fn
}

// parseNewExpr parses `new Callee(args)` where the callee is a primary
// expression plus member accesses (calls bind to the new expression itself).
func (p *Parser) parseNewExpr() ast.Expr {
	kw := p.expect(token.KwNew)
	callee := p.parsePrimary()
	for {
		switch p.lx.Peek().Kind {
		case token.Dot:
			p.next()
			prop := p.expect(token.Ident)
			callee = &ast.Member{
				Obj:  callee,
				Prop: &ast.Ident{Name: prop.Text, Loc: p.span(prop)},
				Loc:  p.spanFrom(kw.Span),
			}
			continue
		case token.LBracket:
			p.next()
			idx := p.parseExpression()
			p.expect(token.RBracket)
			callee = &ast.Member{Obj: callee, Prop: idx, Computed: true, Loc: p.spanFrom(kw.Span)}
			continue
		}
		break
	}
	n := &ast.New{Callee: callee}
	if p.at(token.LParen) {
		n.Args = p.parseArgs()
	}
	n.Loc = p.spanFrom(kw.Span)
	return n
}
