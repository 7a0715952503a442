package parser

import (
	"veil/internal/ast"
	"veil/internal/token"
)

// parseStatements parses until the closing kind is reached (without
// consuming it) and returns the statements plus any comments that were left
// dangling in front of the terminator.
func (p *Parser) parseStatements(end token.Kind) ([]ast.Stmt, []ast.Comment) {
	var body []ast.Stmt
	for {
		tok := p.lx.Peek()
		if tok.Kind == end || tok.Kind == token.EOF {
			var trailing []ast.Comment
			if p.opts.AttachComments {
				for _, tr := range tok.Comments() {
					trailing = append(trailing, triviaComment(tr))
				}
			}
			return body, trailing
		}
		body = append(body, p.parseStmt())
	}
}

func (p *Parser) parseStmt() ast.Stmt {
	tok := p.lx.Peek()
	comments := p.comments(tok)

	var stmt ast.Stmt
	switch tok.Kind {
	case token.KwVar, token.KwLet, token.KwConst:
		decl := p.parseVarDecl()
		p.expectSemi()
		decl.Loc = p.spanFrom(tok.Span)
		stmt = decl
	case token.KwFunction:
		stmt = p.parseFuncDecl()
	case token.LBrace:
		stmt = p.parseBlock()
	case token.KwIf:
		stmt = p.parseIf()
	case token.KwWhile:
		stmt = p.parseWhile()
	case token.KwFor:
		stmt = p.parseFor()
	case token.KwSwitch:
		stmt = p.parseSwitch()
	case token.KwReturn:
		p.next()
		ret := &ast.ReturnStmt{}
		if !p.at(token.Semi) && !p.at(token.RBrace) && !p.at(token.EOF) {
			ret.Arg = p.parseExpression()
		}
		p.expectSemi()
		ret.Loc = p.spanFrom(tok.Span)
		stmt = ret
	case token.KwBreak:
		p.next()
		p.expectSemi()
		stmt = &ast.BreakStmt{Loc: p.spanFrom(tok.Span)}
	case token.KwContinue:
		p.next()
		p.expectSemi()
		stmt = &ast.ContinueStmt{Loc: p.spanFrom(tok.Span)}
	case token.Semi:
		p.next()
		stmt = &ast.EmptyStmt{Loc: p.span(tok)}
	case token.Invalid:
		p.next()
		p.fail(tok.Span, "unexpected character sequence %q", tok.Text)
		return nil
	default:
		x := p.parseExpression()
		p.expectSemi()
		stmt = &ast.ExprStmt{X: x, Loc: p.spanFrom(tok.Span)}
	}

	if len(comments) > 0 {
		ast.SetLeadingComments(stmt, comments)
	}
	return stmt
}

// parseVarDecl parses a declaration without its terminating semicolon so it
// can serve both statement and for-init positions.
func (p *Parser) parseVarDecl() *ast.VarDecl {
	kw := p.next()
	decl := &ast.VarDecl{Loc: p.span(kw)}
	switch kw.Kind {
	case token.KwLet:
		decl.Kind = ast.DeclLet
	case token.KwConst:
		decl.Kind = ast.DeclConst
	default:
		decl.Kind = ast.DeclVar
	}

	for {
		name := p.expect(token.Ident)
		d := &ast.Declarator{
			Name: &ast.Ident{Name: name.Text, Loc: p.span(name)},
			Loc:  p.span(name),
		}
		if p.at(token.Assign) {
			p.next()
			d.Init = p.parseAssignExpr()
			d.Loc = p.spanFrom(name.Span)
		}
		decl.Decls = append(decl.Decls, d)
		if !p.at(token.Comma) {
			break
		}
		p.next()
	}
	decl.Loc = p.spanFrom(kw.Span)
	return decl
}

func (p *Parser) parseFuncDecl() ast.Stmt {
	kw := p.expect(token.KwFunction)
	name := p.expect(token.Ident)
	params := p.parseParams()
	body := p.parseBlock()
	return &ast.FuncDecl{
		Name:   &ast.Ident{Name: name.Text, Loc: p.span(name)},
		Params: params,
		Body:   body,
		Loc:    p.spanFrom(kw.Span),
	}
}

func (p *Parser) parseParams() []*ast.Ident {
	p.expect(token.LParen)
	var params []*ast.Ident
	for !p.at(token.RParen) {
		name := p.expect(token.Ident)
		params = append(params, &ast.Ident{Name: name.Text, Loc: p.span(name)})
		if !p.at(token.Comma) {
			break
		}
		p.next()
	}
	p.expect(token.RParen)
	return params
}

func (p *Parser) parseBlock() *ast.BlockStmt {
	open := p.expect(token.LBrace)
	body, _ := p.parseStatements(token.RBrace)
	markDirectives(body)
	p.expect(token.RBrace)
	return &ast.BlockStmt{Body: body, Loc: p.spanFrom(open.Span)}
}

func (p *Parser) parseIf() ast.Stmt {
	kw := p.expect(token.KwIf)
	p.expect(token.LParen)
	cond := p.parseExpression()
	p.expect(token.RParen)
	then := p.parseStmt()
	stmt := &ast.IfStmt{Cond: cond, Then: then}
	if p.at(token.KwElse) {
		p.next()
		stmt.Else = p.parseStmt()
	}
	stmt.Loc = p.spanFrom(kw.Span)
	return stmt
}

func (p *Parser) parseWhile() ast.Stmt {
	kw := p.expect(token.KwWhile)
	p.expect(token.LParen)
	cond := p.parseExpression()
	p.expect(token.RParen)
	body := p.parseStmt()
	return &ast.WhileStmt{Cond: cond, Body: body, Loc: p.spanFrom(kw.Span)}
}

func (p *Parser) parseFor() ast.Stmt {
	kw := p.expect(token.KwFor)
	p.expect(token.LParen)
	stmt := &ast.ForStmt{}

	if !p.at(token.Semi) {
		if k := p.lx.Peek().Kind; k == token.KwVar || k == token.KwLet || k == token.KwConst {
			stmt.Init = p.parseVarDecl()
		} else {
			tok := p.lx.Peek()
			x := p.parseExpression()
			stmt.Init = &ast.ExprStmt{X: x, Loc: p.spanFrom(tok.Span)}
		}
	}
	p.expect(token.Semi)
	if !p.at(token.Semi) {
		stmt.Cond = p.parseExpression()
	}
	p.expect(token.Semi)
	if !p.at(token.RParen) {
		stmt.Post = p.parseExpression()
	}
	p.expect(token.RParen)
	stmt.Body = p.parseStmt()
	stmt.Loc = p.spanFrom(kw.Span)
	return stmt
}

func (p *Parser) parseSwitch() ast.Stmt {
	kw := p.expect(token.KwSwitch)
	p.expect(token.LParen)
	disc := p.parseExpression()
	p.expect(token.RParen)
	p.expect(token.LBrace)

	stmt := &ast.SwitchStmt{Disc: disc}
	seenDefault := false
	for !p.at(token.RBrace) {
		tok := p.next()
		c := &ast.SwitchCase{Loc: p.span(tok)}
		switch tok.Kind {
		case token.KwCase:
			c.Test = p.parseExpression()
		case token.KwDefault:
			if seenDefault {
				p.fail(tok.Span, "duplicate default clause in switch")
			}
			seenDefault = true
		default:
			p.fail(tok.Span, "expected \"case\" or \"default\", found %q", describe(tok))
		}
		p.expect(token.Colon)
		for !p.at(token.KwCase) && !p.at(token.KwDefault) && !p.at(token.RBrace) {
			c.Body = append(c.Body, p.parseStmt())
		}
		c.Loc = p.spanFrom(tok.Span)
		stmt.Cases = append(stmt.Cases, c)
	}
	p.expect(token.RBrace)
	stmt.Loc = p.spanFrom(kw.Span)
	return stmt
}
