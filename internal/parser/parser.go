// Package parser builds the program tree from the lexer's token stream.
//
// Parsing is fail-fast: the first syntax error aborts the parse and is
// returned as *Error carrying the offending position. The obfuscation
// pipeline never retries a failed parse.
package parser

import (
	"fmt"

	"veil/internal/ast"
	"veil/internal/lexer"
	"veil/internal/source"
	"veil/internal/token"
)

// Options controls parsing behavior for one file.
type Options struct {
	// AttachComments records comment trivia onto statements and the program.
	AttachComments bool
	// TrackLocations records source spans onto nodes. When disabled all
	// node spans are zero and no positional mapping can be produced.
	TrackLocations bool
}

// Error is a fatal syntax error.
type Error struct {
	Msg  string
	Span source.Span
	Pos  source.LineCol
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Msg)
}

// Parser holds the state for parsing one file.
type Parser struct {
	lx      *lexer.Lexer
	file    *source.File
	opts    Options
	lastEnd uint32 // end offset of the last consumed token
}

// bail is the panic sentinel used for fail-fast error propagation.
type bail struct{ err *Error }

// Parse parses the whole file into a Program.
func Parse(file *source.File, opts Options) (prog *ast.Program, err error) {
	lx := lexer.New(file, lexer.Options{})
	p := &Parser{lx: lx, file: file, opts: opts}

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bail)
			if !ok {
				panic(r)
			}
			prog = nil
			err = b.err
		}
	}()

	body, trailing := p.parseStatements(token.EOF)
	markDirectives(body)

	prog = &ast.Program{Body: body}
	if p.opts.TrackLocations {
		end := uint32(len(file.Content)) // #nosec G115 -- checked in source.New
		prog.Loc = source.Span{Start: 0, End: end}
	}
	if p.opts.AttachComments && len(body) == 0 {
		// A statement-less file keeps its comments on the program node.
		prog.Comments = trailing
	}
	return prog, nil
}

func (p *Parser) fail(span source.Span, format string, args ...any) {
	pos, _ := p.file.Resolve(span)
	panic(bail{err: &Error{
		Msg:  fmt.Sprintf(format, args...),
		Span: span,
		Pos:  pos,
	}})
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) next() token.Token {
	tok := p.lx.Next()
	p.lastEnd = tok.Span.End
	return tok
}

func (p *Parser) expect(k token.Kind) token.Token {
	tok := p.next()
	if tok.Kind != k {
		p.fail(tok.Span, "expected %q, found %q", k.String(), describe(tok))
	}
	return tok
}

// expectSemi consumes a statement terminator. A closing brace or EOF is an
// acceptable terminator without an explicit semicolon.
func (p *Parser) expectSemi() {
	switch p.lx.Peek().Kind {
	case token.Semi:
		p.next()
	case token.RBrace, token.EOF:
	default:
		tok := p.lx.Peek()
		p.fail(tok.Span, "expected \";\", found %q", describe(tok))
	}
}

func (p *Parser) span(tok token.Token) source.Span {
	if !p.opts.TrackLocations {
		return source.Span{}
	}
	return tok.Span
}

func (p *Parser) spanFrom(start source.Span) source.Span {
	if !p.opts.TrackLocations {
		return source.Span{}
	}
	end := p.lastEnd
	if end < start.Start {
		end = start.End
	}
	return source.Span{Start: start.Start, End: end}
}

func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of input"
	}
	if tok.Text != "" {
		return tok.Text
	}
	return tok.Kind.String()
}

// comments converts a token's leading trivia into attached comments.
func (p *Parser) comments(tok token.Token) []ast.Comment {
	if !p.opts.AttachComments {
		return nil
	}
	var out []ast.Comment
	for _, tr := range tok.Comments() {
		out = append(out, triviaComment(tr))
	}
	return out
}

func triviaComment(tr token.Trivia) ast.Comment {
	c := ast.Comment{Loc: tr.Span}
	switch tr.Kind {
	case token.TriviaLineComment:
		c.Text = tr.Text[2:]
	case token.TriviaBlockComment:
		c.Block = true
		text := tr.Text[2:]
		if len(text) >= 2 && text[len(text)-2:] == "*/" {
			text = text[:len(text)-2]
		}
		c.Text = text
	}
	return c
}

// markDirectives flags the directive prologue ("use strict" and friends) on
// the leading run of string expression statements.
func markDirectives(body []ast.Stmt) {
	for _, s := range body {
		es, ok := s.(*ast.ExprStmt)
		if !ok {
			return
		}
		str, ok := es.X.(*ast.String)
		if !ok {
			return
		}
		es.Directive = str.Value
	}
}
