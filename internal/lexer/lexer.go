// Package lexer tokenizes the JavaScript subset accepted by the obfuscator.
package lexer

import (
	"veil/internal/source"
	"veil/internal/token"
)

// Options controls lexing behavior.
type Options struct {
	// KeepSpaces retains whitespace trivia in Token.Leading. Comments are
	// always retained; spaces are only useful for debug dumps.
	KeepSpaces bool
}

// Lexer produces significant tokens with leading trivia attached.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // accumulated leading trivia
}

// New creates a lexer over file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// File returns the underlying source file.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// Next returns the next significant token with its leading trivia collected.
// After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind:    token.EOF,
			Span:    lx.emptySpan(),
			Leading: lx.takeHold(),
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '.' && isDec(lx.cursor.PeekAt(1)):
		tok = lx.scanNumber()
	case ch == '"' || ch == '\'':
		tok = lx.scanString()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.takeHold()
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns a zero-width span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return lx.emptySpan()
}

func (lx *Lexer) emptySpan() source.Span {
	off := lx.cursor.Offset()
	return source.Span{Start: off, End: off}
}

func (lx *Lexer) takeHold() []token.Trivia {
	hold := lx.hold
	lx.hold = nil
	return hold
}

func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			start := lx.cursor.Offset()
			for !lx.cursor.EOF() {
				b := lx.cursor.Peek()
				if b != ' ' && b != '\t' && b != '\r' {
					break
				}
				lx.cursor.Advance(1)
			}
			if lx.opts.KeepSpaces {
				lx.pushTrivia(token.TriviaSpace, start)
			}
		case ch == '\n':
			start := lx.cursor.Offset()
			lx.cursor.Advance(1)
			if lx.opts.KeepSpaces {
				lx.pushTrivia(token.TriviaNewline, start)
			}
		case ch == '/' && lx.cursor.PeekAt(1) == '/':
			start := lx.cursor.Offset()
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Advance(1)
			}
			lx.pushTrivia(token.TriviaLineComment, start)
		case ch == '/' && lx.cursor.PeekAt(1) == '*':
			start := lx.cursor.Offset()
			lx.cursor.Advance(2)
			for !lx.cursor.EOF() {
				if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
					lx.cursor.Advance(2)
					break
				}
				lx.cursor.Advance(1)
			}
			lx.pushTrivia(token.TriviaBlockComment, start)
		default:
			return
		}
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start uint32) {
	end := lx.cursor.Offset()
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: source.Span{Start: start, End: end},
		Text: lx.cursor.Slice(start, end),
	})
}
