package lexer

import (
	"veil/internal/source"
	"veil/internal/token"
)

// scanString consumes a single- or double-quoted string literal including
// quotes. Escape sequences are kept raw; decoding happens in the parser.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Offset()
	quote := lx.cursor.Peek()
	lx.cursor.Advance(1)

	terminated := false
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '\\' {
			lx.cursor.Advance(2)
			continue
		}
		if ch == quote {
			lx.cursor.Advance(1)
			terminated = true
			break
		}
		if ch == '\n' {
			break
		}
		lx.cursor.Advance(1)
	}

	end := lx.cursor.Offset()
	kind := token.String
	if !terminated {
		kind = token.Invalid
	}
	return token.Token{
		Kind: kind,
		Span: source.Span{Start: start, End: end},
		Text: lx.cursor.Slice(start, end),
	}
}
