package lexer

import (
	"veil/internal/source"
	"veil/internal/token"
)

func isHex(ch byte) bool {
	return isDec(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Offset()

	if lx.cursor.Peek() == '0' && (lx.cursor.PeekAt(1) == 'x' || lx.cursor.PeekAt(1) == 'X') {
		lx.cursor.Advance(2)
		for !lx.cursor.EOF() && isHex(lx.cursor.Peek()) {
			lx.cursor.Advance(1)
		}
		return lx.numberToken(start)
	}

	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Advance(1)
	}
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		lx.cursor.Advance(1)
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Advance(1)
		}
	} else if lx.cursor.Peek() == '.' && lx.cursor.Offset() > start {
		// Trailing dot form: "1." is a valid numeric literal.
		lx.cursor.Advance(1)
	}
	if ch := lx.cursor.Peek(); ch == 'e' || ch == 'E' {
		next := lx.cursor.PeekAt(1)
		if isDec(next) || ((next == '+' || next == '-') && isDec(lx.cursor.PeekAt(2))) {
			lx.cursor.Advance(2)
			for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
				lx.cursor.Advance(1)
			}
		}
	}
	return lx.numberToken(start)
}

func (lx *Lexer) numberToken(start uint32) token.Token {
	end := lx.cursor.Offset()
	return token.Token{
		Kind: token.Number,
		Span: source.Span{Start: start, End: end},
		Text: lx.cursor.Slice(start, end),
	}
}
