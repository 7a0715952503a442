package lexer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"veil/internal/source"
	"veil/internal/token"
)

const utf8RuneSelf = utf8.RuneSelf

func isIdentStartByte(ch byte) bool {
	return ch == '_' || ch == '$' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentContinueByte(ch byte) bool {
	return isIdentStartByte(ch) || isDec(ch)
}

func isDec(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isIdentRune covers the non-ASCII part of IdentifierName. Continuation
// positions additionally admit digits, combining marks, and connector
// punctuation (ID_Continue).
func isIdentRune(r rune, continuation bool) bool {
	if unicode.IsLetter(r) {
		return true
	}
	if !continuation {
		return false
	}
	return unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r) ||
		unicode.Is(unicode.Pc, r)
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Offset()
	hasUnicode := false

	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if isIdentContinueByte(ch) {
			lx.cursor.Advance(1)
			continue
		}
		if ch >= utf8RuneSelf {
			r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Offset():])
			if r == utf8.RuneError || !isIdentRune(r, lx.cursor.Offset() > start) {
				break
			}
			hasUnicode = true
			lx.cursor.Advance(uint32(size)) // #nosec G115 -- rune size is 1..4
			continue
		}
		break
	}

	end := lx.cursor.Offset()
	if start == end {
		// Lone non-identifier rune; consume it as invalid.
		_, size := utf8.DecodeRune(lx.file.Content[start:])
		lx.cursor.Advance(uint32(size)) // #nosec G115
		end = lx.cursor.Offset()
		return token.Token{Kind: token.Invalid, Span: source.Span{Start: start, End: end}, Text: lx.cursor.Slice(start, end)}
	}

	text := lx.cursor.Slice(start, end)
	if hasUnicode {
		// ECMA-262 requires IdentifierName to be NFC-normalized.
		text = norm.NFC.String(text)
	}

	kind := token.Ident
	if kw, ok := token.LookupKeyword(text); ok {
		kind = kw
	}
	return token.Token{Kind: kind, Span: source.Span{Start: start, End: end}, Text: text}
}
