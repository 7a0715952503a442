package lexer

import (
	"veil/internal/source"
	"veil/internal/token"
)

type opEntry struct {
	text string
	kind token.Kind
}

// opTable is ordered longest-first so the scanner can take the first match.
var opTable = []opEntry{
	{">>>", token.UShr},
	{"===", token.EqEqEq},
	{"!==", token.NotEqEq},
	{"=>", token.Arrow},
	{"==", token.EqEq},
	{"!=", token.NotEq},
	{"<=", token.Le},
	{">=", token.Ge},
	{"&&", token.AmpAmp},
	{"||", token.PipePipe},
	{"++", token.PlusPlus},
	{"--", token.MinusMinus},
	{"+=", token.PlusAssign},
	{"-=", token.MinusAssign},
	{"*=", token.StarAssign},
	{"/=", token.SlashAssign},
	{"%=", token.PercentAssign},
	{"<<", token.Shl},
	{">>", token.Shr},
	{"(", token.LParen},
	{")", token.RParen},
	{"{", token.LBrace},
	{"}", token.RBrace},
	{"[", token.LBracket},
	{"]", token.RBracket},
	{";", token.Semi},
	{",", token.Comma},
	{":", token.Colon},
	{"?", token.Question},
	{".", token.Dot},
	{"=", token.Assign},
	{"+", token.Plus},
	{"-", token.Minus},
	{"*", token.Star},
	{"/", token.Slash},
	{"%", token.Percent},
	{"<", token.Lt},
	{">", token.Gt},
	{"!", token.Bang},
	{"~", token.Tilde},
	{"&", token.Amp},
	{"|", token.Pipe},
	{"^", token.Caret},
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Offset()
	for _, op := range opTable {
		if lx.matches(op.text) {
			lx.cursor.Advance(uint32(len(op.text))) // #nosec G115 -- table entries are 1..3 bytes
			return token.Token{
				Kind: op.kind,
				Span: source.Span{Start: start, End: lx.cursor.Offset()},
				Text: op.text,
			}
		}
	}

	lx.cursor.Advance(1)
	end := lx.cursor.Offset()
	return token.Token{
		Kind: token.Invalid,
		Span: source.Span{Start: start, End: end},
		Text: lx.cursor.Slice(start, end),
	}
}

func (lx *Lexer) matches(text string) bool {
	for i := range len(text) {
		if lx.cursor.PeekAt(uint32(i)) != text[i] { // #nosec G115
			return false
		}
	}
	return true
}
