package parser

import "veil/internal/token"

// Binding powers for binary operators, highest binds tightest. Logical
// operators build ast.Logical nodes; everything else builds ast.Binary.
const (
	precLogicalOr      = 1
	precLogicalAnd     = 2
	precBitOr          = 3
	precBitXor         = 4
	precBitAnd         = 5
	precEquality       = 6
	precRelational     = 7
	precShift          = 8
	precAdditive       = 9
	precMultiplicative = 10
)

var binaryPrec = map[token.Kind]int{
	token.PipePipe:     precLogicalOr,
	token.AmpAmp:       precLogicalAnd,
	token.Pipe:         precBitOr,
	token.Caret:        precBitXor,
	token.Amp:          precBitAnd,
	token.EqEq:         precEquality,
	token.NotEq:        precEquality,
	token.EqEqEq:       precEquality,
	token.NotEqEq:      precEquality,
	token.Lt:           precRelational,
	token.Gt:           precRelational,
	token.Le:           precRelational,
	token.Ge:           precRelational,
	token.KwIn:         precRelational,
	token.KwInstanceof: precRelational,
	token.Shl:          precShift,
	token.Shr:          precShift,
	token.UShr:         precShift,
	token.Plus:         precAdditive,
	token.Minus:        precAdditive,
	token.Star:         precMultiplicative,
	token.Slash:        precMultiplicative,
	token.Percent:      precMultiplicative,
}

func isLogical(k token.Kind) bool {
	return k == token.AmpAmp || k == token.PipePipe
}

func isUnaryOp(k token.Kind) bool {
	switch k {
	case token.Bang, token.Tilde, token.Plus, token.Minus,
		token.KwTypeof, token.KwVoid, token.KwDelete:
		return true
	}
	return false
}
