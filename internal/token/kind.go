package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Number represents a numeric literal token.
	Number
	// String represents a string literal token.
	String

	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwTypeof represents the 'typeof' keyword.
	KwTypeof // typeof
	// KwDelete represents the 'delete' keyword.
	KwDelete // delete
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwInstanceof represents the 'instanceof' keyword.
	KwInstanceof // instanceof
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwTrue represents the 'true' literal keyword.
	KwTrue // true
	// KwFalse represents the 'false' literal keyword.
	KwFalse // false
	// KwNull represents the 'null' literal keyword.
	KwNull // null

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Semi represents ';'.
	Semi // ;
	// Comma represents ','.
	Comma // ,
	// Colon represents ':'.
	Colon // :
	// Question represents '?'.
	Question // ?
	// Dot represents '.'.
	Dot // .
	// Arrow represents '=>'.
	Arrow // =>

	// Assign represents '='.
	Assign // =
	// PlusAssign represents '+='.
	PlusAssign // +=
	// MinusAssign represents '-='.
	MinusAssign // -=
	// StarAssign represents '*='.
	StarAssign // *=
	// SlashAssign represents '/='.
	SlashAssign // /=
	// PercentAssign represents '%='.
	PercentAssign // %=

	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Star represents '*'.
	Star // *
	// Slash represents '/'.
	Slash // /
	// Percent represents '%'.
	Percent // %
	// PlusPlus represents '++'.
	PlusPlus // ++
	// MinusMinus represents '--'.
	MinusMinus // --

	// EqEq represents '=='.
	EqEq // ==
	// NotEq represents '!='.
	NotEq // !=
	// EqEqEq represents '==='.
	EqEqEq // ===
	// NotEqEq represents '!=='.
	NotEqEq // !==
	// Lt represents '<'.
	Lt // <
	// Gt represents '>'.
	Gt // >
	// Le represents '<='.
	Le // <=
	// Ge represents '>='.
	Ge // >=

	// AmpAmp represents '&&'.
	AmpAmp // &&
	// PipePipe represents '||'.
	PipePipe // ||
	// Bang represents '!'.
	Bang // !
	// Tilde represents '~'.
	Tilde // ~
	// Amp represents '&'.
	Amp // &
	// Pipe represents '|'.
	Pipe // |
	// Caret represents '^'.
	Caret // ^
	// Shl represents '<<'.
	Shl // <<
	// Shr represents '>>'.
	Shr // >>
	// UShr represents '>>>'.
	UShr // >>>

	kindCount
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	Number:        "Number",
	String:        "String",
	KwVar:         "var",
	KwLet:         "let",
	KwConst:       "const",
	KwFunction:    "function",
	KwReturn:      "return",
	KwIf:          "if",
	KwElse:        "else",
	KwWhile:       "while",
	KwFor:         "for",
	KwSwitch:      "switch",
	KwCase:        "case",
	KwDefault:     "default",
	KwBreak:       "break",
	KwContinue:    "continue",
	KwNew:         "new",
	KwTypeof:      "typeof",
	KwDelete:      "delete",
	KwVoid:        "void",
	KwIn:          "in",
	KwInstanceof:  "instanceof",
	KwThis:        "this",
	KwTrue:        "true",
	KwFalse:       "false",
	KwNull:        "null",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	LBracket:      "[",
	RBracket:      "]",
	Semi:          ";",
	Comma:         ",",
	Colon:         ":",
	Question:      "?",
	Dot:           ".",
	Arrow:         "=>",
	Assign:        "=",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	PlusPlus:      "++",
	MinusMinus:    "--",
	EqEq:          "==",
	NotEq:         "!=",
	EqEqEq:        "===",
	NotEqEq:       "!==",
	Lt:            "<",
	Gt:            ">",
	Le:            "<=",
	Ge:            ">=",
	AmpAmp:        "&&",
	PipePipe:      "||",
	Bang:          "!",
	Tilde:         "~",
	Amp:           "&",
	Pipe:          "|",
	Caret:         "^",
	Shl:           "<<",
	Shr:           ">>",
	UShr:          ">>>",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// IsKeyword reports whether the kind is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwVar && k <= KwNull
}

// IsAssign reports whether the kind is an assignment operator.
func (k Kind) IsAssign() bool {
	return k >= Assign && k <= PercentAssign
}
