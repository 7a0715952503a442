package token

import "veil/internal/source"

// TriviaKind classifies non-significant source content.
type TriviaKind uint8

const (
	// TriviaSpace is a run of horizontal whitespace.
	TriviaSpace TriviaKind = iota
	// TriviaNewline is a line terminator.
	TriviaNewline
	// TriviaLineComment is a '//' comment without its terminator.
	TriviaLineComment
	// TriviaBlockComment is a '/* */' comment including delimiters.
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Unknown"
}

// Trivia is a single piece of whitespace or comment content.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
