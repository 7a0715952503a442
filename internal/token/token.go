package token

import "veil/internal/source"

// Token is a single significant token with its leading trivia attached.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// Comments returns the comment trivia attached in front of the token.
func (t Token) Comments() []Trivia {
	var out []Trivia
	for _, tr := range t.Leading {
		if tr.Kind == TriviaLineComment || tr.Kind == TriviaBlockComment {
			out = append(out, tr)
		}
	}
	return out
}
