package lexer

import (
	"testing"

	"veil/internal/source"
	"veil/internal/token"
)

func scanAll(t *testing.T, input string) []token.Token {
	t.Helper()
	file := source.New("test.js", []byte(input), source.FileVirtual)
	lx := New(file, Options{})
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestScanKinds(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Kind
	}{
		{
			"var a = 1;",
			[]token.Kind{token.KwVar, token.Ident, token.Assign, token.Number, token.Semi, token.EOF},
		},
		{
			"a === b",
			[]token.Kind{token.Ident, token.EqEqEq, token.Ident, token.EOF},
		},
		{
			"x >>> 2",
			[]token.Kind{token.Ident, token.UShr, token.Number, token.EOF},
		},
		{
			"f(x)",
			[]token.Kind{token.Ident, token.LParen, token.Ident, token.RParen, token.EOF},
		},
		{
			"x => x",
			[]token.Kind{token.Ident, token.Arrow, token.Ident, token.EOF},
		},
		{
			"i++; --j",
			[]token.Kind{token.Ident, token.PlusPlus, token.Semi, token.MinusMinus, token.Ident, token.EOF},
		},
		{
			"a.b['c']",
			[]token.Kind{token.Ident, token.Dot, token.Ident, token.LBracket, token.String, token.RBracket, token.EOF},
		},
		{
			"typeof new this",
			[]token.Kind{token.KwTypeof, token.KwNew, token.KwThis, token.EOF},
		},
		{
			"",
			[]token.Kind{token.EOF},
		},
	}
	for _, tt := range tests {
		got := kinds(scanAll(t, tt.input))
		if len(got) != len(tt.want) {
			t.Errorf("scan(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("scan(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestScanNumbers(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"42", "42"},
		{"1.5", "1.5"},
		{".5", ".5"},
		{"0xFF", "0xFF"},
		{"1e10", "1e10"},
		{"2.5e-3", "2.5e-3"},
	}
	for _, tt := range tests {
		tokens := scanAll(t, tt.input)
		if tokens[0].Kind != token.Number {
			t.Errorf("scan(%q) kind = %v, want Number", tt.input, tokens[0].Kind)
			continue
		}
		if tokens[0].Text != tt.text {
			t.Errorf("scan(%q) text = %q, want %q", tt.input, tokens[0].Text, tt.text)
		}
	}
}

func TestScanStrings(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{`"hello"`, token.String},
		{`'world'`, token.String},
		{`"esc \" quote"`, token.String},
		{`'unterminated`, token.Invalid},
		{"\"across\nlines\"", token.Invalid},
	}
	for _, tt := range tests {
		tokens := scanAll(t, tt.input)
		if tokens[0].Kind != tt.kind {
			t.Errorf("scan(%q) kind = %v, want %v", tt.input, tokens[0].Kind, tt.kind)
		}
	}
}

func TestScanCommentsAsTrivia(t *testing.T) {
	tokens := scanAll(t, "// lead\n/* mid */ var a = 1;")
	if tokens[0].Kind != token.KwVar {
		t.Fatalf("first token = %v, want var", tokens[0].Kind)
	}
	comments := tokens[0].Comments()
	if len(comments) != 2 {
		t.Fatalf("got %d leading comments, want 2", len(comments))
	}
	if comments[0].Kind != token.TriviaLineComment || comments[0].Text != "// lead" {
		t.Errorf("first comment = %+v", comments[0])
	}
	if comments[1].Kind != token.TriviaBlockComment || comments[1].Text != "/* mid */" {
		t.Errorf("second comment = %+v", comments[1])
	}
}

func TestScanUnicodeIdent(t *testing.T) {
	tokens := scanAll(t, "var приве́т = 1;")
	if tokens[1].Kind != token.Ident {
		t.Fatalf("token = %v, want Ident", tokens[1].Kind)
	}
	// Identifier text is NFC-normalized so equal names compare equal.
	same := scanAll(t, "var приве́т = 1;")
	if tokens[1].Text != same[1].Text {
		t.Errorf("NFC normalization differs: %q vs %q", tokens[1].Text, same[1].Text)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	file := source.New("test.js", []byte("a b"), source.FileVirtual)
	lx := New(file, Options{})
	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1.Text != "a" || p2.Text != "a" {
		t.Fatalf("Peek consumed input: %q then %q", p1.Text, p2.Text)
	}
	if got := lx.Next(); got.Text != "a" {
		t.Fatalf("Next after Peek = %q, want a", got.Text)
	}
	if got := lx.Next(); got.Text != "b" {
		t.Fatalf("second Next = %q, want b", got.Text)
	}
}
