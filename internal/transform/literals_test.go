package transform

import (
	"testing"

	"veil/internal/ast"
	"veil/internal/config"
)

func TestEncodeString(t *testing.T) {
	tests := []struct {
		value  string
		flavor string
		want   string
	}{
		{"hi", config.EncodingHex, `"\x68\x69"`},
		{"hi", config.EncodingUnicode, "\"\\u0068\\u0069\""},
		{"", config.EncodingHex, `""`},
		{"é", config.EncodingHex, `"\xe9"`},
		{"é", config.EncodingUnicode, "\"\\u00e9\""},
		{"世", config.EncodingHex, "\"\\u4e16\""},
		{"世", config.EncodingUnicode, "\"\\u4e16\""},
		// Astral code points need surrogate pairs in both flavors.
		{"😀", config.EncodingHex, "\"\\ud83d\\ude00\""},
		{"😀", config.EncodingUnicode, "\"\\ud83d\\ude00\""},
	}
	for _, tt := range tests {
		if got := encodeString(tt.value, tt.flavor); got != tt.want {
			t.Errorf("encodeString(%q, %s) = %s, want %s", tt.value, tt.flavor, got, tt.want)
		}
	}
}

func TestStringEncoderRewritesRawOnly(t *testing.T) {
	prog := parseProgram(t, `var s = "hi";`)
	if _, err := (&StringEncoder{flavor: config.EncodingHex}).Apply(prog); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	str := prog.Body[0].(*ast.VarDecl).Decls[0].Init.(*ast.String)
	if str.Value != "hi" {
		t.Fatalf("encoder changed the value: %q", str.Value)
	}
	if str.Raw != `"\x68\x69"` {
		t.Fatalf("encoded raw = %s", str.Raw)
	}
	if got := generateCompact(t, prog); got != `var s="\x68\x69";` {
		t.Fatalf("generated = %q", got)
	}
}

func TestStringEncoderNone(t *testing.T) {
	input := `var s = 'hi';`
	prog := parseProgram(t, input)
	if _, err := (&StringEncoder{flavor: config.EncodingNone}).Apply(prog); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := generateCompact(t, prog); got != "var s='hi';" {
		t.Fatalf("none flavor rewrote literal: %q", got)
	}
}

func TestNumberHexer(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"var n = 255;", "var n=0xff;"},
		{"var n = 0;", "var n=0x0;"},
		{"var n = 1.5;", "var n=1.5;"},
		{"var n = -3;", "var n=-0x3;"}, // unary minus around a positive literal
	}
	for _, tt := range tests {
		prog := parseProgram(t, tt.input)
		if _, err := (&NumberHexer{enabled: true}).Apply(prog); err != nil {
			t.Fatalf("Apply(%q): %v", tt.input, err)
		}
		if got := generateCompact(t, prog); got != tt.want {
			t.Errorf("hexer(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNumberHexerDisabled(t *testing.T) {
	prog := parseProgram(t, "var n = 255;")
	if _, err := (&NumberHexer{enabled: false}).Apply(prog); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := generateCompact(t, prog); got != "var n=255;" {
		t.Fatalf("disabled hexer rewrote literal: %q", got)
	}
}
