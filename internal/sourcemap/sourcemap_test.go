package sourcemap

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
)

func TestEncodeVLQ(t *testing.T) {
	// Reference vectors from the Source Map v3 encoding.
	tests := []struct {
		n    int32
		want string
	}{
		{0, "A"},
		{1, "C"},
		{-1, "D"},
		{2, "E"},
		{15, "e"},
		{16, "gB"},
		{511, "+f"},
		{512, "ggB"},
		{-511, "/f"},
	}
	for _, tt := range tests {
		var sb strings.Builder
		encodeVLQ(&sb, tt.n)
		if got := sb.String(); got != tt.want {
			t.Errorf("encodeVLQ(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestBuilderMappings(t *testing.T) {
	b := NewBuilder("in.js", "")
	b.Add(0, 0, 0, 0)
	b.Add(0, 4, 0, 4)
	b.Add(1, 0, 2, 0)
	m := b.Build()

	if m.Version != 3 {
		t.Errorf("version = %d, want 3", m.Version)
	}
	if len(m.Sources) != 1 || m.Sources[0] != "in.js" {
		t.Errorf("sources = %v", m.Sources)
	}
	// Segment 1: all zeros. Segment 2: +4 col, same source line, +4 src col.
	// Line break, then segment 3: col 0, +2 src lines, -4 src col.
	want := "AAAA,IAAI;AAEJ"
	if m.Mappings != want {
		t.Errorf("mappings = %q, want %q", m.Mappings, want)
	}
}

func TestBuilderSourcesContent(t *testing.T) {
	b := NewBuilder("in.js", "var a;")
	b.Add(0, 0, 0, 0)
	m := b.Build()
	if len(m.SourcesContent) != 1 || m.SourcesContent[0] != "var a;" {
		t.Errorf("sourcesContent = %v", m.SourcesContent)
	}

	empty := NewBuilder("in.js", "").Build()
	if empty.SourcesContent != nil {
		t.Errorf("sourcesContent set without original text: %v", empty.SourcesContent)
	}
}

func TestMapJSON(t *testing.T) {
	m := (&Builder{source: "in.js"}).Build()
	text, err := m.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		t.Fatalf("not valid JSON: %v", err)
	}
	if decoded["version"] != float64(3) {
		t.Errorf("version = %v, want 3", decoded["version"])
	}
	// Empty collections serialize as [] and "", never null.
	if _, ok := decoded["names"].([]any); !ok {
		t.Errorf("names = %v, want array", decoded["names"])
	}
	if decoded["mappings"] != "" {
		t.Errorf("mappings = %v, want empty string", decoded["mappings"])
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"", ModeSeparate, false},
		{"separate", ModeSeparate, false},
		{"inline", ModeInline, false},
		{"bogus", ModeSeparate, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCorrectEmptyMapPassthrough(t *testing.T) {
	res := Correct("code();", "", Options{Mode: ModeInline})
	if res.Code != "code();" || res.Map != "" {
		t.Fatalf("empty map changed output: %+v", res)
	}
}

func TestCorrectSeparate(t *testing.T) {
	raw := `{"version":3}`
	res := Correct("code();", raw, Options{Mode: ModeSeparate, URL: "out.js.map"})
	if res.Map != raw {
		t.Errorf("map = %q, want raw map", res.Map)
	}
	if !strings.HasSuffix(res.Code, "//# sourceMappingURL=out.js.map") {
		t.Errorf("code missing pragma: %q", res.Code)
	}

	// Without a URL the code is untouched.
	res = Correct("code();", raw, Options{Mode: ModeSeparate})
	if res.Code != "code();" {
		t.Errorf("code modified without URL: %q", res.Code)
	}
}

func TestCorrectInline(t *testing.T) {
	raw := `{"version":3}`
	res := Correct("code();", raw, Options{Mode: ModeInline})
	if res.Map != "" {
		t.Errorf("inline mode kept separate map: %q", res.Map)
	}
	const prefix = "code();\n//# sourceMappingURL=data:application/json;base64,"
	if !strings.HasPrefix(res.Code, prefix) {
		t.Fatalf("code = %q, want data URL suffix", res.Code)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(res.Code, prefix))
	if err != nil {
		t.Fatalf("embedded map is not base64: %v", err)
	}
	if string(decoded) != raw {
		t.Errorf("embedded map = %q, want %q", decoded, raw)
	}
}
