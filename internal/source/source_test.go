package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewNormalizes(t *testing.T) {
	f := New("a.js", []byte("\xef\xbb\xbfvar a;\r\nvar b;\r\n"), FileVirtual)
	if string(f.Content) != "var a;\nvar b;\n" {
		t.Fatalf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("BOM flag not set")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("CRLF flag not set")
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("virtual flag lost")
	}
}

func TestResolve(t *testing.T) {
	f := New("a.js", []byte("one\ntwo\nthree"), FileVirtual)
	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{3, 1, 4},
		{4, 2, 1},
		{8, 3, 1},
		{12, 3, 5},
	}
	for _, tt := range tests {
		pos := f.Pos(tt.off)
		if pos.Line != tt.line || pos.Col != tt.col {
			t.Errorf("Pos(%d) = %v, want %d:%d", tt.off, pos, tt.line, tt.col)
		}
	}

	start, end := f.Resolve(Span{Start: 4, End: 7})
	if start.String() != "2:1" || end.String() != "2:4" {
		t.Errorf("Resolve = %v..%v, want 2:1..2:4", start, end)
	}
}

func TestText(t *testing.T) {
	f := New("a.js", []byte("var abc;"), FileVirtual)
	if got := f.Text(Span{Start: 4, End: 7}); got != "abc" {
		t.Errorf("Text = %q, want abc", got)
	}
	if got := f.Text(Span{Start: 7, End: 4}); got != "" {
		t.Errorf("inverted span Text = %q, want empty", got)
	}
	if got := f.Text(Span{Start: 0, End: 999}); got != "" {
		t.Errorf("out-of-range span Text = %q, want empty", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.js")
	if err := os.WriteFile(path, []byte("var a;"), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(f.Content) != "var a;" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Hash == [32]byte{} {
		t.Error("content hash not recorded")
	}

	if _, err := Load(filepath.Join(dir, "missing.js")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}

func TestSpan(t *testing.T) {
	s := Span{Start: 2, End: 5}
	if s.Empty() || s.Len() != 3 {
		t.Errorf("span %v: Empty=%v Len=%d", s, s.Empty(), s.Len())
	}
	if !(Span{Start: 4, End: 4}).Empty() {
		t.Error("zero-width span not empty")
	}
	cover := s.Cover(Span{Start: 7, End: 9})
	if cover.Start != 2 || cover.End != 9 {
		t.Errorf("Cover = %v", cover)
	}
}
