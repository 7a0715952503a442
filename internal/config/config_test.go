package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultValidates(t *testing.T) {
	opts := Default()
	if err := opts.Validate(); err != nil {
		t.Fatalf("Default() does not validate: %v", err)
	}
	if !opts.Compact || !opts.NumbersToHex || !opts.RenameIdentifiers {
		t.Error("defaults lost their baseline toggles")
	}
	if opts.DeadCodeInjection || opts.ControlFlowFlattening {
		t.Error("gated stages enabled by default")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"threshold below zero", func(o *Options) { o.DeadCodeInjectionThreshold = -0.1 }},
		{"threshold above one", func(o *Options) { o.ControlFlowFlatteningThreshold = 1.5 }},
		{"bad encoding", func(o *Options) { o.StringEncoding = "rot13" }},
		{"bad map mode", func(o *Options) { o.SourceMapMode = "both" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Default()
			tt.mutate(&opts)
			if err := opts.Validate(); err == nil {
				t.Fatal("Validate accepted invalid options")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := `
compact = false
dead_code_injection = true
dead_code_injection_threshold = 0.9
string_encoding = "unicode"
preserve = ["jQuery", "$"]
seed = "pinned"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := Default()
	want.Compact = false
	want.DeadCodeInjection = true
	want.DeadCodeInjectionThreshold = 0.9
	want.StringEncoding = EncodingUnicode
	want.Preserve = []string{"jQuery", "$"}
	want.Seed = "pinned"
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Fatalf("loaded options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("no_such_option = 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "unknown option") {
		t.Fatalf("LoadFile error = %v, want unknown option", err)
	}
}

func TestLoadFileIfPresent(t *testing.T) {
	opts, err := LoadFileIfPresent(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("LoadFileIfPresent on missing file: %v", err)
	}
	if diff := cmp.Diff(Default(), opts); diff != "" {
		t.Fatalf("missing file did not yield defaults (-want +got):\n%s", diff)
	}
}

func TestFingerprint(t *testing.T) {
	a := Default()
	b := Default()
	fa, err := a.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	fb, err := b.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if fa != fb {
		t.Fatal("equal options produced different fingerprints")
	}

	b.StringEncoding = EncodingUnicode
	fb, err = b.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if fa == fb {
		t.Fatal("different options produced equal fingerprints")
	}
}
