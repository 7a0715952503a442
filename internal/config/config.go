// Package config defines the immutable per-run obfuscation options.
//
// An Options value is constructed once (defaults, then optionally a TOML
// file, then CLI flags) before a pipeline run and is read-only for the
// lifetime of that run; the orchestrator consults it solely for stage gating
// and generation options.
package config

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/BurntSushi/toml"
)

// String encoding flavors for the literal obfuscation pass.
const (
	EncodingNone    = "none"
	EncodingHex     = "hex"
	EncodingUnicode = "unicode"
)

// Source map attachment modes.
const (
	MapSeparate = "separate"
	MapInline   = "inline"
)

// Options is the complete per-run configuration.
type Options struct {
	// Compact suppresses cosmetic whitespace in generated output.
	Compact bool `toml:"compact"`

	// DeadCodeInjection gates the dead-code-injection stage as a whole.
	DeadCodeInjection bool `toml:"dead_code_injection"`
	// DeadCodeInjectionThreshold is the per-block injection probability.
	DeadCodeInjectionThreshold float64 `toml:"dead_code_injection_threshold"`

	// ControlFlowFlattening gates the control-flow-flattening stage.
	ControlFlowFlattening bool `toml:"control_flow_flattening"`
	// ControlFlowFlatteningThreshold is the per-function rewrite probability.
	ControlFlowFlatteningThreshold float64 `toml:"control_flow_flattening_threshold"`

	// StringEncoding selects the escape flavor for string literals.
	StringEncoding string `toml:"string_encoding"`
	// NumbersToHex rewrites non-negative integer literals in hex form.
	NumbersToHex bool `toml:"numbers_to_hex"`
	// RenameIdentifiers replaces declared names with generated hex names.
	RenameIdentifiers bool `toml:"rename_identifiers"`
	// Preserve lists names the renamer must never touch.
	Preserve []string `toml:"preserve"`

	// SourceMap requests a positional mapping artifact.
	SourceMap bool `toml:"source_map"`
	// SourceMapMode is "separate" or "inline".
	SourceMapMode string `toml:"source_map_mode"`
	// SourceMapURL is appended as sourceMappingURL in separate mode.
	SourceMapURL string `toml:"source_map_url"`

	// Seed fixes the deterministic value generator; empty means random.
	Seed string `toml:"seed"`
}

// Default returns the baseline configuration.
func Default() Options {
	return Options{
		Compact:                        true,
		DeadCodeInjectionThreshold:     0.4,
		ControlFlowFlatteningThreshold: 0.75,
		StringEncoding:                 EncodingHex,
		NumbersToHex:                   true,
		RenameIdentifiers:              true,
		SourceMapMode:                  MapSeparate,
	}
}

// Validate checks value ranges and enumerations.
func (o *Options) Validate() error {
	if o.DeadCodeInjectionThreshold < 0 || o.DeadCodeInjectionThreshold > 1 {
		return fmt.Errorf("dead_code_injection_threshold %v out of range [0, 1]", o.DeadCodeInjectionThreshold)
	}
	if o.ControlFlowFlatteningThreshold < 0 || o.ControlFlowFlatteningThreshold > 1 {
		return fmt.Errorf("control_flow_flattening_threshold %v out of range [0, 1]", o.ControlFlowFlatteningThreshold)
	}
	switch o.StringEncoding {
	case EncodingNone, EncodingHex, EncodingUnicode:
	default:
		return fmt.Errorf("invalid string_encoding %q (expected none|hex|unicode)", o.StringEncoding)
	}
	switch o.SourceMapMode {
	case MapSeparate, MapInline:
	default:
		return fmt.Errorf("invalid source_map_mode %q (expected separate|inline)", o.SourceMapMode)
	}
	return nil
}

// Fingerprint returns a stable digest of every option that influences
// output, used as part of the result cache key.
func (o *Options) Fingerprint() ([32]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(o); err != nil {
		return [32]byte{}, fmt.Errorf("fingerprint options: %w", err)
	}
	return sha256.Sum256(buf.Bytes()), nil
}
