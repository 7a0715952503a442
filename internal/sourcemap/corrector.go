package sourcemap

import (
	"encoding/base64"
	"fmt"
)

// Mode selects how the finalized map is attached to the generated code.
type Mode uint8

const (
	// ModeSeparate keeps the map as a standalone artifact; when a URL is
	// configured a sourceMappingURL pragma pointing at it is appended.
	ModeSeparate Mode = iota
	// ModeInline embeds the map into the code as a base64 data URL.
	ModeInline
)

func (m Mode) String() string {
	if m == ModeInline {
		return "inline"
	}
	return "separate"
}

// ParseMode resolves a configuration string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "separate":
		return ModeSeparate, nil
	case "inline":
		return ModeInline, nil
	}
	return ModeSeparate, fmt.Errorf("invalid source map mode %q (expected separate|inline)", s)
}

// Options configures map finalization.
type Options struct {
	Mode Mode
	URL  string // sourceMappingURL for separate mode; may be empty
}

// Result is the terminal artifact of one obfuscation run's reconciliation.
type Result struct {
	Code string
	Map  string
}

// Correct packages generated code and its serialized mapping into the final
// output shape. An empty rawMap passes the code through untouched and keeps
// the map field empty, never absent.
func Correct(code, rawMap string, opts Options) Result {
	if rawMap == "" {
		return Result{Code: code}
	}
	switch opts.Mode {
	case ModeInline:
		encoded := base64.StdEncoding.EncodeToString([]byte(rawMap))
		return Result{
			Code: code + "\n//# sourceMappingURL=data:application/json;base64," + encoded,
		}
	default:
		if opts.URL != "" {
			code += "\n//# sourceMappingURL=" + opts.URL
		}
		return Result{Code: code, Map: rawMap}
	}
}
