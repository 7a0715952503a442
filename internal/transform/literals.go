package transform

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"veil/internal/ast"
	"veil/internal/pipeline"
)

// StringEncoder rewrites the textual form of string literals to escape
// sequences while leaving their runtime value untouched. The flavor comes
// from configuration: "hex" uses \xHH where the code point fits a byte and
// \uHHHH above that, "unicode" uses \uHHHH throughout, and "none" leaves
// literals alone.
type StringEncoder struct {
	flavor string
}

func (t *StringEncoder) Name() string { return "string-encoder" }

func (t *StringEncoder) Stages() pipeline.StageSet {
	return pipeline.NewStageSet(pipeline.StageObfuscating)
}

func (t *StringEncoder) Apply(prog *ast.Program) (*ast.Program, error) {
	if t.flavor == "" || t.flavor == "none" {
		return prog, nil
	}
	ast.RewriteExprs(prog, func(e ast.Expr) ast.Expr {
		str, ok := e.(*ast.String)
		if !ok {
			return e
		}
		str.Raw = encodeString(str.Value, t.flavor)
		return str
	})
	return prog, nil
}

func encodeString(value, flavor string) string {
	var sb strings.Builder
	sb.Grow(2 + len(value)*4)
	sb.WriteByte('"')
	for _, r := range value {
		switch {
		case flavor == "hex" && r < 0x100:
			fmt.Fprintf(&sb, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			// Astral code points need a surrogate pair in \uHHHH form.
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&sb, `\u%04x\u%04x`, hi, lo)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// NumberHexer rewrites non-negative integer literals to 0x hexadecimal form.
// Fractional and huge values keep their original text since a hex rendering
// would change the value or overflow.
type NumberHexer struct {
	enabled bool
}

func (t *NumberHexer) Name() string { return "number-to-hex" }

func (t *NumberHexer) Stages() pipeline.StageSet {
	return pipeline.NewStageSet(pipeline.StageObfuscating)
}

func (t *NumberHexer) Apply(prog *ast.Program) (*ast.Program, error) {
	if !t.enabled {
		return prog, nil
	}
	ast.RewriteExprs(prog, func(e ast.Expr) ast.Expr {
		num, ok := e.(*ast.Number)
		if !ok {
			return e
		}
		v := num.Value
		if v < 0 || v != float64(int64(v)) || v > 1<<53 {
			return num
		}
		num.Raw = fmt.Sprintf("0x%x", int64(v))
		return num
	})
	return prog, nil
}
