package codegen

import (
	"strings"

	"fortio.org/safecast"
)

// Writer accumulates generated code and tracks the generated line/column
// needed for positional mappings.
type Writer struct {
	sb          strings.Builder
	compact     bool
	indentLevel int
	atLineStart bool
	line        int32 // 0-based generated line
	col         int32 // 0-based generated column
}

// NewWriter creates a writer. In compact mode indentation and cosmetic
// whitespace are suppressed.
func NewWriter(compact bool) *Writer {
	return &Writer{compact: compact, atLineStart: true}
}

// String returns the accumulated output.
func (w *Writer) String() string {
	return w.sb.String()
}

// Pos returns the current 0-based generated line and column.
func (w *Writer) Pos() (line, col int32) {
	w.writeIndent()
	return w.line, w.col
}

// Indent increases the indentation level.
func (w *Writer) Indent() { w.indentLevel++ }

// Outdent decreases the indentation level.
func (w *Writer) Outdent() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}

// Write emits s verbatim, accounting for pending indentation.
func (w *Writer) Write(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.sb.WriteString(s)
	w.advance(s)
}

// Space emits a cosmetic space, dropped in compact mode.
func (w *Writer) Space() {
	if !w.compact {
		w.Write(" ")
	}
}

// Sep emits a mandatory separator space (between a keyword and an ident).
func (w *Writer) Sep() {
	w.Write(" ")
}

// Newline terminates the current line; suppressed in compact mode.
func (w *Writer) Newline() {
	if w.compact {
		return
	}
	w.newlineAlways()
}

// newlineAlways terminates the line even in compact mode (line comments).
func (w *Writer) newlineAlways() {
	w.sb.WriteByte('\n')
	w.line++
	w.col = 0
	w.atLineStart = true
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	w.atLineStart = false
	if w.compact || w.indentLevel == 0 {
		return
	}
	pad := strings.Repeat("    ", w.indentLevel)
	w.sb.WriteString(pad)
	w.col += mustInt32(len(pad))
}

func (w *Writer) advance(s string) {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		w.line += mustInt32(strings.Count(s, "\n"))
		w.col = mustInt32(len(s) - i - 1)
		return
	}
	w.col += mustInt32(len(s))
}

func mustInt32(n int) int32 {
	v, err := safecast.Conv[int32](n)
	if err != nil {
		panic(err)
	}
	return v
}
