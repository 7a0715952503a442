package lexer

import "veil/internal/source"

// Cursor is a byte-level reader over a source file.
type Cursor struct {
	file *source.File
	off  uint32
}

// NewCursor positions a cursor at the start of file.
func NewCursor(file *source.File) Cursor {
	return Cursor{file: file}
}

// EOF reports whether the cursor has consumed all input.
func (c *Cursor) EOF() bool {
	return int(c.off) >= len(c.file.Content)
}

// Offset returns the current byte offset.
func (c *Cursor) Offset() uint32 {
	return c.off
}

// Peek returns the current byte without consuming it; 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.file.Content[c.off]
}

// PeekAt returns the byte n positions ahead; 0 past EOF.
func (c *Cursor) PeekAt(n uint32) byte {
	if int(c.off+n) >= len(c.file.Content) {
		return 0
	}
	return c.file.Content[c.off+n]
}

// Advance consumes n bytes.
func (c *Cursor) Advance(n uint32) {
	c.off += n
	if int(c.off) > len(c.file.Content) {
		c.off = uint32(len(c.file.Content)) // #nosec G115 -- checked in source.New
	}
}

// Slice returns the source text between two offsets.
func (c *Cursor) Slice(start, end uint32) string {
	return string(c.file.Content[start:end])
}
