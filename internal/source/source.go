// Package source holds source file contents, byte spans and position
// resolution for the obfuscation pipeline. One obfuscation run owns exactly
// one File; there is no cross-file resolution.
package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileFlags encodes metadata about how a source file was loaded.
type FileFlags uint8

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a UTF-8 BOM was stripped during loading.
	FileHadBOM
	// FileNormalizedCRLF indicates CRLF sequences were rewritten to LF.
	FileNormalizedCRLF
)

// File captures metadata and normalized content for a single source file.
type File struct {
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

func (lc LineCol) String() string {
	return fmt.Sprintf("%d:%d", lc.Line, lc.Col)
}

// New builds a File from in-memory bytes, normalizing BOM and CRLF.
func New(path string, content []byte, flags FileFlags) *File {
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("source file too large: %w", err))
	}
	return &File{
		Path:    normalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}
}

// Load reads a file from disk and normalizes it via New.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, content, 0), nil
}

// Resolve converts a span into start and end line/column positions.
func (f *File) Resolve(span Span) (start, end LineCol) {
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// Pos converts a byte offset into a line/column position.
func (f *File) Pos(off uint32) LineCol {
	return toLineCol(f.LineIdx, off)
}

// Text returns the source slice covered by span.
func (f *File) Text(span Span) string {
	if span.Start > span.End || int(span.End) > len(f.Content) {
		return ""
	}
	return string(f.Content[span.Start:span.End])
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
