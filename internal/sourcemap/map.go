// Package sourcemap builds, serializes and finalizes Source Map v3 objects
// for generated code.
package sourcemap

import (
	"encoding/json"
	"strings"
)

// Map is a Source Map v3 document.
type Map struct {
	Version        int      `json:"version"`
	File           string   `json:"file,omitempty"`
	SourceRoot     string   `json:"sourceRoot,omitempty"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent,omitempty"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

// JSON returns the canonical textual form of the map.
func (m *Map) JSON() (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type segment struct {
	genLine, genCol int32
	srcLine, srcCol int32
}

// Builder accumulates mapping segments during code generation. Segments must
// be added in generated-position order.
type Builder struct {
	source   string
	content  string
	withText bool
	segments []segment
}

// NewBuilder creates a builder for a single original source. When content is
// non-empty it is embedded as sourcesContent.
func NewBuilder(sourcePath, content string) *Builder {
	return &Builder{
		source:   sourcePath,
		content:  content,
		withText: content != "",
	}
}

// Add records that generated position (genLine, genCol) maps back to
// original position (srcLine, srcCol). All coordinates are 0-based.
func (b *Builder) Add(genLine, genCol, srcLine, srcCol int32) {
	b.segments = append(b.segments, segment{genLine, genCol, srcLine, srcCol})
}

// Empty reports whether no segments were recorded.
func (b *Builder) Empty() bool {
	return len(b.segments) == 0
}

// Build assembles the final Map with delta-encoded VLQ mappings.
func (b *Builder) Build() *Map {
	m := &Map{
		Version: 3,
		Sources: []string{b.source},
		Names:   []string{},
	}
	if b.withText {
		m.SourcesContent = []string{b.content}
	}

	var sb strings.Builder
	var prevGenLine, prevGenCol, prevSrcLine, prevSrcCol int32
	first := true
	for _, seg := range b.segments {
		for prevGenLine < seg.genLine {
			sb.WriteByte(';')
			prevGenLine++
			prevGenCol = 0
			first = true
		}
		if !first {
			sb.WriteByte(',')
		}
		first = false
		encodeVLQ(&sb, seg.genCol-prevGenCol)
		encodeVLQ(&sb, 0) // single source index
		encodeVLQ(&sb, seg.srcLine-prevSrcLine)
		encodeVLQ(&sb, seg.srcCol-prevSrcCol)
		prevGenCol = seg.genCol
		prevSrcLine = seg.srcLine
		prevSrcCol = seg.srcCol
	}
	m.Mappings = sb.String()
	return m
}
