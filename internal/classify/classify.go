// Package classify separates the executable code regions of a literate
// document from its prose, so the prose can be handed to a spell checker
// without the code tripping it up.
package classify

import (
	"github.com/litweave/litweave/internal/format"
)

// tag is the per-line classification.
type tag uint8

const (
	unset tag = iota
	code
	text
)

// Strip returns lines with executable code removed according to the
// descriptor: lines inside code chunks and the chunk delimiters themselves
// become empty, and inline code spans are cut out of prose lines. The result
// has the same length and order as the input, and the transform is pure.
func Strip(lines []string, d format.Descriptor) []string {
	if len(lines) == 0 {
		return lines
	}

	tags := make([]tag, len(lines))
	// Chunk-end delimiters are tracked separately from the propagated
	// classification: the line after one is prose, but the delimiter itself
	// still belongs to the fence and must be blanked.
	terminator := make([]bool, len(lines))

	// A chunk-end match only counts while a chunk is open; stray end
	// delimiters in prose are ordinary text. A line that opens a chunk can
	// never close it in the same breath.
	open := false
	for i, line := range lines {
		if d.ChunkBegin.MatchString(line) {
			tags[i] = code
			open = true
			continue
		}
		if open && d.ChunkEnd.MatchString(line) {
			tags[i] = text
			terminator[i] = true
			open = false
		}
	}

	// Documents begin in prose mode unless the very first line opens a chunk.
	if tags[0] == unset {
		tags[0] = text
	}
	for i := 1; i < len(tags); i++ {
		if tags[i] == unset {
			tags[i] = tags[i-1]
		}
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if tags[i] == code || terminator[i] {
			out[i] = ""
			continue
		}
		out[i] = d.InlineCode.ReplaceAllString(line, "")
	}
	return out
}

// StripFormat resolves name against the table and strips code regions from
// lines. An unknown format name is not an error: there is nothing to filter,
// so the input is returned unchanged.
func StripFormat(lines []string, table *format.Table, name string) []string {
	d, ok := table.ByExtension(name)
	if !ok {
		return lines
	}
	return Strip(lines, d)
}
