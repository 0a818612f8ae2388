package format

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Descriptor describes how executable code is delimited within one literate
// document format. All patterns apply to a single line in isolation.
type Descriptor struct {
	// Name is the canonical lower-cased format name, which doubles as the
	// file extension the format is recognised by.
	Name string
	// ChunkBegin matches a line that opens a code chunk.
	ChunkBegin *regexp.Regexp
	// ChunkEnd matches a line that closes an open code chunk. A match
	// outside an open chunk carries no meaning.
	ChunkEnd *regexp.Regexp
	// InlineCode matches short code expressions embedded in prose lines.
	InlineCode *regexp.Regexp
}

// Table maps lower-cased format names to descriptors. A Table is built once
// at startup and never mutated afterwards, so it can be shared freely.
type Table struct {
	byName map[string]Descriptor
}

// ByExtension resolves a file extension (without the dot, any case) to its
// descriptor. The second result is false when the extension names no known
// format; callers treat that as "nothing to filter", not as an error.
func (t *Table) ByExtension(ext string) (Descriptor, bool) {
	if t == nil {
		return Descriptor{}, false
	}
	d, ok := t.byName[strings.ToLower(ext)]
	return d, ok
}

// Names returns the known format names in sorted order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.byName))
	for n := range t.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Builtin returns the descriptor table for the document formats the
// toolchain ships with. Construction is side-effect-free and each call
// returns an independent table.
func Builtin() *Table {
	t := &Table{byName: map[string]Descriptor{}}
	sweave := Descriptor{
		ChunkBegin: regexp.MustCompile(`^\s*<<(.*)>>=`),
		ChunkEnd:   regexp.MustCompile(`^\s*@`),
		InlineCode: regexp.MustCompile(`\\Sexpr\{[^{}]*\}`),
	}
	for _, name := range []string{"rnw", "snw"} {
		d := sweave
		d.Name = name
		t.byName[name] = d
	}
	t.byName["rmd"] = Descriptor{
		Name:       "rmd",
		ChunkBegin: regexp.MustCompile("^[\t >]*```+\\s*\\{([a-zA-Z0-9_]+.*)\\}\\s*$"),
		ChunkEnd:   regexp.MustCompile("^[\t >]*```+\\s*$"),
		InlineCode: regexp.MustCompile("`[^`]+`"),
	}
	t.byName["rtex"] = Descriptor{
		Name:       "rtex",
		ChunkBegin: regexp.MustCompile(`^%+\s*begin.rcode\s*(.*)`),
		ChunkEnd:   regexp.MustCompile(`^%+\s*end.rcode`),
		InlineCode: regexp.MustCompile(`\\rinline\{[^{}]*\}`),
	}
	t.byName["rhtml"] = Descriptor{
		Name:       "rhtml",
		ChunkBegin: regexp.MustCompile(`^<!--\s*begin.rcode\s*(.*)`),
		ChunkEnd:   regexp.MustCompile(`^\s*end.rcode\s*-->`),
		InlineCode: regexp.MustCompile(`<!--\s*rinline(.+?)-->`),
	}
	t.byName["rrst"] = Descriptor{
		Name:       "rrst",
		ChunkBegin: regexp.MustCompile(`^\.\. \{r(.*)\}`),
		ChunkEnd:   regexp.MustCompile(`^\.\. \.\.`),
		InlineCode: regexp.MustCompile(":r:`[^`]+`"),
	}
	return t
}

// merge returns a copy of t with every descriptor from extra added,
// overriding same-named entries.
func (t *Table) merge(extra map[string]Descriptor) *Table {
	out := &Table{byName: make(map[string]Descriptor, len(t.byName)+len(extra))}
	for n, d := range t.byName {
		out.byName[n] = d
	}
	for n, d := range extra {
		out.byName[n] = d
	}
	return out
}

// compile builds a Descriptor from raw pattern sources.
func compile(name string, raw rawDescriptor) (Descriptor, error) {
	d := Descriptor{Name: name}
	var err error
	if d.ChunkBegin, err = regexp.Compile(raw.ChunkBegin); err != nil {
		return Descriptor{}, fmt.Errorf("format %s: chunkBegin: %w", name, err)
	}
	if d.ChunkEnd, err = regexp.Compile(raw.ChunkEnd); err != nil {
		return Descriptor{}, fmt.Errorf("format %s: chunkEnd: %w", name, err)
	}
	if d.InlineCode, err = regexp.Compile(raw.InlineCode); err != nil {
		return Descriptor{}, fmt.Errorf("format %s: inlineCode: %w", name, err)
	}
	return d, nil
}
