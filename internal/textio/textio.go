// Package textio reads and writes document content as line sequences,
// decoding from a named character encoding on the way in.
package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// maxLine bounds a single document line.
const maxLine = 1 << 20

// ReadLines reads the file at path and returns its content split on line
// boundaries, decoded from the named character encoding. An empty encoding
// name means UTF-8. Unknown encodings and unreadable files are the caller's
// errors and are propagated, never swallowed.
func ReadLines(path, enc string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if enc != "" && !strings.EqualFold(enc, "utf-8") {
		e, err := ianaindex.IANA.Encoding(enc)
		if err != nil || e == nil {
			return nil, fmt.Errorf("read %s: unsupported encoding %q", path, enc)
		}
		r = transform.NewReader(f, e.NewDecoder())
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// WriteLines writes lines to w, one per line with a trailing newline each.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FormatName derives the format name from a file path: the extension without
// its dot, lower-cased. A path with no extension yields the empty string.
func FormatName(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
