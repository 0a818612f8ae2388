// Package filter is the spell-check entry point: it turns a literate
// document on disk into the line sequence a spell checker should see.
package filter

import (
	"github.com/litweave/litweave/internal/classify"
	"github.com/litweave/litweave/internal/format"
	"github.com/litweave/litweave/internal/textio"
)

// File reads the document at path in the named encoding and returns its
// lines with executable code stripped. The format is derived from the file
// extension; files of unknown formats pass through unchanged. Read and
// encoding failures are returned as-is.
func File(path, enc string, table *format.Table) ([]string, error) {
	lines, err := textio.ReadLines(path, enc)
	if err != nil {
		return nil, err
	}
	return classify.StripFormat(lines, table, textio.FormatName(path)), nil
}
