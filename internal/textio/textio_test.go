package textio

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadLines_UTF8(t *testing.T) {
	path := writeFixture(t, "doc.Rmd", []byte("first\nsecond\nthird\n"))
	lines, err := ReadLines(path, "")
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("got %q, want %q", lines, want)
	}
}

func TestReadLines_NoTrailingNewline(t *testing.T) {
	path := writeFixture(t, "doc.Rmd", []byte("only line"))
	lines, err := ReadLines(path, "")
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 1 || lines[0] != "only line" {
		t.Fatalf("got %q", lines)
	}
}

func TestReadLines_Latin1(t *testing.T) {
	// 0xE9 is é in ISO-8859-1.
	path := writeFixture(t, "doc.Rnw", []byte{'c', 'a', 'f', 0xE9, '\n'})
	lines, err := ReadLines(path, "ISO-8859-1")
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 1 || lines[0] != "café" {
		t.Fatalf("got %q, want [café]", lines)
	}
}

func TestReadLines_UnknownEncoding(t *testing.T) {
	path := writeFixture(t, "doc.Rnw", []byte("x\n"))
	if _, err := ReadLines(path, "no-such-charset"); err == nil {
		t.Fatalf("expected error for unknown encoding")
	}
}

func TestReadLines_MissingFile(t *testing.T) {
	if _, err := ReadLines(filepath.Join(t.TempDir(), "absent.Rmd"), ""); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, []string{"a", "", "c"}); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	if got := buf.String(); got != "a\n\nc\n" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatName(t *testing.T) {
	cases := map[string]string{
		"vignettes/intro.Rmd": "rmd",
		"doc.RNW":             "rnw",
		"doc.snw":             "snw",
		"README":              "",
		"archive.tar.Rtex":    "rtex",
	}
	for path, want := range cases {
		if got := FormatName(path); got != want {
			t.Fatalf("FormatName(%q) = %q, want %q", path, got, want)
		}
	}
}
