package engine

import (
	"context"
	"regexp"
	"testing"
)

// recorder is a Renderer that records which collaborator calls were made.
type recorder struct {
	calls []string
}

func (r *recorder) Render(ctx context.Context, path, encoding string, quiet bool) error {
	r.calls = append(r.calls, "render:"+path)
	return nil
}

func (r *recorder) ExtractCode(ctx context.Context, path, encoding string, quiet bool) error {
	r.calls = append(r.calls, "extract:"+path)
	return nil
}

func testEngine(name, pkg string) Engine {
	return Engine{
		Name:    name,
		Package: pkg,
		Pattern: regexp.MustCompile(`(?i)[.]rnw$`),
		Weave:   RenderOnly(&recorder{}),
		Tangle:  ExtractOnly(&recorder{}),
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(testEngine("Sweave", "litweave")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, ok := reg.Lookup("sweave"); !ok {
		t.Fatalf("expected case-insensitive lookup to find engine")
	}
	if _, ok := reg.Lookup("knitr"); ok {
		t.Fatalf("unexpected engine for unregistered name")
	}
}

func TestRegistry_RejectsInvalidEngines(t *testing.T) {
	reg := NewRegistry()
	e := testEngine("", "litweave")
	if err := reg.Register(e); err == nil {
		t.Fatalf("expected error for empty name")
	}
	e = testEngine("x", "litweave")
	e.Pattern = nil
	if err := reg.Register(e); err == nil {
		t.Fatalf("expected error for nil pattern")
	}
	e = testEngine("x", "litweave")
	e.Weave = nil
	if err := reg.Register(e); err == nil {
		t.Fatalf("expected error for nil weave")
	}
}

func TestRegistry_DuplicateNameRejectedAcrossPackages(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(testEngine("sweave", "litweave")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register(testEngine("sweave", "other")); err == nil {
		t.Fatalf("expected duplicate registration by another package to fail")
	}
	// The original owner may replace its own engine.
	if err := reg.Register(testEngine("sweave", "litweave")); err != nil {
		t.Fatalf("re-register by owner: %v", err)
	}
}

func TestRegistry_ForFile(t *testing.T) {
	reg := NewRegistry()
	e := testEngine("sweave", "litweave")
	if err := reg.Register(e); err != nil {
		t.Fatalf("Register: %v", err)
	}
	md := testEngine("markdown", "litweave")
	md.Pattern = regexp.MustCompile(`(?i)[.]rmd$`)
	if err := reg.Register(md); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, ok := reg.ForFile("vignettes/intro.Rmd")
	if !ok || got.Name != "markdown" {
		t.Fatalf("ForFile(intro.Rmd) = %q, %v", got.Name, ok)
	}
	got, ok = reg.ForFile("doc.rnw")
	if !ok || got.Name != "sweave" {
		t.Fatalf("ForFile(doc.rnw) = %q, %v", got.Name, ok)
	}
	if _, ok := reg.ForFile("doc.txt"); ok {
		t.Fatalf("unexpected engine for doc.txt")
	}
}

func TestRegistry_NamesInRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"b", "a", "c"} {
		if err := reg.Register(testEngine(name, "litweave")); err != nil {
			t.Fatalf("Register(%s): %v", name, err)
		}
	}
	names := reg.Names()
	want := []string{"b", "a", "c"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}
