package engine

import "regexp"

// File patterns for the builtin document formats. Sweave sources may use any
// case in their extension.
var (
	sweavePattern   = regexp.MustCompile(`(?i)[.][rs]nw$`)
	markdownPattern = regexp.MustCompile(`(?i)[.]rmd$`)
	latexPattern    = regexp.MustCompile(`(?i)[.]rtex$`)
	htmlPattern     = regexp.MustCompile(`(?i)[.]rhtml$`)
	restPattern     = regexp.MustCompile(`(?i)[.]rrst$`)
)

// DefaultRegistry builds a registry with the builtin engines wired to the
// given renderer. The markdown engine depends on an optional full-featured
// renderer; when probe reports it missing, a degraded engine that renders
// without extracting code is registered instead, with a warning.
func DefaultRegistry(r Renderer, probe Probe) *Registry {
	reg := NewRegistry()

	// Registration of the builtin engines cannot fail: names are fixed and
	// distinct, patterns are compiled above.
	_ = reg.Register(Engine{
		Name:    "sweave",
		Package: "litweave",
		Pattern: sweavePattern,
		Weave:   RenderOnly(r),
		Tangle:  ExtractOnly(r),
	})

	full := Engine{
		Name:    "markdown",
		Package: "litweave",
		Pattern: markdownPattern,
		Weave:   RenderAndExtract(r),
		Tangle:  ExtractOnly(r),
	}
	fallback := Engine{
		Name:    "markdown",
		Package: "litweave",
		Pattern: markdownPattern,
		Weave:   RenderOnly(r),
		Tangle:  NoTangle(),
	}
	_ = reg.Register(Select("markdown", probe, full, fallback))

	for _, e := range []struct {
		name    string
		pattern *regexp.Regexp
	}{
		{"latex", latexPattern},
		{"html", htmlPattern},
		{"rest", restPattern},
	} {
		_ = reg.Register(Engine{
			Name:    e.name,
			Package: "litweave",
			Pattern: e.pattern,
			Weave:   RenderOnly(r),
			Tangle:  ExtractOnly(r),
		})
	}
	return reg
}
