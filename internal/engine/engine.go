// Package engine keeps the registry of vignette engines: named pairs of
// weave and tangle callbacks, matched against document filenames by pattern.
package engine

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// WeaveFunc renders a literate document into its human-readable output.
// The actual rendering is performed by external tooling behind a Renderer;
// this module only dispatches to it.
type WeaveFunc func(ctx context.Context, path, encoding string, quiet bool) error

// TangleFunc extracts the executable code of a literate document into a
// standalone source file.
type TangleFunc func(ctx context.Context, path, encoding string, quiet bool) error

// Engine is one registered (weave, tangle, pattern) triple.
type Engine struct {
	// Name identifies the engine; lookup is case-insensitive.
	Name string
	// Package names the component that registered the engine. A package may
	// re-register its own engine; anyone else registering the same name is
	// rejected.
	Package string
	// Pattern matches the filenames the engine handles.
	Pattern *regexp.Regexp
	Weave   WeaveFunc
	Tangle  TangleFunc
}

// Registry holds registered engines. Construct one at startup and pass it by
// reference; it is not safe for concurrent mutation.
type Registry struct {
	byName map[string]Engine
	order  []string
}

func NewRegistry() *Registry {
	return &Registry{byName: map[string]Engine{}}
}

// Register adds e to the registry. The name, pattern and weave callback are
// required; tangle may be nil for engines that only render.
func (r *Registry) Register(e Engine) error {
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("engine: empty name")
	}
	if e.Pattern == nil {
		return fmt.Errorf("engine %s: nil file pattern", e.Name)
	}
	if e.Weave == nil {
		return fmt.Errorf("engine %s: nil weave callback", e.Name)
	}
	key := strings.ToLower(e.Name)
	if prev, ok := r.byName[key]; ok {
		if prev.Package != e.Package {
			return fmt.Errorf("engine %s: already registered by %s", e.Name, prev.Package)
		}
		r.byName[key] = e
		return nil
	}
	r.byName[key] = e
	r.order = append(r.order, key)
	return nil
}

// Lookup returns the engine registered under name, case-insensitively.
func (r *Registry) Lookup(name string) (Engine, bool) {
	e, ok := r.byName[strings.ToLower(name)]
	return e, ok
}

// ForFile returns the first registered engine whose pattern matches
// filename, in registration order.
func (r *Registry) ForFile(filename string) (Engine, bool) {
	for _, key := range r.order {
		e := r.byName[key]
		if e.Pattern.MatchString(filename) {
			return e, true
		}
	}
	return Engine{}, false
}

// Names returns the registered engine names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
