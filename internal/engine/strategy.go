package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Renderer is the external collaborator that does the actual document
// conversion. Implementations typically shell out to a typesetting or
// rendering toolchain; none live in this module.
type Renderer interface {
	// Render converts the document at path into its rendered output.
	Render(ctx context.Context, path, encoding string, quiet bool) error
	// ExtractCode writes the document's embedded code to a standalone
	// source file.
	ExtractCode(ctx context.Context, path, encoding string, quiet bool) error
}

// RenderOnly weaves by rendering the document and nothing else.
func RenderOnly(r Renderer) WeaveFunc {
	return func(ctx context.Context, path, encoding string, quiet bool) error {
		return r.Render(ctx, path, encoding, quiet)
	}
}

// RenderAndExtract weaves by rendering the document and then extracting its
// code, so the woven output and the code listing stay in step.
func RenderAndExtract(r Renderer) WeaveFunc {
	return func(ctx context.Context, path, encoding string, quiet bool) error {
		if err := r.Render(ctx, path, encoding, quiet); err != nil {
			return err
		}
		if err := r.ExtractCode(ctx, path, encoding, quiet); err != nil {
			return fmt.Errorf("extract after render: %w", err)
		}
		return nil
	}
}

// ExtractOnly tangles by extracting the document's code.
func ExtractOnly(r Renderer) TangleFunc {
	return func(ctx context.Context, path, encoding string, quiet bool) error {
		return r.ExtractCode(ctx, path, encoding, quiet)
	}
}

// NoTangle is the tangle callback for engines whose documents carry no
// extractable code.
func NoTangle() TangleFunc {
	return func(ctx context.Context, path, encoding string, quiet bool) error {
		return nil
	}
}

// Probe reports whether an optional rendering capability is available.
type Probe func() bool

// Select returns full when the probe passes and the degraded fallback
// otherwise. Falling back is reported as a warning, never as an error; the
// caller keeps running with the fallback.
func Select(name string, probe Probe, full, fallback Engine) Engine {
	if probe != nil && probe() {
		return full
	}
	log.Warn().Str("engine", name).Msg("full renderer unavailable, using fallback engine")
	return fallback
}
