package core

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"overlaypack/internal/types"
)

// OverlayPipeline orchestrates manifest generation, compilation, and
// post-processing for one overlay build.  Each Exec call owns a fresh
// scratch directory, so distinct pipeline instances (or sequential
// calls) can run overlay builds in parallel without locking; a single
// Exec call is strictly synchronous.  External tool invocations carry
// the caller's context but the pipeline sets no timeout of its own: a
// hung tool hangs the call unless the caller attaches a deadline.
type OverlayPipeline struct {
	Manifest ManifestGenerator
	Compile  CompileStage
	Post     PostProcessStage

	// WorkRoot is the parent for scratch directories; empty means the
	// system temp dir.
	WorkRoot string
}

// Exec runs the full pipeline for spec.  Exactly one of the two Result
// variants is returned; the first failing stage short-circuits the
// rest.  The scratch directory never outlives this call.
func (p OverlayPipeline) Exec(ctx context.Context, spec types.OverlaySpec) types.Result {
	workDir, err := os.MkdirTemp(p.WorkRoot, "overlay-"+spec.PackageName+"-")
	if err != nil {
		return types.Failed("Failed to create overlay work directory")
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			log.Warn().Str("work_dir", workDir).Err(err).Msg("failed to remove work directory")
		}
	}()

	log.Debug().Str("package", spec.PackageName).Str("target", spec.TargetPackage).Str("work_dir", workDir).Msg("overlay build started")

	if err := p.Manifest.WriteManifest(spec, workDir); err != nil {
		return types.Failed(err.Error())
	}
	compiled := p.Compile.Compile(ctx, spec, workDir)
	if !compiled.Ok() {
		return compiled
	}
	return p.Post.Finish(ctx, compiled.Path(), spec.OutputDir, spec.PackageName)
}
