package core

import (
	"context"
	"os"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"overlaypack/internal/types"
)

// ValidateOverlay checks an OverlaySpec before it is handed to the
// pipeline.  Pipeline-time checks (empty resource dirs, uncreatable
// output dir) still run; this catches descriptor mistakes early with
// proper error codes for the CLI.
func ValidateOverlay(ctx context.Context, spec types.OverlaySpec) error {
	assert.NotEmpty(ctx, spec.PackageName, "overlay package name must be set")
	assert.NotEmpty(ctx, spec.TargetPackage, "overlay target package must be set")

	if spec.PackageName == spec.TargetPackage {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("overlay package must differ from target package")
	}
	if strings.TrimSpace(spec.OutputDir) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	if len(spec.ResourceDirs) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("overlay needs at least one resource directory")
	}
	for _, dir := range spec.ResourceDirs {
		info, err := os.Stat(dir)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("resource directory not found: " + dir).
				WithCause(err)
		}
		if !info.IsDir() {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("resource path is not a directory: " + dir)
		}
	}
	for _, entry := range spec.Metadata {
		if strings.TrimSpace(entry.Key) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("metadata entries must have a non-empty key")
		}
	}
	return nil
}
