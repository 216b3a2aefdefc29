package core

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"overlaypack/internal/ports"
	"overlaypack/internal/types"
)

// legacyMarker is the stderr substring the compiler emits when a
// resource encoding is rejected by its modern mode.  Seeing it
// triggers the one-shot legacy-mode retry.
const legacyMarker = "types not allowed"

// CompileStage drives the external resource compiler over the manifest
// and resource directories, producing the unsigned overlay archive.
type CompileStage struct {
	Invoker ports.ToolInvoker
	Prefs   ports.Prefs

	// CompilerPath locates the resource compiler executable.
	CompilerPath string

	// FrameworkRes is the base framework resource package every
	// compilation links against.
	FrameworkRes string
}

// Compile runs the compiler with a bounded legacy-fallback retry: the
// first attempt may flip legacy mode exactly once, so the compiler is
// invoked at most twice.  Success carries the unsigned archive path
// for the post-process stage.
func (s CompileStage) Compile(ctx context.Context, spec types.OverlaySpec, workDir string) types.Result {
	if err := os.MkdirAll(spec.OutputDir, 0755); err != nil {
		return types.Failed("Failed to create overlay cache directory")
	}
	if len(spec.ResourceDirs) == 0 {
		return types.Failed("Resource directory cannot be empty!")
	}

	unsignedPath := filepath.Join(spec.OutputDir, spec.PackageName+"-unsigned.apk")
	forceNewCompiler := s.Prefs.GetBool(ports.PrefForceNewCompiler, false)

	legacyMode := false
	for {
		result, err := s.Invoker.Run(ctx, s.CompilerPath, s.compilerArgs(spec, workDir, unsignedPath, legacyMode)...)
		if err != nil {
			return types.Failed(err.Error())
		}

		// Error text accumulates per attempt; a retry starts clean.
		var errorText strings.Builder
		retry := false
		for _, line := range result.StderrLines {
			if strings.Contains(line, legacyMarker) && !legacyMode && !forceNewCompiler {
				// Known-safe degradation: retry once in legacy
				// encoding mode and drop this line.
				log.Debug().Str("package", spec.PackageName).Msg("compiler rejected resource types, retrying in legacy mode")
				legacyMode = true
				retry = true
				break
			}
			errorText.WriteString(line)
			errorText.WriteString("\n")
		}
		if retry {
			continue
		}
		if text := strings.TrimSpace(errorText.String()); text != "" {
			return types.Failed(text)
		}
		break
	}

	if _, err := os.Stat(unsignedPath); err != nil {
		return types.Failed("Failed to compile overlay")
	}
	log.Debug().Str("package", spec.PackageName).Str("archive", unsignedPath).Msg("compiled unsigned overlay")
	return types.Succeeded(unsignedPath)
}

func (s CompileStage) compilerArgs(spec types.OverlaySpec, workDir string, unsignedPath string, legacyMode bool) []string {
	args := []string{"package", "-M", filepath.Join(workDir, ManifestFileName)}
	for _, dir := range spec.ResourceDirs {
		args = append(args, "-S", dir)
	}
	if spec.AssetDir != "" {
		args = append(args, "-A", spec.AssetDir)
	}
	args = append(args, "-I", s.FrameworkRes)
	if !legacyMode {
		for _, pkg := range spec.ExtraBasePackages {
			if _, err := os.Stat(pkg); err != nil {
				continue
			}
			args = append(args, "-I", pkg)
		}
	}
	return append(args, "-F", unsignedPath, "--auto-add-overlay", "-f")
}
