package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"overlaypack/internal/ports"
	"overlaypack/internal/types"
)

func successPipeline(t *testing.T, invoker *fakeInvoker, workRoot string) OverlayPipeline {
	t.Helper()
	return OverlayPipeline{
		Manifest: NewManifestGenerator(types.PlatformProfile{Vendor: types.VendorGeneric, SDKVersion: 30}),
		Compile:  CompileStage{Invoker: invoker, Prefs: fakePrefs{}, CompilerPath: "aapt", FrameworkRes: "framework-res.apk"},
		Post:     PostProcessStage{Invoker: invoker, ZipalignPath: "zipalign", SignerPath: "apksigner", KeystorePath: "overlay.jks"},
		WorkRoot: workRoot,
	}
}

// toolingHandler mimics well-behaved external tools: each one produces
// its expected output file.
func toolingHandler(t *testing.T) func(int, string, []string) (ports.ToolResult, error) {
	t.Helper()
	return func(_ int, executable string, args []string) (ports.ToolResult, error) {
		switch executable {
		case "aapt":
			touch(t, findFlag(args, "-F"))
		case "zipalign":
			touch(t, args[len(args)-1])
		case "apksigner":
			touch(t, findFlag(args, "--out"))
		}
		return ports.ToolResult{}, nil
	}
}

func TestExecEndToEndSuccess(t *testing.T) {
	invoker := &fakeInvoker{handler: toolingHandler(t)}
	workRoot := t.TempDir()
	spec := compileSpec(t, "res")

	result := successPipeline(t, invoker, workRoot).Exec(t.Context(), spec)
	require.True(t, result.Ok())
	require.Equal(t, filepath.Join(spec.OutputDir, "com.example.overlay.apk"), result.Path())

	_, err := os.Stat(result.Path())
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(spec.OutputDir, "com.example.overlay-unsigned.apk"))
	require.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(filepath.Join(spec.OutputDir, "com.example.overlay-unsigned-aligned.apk"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExecRemovesWorkDirOnSuccess(t *testing.T) {
	invoker := &fakeInvoker{handler: toolingHandler(t)}
	workRoot := t.TempDir()

	result := successPipeline(t, invoker, workRoot).Exec(t.Context(), compileSpec(t, "res"))
	require.True(t, result.Ok())

	entries, err := os.ReadDir(workRoot)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestExecRemovesWorkDirOnFailure(t *testing.T) {
	// Compiler produces nothing, so the compile stage fails.
	invoker := &fakeInvoker{}
	workRoot := t.TempDir()

	result := successPipeline(t, invoker, workRoot).Exec(t.Context(), compileSpec(t, "res"))
	require.False(t, result.Ok())
	require.Equal(t, "Failed to compile overlay", result.Message())

	entries, err := os.ReadDir(workRoot)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestExecShortCircuitsOnCompileFailure(t *testing.T) {
	invoker := &fakeInvoker{}
	pipeline := successPipeline(t, invoker, t.TempDir())

	result := pipeline.Exec(t.Context(), compileSpec(t))
	require.False(t, result.Ok())
	require.Equal(t, "Resource directory cannot be empty!", result.Message())
	require.Empty(t, invoker.calls)
}
