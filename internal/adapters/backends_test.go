package adapters

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"overlaypack/internal/ports"
)

type recordingInvoker struct {
	calls    [][]string
	exitCode int
	stderr   []string
}

func (r *recordingInvoker) Run(_ context.Context, executable string, args ...string) (ports.ToolResult, error) {
	r.calls = append(r.calls, append([]string{executable}, args...))
	return ports.ToolResult{ExitCode: r.exitCode, StderrLines: r.stderr}, nil
}

func TestRootBackendWrapsCommandsInSU(t *testing.T) {
	invoker := &recordingInvoker{}
	backend := DefaultBackendFactories(invoker).RootPostThreshold()

	require.True(t, backend.SelfElevating())
	require.Empty(t, backend.RequiredPermission())
	require.NoError(t, backend.Install(t.Context(), "/out/pkg.apk"))

	want := [][]string{{"su", "-c", "pm", "install", "-r", "/out/pkg.apk"}}
	if diff := cmp.Diff(want, invoker.calls); diff != "" {
		t.Fatalf("unexpected invocation (-want +got):\n%s", diff)
	}
}

func TestSystemBridgeBackendRunsUnwrapped(t *testing.T) {
	invoker := &recordingInvoker{}
	backend := DefaultBackendFactories(invoker).SystemBridge()

	require.Equal(t, ports.PermissionManageOverlays, backend.RequiredPermission())
	require.NoError(t, backend.Enable(t.Context(), "com.example.overlay"))

	want := [][]string{{"cmd", "overlay", "enable", "com.example.overlay"}}
	if diff := cmp.Diff(want, invoker.calls); diff != "" {
		t.Fatalf("unexpected invocation (-want +got):\n%s", diff)
	}
}

func TestBackendSurfacesToolFailure(t *testing.T) {
	invoker := &recordingInvoker{exitCode: 1, stderr: []string{"Failure [INSTALL_FAILED_INVALID_APK]"}}
	backend := DefaultBackendFactories(invoker).CompanionApp()

	err := backend.Install(t.Context(), "/out/pkg.apk")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}
