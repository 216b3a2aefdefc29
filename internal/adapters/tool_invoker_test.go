package adapters

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRunCapturesStderrAndExitCode(t *testing.T) {
	result, err := NewExecToolInvoker().Run(t.Context(), "sh", "-c", "echo first line 1>&2; echo second line 1>&2; exit 3")
	require.NoError(t, err)
	require.Equal(t, 3, result.ExitCode)
	if diff := cmp.Diff([]string{"first line", "second line"}, result.StderrLines); diff != "" {
		t.Fatalf("unexpected stderr (-want +got):\n%s", diff)
	}
}

func TestRunSuccessHasNoStderr(t *testing.T) {
	result, err := NewExecToolInvoker().Run(t.Context(), "sh", "-c", "true")
	require.NoError(t, err)
	require.Zero(t, result.ExitCode)
	require.Empty(t, result.StderrLines)
}

func TestRunMissingExecutable(t *testing.T) {
	_, err := NewExecToolInvoker().Run(t.Context(), filepath.Join(t.TempDir(), "no-such-tool"))
	require.Error(t, err)
}
