package app

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"
)

func TestResolveBackendNoCandidatesEnabled(t *testing.T) {
	service := NewService()
	_, err := service.ResolveBackend(t.Context(), BackendRequest{SDKVersion: 28})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}
