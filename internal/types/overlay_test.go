package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBuilderAccumulatesInOrder(t *testing.T) {
	builder := NewOverlaySpecBuilder("com.example.overlay", "com.android.settings").
		AddResourceDir("res/one").
		AddResourceDir("res/two").
		AddExtraBasePackage("/data/base-a.apk").
		AddMetadata("first", "1").
		AddMetadata("second", "2")

	spec := builder.Build()
	if diff := cmp.Diff([]string{"res/one", "res/two"}, spec.ResourceDirs); diff != "" {
		t.Fatalf("unexpected resource dirs (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]MetadataEntry{{Key: "first", Value: "1"}, {Key: "second", Value: "2"}}, spec.Metadata); diff != "" {
		t.Fatalf("unexpected metadata (-want +got):\n%s", diff)
	}
}

func TestBuilderAssetDirReplaces(t *testing.T) {
	spec := NewOverlaySpecBuilder("a", "b").
		SetAssetDir("assets/old").
		SetAssetDir("assets/new").
		Build()
	require.Equal(t, "assets/new", spec.AssetDir)
}

func TestBuildDetachesFromBuilder(t *testing.T) {
	builder := NewOverlaySpecBuilder("a", "b").AddResourceDir("res")
	spec := builder.Build()
	builder.AddResourceDir("res/extra").AddMetadata("k", "v")

	require.Equal(t, []string{"res"}, spec.ResourceDirs)
	require.Empty(t, spec.Metadata)
}

func TestResultVariants(t *testing.T) {
	success := Succeeded("/out/pkg.apk")
	require.True(t, success.Ok())
	require.Equal(t, "/out/pkg.apk", success.Path())
	require.Empty(t, success.Message())

	failure := Failed("Failed to compile overlay")
	require.False(t, failure.Ok())
	require.Empty(t, failure.Path())
	require.Equal(t, "Failed to compile overlay", failure.Message())
}
