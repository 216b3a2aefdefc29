package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"overlaypack/internal/types"
)

func sampleSpec() types.OverlaySpec {
	return types.NewOverlaySpecBuilder("com.example.theme.settings", "com.android.settings").
		WithVersion(3, "1.2.0").
		WithLabel("Sample Theme").
		WithInstallTimestamp(1724572800000).
		AddMetadata("theme_collection", "sample").
		AddMetadata("theme_author", "overlaypack").
		AddResourceDir("res").
		Build()
}

func TestGenerateGenericProfile(t *testing.T) {
	gen := NewManifestGenerator(types.PlatformProfile{Vendor: types.VendorGeneric, SDKVersion: 30})
	text, err := gen.Generate(sampleSpec())
	require.NoError(t, err)

	require.Contains(t, text, `package="com.example.theme.settings"`)
	require.Contains(t, text, `android:versionCode="3"`)
	require.Contains(t, text, `android:versionName="1.2.0"`)
	require.Contains(t, text, `android:targetPackage="com.android.settings"`)
	require.Contains(t, text, `android:name="overlaypack.permission.LIST_OVERLAYS"`)
	require.Contains(t, text, `android:allowBackup="false"`)
	require.Contains(t, text, `android:hasCode="false"`)
	require.Contains(t, text, `android:label="Sample Theme"`)

	require.NotContains(t, text, "uses-sdk")
	require.NotContains(t, text, vendorOverlayPermission)
}

func TestGenerateSamsungAddsVendorBranches(t *testing.T) {
	gen := NewManifestGenerator(types.PlatformProfile{Vendor: types.VendorSamsung, SDKVersion: 25})
	text, err := gen.Generate(sampleSpec())
	require.NoError(t, err)

	require.Contains(t, text, `android:targetSdkVersion="25"`)
	require.Contains(t, text, vendorOverlayPermission)
}

func TestGenerateSamsungBelowShimThresholdOmitsUsesSDK(t *testing.T) {
	gen := NewManifestGenerator(types.PlatformProfile{Vendor: types.VendorSamsung, SDKVersion: 23})
	text, err := gen.Generate(sampleSpec())
	require.NoError(t, err)
	require.NotContains(t, text, "uses-sdk")
}

func TestGenerateSamsungExemptTargetOmitsVendorPermission(t *testing.T) {
	spec := types.NewOverlaySpecBuilder("com.example.theme.music", "com.sec.android.app.music").
		AddResourceDir("res").
		Build()
	gen := NewManifestGenerator(types.PlatformProfile{Vendor: types.VendorSamsung, SDKVersion: 25})
	text, err := gen.Generate(spec)
	require.NoError(t, err)

	require.NotContains(t, text, vendorOverlayPermission)
	require.Contains(t, text, overlayListPermission)
}

func TestGenerateMetadataOrderAndTimestamp(t *testing.T) {
	gen := NewManifestGenerator(types.PlatformProfile{Vendor: types.VendorGeneric, SDKVersion: 30})
	text, err := gen.Generate(sampleSpec())
	require.NoError(t, err)

	first := strings.Index(text, `android:name="theme_collection"`)
	second := strings.Index(text, `android:name="theme_author"`)
	timestamp := strings.Index(text, `android:name="install_timestamp"`)
	require.True(t, first >= 0 && second > first && timestamp > second, "metadata out of order:\n%s", text)
	require.Contains(t, text, `android:value="1724572800000"`)
}

func TestWriteManifest(t *testing.T) {
	workDir := t.TempDir()
	gen := NewManifestGenerator(types.PlatformProfile{Vendor: types.VendorGeneric, SDKVersion: 30})
	require.NoError(t, gen.WriteManifest(sampleSpec(), workDir))

	data, err := os.ReadFile(filepath.Join(workDir, ManifestFileName))
	require.NoError(t, err)
	require.Contains(t, string(data), "<manifest")
}
