package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"overlaypack/internal/core"
	"overlaypack/internal/types"
)

func (s Service) Build(ctx context.Context, req BuildRequest) (BuildResult, error) {
	descriptorPath := strings.TrimSpace(req.DescriptorPath)
	if descriptorPath == "" {
		return BuildResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("overlay descriptor path is required")
	}
	descriptor, err := s.SpecLoader.LoadDescriptor(descriptorPath)
	if err != nil {
		return BuildResult{}, err
	}

	spec := s.specFromDescriptor(descriptor, req.OutputDir)
	if err := core.ValidateOverlay(ctx, spec); err != nil {
		return BuildResult{}, err
	}

	profile := platformProfile(req.Vendor, req.SDKVersion)
	pipeline := core.OverlayPipeline{
		Manifest: core.NewManifestGenerator(profile),
		Compile: core.CompileStage{
			Invoker:      s.Invoker,
			Prefs:        s.Prefs,
			CompilerPath: req.CompilerPath,
			FrameworkRes: req.FrameworkRes,
		},
		Post: core.PostProcessStage{
			Invoker:      s.Invoker,
			ZipalignPath: req.ZipalignPath,
			SignerPath:   req.SignerPath,
			KeystorePath: req.KeystorePath,
			KeystorePass: req.KeystorePass,
		},
		WorkRoot: req.WorkRoot,
	}

	result := pipeline.Exec(ctx, spec)
	if !result.Ok() {
		return BuildResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(result.Message())
	}
	return BuildResult{ArtifactPath: result.Path()}, nil
}

// specFromDescriptor folds an overlay descriptor and request overrides
// into an immutable OverlaySpec via the builder.
func (s Service) specFromDescriptor(descriptor types.OverlayDescriptor, outputDirOverride string) types.OverlaySpec {
	outputDir := strings.TrimSpace(outputDirOverride)
	if outputDir == "" {
		outputDir = strings.TrimSpace(descriptor.OutputDir)
	}

	builder := types.NewOverlaySpecBuilder(descriptor.Package, descriptor.Target).
		WithVersion(descriptor.VersionCode, descriptor.VersionName).
		WithLabel(descriptor.Label).
		WithOutputDir(outputDir).
		WithInstallTimestamp(s.Clock().UnixMilli())
	for _, entry := range descriptor.Metadata {
		builder.AddMetadata(entry.Key, entry.Value)
	}
	for _, dir := range descriptor.ResourceDirs {
		builder.AddResourceDir(dir)
	}
	for _, pkg := range descriptor.ExtraBasePackages {
		builder.AddExtraBasePackage(pkg)
	}
	if descriptor.AssetDir != "" {
		builder.SetAssetDir(descriptor.AssetDir)
	}
	return builder.Build()
}
