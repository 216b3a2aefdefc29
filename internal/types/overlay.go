package types

// MetadataEntry is a single key/value pair carried into the overlay
// manifest.  Entries keep the order in which they were added to the
// builder; the manifest emits one meta-data element per entry.
type MetadataEntry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// OverlaySpec describes one overlay build.  Instances are immutable:
// they are produced by OverlaySpecBuilder.Build and must not be
// modified while a pipeline run is in flight.
type OverlaySpec struct {
	PackageName      string
	TargetPackage    string
	InstallTimestamp int64
	VersionCode      int
	VersionName      string
	Label            string
	Metadata         []MetadataEntry
	OutputDir        string

	// ExtraBasePackages may contain paths that do not exist; the
	// compile stage filters them at use.
	ExtraBasePackages []string
	ResourceDirs      []string
	AssetDir          string
}

// OverlaySpecBuilder accumulates overlay build inputs.  The slice
// fields are append-only; AssetDir is replace-not-append.
type OverlaySpecBuilder struct {
	spec OverlaySpec
}

func NewOverlaySpecBuilder(packageName, targetPackage string) *OverlaySpecBuilder {
	return &OverlaySpecBuilder{spec: OverlaySpec{
		PackageName:   packageName,
		TargetPackage: targetPackage,
	}}
}

func (b *OverlaySpecBuilder) WithInstallTimestamp(ts int64) *OverlaySpecBuilder {
	b.spec.InstallTimestamp = ts
	return b
}

func (b *OverlaySpecBuilder) WithVersion(code int, name string) *OverlaySpecBuilder {
	b.spec.VersionCode = code
	b.spec.VersionName = name
	return b
}

func (b *OverlaySpecBuilder) WithLabel(label string) *OverlaySpecBuilder {
	b.spec.Label = label
	return b
}

func (b *OverlaySpecBuilder) WithOutputDir(dir string) *OverlaySpecBuilder {
	b.spec.OutputDir = dir
	return b
}

func (b *OverlaySpecBuilder) AddMetadata(key, value string) *OverlaySpecBuilder {
	b.spec.Metadata = append(b.spec.Metadata, MetadataEntry{Key: key, Value: value})
	return b
}

func (b *OverlaySpecBuilder) AddExtraBasePackage(path string) *OverlaySpecBuilder {
	b.spec.ExtraBasePackages = append(b.spec.ExtraBasePackages, path)
	return b
}

func (b *OverlaySpecBuilder) AddResourceDir(dir string) *OverlaySpecBuilder {
	b.spec.ResourceDirs = append(b.spec.ResourceDirs, dir)
	return b
}

// SetAssetDir replaces any previously set asset directory.
func (b *OverlaySpecBuilder) SetAssetDir(dir string) *OverlaySpecBuilder {
	b.spec.AssetDir = dir
	return b
}

// Build finalizes the accumulated inputs into an immutable OverlaySpec.
// The builder may keep being used afterwards; the returned spec owns
// copies of the slice fields.
func (b *OverlaySpecBuilder) Build() OverlaySpec {
	spec := b.spec
	spec.Metadata = append([]MetadataEntry(nil), b.spec.Metadata...)
	spec.ExtraBasePackages = append([]string(nil), b.spec.ExtraBasePackages...)
	spec.ResourceDirs = append([]string(nil), b.spec.ResourceDirs...)
	return spec
}
