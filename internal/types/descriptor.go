package types

// OverlayDescriptor is the yaml-facing form of an overlay build, as
// written by users in descriptor files.  The CLI and application layer
// fold flag overrides into it before it is turned into an OverlaySpec.
type OverlayDescriptor struct {
	Package           string          `yaml:"package"`
	Target            string          `yaml:"target"`
	VersionCode       int             `yaml:"version_code,omitempty"`
	VersionName       string          `yaml:"version_name,omitempty"`
	Label             string          `yaml:"label,omitempty"`
	Metadata          []MetadataEntry `yaml:"metadata,omitempty"`
	ResourceDirs      []string        `yaml:"resource_dirs"`
	AssetDir          string          `yaml:"asset_dir,omitempty"`
	ExtraBasePackages []string        `yaml:"extra_base_packages,omitempty"`
	OutputDir         string          `yaml:"output_dir,omitempty"`
}

// ResourceDirReport summarizes one resource or asset directory as the
// compiler will see it.
type ResourceDirReport struct {
	Dir     string
	Files   int
	Missing bool
}
