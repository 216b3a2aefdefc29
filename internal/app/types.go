package app

import "overlaypack/internal/types"

type BuildRequest struct {
	DescriptorPath string
	OutputDir      string
	Vendor         string
	SDKVersion     int

	CompilerPath string
	FrameworkRes string
	ZipalignPath string
	SignerPath   string
	KeystorePath string
	KeystorePass string
	WorkRoot     string
}

type BuildResult struct {
	ArtifactPath string
}

type ValidateRequest struct {
	DescriptorPath string
}

type ValidateResult struct {
	Package string
	Target  string
}

type BackendRequest struct {
	Vendor           string
	SDKVersion       int
	CheckPermissions bool

	EnableVendorService   bool
	EnableElevatedService bool
	EnableSystemBridge    bool
	EnableRoot            bool
	EnableCompanionApp    bool
}

type BackendResult struct {
	Backend string
}

type InspectRequest struct {
	DescriptorPath string
}

type InspectResult struct {
	Reports []types.ResourceDirReport
}
