package types

// Vendor identifies the device vendor variant relevant to manifest and
// backend branching.  Only Samsung gets special treatment today.
type Vendor string

const (
	VendorGeneric Vendor = "generic"
	VendorSamsung Vendor = "samsung"
)

// SDK version thresholds used by the manifest generator and the
// capability resolver.
const (
	// SDKVendorShimMin is the lowest SDK on which Samsung devices
	// need the uses-sdk shim for overlay resolution.
	SDKVendorShimMin = 24

	// SDKCompanionMax is the last SDK the elevated companion service
	// supports; root backends split on the same boundary.
	SDKCompanionMax = 27
)

// PlatformProfile captures the platform signals the manifest generator
// branches on.  It is passed in explicitly so the branches stay pure
// and testable without a device.
type PlatformProfile struct {
	Vendor     Vendor
	SDKVersion int
}

func (p PlatformProfile) IsSamsung() bool { return p.Vendor == VendorSamsung }

// Environment bundles every runtime signal the capability resolver
// consumes.  It is constructed once at startup; substituting the
// predicate fields makes resolution fully deterministic in tests.
type Environment struct {
	Profile PlatformProfile

	// PathList is the colon-delimited search path scanned for su.
	PathList string

	CompanionReachable    func() bool
	CompanionInitialize   func() bool
	SystemBridgePresent   func() bool
	CompanionAppInstalled func() bool

	// PermissionGranted reports whether a runtime permission is
	// already granted.  The permission-checked resolver only reads
	// this; it never triggers a prompt.
	PermissionGranted func(permission string) bool
}
