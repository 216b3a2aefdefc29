package app

import (
	"strings"
	"time"

	"overlaypack/internal/adapters"
	"overlaypack/internal/core"
	"overlaypack/internal/ports"
	"overlaypack/internal/types"
)

type Service struct {
	SpecLoader ports.OverlaySpecPort
	Invoker    ports.ToolInvoker
	Prefs      ports.Prefs
	Scanner    adapters.ResourceScanAdapter

	// Resolver is the process-wide backend selection cell; it is
	// created once per Service and memoizes the first selection.
	Resolver *core.CapabilityResolver

	Clock func() time.Time
}

func NewService() Service {
	invoker := adapters.NewExecToolInvoker()
	return Service{
		SpecLoader: adapters.NewSpecFileAdapter(),
		Invoker:    invoker,
		Prefs:      adapters.NewViperPrefs(),
		Scanner:    adapters.NewResourceScanAdapter(),
		Resolver:   core.NewCapabilityResolver(adapters.DefaultBackendFactories(invoker)),
		Clock:      time.Now,
	}
}

func platformProfile(vendor string, sdkVersion int) types.PlatformProfile {
	profile := types.PlatformProfile{Vendor: types.VendorGeneric, SDKVersion: sdkVersion}
	if strings.EqualFold(strings.TrimSpace(vendor), string(types.VendorSamsung)) {
		profile.Vendor = types.VendorSamsung
	}
	return profile
}
