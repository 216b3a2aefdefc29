package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"overlaypack/internal/adapters"
	"overlaypack/internal/core"
)

// ResolveBackend evaluates the capability resolver against the host
// environment.  The first successful resolution is retained for the
// process lifetime; later calls report the same backend.
func (s Service) ResolveBackend(_ context.Context, req BackendRequest) (BackendResult, error) {
	env := adapters.NewHostEnvironment(s.Invoker, platformProfile(req.Vendor, req.SDKVersion))
	flags := core.EnabledFlags{
		VendorService:   req.EnableVendorService,
		ElevatedService: req.EnableElevatedService,
		SystemBridge:    req.EnableSystemBridge,
		Root:            req.EnableRoot,
		CompanionApp:    req.EnableCompanionApp,
	}

	resolved := false
	if req.CheckPermissions {
		resolved = s.Resolver.ResolveChecked(env, flags)
	} else {
		resolved = s.Resolver.Resolve(env, flags)
	}
	if !resolved {
		return BackendResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no supported backend for this device")
	}
	return BackendResult{Backend: s.Resolver.Selected().Name()}, nil
}
