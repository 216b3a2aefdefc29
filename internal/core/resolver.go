package core

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"overlaypack/internal/ports"
	"overlaypack/internal/types"
)

// CapabilityCheck is one candidate in the resolver's priority list.
// Checks are evaluated strictly in declaration order; the first one
// that is enabled and satisfied wins.
type CapabilityCheck struct {
	Name      string
	Enabled   bool
	Satisfied func() bool
	Factory   func() ports.Backend

	// Permission is consulted by the permission-checked resolver
	// before the factory runs, so an ungranted candidate is skipped
	// without instantiating its backend.
	Permission    string
	SelfElevating bool
}

// EnabledFlags toggles each candidate backend independently.
type EnabledFlags struct {
	VendorService   bool
	ElevatedService bool
	SystemBridge    bool
	Root            bool
	CompanionApp    bool
}

// AllBackends enables every candidate.
func AllBackends() EnabledFlags {
	return EnabledFlags{
		VendorService:   true,
		ElevatedService: true,
		SystemBridge:    true,
		Root:            true,
		CompanionApp:    true,
	}
}

// BackendFactories supplies a constructor per backend kind.  Factories
// may have side effects (binding a companion connection), so the
// resolver invokes at most one per process.
type BackendFactories struct {
	VendorService     func() ports.Backend
	ElevatedService   func() ports.Backend
	SystemBridge      func() ports.Backend
	RootPostThreshold func() ports.Backend
	RootPreThreshold  func() ports.Backend
	CompanionApp      func() ports.Backend
}

// CapabilityResolver picks the platform integration backend for this
// process.  The selection is a guarded single-assignment cell: the
// first successful resolution wins and later calls return it without
// re-evaluating any predicate, even if environment signals change.
type CapabilityResolver struct {
	mu        sync.Mutex
	selected  ports.Backend
	factories BackendFactories
}

func NewCapabilityResolver(factories BackendFactories) *CapabilityResolver {
	return &CapabilityResolver{factories: factories}
}

// Resolve evaluates the priority list eagerly and reports whether a
// backend is selected.
func (r *CapabilityResolver) Resolve(env types.Environment, flags EnabledFlags) bool {
	return r.resolve(env, flags, false)
}

// ResolveChecked behaves like Resolve but skips any candidate whose
// backend requires a runtime permission that is not already granted.
// It never triggers a permission prompt.  Self-elevating backends are
// exempt from the gate.
func (r *CapabilityResolver) ResolveChecked(env types.Environment, flags EnabledFlags) bool {
	return r.resolve(env, flags, true)
}

// Selected returns the chosen backend, or nil before any successful
// resolution.
func (r *CapabilityResolver) Selected() ports.Backend {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selected
}

func (r *CapabilityResolver) resolve(env types.Environment, flags EnabledFlags, checkPermissions bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.selected != nil {
		return true
	}
	for _, check := range r.checks(env, flags) {
		if !check.Enabled {
			continue
		}
		if checkPermissions && !check.SelfElevating && check.Permission != "" {
			if env.PermissionGranted == nil || !env.PermissionGranted(check.Permission) {
				log.Debug().Str("check", check.Name).Str("permission", check.Permission).Msg("skipping backend, permission not granted")
				continue
			}
		}
		if !check.Satisfied() {
			continue
		}
		r.selected = check.Factory()
		log.Info().Str("backend", r.selected.Name()).Msg("backend selected")
		return true
	}
	return false
}

// checks builds the priority list, highest priority first.  Order is
// load-bearing: a later, more specific candidate never overrides an
// earlier satisfied one.
func (r *CapabilityResolver) checks(env types.Environment, flags EnabledFlags) []CapabilityCheck {
	profile := env.Profile
	preThreshold := profile.SDKVersion <= types.SDKCompanionMax
	return []CapabilityCheck{
		{
			Name:    "vendor-service",
			Enabled: flags.VendorService,
			Satisfied: func() bool {
				return profile.IsSamsung() && preThreshold &&
					env.CompanionReachable() && env.CompanionInitialize()
			},
			Factory:    r.factories.VendorService,
			Permission: ports.PermissionCompanionAccess,
		},
		{
			Name:    "elevated-service",
			Enabled: flags.ElevatedService,
			Satisfied: func() bool {
				return preThreshold && env.CompanionReachable() && env.CompanionInitialize()
			},
			Factory:    r.factories.ElevatedService,
			Permission: ports.PermissionCompanionAccess,
		},
		{
			Name:       "system-bridge",
			Enabled:    flags.SystemBridge,
			Satisfied:  func() bool { return env.SystemBridgePresent() },
			Factory:    r.factories.SystemBridge,
			Permission: ports.PermissionManageOverlays,
		},
		{
			Name:          "root-post",
			Enabled:       flags.Root,
			Satisfied:     func() bool { return RootAvailable(env.PathList) && !preThreshold },
			Factory:       r.factories.RootPostThreshold,
			SelfElevating: true,
		},
		{
			Name:          "root-pre",
			Enabled:       flags.Root,
			Satisfied:     func() bool { return RootAvailable(env.PathList) && preThreshold },
			Factory:       r.factories.RootPreThreshold,
			SelfElevating: true,
		},
		{
			Name:       "companion-app",
			Enabled:    flags.CompanionApp,
			Satisfied:  func() bool { return env.CompanionAppInstalled() },
			Factory:    r.factories.CompanionApp,
			Permission: ports.PermissionCompanionAccess,
		},
	}
}

// RootAvailable scans the colon-delimited search path, directory by
// directory, for an executable named su.
func RootAvailable(pathList string) bool {
	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, "su"))
		if err != nil || info.IsDir() {
			continue
		}
		if info.Mode()&0o111 != 0 {
			return true
		}
	}
	return false
}
