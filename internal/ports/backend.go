package ports

import "context"

// Runtime permissions backends may require.  Root-style backends need
// none; they elevate themselves.
const (
	PermissionCompanionAccess = "overlaypack.permission.ACCESS_COMPANION"
	PermissionManageOverlays  = "overlaypack.permission.MANAGE_OVERLAYS"
)

// Backend is a platform-integration strategy for installing and
// managing overlay artifacts.  Implementations are opaque to the
// pipeline; the capability resolver selects exactly one per process.
type Backend interface {
	Name() string

	// RequiredPermission names the runtime permission this backend
	// needs to operate, or "" when none is required.
	RequiredPermission() string

	// SelfElevating reports whether the backend manages its own
	// privilege elevation (root-style backends).  Such backends are
	// exempt from the permission gate of the checked resolver.
	SelfElevating() bool

	Install(ctx context.Context, apkPath string) error
	Uninstall(ctx context.Context, packageName string) error
	Enable(ctx context.Context, packageName string) error
	Disable(ctx context.Context, packageName string) error
}
