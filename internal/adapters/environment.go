package adapters

import (
	"context"
	"os"

	"github.com/spf13/viper"

	"overlaypack/internal/ports"
	"overlaypack/internal/types"
)

const (
	// companionProcess is the privileged helper daemon the service
	// backends talk to.
	companionProcess = "overlaypackd"

	// companionAppPackage is the unprivileged companion application
	// used as the last-resort backend.
	companionAppPackage = "app.overlaypack.companion"

	systemBridgeBinary = "/system/bin/cmd"
)

// NewHostEnvironment probes the running host for the signals the
// capability resolver consumes.  Probes are closures so nothing runs
// until the resolver actually reaches that candidate.
func NewHostEnvironment(invoker ports.ToolInvoker, profile types.PlatformProfile) types.Environment {
	granted := grantedPermissionSet()
	return types.Environment{
		Profile:  profile,
		PathList: os.Getenv("PATH"),
		CompanionReachable: func() bool {
			result, err := invoker.Run(context.Background(), "pidof", companionProcess)
			return err == nil && result.ExitCode == 0
		},
		CompanionInitialize: func() bool {
			result, err := invoker.Run(context.Background(), companionProcess, "--ping")
			return err == nil && result.ExitCode == 0
		},
		SystemBridgePresent: func() bool {
			info, err := os.Stat(systemBridgeBinary)
			return err == nil && !info.IsDir()
		},
		CompanionAppInstalled: func() bool {
			result, err := invoker.Run(context.Background(), "pm", "path", companionAppPackage)
			return err == nil && result.ExitCode == 0
		},
		PermissionGranted: func(permission string) bool {
			_, ok := granted[permission]
			return ok
		},
	}
}

// grantedPermissionSet reads the declared runtime grants from config.
// The checked resolver only accepts already-granted state, so grants
// are declared, never prompted for.
func grantedPermissionSet() map[string]struct{} {
	set := map[string]struct{}{}
	for _, permission := range viper.GetStringSlice("granted_permissions") {
		set[permission] = struct{}{}
	}
	return set
}
