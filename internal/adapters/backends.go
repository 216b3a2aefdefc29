package adapters

import (
	"context"
	"errors"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"overlaypack/internal/core"
	"overlaypack/internal/ports"
	"overlaypack/internal/shared"
)

// shellBackend implements the backend contract by shelling out to the
// platform package/overlay managers.  The service-backed variants go
// through the companion daemon's CLI surface, the root variants wrap
// every call in su.
type shellBackend struct {
	name          string
	permission    string
	selfElevating bool
	wrapper       []string
	invoker       ports.ToolInvoker
}

func (b shellBackend) Name() string               { return b.name }
func (b shellBackend) RequiredPermission() string { return b.permission }
func (b shellBackend) SelfElevating() bool        { return b.selfElevating }

func (b shellBackend) Install(ctx context.Context, apkPath string) error {
	return b.run(ctx, "install overlay", "pm", "install", "-r", apkPath)
}

func (b shellBackend) Uninstall(ctx context.Context, packageName string) error {
	return b.run(ctx, "uninstall overlay", "pm", "uninstall", packageName)
}

func (b shellBackend) Enable(ctx context.Context, packageName string) error {
	return b.run(ctx, "enable overlay", "cmd", "overlay", "enable", packageName)
}

func (b shellBackend) Disable(ctx context.Context, packageName string) error {
	return b.run(ctx, "disable overlay", "cmd", "overlay", "disable", packageName)
}

func (b shellBackend) run(ctx context.Context, action string, command ...string) error {
	args := append(append([]string(nil), b.wrapper...), command...)
	result, err := b.invoker.Run(ctx, args[0], args[1:]...)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to " + action + " via " + b.name).
			WithCause(errors.New(shared.JoinNonEmpty(result.StderrLines)))
	}
	log.Debug().Str("backend", b.name).Str("action", action).Msg("backend operation done")
	return nil
}

// DefaultBackendFactories wires the concrete backends into the
// resolver's factory slots.
func DefaultBackendFactories(invoker ports.ToolInvoker) core.BackendFactories {
	return core.BackendFactories{
		VendorService: func() ports.Backend {
			return shellBackend{
				name:       "vendor-service",
				permission: ports.PermissionCompanionAccess,
				wrapper:    []string{companionProcess, "exec"},
				invoker:    invoker,
			}
		},
		ElevatedService: func() ports.Backend {
			return shellBackend{
				name:       "elevated-service",
				permission: ports.PermissionCompanionAccess,
				wrapper:    []string{companionProcess, "exec"},
				invoker:    invoker,
			}
		},
		SystemBridge: func() ports.Backend {
			return shellBackend{
				name:       "system-bridge",
				permission: ports.PermissionManageOverlays,
				invoker:    invoker,
			}
		},
		RootPostThreshold: func() ports.Backend {
			return shellBackend{
				name:          "root-post",
				selfElevating: true,
				wrapper:       []string{"su", "-c"},
				invoker:       invoker,
			}
		},
		RootPreThreshold: func() ports.Backend {
			return shellBackend{
				name:          "root-pre",
				selfElevating: true,
				wrapper:       []string{"su", "-c"},
				invoker:       invoker,
			}
		},
		CompanionApp: func() ports.Backend {
			return shellBackend{
				name:       "companion-app",
				permission: ports.PermissionCompanionAccess,
				invoker:    invoker,
			}
		},
	}
}

var _ ports.Backend = shellBackend{}
