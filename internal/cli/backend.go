package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"overlaypack/internal/app"
)

type backendOptions struct {
	Vendor           string
	SDKVersion       int
	CheckPermissions bool

	VendorService   bool
	ElevatedService bool
	SystemBridge    bool
	Root            bool
	CompanionApp    bool
}

func newBackendCommand() *cobra.Command {
	opts := backendOptions{}
	cmd := &cobra.Command{
		Use:   "backend",
		Short: "Select the overlay integration backend for this device",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBackend(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Vendor, "vendor", "generic", "Device vendor variant")
	cmd.Flags().IntVar(&opts.SDKVersion, "sdk", 0, "Device SDK version")
	cmd.Flags().BoolVar(&opts.CheckPermissions, "check-permissions", false, "Skip backends whose permission is not already granted")
	cmd.Flags().BoolVar(&opts.VendorService, "enable-vendor-service", true, "Consider the vendor service backend")
	cmd.Flags().BoolVar(&opts.ElevatedService, "enable-elevated-service", true, "Consider the elevated service backend")
	cmd.Flags().BoolVar(&opts.SystemBridge, "enable-system-bridge", true, "Consider the system bridge backend")
	cmd.Flags().BoolVar(&opts.Root, "enable-root", true, "Consider the root backends")
	cmd.Flags().BoolVar(&opts.CompanionApp, "enable-companion-app", true, "Consider the companion app backend")

	_ = viper.BindPFlag("vendor", cmd.Flags().Lookup("vendor"))
	_ = viper.BindPFlag("sdk", cmd.Flags().Lookup("sdk"))
	_ = viper.BindPFlag("check_permissions", cmd.Flags().Lookup("check-permissions"))

	return cmd
}

func runBackend(ctx context.Context, cmd *cobra.Command, opts backendOptions) error {
	service := newAppService()
	result, err := service.ResolveBackend(ctx, app.BackendRequest{
		Vendor:                resolveString(cmd, opts.Vendor, "vendor", "vendor"),
		SDKVersion:            resolveInt(cmd, opts.SDKVersion, "sdk", "sdk"),
		CheckPermissions:      resolveBool(cmd, opts.CheckPermissions, "check_permissions", "check-permissions"),
		EnableVendorService:   opts.VendorService,
		EnableElevatedService: opts.ElevatedService,
		EnableSystemBridge:    opts.SystemBridge,
		EnableRoot:            opts.Root,
		EnableCompanionApp:    opts.CompanionApp,
	})
	if err != nil {
		return err
	}
	fmt.Printf("selected backend: %s\n", result.Backend)
	return nil
}
