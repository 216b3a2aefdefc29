package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"overlaypack/internal/app"
)

type buildOptions struct {
	Descriptor   string
	OutputDir    string
	Vendor       string
	SDKVersion   int
	Compiler     string
	FrameworkRes string
	Zipalign     string
	Signer       string
	Keystore     string
	KeystorePass string
	WorkRoot     string
}

func newBuildCommand() *cobra.Command {
	opts := buildOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile and sign an overlay from its descriptor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Descriptor, "descriptor", "", "Overlay descriptor path")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Output directory (overrides descriptor)")
	cmd.Flags().StringVar(&opts.Vendor, "vendor", "generic", "Device vendor variant")
	cmd.Flags().IntVar(&opts.SDKVersion, "sdk", 0, "Device SDK version")
	cmd.Flags().StringVar(&opts.Compiler, "compiler", "aapt", "Resource compiler executable")
	cmd.Flags().StringVar(&opts.FrameworkRes, "framework-res", "/system/framework/framework-res.apk", "Base framework resource package")
	cmd.Flags().StringVar(&opts.Zipalign, "zipalign", "zipalign", "Alignment tool executable")
	cmd.Flags().StringVar(&opts.Signer, "signer", "apksigner", "Signing tool executable")
	cmd.Flags().StringVar(&opts.Keystore, "keystore", "", "Signing keystore path")
	cmd.Flags().StringVar(&opts.KeystorePass, "ks-pass", "", "Signing keystore password")
	cmd.Flags().StringVar(&opts.WorkRoot, "work-root", "", "Parent directory for scratch dirs")

	_ = viper.BindPFlag("descriptor", cmd.Flags().Lookup("descriptor"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("vendor", cmd.Flags().Lookup("vendor"))
	_ = viper.BindPFlag("sdk", cmd.Flags().Lookup("sdk"))
	_ = viper.BindPFlag("compiler", cmd.Flags().Lookup("compiler"))
	_ = viper.BindPFlag("framework_res", cmd.Flags().Lookup("framework-res"))
	_ = viper.BindPFlag("zipalign", cmd.Flags().Lookup("zipalign"))
	_ = viper.BindPFlag("signer", cmd.Flags().Lookup("signer"))
	_ = viper.BindPFlag("keystore", cmd.Flags().Lookup("keystore"))
	_ = viper.BindPFlag("ks_pass", cmd.Flags().Lookup("ks-pass"))
	_ = viper.BindPFlag("work_root", cmd.Flags().Lookup("work-root"))

	return cmd
}

func runBuild(ctx context.Context, cmd *cobra.Command, opts buildOptions) error {
	service := newAppService()
	result, err := service.Build(ctx, app.BuildRequest{
		DescriptorPath: resolveString(cmd, opts.Descriptor, "descriptor", "descriptor"),
		OutputDir:      resolveString(cmd, opts.OutputDir, "output", "output"),
		Vendor:         resolveString(cmd, opts.Vendor, "vendor", "vendor"),
		SDKVersion:     resolveInt(cmd, opts.SDKVersion, "sdk", "sdk"),
		CompilerPath:   resolveString(cmd, opts.Compiler, "compiler", "compiler"),
		FrameworkRes:   resolveString(cmd, opts.FrameworkRes, "framework_res", "framework-res"),
		ZipalignPath:   resolveString(cmd, opts.Zipalign, "zipalign", "zipalign"),
		SignerPath:     resolveString(cmd, opts.Signer, "signer", "signer"),
		KeystorePath:   resolveString(cmd, opts.Keystore, "keystore", "keystore"),
		KeystorePass:   resolveString(cmd, opts.KeystorePass, "ks_pass", "ks-pass"),
		WorkRoot:       resolveString(cmd, opts.WorkRoot, "work_root", "work-root"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("built overlay: %s\n", result.ArtifactPath)
	return nil
}
