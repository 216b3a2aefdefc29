package core

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"overlaypack/internal/ports"
	"overlaypack/internal/types"
)

// PostProcessStage aligns and signs a compiled overlay archive and
// publishes the final artifact.
type PostProcessStage struct {
	Invoker ports.ToolInvoker

	ZipalignPath string
	SignerPath   string
	KeystorePath string
	KeystorePass string
}

// Finish produces <outDir>/<packageName>.apk from the unsigned
// archive.  The signer writes to a temporary name which is renamed
// into place, so a final artifact path either exists complete or not
// at all.  Intermediates are deleted best-effort.
func (s PostProcessStage) Finish(ctx context.Context, unsignedPath string, outDir string, packageName string) types.Result {
	alignedPath := filepath.Join(outDir, packageName+"-unsigned-aligned.apk")
	if _, err := s.Invoker.Run(ctx, s.ZipalignPath, "-f", "4", unsignedPath, alignedPath); err != nil {
		return types.Failed("Failed to zipalign overlay")
	}
	if _, err := os.Stat(alignedPath); err != nil {
		return types.Failed("Failed to zipalign overlay")
	}

	signedPath := filepath.Join(outDir, packageName+".apk")
	stagingPath := signedPath + ".tmp"
	args := []string{"sign", "--ks", s.KeystorePath}
	if s.KeystorePass != "" {
		args = append(args, "--ks-pass", "pass:"+s.KeystorePass)
	}
	args = append(args, "--out", stagingPath, alignedPath)
	if _, err := s.Invoker.Run(ctx, s.SignerPath, args...); err != nil {
		return types.Failed("Failed to sign overlay")
	}
	if _, err := os.Stat(stagingPath); err != nil {
		return types.Failed("Failed to sign overlay")
	}
	if err := os.Rename(stagingPath, signedPath); err != nil {
		return types.Failed("Failed to sign overlay")
	}

	for _, intermediate := range []string{unsignedPath, alignedPath} {
		if err := os.Remove(intermediate); err != nil {
			log.Warn().Str("path", intermediate).Err(err).Msg("failed to delete intermediate archive")
		}
	}
	log.Info().Str("artifact", signedPath).Msg("signed overlay published")
	return types.Succeeded(signedPath)
}
