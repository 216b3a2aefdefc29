package adapters

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"overlaypack/internal/types"
)

type ResourceScanAdapter struct{}

func NewResourceScanAdapter() ResourceScanAdapter {
	return ResourceScanAdapter{}
}

// ScanDirs walks each directory and counts the files the compiler will
// pick up.  Missing directories are reported, not failed on, so the
// inspect command can flag them all in one pass.
func (a ResourceScanAdapter) ScanDirs(dirs []string) ([]types.ResourceDirReport, error) {
	var reports []types.ResourceDirReport
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			reports = append(reports, types.ResourceDirReport{Dir: dir, Missing: true})
			continue
		}
		count := 0
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if strings.HasPrefix(d.Name(), ".") && path != dir {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") {
				return nil
			}
			count++
			return nil
		})
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to scan resource directory").
				WithCause(err)
		}
		reports = append(reports, types.ResourceDirReport{Dir: dir, Files: count})
	}
	return reports, nil
}
