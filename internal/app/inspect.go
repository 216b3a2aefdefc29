package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Inspect reports what the compiler will see in the descriptor's
// resource and asset directories.
func (s Service) Inspect(_ context.Context, req InspectRequest) (InspectResult, error) {
	descriptorPath := strings.TrimSpace(req.DescriptorPath)
	if descriptorPath == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("overlay descriptor path is required")
	}
	descriptor, err := s.SpecLoader.LoadDescriptor(descriptorPath)
	if err != nil {
		return InspectResult{}, err
	}
	dirs := append([]string(nil), descriptor.ResourceDirs...)
	if descriptor.AssetDir != "" {
		dirs = append(dirs, descriptor.AssetDir)
	}
	reports, err := s.Scanner.ScanDirs(dirs)
	if err != nil {
		return InspectResult{}, err
	}
	return InspectResult{Reports: reports}, nil
}
