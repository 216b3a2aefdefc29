package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"overlaypack/internal/core"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	descriptorPath := strings.TrimSpace(req.DescriptorPath)
	if descriptorPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("overlay descriptor path is required")
	}
	descriptor, err := s.SpecLoader.LoadDescriptor(descriptorPath)
	if err != nil {
		return ValidateResult{}, err
	}
	spec := s.specFromDescriptor(descriptor, "")
	if spec.OutputDir == "" {
		// Standalone validation should not fail on a missing output
		// dir; build-time overrides usually supply it.
		spec.OutputDir = "out"
	}
	if err := core.ValidateOverlay(ctx, spec); err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{Package: spec.PackageName, Target: spec.TargetPackage}, nil
}
