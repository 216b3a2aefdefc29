package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"overlaypack/internal/ports"
	"overlaypack/internal/types"
)

type SpecFileAdapter struct{}

func NewSpecFileAdapter() SpecFileAdapter {
	return SpecFileAdapter{}
}

func (a SpecFileAdapter) LoadDescriptor(path string) (types.OverlayDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.OverlayDescriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("overlay descriptor not found").
			WithCause(err)
	}
	var descriptor types.OverlayDescriptor
	if err := yaml.Unmarshal(data, &descriptor); err != nil {
		return types.OverlayDescriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse overlay descriptor yaml").
			WithCause(err)
	}
	return descriptor, nil
}

var _ ports.OverlaySpecPort = SpecFileAdapter{}
