package ports

import "overlaypack/internal/types"

// OverlaySpecPort loads overlay descriptor files.
type OverlaySpecPort interface {
	LoadDescriptor(path string) (types.OverlayDescriptor, error)
}
