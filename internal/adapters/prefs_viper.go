package adapters

import (
	"github.com/spf13/viper"

	"overlaypack/internal/ports"
)

// ViperPrefs exposes the process configuration store as a preference
// lookup.  Keys resolve through viper's usual chain (flags, env,
// config file).
type ViperPrefs struct{}

func NewViperPrefs() ViperPrefs {
	return ViperPrefs{}
}

func (p ViperPrefs) GetBool(key string, def bool) bool {
	if !viper.IsSet(key) {
		return def
	}
	return viper.GetBool(key)
}

var _ ports.Prefs = ViperPrefs{}
