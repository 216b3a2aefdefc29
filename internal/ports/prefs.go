package ports

// Prefs is a read-only view of the process preference store.
type Prefs interface {
	GetBool(key string, def bool) bool
}

// PrefForceNewCompiler disables the legacy-compile fallback when set.
const PrefForceNewCompiler = "force_new_compiler"
