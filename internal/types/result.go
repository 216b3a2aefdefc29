package types

// Result is the terminal outcome of a pipeline run (or of one of its
// stages).  Exactly one of the two variants holds: a success carrying
// an artifact path, or a failure carrying a message.  Callers must
// branch on Ok(); there is no nil/absent encoding of failure.
type Result struct {
	ok      bool
	path    string
	message string
}

func Succeeded(path string) Result {
	return Result{ok: true, path: path}
}

func Failed(message string) Result {
	return Result{ok: false, message: message}
}

func (r Result) Ok() bool { return r.ok }

// Path returns the artifact path of a success; empty on failure.
func (r Result) Path() string { return r.path }

// Message returns the failure message; empty on success.
func (r Result) Message() string { return r.message }
