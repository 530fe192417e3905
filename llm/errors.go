package llm

import "fmt"

// BackendError is the single error kind a remote completion call surfaces.
// Transport failures, timeouts, provider-reported errors and malformed
// responses all collapse into it, so callers recover without inspecting
// transport-specific subtypes.
type BackendError struct {
	Message string
	Err     error
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BackendError) Unwrap() error { return e.Err }

func backendErrorf(err error, format string, args ...any) *BackendError {
	return &BackendError{Message: fmt.Sprintf(format, args...), Err: err}
}
