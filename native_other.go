//go:build !windows

package declwin

// platformBackend reports that this platform has no native windowing
// backend. The in-memory backend stays active.
func platformBackend() (backend, bool, error) {
	return nil, false, nil
}
