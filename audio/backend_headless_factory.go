//go:build headless

package audio

// NewBackend always returns the headless backend in a headless build,
// regardless of kind, since the oto backend is excluded from the build.
func NewBackend(kind BackendKind) (Backend, error) {
	return newHeadlessBackend(), nil
}
