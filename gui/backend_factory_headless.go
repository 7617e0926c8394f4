//go:build headless

package gui

// NewWindowBackend in a headless build always returns a HeadlessBackend;
// there is no display to open an ebiten window or terminal session on.
func NewWindowBackend(kind BackendKind, width, height int) (Backend, error) {
	return NewHeadlessBackend(width, height), nil
}
