//go:build !headless

package gui

import "fmt"

// NewWindowBackend constructs the concrete Backend named by kind. Ebiten
// and terminal backends are only linked into non-headless builds; a
// headless build's copy of this function (backend_factory_headless.go)
// only ever returns a HeadlessBackend regardless of kind.
func NewWindowBackend(kind BackendKind, width, height int) (Backend, error) {
	switch kind {
	case BackendEbiten:
		return NewEbitenBackend(width, height), nil
	case BackendTerminal:
		return NewTerminalBackend(width, height), nil
	case BackendHeadless:
		return NewHeadlessBackend(width, height), nil
	default:
		return nil, fmt.Errorf("gui: unknown window backend kind %d", kind)
	}
}
