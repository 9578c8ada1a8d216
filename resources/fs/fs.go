//go:build !wasm
// +build !wasm

// Package fs wraps the small number of filesystem operations used by the
// resources package so that wasm builds, which have no filesystem, can
// substitute no-ops.
package fs

import "os"

// MkdirAll creates the named directory and any necessary parents.
func MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
