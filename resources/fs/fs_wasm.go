//go:build wasm
// +build wasm

package fs

import "os"

// MkdirAll is a no-op for wasm builds.
func MkdirAll(path string, perm os.FileMode) error {
	return nil
}
