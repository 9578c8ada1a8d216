//go:build !release
// +build !release

package resources

const resourceDir = ".palview"

func resourcePath() (string, error) {
	return resourceDir, nil
}
