package resources

import (
	"os"
	"path/filepath"
)

const portablePath = "PalView_UserData"

// checkPortable returns true if an empty file named 'portable.txt' is in the
// same directory as the program binary.
func checkPortable() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	_, err = os.Stat(filepath.Join(filepath.Dir(exe), "portable.txt"))
	return err == nil
}
