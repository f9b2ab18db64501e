//go:build !windows

package fileutil

import (
	"os"

	"github.com/google/renameio"
)

// writeFileAtomic writes through a temporary file renamed into place.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}
