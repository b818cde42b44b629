//go:build windows

package build

import "os"

// renameio does not support Windows.
func writeFileAtomic(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
