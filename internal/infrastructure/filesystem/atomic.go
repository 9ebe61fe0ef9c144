// Package filesystem holds small file helpers shared by the storage adapters.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to a temp file next to path and renames it
// into place, so readers never observe a partial file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func(step string, err error) error {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s %s: %w", step, path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return cleanup("write", err)
	}
	if err := tmp.Close(); err != nil {
		return cleanup("close", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return cleanup("chmod", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return cleanup("rename", err)
	}
	return nil
}

// Exists reports whether path exists. Errors other than "not exist" are returned.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
