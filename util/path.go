// Package util provides path and filesystem utilities.
package util

import (
	"os"
	"path/filepath"
	"strings"
)

// IsFile returns true if path is exist and is a file.
func IsFile(name string) bool {
	fi, err := os.Stat(name)
	if err != nil || fi.IsDir() {
		return false
	}
	return true
}

// hasExt reports whether name has extension ext, ignoring case.
func hasExt(name, ext string) bool {
	return strings.EqualFold(filepath.Ext(name), ext)
}
