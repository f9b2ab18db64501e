// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyFilename = errors.New("filename cannot be empty")
	ErrCopySource    = errors.New("failed to read copy source")
)

// Permission defaults for generated output.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// reservedChars cannot appear in file names on at least one supported platform.
const reservedChars = `/\:*?"<>|`

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "fonts" -> false (name)
//   - "./fonts.yaml" -> true (relative path)
//   - "/etc/woff2css/fonts.yaml" -> true (absolute)
//   - "C:\fonts\fonts.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// HasExtension reports whether path ends in ext (with leading dot),
// ignoring case.
func HasExtension(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}

// SanitizeFilename replaces characters that are unsafe in file names with
// underscores and trims surrounding spaces and dots.
func SanitizeFilename(name string) (string, error) {
	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || strings.ContainsRune(reservedChars, r) {
			b.WriteRune('_')
			continue
		}
		b.WriteRune(r)
	}

	clean := strings.Trim(b.String(), " .")
	if clean == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyFilename, name)
	}
	return clean, nil
}

// WriteFile writes data to path atomically, creating parent directories.
// Readers never observe a partially written file.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := writeFileAtomic(path, data, FilePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// CopyFile copies src to dst atomically.
func CopyFile(src, dst string) error {
	data, err := os.ReadFile(src) // #nosec G304 -- discovered path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopySource, err)
	}
	return WriteFile(dst, data)
}
