// Package ioutils provides file system utilities for the converter.
//
// This package contains functions for:
//   - File writing
//   - Directory creation
//
// All functions that accept a context.Context respect cancellation,
// though file operations themselves may not be interruptible.
package ioutils

import (
	"context"
	"os"
)

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused but reserved for future use)
//   - path: File path to write to
//   - data: Bytes to write
//
// Example:
//
//	err := WriteFile(ctx, "/presets/HD_650_FIIO_KA17.xml", xmlBytes)
func WriteFile(ctx context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/home/user/.cache/autoeq-fiio")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
