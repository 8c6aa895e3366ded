package adapters

import (
	"os"
	"path/filepath"

	"ifcfg-agent/internal/domain/interfaces"
)

// RealFileSystem is the FileSystem implementation backed by the OS.
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem.
func NewRealFileSystem() interfaces.FileSystem {
	return &RealFileSystem{}
}

// ReadFile reads a file.
func (fs *RealFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file, creating parent directories as
// needed.
func (fs *RealFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

// Exists reports whether a file or directory exists.
func (fs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MkdirAll creates a directory tree.
func (fs *RealFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Remove deletes a file or directory.
func (fs *RealFileSystem) Remove(path string) error {
	return os.Remove(path)
}
