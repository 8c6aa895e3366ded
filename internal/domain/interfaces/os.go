package interfaces

import (
	"context"
	"os"
	"time"
)

// CommandExecutor runs system commands.
type CommandExecutor interface {
	// Execute runs a command and returns its stdout.
	Execute(ctx context.Context, command string, args ...string) ([]byte, error)

	// ExecuteWithTimeout runs a command under a deadline.
	ExecuteWithTimeout(ctx context.Context, timeout time.Duration, command string, args ...string) ([]byte, error)
}

// FileSystem abstracts file system access.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	Exists(path string) bool
	MkdirAll(path string, perm os.FileMode) error
	Remove(path string) error
}

// Clock abstracts time lookup.
type Clock interface {
	Now() time.Time
}

// OSFamily is the detected operating system family.
type OSFamily string

const (
	OSFamilyRHEL OSFamily = "rhel"
	OSFamilySUSE OSFamily = "suse"
)

// OSDetector determines the operating system family. Unsupported
// families fail detection; callers treat that as a fatal precondition.
type OSDetector interface {
	DetectFamily() (OSFamily, error)
}

// PathResolver supplies the base directory for interface configuration
// files on the detected OS family.
type PathResolver interface {
	ConfigDir() string
}
