package interfaces

import (
	"context"

	"ifcfg-agent/internal/domain/entities"
)

// InterfaceLocator maps hardware identities to canonical device names.
type InterfaceLocator interface {
	// NameBySequence returns the device name at the given ordinal
	// position in the kernel's enumeration order.
	NameBySequence(index int) (string, error)

	// NameByHardwareAddress returns the device name owning the given
	// MAC address, or an error when no device matches.
	NameByHardwareAddress(addr string) (string, error)
}

// Renderer serializes a resolved configuration record into the on-disk
// text of the network service. The two record shapes produce distinct
// output.
type Renderer interface {
	Render(cfg *entities.InterfaceConfig) ([]byte, error)
}

// ConfigWriter persists rendered content, reporting whether the file
// content actually changed.
type ConfigWriter interface {
	WriteIfChanged(path string, content []byte) (bool, error)
}

// BackupService preserves the previous content of a configuration file
// before it is overwritten.
type BackupService interface {
	CreateBackup(interfaceName, configPath string) error
}

// ServiceController drives the OS network service around configuration
// changes.
type ServiceController interface {
	// DisableNetworkManager shuts down the conflicting network
	// management daemon before any record is applied.
	DisableNetworkManager(ctx context.Context) error

	// RestartNetwork restarts the network service so changed records
	// take effect.
	RestartNetwork(ctx context.Context) error
}
