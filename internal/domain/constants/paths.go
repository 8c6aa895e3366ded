package constants

// System path constants
const (
	// RHEL family interface configuration directory
	RHELNetworkScriptsDir = "/etc/sysconfig/network-scripts"

	// SUSE family interface configuration directory
	SUSENetworkDir = "/etc/sysconfig/network"

	// OS detection
	OSReleaseFile = "/etc/os-release"

	// System network path
	SysClassNet = "/sys/class/net"
)

// Network configuration constants
const (
	// File permission for rendered configuration files
	ConfigFilePermission = 0644

	// Command timeout in seconds
	DefaultCommandTimeout = 30
)

// Default value constants
const (
	DefaultDBHost = "localhost"
	DefaultDBPort = "3306"
	DefaultDBName = "ifcfg"

	DefaultPollInterval = "30s"
	DefaultLogLevel     = "info"
	DefaultHealthPort   = "8080"
)
