package entities

// Shape selects which of the two record variants an interface
// configuration renders as. Exactly one shape is active per record, so
// only one shape-specific derived flag ever exists.
type Shape int

const (
	// ShapePrimary is a standalone interface record.
	ShapePrimary Shape = iota

	// ShapeAlias is a secondary address bound to an existing interface.
	ShapeAlias
)

// String returns the shape label used in logs.
func (s Shape) String() string {
	if s == ShapeAlias {
		return "alias"
	}
	return "primary"
}

// InterfaceConfig is the fully resolved configuration record handed to
// the renderer. It is constructed once per invocation by the normalizer
// and never mutated afterwards.
type InterfaceConfig struct {
	// Name is the canonical interface name; never empty after
	// resolution.
	Name string

	// State is "up" or "down"; validated before construction.
	State string

	Shape Shape

	// BootFlag is "yes" or "no", derived from State. The renderer emits
	// it as ONPARENT for the alias shape and ONBOOT for the primary
	// shape.
	BootFlag string

	Ethernet bool

	IPAddress   string
	Netmask     string
	MacAddress  string
	Gateway     string
	IPv6Address string
	IPv6Gateway string

	IPv6Init     bool
	IPv6Autoconf bool
	IPv6PeerDNS  bool

	BootProtocol  string
	UserControl   bool
	MTU           int
	DHCPHostname  string
	EthtoolOpts   string
	BondingOpts   string
	Bridge        string
	LinkDelay     string
	Scope         string
	CheckLinkDown bool
	DefaultRoute  string
	LinkType      string

	DNSPrimary   string
	DNSSecondary string
	Domain       string

	VLANID *int

	// FilePath is the absolute destination path, computed from the OS
	// family base directory and Name (plus the VLAN suffix if present).
	FilePath string
}

// IsAlias reports whether the record uses the alias shape.
func (c *InterfaceConfig) IsAlias() bool {
	return c.Shape == ShapeAlias
}

// HasVLAN reports whether the record is a VLAN subdevice.
func (c *InterfaceConfig) HasVLAN() bool {
	return c.VLANID != nil
}
