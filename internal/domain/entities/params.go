package entities

// InterfaceParams is the raw, partially specified parameter set supplied
// by a caller for one interface. Fields that must be strict booleans are
// declared as any so the normalizer can reject non-boolean values coming
// from YAML or database rows instead of silently coercing them.
type InterfaceParams struct {
	State string `yaml:"state"`

	// Alias selects the alias record shape instead of the primary shape.
	Alias any `yaml:"alias"`

	// The six designated boolean fields. Nil means "use the default".
	Ethernet      any `yaml:"ethernet"`
	IPv6Init      any `yaml:"ipv6_init"`
	IPv6Autoconf  any `yaml:"ipv6_autoconf"`
	IPv6PeerDNS   any `yaml:"ipv6_peer_dns"`
	UserControl   any `yaml:"user_control"`
	CheckLinkDown any `yaml:"check_link_down"`

	IPAddress   string `yaml:"ip_address"`
	Netmask     string `yaml:"netmask"`
	MacAddress  string `yaml:"mac_address"`
	Gateway     string `yaml:"gateway"`
	IPv6Address string `yaml:"ipv6_address"`
	IPv6Gateway string `yaml:"ipv6_gateway"`

	BootProtocol string `yaml:"boot_protocol"`
	MTU          int    `yaml:"mtu"`
	DHCPHostname string `yaml:"dhcp_hostname"`
	EthtoolOpts  string `yaml:"ethtool_opts"`
	BondingOpts  string `yaml:"bonding_opts"`
	Bridge       string `yaml:"bridge"`
	LinkDelay    string `yaml:"link_delay"`
	Scope        string `yaml:"scope"`
	DefaultRoute string `yaml:"default_route"`
	LinkType     string `yaml:"link_type"`

	DNSPrimary   string `yaml:"dns_primary"`
	DNSSecondary string `yaml:"dns_secondary"`
	Domain       string `yaml:"domain"`

	// VLANID is optional; nil means the interface is not a VLAN subdevice.
	VLANID *int `yaml:"vlan_id"`
}

// Declaration binds an interface identifier to its raw parameters. It is
// the unit handed to the build pipeline, whether it came from a YAML
// declarations file or a database row.
type Declaration struct {
	ID         int
	Identifier Identifier
	Params     InterfaceParams
}
