package render

import (
	"fmt"
	"strings"

	"ifcfg-agent/internal/domain/entities"
	"ifcfg-agent/internal/domain/interfaces"
)

// IfcfgRenderer serializes a configuration record into the key=value
// text consumed by the network service. The alias shape and the primary
// shape produce distinct output: aliases carry ONPARENT and only the
// addressing keys, primaries carry ONBOOT and the full key set.
type IfcfgRenderer struct{}

// NewIfcfgRenderer creates a new IfcfgRenderer.
func NewIfcfgRenderer() interfaces.Renderer {
	return &IfcfgRenderer{}
}

// Render produces the file content for the record.
func (r *IfcfgRenderer) Render(cfg *entities.InterfaceConfig) ([]byte, error) {
	if cfg == nil || cfg.Name == "" {
		return nil, fmt.Errorf("cannot render empty configuration record")
	}

	var b strings.Builder
	if cfg.IsAlias() {
		r.renderAlias(&b, cfg)
	} else {
		r.renderPrimary(&b, cfg)
	}
	return []byte(b.String()), nil
}

func (r *IfcfgRenderer) renderAlias(b *strings.Builder, cfg *entities.InterfaceConfig) {
	writeKey(b, "DEVICE", cfg.Name)
	writeKey(b, "ONPARENT", cfg.BootFlag)
	writeKey(b, "BOOTPROTO", cfg.BootProtocol)
	writeKey(b, "IPADDR", cfg.IPAddress)
	writeKey(b, "NETMASK", cfg.Netmask)
	writeKey(b, "GATEWAY", cfg.Gateway)
}

func (r *IfcfgRenderer) renderPrimary(b *strings.Builder, cfg *entities.InterfaceConfig) {
	writeKey(b, "DEVICE", cfg.Name)
	// An explicit link_type overrides the ethernet default.
	if cfg.LinkType != "" {
		writeKey(b, "TYPE", cfg.LinkType)
	} else if cfg.Ethernet {
		writeKey(b, "TYPE", "Ethernet")
	}
	writeKey(b, "ONBOOT", cfg.BootFlag)
	writeKey(b, "BOOTPROTO", cfg.BootProtocol)
	writeKey(b, "HWADDR", cfg.MacAddress)
	writeKey(b, "IPADDR", cfg.IPAddress)
	writeKey(b, "NETMASK", cfg.Netmask)
	writeKey(b, "GATEWAY", cfg.Gateway)
	if cfg.MTU > 0 {
		writeKey(b, "MTU", fmt.Sprintf("%d", cfg.MTU))
	}
	if cfg.HasVLAN() {
		writeKey(b, "VLAN", "yes")
	}
	writeKey(b, "USERCTL", yesNo(cfg.UserControl))
	if cfg.IPv6Init {
		writeKey(b, "IPV6INIT", "yes")
		writeKey(b, "IPV6ADDR", cfg.IPv6Address)
		writeKey(b, "IPV6_DEFAULTGW", cfg.IPv6Gateway)
		writeKey(b, "IPV6_AUTOCONF", yesNo(cfg.IPv6Autoconf))
		writeKey(b, "IPV6_PEERDNS", yesNo(cfg.IPv6PeerDNS))
	}
	writeKey(b, "DNS1", cfg.DNSPrimary)
	writeKey(b, "DNS2", cfg.DNSSecondary)
	writeKey(b, "DOMAIN", cfg.Domain)
	writeKey(b, "DHCP_HOSTNAME", cfg.DHCPHostname)
	writeKey(b, "ETHTOOL_OPTS", cfg.EthtoolOpts)
	writeKey(b, "BONDING_OPTS", cfg.BondingOpts)
	writeKey(b, "BRIDGE", cfg.Bridge)
	writeKey(b, "LINKDELAY", cfg.LinkDelay)
	writeKey(b, "SCOPE", cfg.Scope)
	if cfg.CheckLinkDown {
		writeKey(b, "CHECK_LINK_DOWN", "yes")
	}
	writeKey(b, "DEFROUTE", cfg.DefaultRoute)
}

// writeKey emits KEY=value, skipping empty values.
func writeKey(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s=%s\n", key, value)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
