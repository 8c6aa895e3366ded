package services

import (
	"fmt"
	"path/filepath"

	"ifcfg-agent/internal/domain/entities"
	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"
)

// bootFlagByState maps the interface state to the derived boot flag
// shared by both record shapes.
var bootFlagByState = map[string]string{
	"up":   "yes",
	"down": "no",
}

// Normalizer validates a raw parameter set and fills defaults to
// produce one fully resolved configuration record. Any validation
// failure aborts the whole normalization; no partial record is ever
// produced.
type Normalizer struct {
	paths interfaces.PathResolver
}

// NewNormalizer creates a new Normalizer.
func NewNormalizer(paths interfaces.PathResolver) *Normalizer {
	return &Normalizer{paths: paths}
}

// Normalize builds the configuration record for a resolved interface
// name.
func (n *Normalizer) Normalize(name string, params entities.InterfaceParams) (*entities.InterfaceConfig, error) {
	if name == "" {
		return nil, errors.NewValidationError("interface name must not be empty", nil)
	}

	alias, err := boolOrDefault("alias", params.Alias, false)
	if err != nil {
		return nil, err
	}
	ethernet, err := boolOrDefault("ethernet", params.Ethernet, true)
	if err != nil {
		return nil, err
	}
	ipv6Init, err := boolOrDefault("ipv6_init", params.IPv6Init, false)
	if err != nil {
		return nil, err
	}
	ipv6Autoconf, err := boolOrDefault("ipv6_autoconf", params.IPv6Autoconf, false)
	if err != nil {
		return nil, err
	}
	ipv6PeerDNS, err := boolOrDefault("ipv6_peer_dns", params.IPv6PeerDNS, false)
	if err != nil {
		return nil, err
	}
	userControl, err := boolOrDefault("user_control", params.UserControl, false)
	if err != nil {
		return nil, err
	}
	checkLinkDown, err := boolOrDefault("check_link_down", params.CheckLinkDown, false)
	if err != nil {
		return nil, err
	}

	bootFlag, ok := bootFlagByState[params.State]
	if !ok {
		return nil, errors.NewValidationError(
			fmt.Sprintf("state must be 'up' or 'down', got %q", params.State), nil)
	}

	dnsPrimary, dnsSecondary := normalizeDNS(params.DNSPrimary, params.DNSSecondary)

	shape := entities.ShapePrimary
	if alias {
		shape = entities.ShapeAlias
	}

	if params.MTU < 0 {
		return nil, errors.NewValidationError(
			fmt.Sprintf("mtu must be a positive integer, got %d", params.MTU), nil)
	}
	if params.VLANID != nil && *params.VLANID < 0 {
		return nil, errors.NewValidationError(
			fmt.Sprintf("vlan_id must be non-negative, got %d", *params.VLANID), nil)
	}

	bootProtocol := params.BootProtocol
	if bootProtocol == "" {
		bootProtocol = "none"
	}

	cfg := &entities.InterfaceConfig{
		Name:          name,
		State:         params.State,
		Shape:         shape,
		BootFlag:      bootFlag,
		Ethernet:      ethernet,
		IPAddress:     params.IPAddress,
		Netmask:       params.Netmask,
		MacAddress:    params.MacAddress,
		Gateway:       params.Gateway,
		IPv6Address:   params.IPv6Address,
		IPv6Gateway:   params.IPv6Gateway,
		IPv6Init:      ipv6Init,
		IPv6Autoconf:  ipv6Autoconf,
		IPv6PeerDNS:   ipv6PeerDNS,
		BootProtocol:  bootProtocol,
		UserControl:   userControl,
		MTU:           params.MTU,
		DHCPHostname:  params.DHCPHostname,
		EthtoolOpts:   params.EthtoolOpts,
		BondingOpts:   params.BondingOpts,
		Bridge:        params.Bridge,
		LinkDelay:     params.LinkDelay,
		Scope:         params.Scope,
		CheckLinkDown: checkLinkDown,
		DefaultRoute:  params.DefaultRoute,
		LinkType:      params.LinkType,
		DNSPrimary:    dnsPrimary,
		DNSSecondary:  dnsSecondary,
		Domain:        params.Domain,
		VLANID:        params.VLANID,
	}
	cfg.FilePath = n.configPath(cfg)

	return cfg, nil
}

// normalizeDNS keeps the primary slot populated whenever any DNS server
// is configured: a lone secondary moves into the primary slot. The rule
// is idempotent.
func normalizeDNS(primary, secondary string) (string, string) {
	if primary == "" && secondary != "" {
		return secondary, ""
	}
	return primary, secondary
}

// configPath computes the destination file path. VLAN subdevices get a
// ".<vlan_id>" filename suffix. Alias records rely on the caller
// supplying the "dev:n" form in the name itself, so no extra suffix is
// appended here.
func (n *Normalizer) configPath(cfg *entities.InterfaceConfig) string {
	filename := fmt.Sprintf("ifcfg-%s", cfg.Name)
	if cfg.VLANID != nil {
		filename = fmt.Sprintf("ifcfg-%s.%d", cfg.Name, *cfg.VLANID)
	}
	return filepath.Join(n.paths.ConfigDir(), filename)
}

// boolOrDefault validates one of the designated boolean fields. Only
// nil (meaning unset) and genuine booleans are accepted.
func boolOrDefault(field string, value any, def bool) (bool, error) {
	switch v := value.(type) {
	case nil:
		return def, nil
	case bool:
		return v, nil
	default:
		return false, errors.NewValidationError(
			fmt.Sprintf("field %s must be a boolean, got %v (%T)", field, value, value), nil)
	}
}
