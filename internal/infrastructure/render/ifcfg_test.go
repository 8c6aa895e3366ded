package render

import (
	"strings"
	"testing"

	"ifcfg-agent/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIfcfgRenderer_Render_PrimaryShape(t *testing.T) {
	renderer := NewIfcfgRenderer()

	cfg := &entities.InterfaceConfig{
		Name:         "eth1",
		State:        "up",
		Shape:        entities.ShapePrimary,
		BootFlag:     "yes",
		Ethernet:     true,
		BootProtocol: "none",
		MacAddress:   "aa:bb:cc:dd:ee:ff",
		IPAddress:    "10.0.0.5",
		Netmask:      "255.255.255.0",
		Gateway:      "10.0.0.1",
		DNSPrimary:   "8.8.8.8",
		MTU:          9000,
	}

	content, err := renderer.Render(cfg)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "DEVICE=eth1\n")
	assert.Contains(t, text, "TYPE=Ethernet\n")
	assert.Contains(t, text, "ONBOOT=yes\n")
	assert.Contains(t, text, "BOOTPROTO=none\n")
	assert.Contains(t, text, "HWADDR=aa:bb:cc:dd:ee:ff\n")
	assert.Contains(t, text, "IPADDR=10.0.0.5\n")
	assert.Contains(t, text, "NETMASK=255.255.255.0\n")
	assert.Contains(t, text, "GATEWAY=10.0.0.1\n")
	assert.Contains(t, text, "DNS1=8.8.8.8\n")
	assert.Contains(t, text, "MTU=9000\n")
	assert.NotContains(t, text, "ONPARENT")
	assert.NotContains(t, text, "DNS2")
	assert.NotContains(t, text, "IPV6INIT")
}

func TestIfcfgRenderer_Render_AliasShape(t *testing.T) {
	renderer := NewIfcfgRenderer()

	cfg := &entities.InterfaceConfig{
		Name:         "eth0:1",
		State:        "down",
		Shape:        entities.ShapeAlias,
		BootFlag:     "no",
		BootProtocol: "none",
		IPAddress:    "192.168.1.20",
		Netmask:      "255.255.255.0",
	}

	content, err := renderer.Render(cfg)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "DEVICE=eth0:1\n")
	assert.Contains(t, text, "ONPARENT=no\n")
	assert.Contains(t, text, "IPADDR=192.168.1.20\n")
	assert.NotContains(t, text, "ONBOOT")
	assert.NotContains(t, text, "HWADDR")
	assert.NotContains(t, text, "TYPE")
}

func TestIfcfgRenderer_Render_VLANAndIPv6(t *testing.T) {
	renderer := NewIfcfgRenderer()

	vlan := 10
	cfg := &entities.InterfaceConfig{
		Name:         "eth0",
		Shape:        entities.ShapePrimary,
		BootFlag:     "yes",
		Ethernet:     true,
		BootProtocol: "none",
		VLANID:       &vlan,
		IPv6Init:     true,
		IPv6Address:  "2001:db8::5/64",
		IPv6Autoconf: false,
		IPv6PeerDNS:  true,
	}

	content, err := renderer.Render(cfg)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "VLAN=yes\n")
	assert.Contains(t, text, "IPV6INIT=yes\n")
	assert.Contains(t, text, "IPV6ADDR=2001:db8::5/64\n")
	assert.Contains(t, text, "IPV6_AUTOCONF=no\n")
	assert.Contains(t, text, "IPV6_PEERDNS=yes\n")
}

func TestIfcfgRenderer_Render_LinkTypeOverridesEthernet(t *testing.T) {
	renderer := NewIfcfgRenderer()

	cfg := &entities.InterfaceConfig{
		Name:         "br0",
		Shape:        entities.ShapePrimary,
		BootFlag:     "yes",
		Ethernet:     true,
		BootProtocol: "none",
		LinkType:     "Bridge",
	}

	content, err := renderer.Render(cfg)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "TYPE=Bridge\n")
	assert.Equal(t, 1, strings.Count(text, "TYPE="))
}

func TestIfcfgRenderer_Render_EmptyRecordRejected(t *testing.T) {
	renderer := NewIfcfgRenderer()

	_, err := renderer.Render(nil)
	assert.Error(t, err)

	_, err = renderer.Render(&entities.InterfaceConfig{})
	assert.Error(t, err)
}
