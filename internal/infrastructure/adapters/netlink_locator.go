package adapters

import (
	"fmt"
	"net"
	"sort"

	"github.com/vishvananda/netlink"
)

// NetlinkLocator resolves hardware identities against the kernel's link
// table via netlink.
type NetlinkLocator struct{}

// NewNetlinkLocator creates a new NetlinkLocator.
func NewNetlinkLocator() *NetlinkLocator {
	return &NetlinkLocator{}
}

// NameBySequence returns the name of the index-th non-loopback link in
// kernel enumeration order.
func (l *NetlinkLocator) NameBySequence(index int) (string, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return "", fmt.Errorf("listing links: %w", err)
	}

	var candidates []netlink.Link
	for _, link := range links {
		if link.Attrs().Flags&net.FlagLoopback != 0 {
			continue
		}
		candidates = append(candidates, link)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Attrs().Index < candidates[j].Attrs().Index
	})

	if index < 0 || index >= len(candidates) {
		return "", fmt.Errorf("sequence position %d out of range (%d links)", index, len(candidates))
	}
	return candidates[index].Attrs().Name, nil
}

// NameByHardwareAddress returns the name of the link owning the given
// MAC address.
func (l *NetlinkLocator) NameByHardwareAddress(addr string) (string, error) {
	want, err := net.ParseMAC(addr)
	if err != nil {
		return "", fmt.Errorf("parsing hardware address %q: %w", addr, err)
	}

	links, err := netlink.LinkList()
	if err != nil {
		return "", fmt.Errorf("listing links: %w", err)
	}
	for _, link := range links {
		if link.Attrs().HardwareAddr.String() == want.String() {
			return link.Attrs().Name, nil
		}
	}

	return "", fmt.Errorf("no link with hardware address %s", addr)
}
