package subnet

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"

	"github.com/matzehuels/netgliffy/pkg/inventory"
)

// NetworkGroup is a network together with the entries that belong to it,
// in the order they were encountered.
type NetworkGroup struct {
	Network netip.Prefix
	Entries []inventory.DeviceEntry
}

// String returns the canonical network, e.g. "10.0.0.0/24".
func (g NetworkGroup) String() string { return g.Network.String() }

// Len returns the number of entries in the group.
func (g NetworkGroup) Len() int { return len(g.Entries) }

// Range returns the first and last address covered by the network.
func (g NetworkGroup) Range() netipx.IPRange { return netipx.RangeOfPrefix(g.Network) }

// Warning records an entry that was dropped because its network could not be
// parsed.
type Warning struct {
	Entry inventory.DeviceEntry
	Err   error
}

func (w Warning) String() string {
	if w.Entry.Line > 0 {
		return fmt.Sprintf("line %d: skipping %q (%s/%s): %v", w.Entry.Line, w.Entry.Name, w.Entry.IP, w.Entry.CIDR, w.Err)
	}
	return fmt.Sprintf("skipping %q (%s/%s): %v", w.Entry.Name, w.Entry.IP, w.Entry.CIDR, w.Err)
}

// Result is the outcome of [Group].
type Result struct {
	Groups   []NetworkGroup
	Warnings []Warning
}

// EntryCount returns the number of entries that survived grouping.
func (r Result) EntryCount() int {
	n := 0
	for _, g := range r.Groups {
		n += g.Len()
	}
	return n
}

// Group assigns each entry to its network as computed by [ParseNetwork].
//
// Groups appear in the order their network is first seen and entries keep
// their input order within a group, so the result depends only on the input
// sequence. Entries whose network cannot be parsed are left out and reported
// in Result.Warnings, also in input order.
func Group(entries []inventory.DeviceEntry) Result {
	var res Result
	index := make(map[netip.Prefix]int)

	for _, e := range entries {
		network, err := ParseNetwork(e.IP, e.CIDR)
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{Entry: e, Err: err})
			continue
		}
		i, ok := index[network]
		if !ok {
			i = len(res.Groups)
			index[network] = i
			res.Groups = append(res.Groups, NetworkGroup{Network: network})
		}
		res.Groups[i].Entries = append(res.Groups[i].Entries, e)
	}
	return res
}
