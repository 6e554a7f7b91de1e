// Package subnet groups device entries by the network their address belongs to.
package subnet

import (
	"encoding/binary"
	"math/bits"
	"net/netip"
	"strconv"

	"github.com/matzehuels/netgliffy/pkg/errors"
)

// ParseNetwork returns the network containing ip under the given prefix.
//
// The interpretation is non-strict: host bits set in ip are masked off rather
// than rejected, so ("10.0.0.5", "24") yields 10.0.0.0/24. cidr is either a
// decimal prefix length no larger than the address width, or for IPv4 a
// dotted netmask such as "255.255.255.0" or hostmask such as "0.0.0.255".
//
// Any syntax or range problem is reported as INVALID_NETWORK_SPEC.
func ParseNetwork(ip, cidr string) (netip.Prefix, error) {
	if ip == "" {
		return netip.Prefix{}, errors.New(errors.ErrCodeInvalidNetworkSpec, "empty address with cidr %q", cidr)
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return netip.Prefix{}, errors.Wrap(errors.ErrCodeInvalidNetworkSpec, err, "invalid network %s/%s", ip, cidr)
	}
	if addr.Zone() != "" {
		return netip.Prefix{}, errors.New(errors.ErrCodeInvalidNetworkSpec, "invalid network %s/%s: zoned address", ip, cidr)
	}

	n, err := prefixLen(addr, cidr)
	if err != nil {
		return netip.Prefix{}, errors.Wrap(errors.ErrCodeInvalidNetworkSpec, err, "invalid network %s/%s", ip, cidr)
	}

	p, err := addr.Prefix(n)
	if err != nil {
		return netip.Prefix{}, errors.Wrap(errors.ErrCodeInvalidNetworkSpec, err, "invalid network %s/%s", ip, cidr)
	}
	return p, nil
}

func prefixLen(addr netip.Addr, cidr string) (int, error) {
	if cidr == "" {
		return 0, errors.New(errors.ErrCodeInvalidNetworkSpec, "empty prefix length")
	}
	if isDigits(cidr) {
		n, err := strconv.Atoi(cidr)
		if err != nil || n > addr.BitLen() {
			return 0, errors.New(errors.ErrCodeInvalidNetworkSpec, "prefix length %s out of range 0-%d", cidr, addr.BitLen())
		}
		return n, nil
	}
	if addr.Is4() {
		if mask, err := netip.ParseAddr(cidr); err == nil && mask.Is4() {
			return netmaskLen(mask)
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidNetworkSpec, "invalid prefix length %q", cidr)
}

// netmaskLen converts an IPv4 netmask (255.255.255.0) or hostmask
// (0.0.0.255) to its prefix length. The netmask reading wins when both apply.
func netmaskLen(mask netip.Addr) (int, error) {
	b := mask.As4()
	m := binary.BigEndian.Uint32(b[:])
	if n, ok := leadingOnes(m); ok {
		return n, nil
	}
	if n, ok := leadingOnes(^m); ok {
		return n, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidNetworkSpec, "non-contiguous netmask %s", mask)
}

// leadingOnes reports the number of leading one bits of m and whether all
// remaining bits are zero.
func leadingOnes(m uint32) (int, bool) {
	ones := bits.LeadingZeros32(^m)
	return ones, m == ^uint32(0)<<(32-ones)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
