package geoip

import "net"

// lookupKey converts an address into the trie key for the open edition:
// the raw 16-byte representation for the IPv6 country edition, the
// 4-byte representation for everything else.
func lookupKey(ip net.IP, edition Edition) ([]byte, error) {
	if edition == EditionCountryV6 {
		if key := ip.To16(); key != nil {
			return key, nil
		}
		return nil, Error.New("invalid IP address")
	}
	if key := ip.To4(); key != nil {
		return key, nil
	}
	return nil, Error.New("%s is not an IPv4 address, edition %s indexes the 32-bit space", ip, edition)
}
