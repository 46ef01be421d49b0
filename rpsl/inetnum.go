package rpsl

import (
	"net/netip"
	"strconv"
	"strings"

	"github.com/BourgeoisBear/range2cidr"
	gerr "github.com/pkg/errors"
)

// parseInetnumKey sets the inetnum key from (address[, value]).
func parseInetnumKey(o *Object, args []string) error {
	szValue := ""
	if len(args) > 1 {
		szValue = args[1]
	}
	return o.Set("inetnum", InetnumKey(args[0], szValue))
}

// InetnumKey normalises IPv4 inetnum input into the "first - last" range
// notation:
//
//	"a - b"                 kept
//	"ip/len"                range of the prefix, ip is not masked
//	("ip", "len")           same as "ip/len"
//	("ip", "ip")            ordered range, or the address if both are equal
//
// Input that does not fit any of these is returned unchanged.
func InetnumKey(address, value string) string {

	if strings.Contains(address, "-") {
		return address
	}

	if szIp, szLen, ok := strings.Cut(address, "/"); ok {
		if szRange, ok := cidrRange(szIp, szLen); ok {
			return szRange
		}
		return address
	}

	if len(value) == 0 {
		return address
	}

	if _, err := strconv.ParseFloat(value, 64); err == nil {
		if szRange, ok := cidrRange(address, value); ok {
			return szRange
		}
		return address
	}

	A, okA := parseV4(address)
	B, okB := parseV4(value)
	if !okA || !okB {
		return address
	}

	switch A.Compare(B) {
	case -1:
		return A.String() + " - " + B.String()
	case 1:
		return B.String() + " - " + A.String()
	}
	return A.String()
}

func parseV4(s string) (netip.Addr, bool) {
	ip, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil || !ip.Is4() {
		return netip.Addr{}, false
	}
	return ip, true
}

// cidrRange converts ip + prefix length into "ip - last". The start address
// is not masked; ranges running past 255.255.255.255 fail.
func cidrRange(szIp, szLen string) (string, bool) {

	ip, ok := parseV4(szIp)
	if !ok {
		return "", false
	}

	nLen, err := strconv.Atoi(strings.TrimSpace(szLen))
	if (err != nil) || (nLen < 0) || (nLen > 32) {
		return "", false
	}

	uBase, ok := range2cidr.V4ToUint32(ip)
	if !ok {
		return "", false
	}

	uLast := uint64(uBase) + (uint64(1) << (32 - nLen)) - 1
	if uLast > 0xFFFFFFFF {
		return "", false
	}

	return ip.String() + " - " + range2cidr.Uint32ToV4(uint32(uLast)).String(), true
}

// RangePrefixes lists the CIDR prefixes covering an inetnum range
// ("a - b"), an inet6num prefix or a single address.
func RangePrefixes(key string) ([]netip.Prefix, error) {

	key = strings.TrimSpace(key)

	if szA, szB, ok := strings.Cut(key, "-"); ok {
		A, err := netip.ParseAddr(strings.TrimSpace(szA))
		if err != nil {
			return nil, gerr.WithMessage(EInvalidValue, err.Error())
		}
		B, err := netip.ParseAddr(strings.TrimSpace(szB))
		if err != nil {
			return nil, gerr.WithMessage(EInvalidValue, err.Error())
		}
		sPfx, err := range2cidr.Deaggregate(A, B)
		if err != nil {
			return nil, gerr.WithMessagef(EInvalidValue, "deaggregate %s: %s", key, err)
		}
		return sPfx, nil
	}

	if strings.Contains(key, "/") {
		pfx, err := netip.ParsePrefix(key)
		if err != nil {
			return nil, gerr.WithMessage(EInvalidValue, err.Error())
		}
		return []netip.Prefix{pfx.Masked()}, nil
	}

	ip, err := netip.ParseAddr(key)
	if err != nil {
		return nil, gerr.WithMessage(EInvalidValue, err.Error())
	}
	return []netip.Prefix{netip.PrefixFrom(ip, ip.BitLen())}, nil
}
