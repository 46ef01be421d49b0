package rpsl

import (
	"regexp"
	"strings"
)

var (
	rxRoutePfxFirst = regexp.MustCompile(`(?i)^\s*([0-9a-f.:]+/\d{1,3})\s*(AS\d+)\s*$`)
	rxRouteAsnFirst = regexp.MustCompile(`(?i)^\s*(AS\d+)\s+([0-9a-f.:]+/\d{1,3})\s*$`)
)

// SplitRouteKey separates a composite route key into prefix and origin.
// Accepted: "PREFIX ASN", "PREFIXASN" and "ASN PREFIX".
func SplitRouteKey(key string) (prefix, origin string, ok bool) {
	if m := rxRoutePfxFirst.FindStringSubmatch(key); m != nil {
		return m[1], strings.ToUpper(m[2]), true
	}
	if m := rxRouteAsnFirst.FindStringSubmatch(key); m != nil {
		return m[2], strings.ToUpper(m[1]), true
	}
	return "", "", false
}

// parseRouteKey takes either a composite key or (prefix[, origin]).
func parseRouteKey(o *Object, args []string) error {

	if pfx, asn, ok := SplitRouteKey(args[0]); ok {
		if err := o.Set(o.pkName, pfx); err != nil {
			return err
		}
		return o.Set("origin", asn)
	}

	if err := o.Set(o.pkName, args[0]); err != nil {
		return err
	}
	if len(args) > 1 && len(args[1]) > 0 {
		return o.Set("origin", strings.ToUpper(strings.TrimSpace(args[1])))
	}
	return nil
}

// routeKeyValue is prefix and origin without separator, as used in
// REST API lookups: 193.0.0.0/21AS3333.
func routeKeyValue(o *Object) string {
	return o.mAttr[o.pkName].Value() + o.mAttr["origin"].Value()
}
