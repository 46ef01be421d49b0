package whois

import (
	"net/url"
	"strings"
)

// Param is one key=value pair of a query string.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered query string; keys may repeat.
type Params []Param

func (p *Params) Add(key string, values ...string) {
	for _, v := range values {
		*p = append(*p, Param{Key: key, Value: v})
	}
}

// Encode joins the pairs with '&', values in raw URL encoding.
func (p Params) Encode() string {
	sParts := make([]string, len(p))
	for ix, kv := range p {
		sParts[ix] = kv.Key + "=" + RawURLEncode(kv.Value)
	}
	return strings.Join(sParts, "&")
}

// RawURLEncode percent-encodes everything but unreserved characters (RFC
// 3986); space becomes %20.
func RawURLEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
