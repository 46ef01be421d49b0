package rpsl

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInetnumKey(t *testing.T) {
	const szRange = "73.46.254.16 - 73.46.254.31"
	const szBogus = "bogus"

	cases := []struct {
		args []string
		key  string
	}{
		{[]string{szRange}, szRange},
		{[]string{"73.46.254.16/28"}, szRange},
		{[]string{"73.46.254.16", "28"}, szRange},
		{[]string{"73.46.254.16", "73.46.254.31"}, szRange},
		{[]string{"73.46.254.31", "73.46.254.16"}, szRange},
		{[]string{"73.46.254.16", "73.46.254.16"}, "73.46.254.16"},
		{[]string{"73.46.254.16"}, "73.46.254.16"},
		{[]string{"73.46.254.16", "50"}, "73.46.254.16"},
		{[]string{"255.255.255.240/28"}, "255.255.255.240 - 255.255.255.255"},
		{[]string{"255.255.255.254/30"}, "255.255.255.254/30"},
		{[]string{"0.0.0.0/0"}, "0.0.0.0 - 255.255.255.255"},
		{[]string{szBogus}, szBogus},
		{[]string{szBogus, "127.0.0.1"}, szBogus},
		{[]string{szBogus, "30"}, szBogus},
	}

	for _, c := range cases {
		o, err := New("inetnum", c.args...)
		require.NoError(t, err, "%v", c.args)
		assert.Equal(t, c.key, o.PrimaryKey(), "%v", c.args)
	}
}

func TestRangePrefixes(t *testing.T) {
	sPfx, err := RangePrefixes("73.46.254.16 - 73.46.254.31")
	require.NoError(t, err)
	assert.Equal(t, []netip.Prefix{netip.MustParsePrefix("73.46.254.16/28")}, sPfx)

	sPfx, err = RangePrefixes("2001:db8::1/32")
	require.NoError(t, err)
	assert.Equal(t, []netip.Prefix{netip.MustParsePrefix("2001:db8::/32")}, sPfx)

	sPfx, err = RangePrefixes("192.0.2.1")
	require.NoError(t, err)
	assert.Equal(t, []netip.Prefix{netip.MustParsePrefix("192.0.2.1/32")}, sPfx)

	_, err = RangePrefixes("bogus")
	assert.ErrorIs(t, err, EInvalidValue)
}
