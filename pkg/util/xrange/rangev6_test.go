package xrange

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ipv6(t *testing.T, s string) netip.Addr {
	t.Helper()
	addr := netip.MustParseAddr(s)
	require.True(t, addr.Is6())
	return addr
}

func TestRangeV6FromRange(t *testing.T) {
	tests := []struct {
		name    string
		network string
		last    string
		want    string
	}{
		{"same address", "::1", "::1", "::1/128"},
		{"/112", "::", "::ffff", "::/112"},
		{"/64", "2001::", "2001::ffff:ffff:ffff:ffff", "2001::/64"},
		{"adjacent pair /127", "2001:db8::", "2001:db8::1", "2001:db8::/127"},
		{"whole space /0", "::", "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff", "::/0"},
		// 主机位跨越高低 64 位字边界
		{"/48", "2001:db8:1::", "2001:db8:1:ffff:ffff:ffff:ffff:ffff", "2001:db8:1::/48"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := RangeV6FromRange(ipv6(t, tt.network), ipv6(t, tt.last))
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.String())
		})
	}
}

func TestRangeV6FromRangeInvalidBoundary(t *testing.T) {
	tests := []struct {
		name    string
		network string
		last    string
	}{
		{"swapped", "2001:db8::2", "2001:db8::1"},
		{"misaligned", "2001:db8::5", "2001:db8::fa"},
		{"short last", "2001:db8::", "2001:db8::fffe"},
		{"overshoot", "::", "::2:ffff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RangeV6FromRange(ipv6(t, tt.network), ipv6(t, tt.last))
			assert.ErrorIs(t, err, ErrInvalidBoundary)
		})
	}
}

func TestRangeV6FromRangeWrongFamily(t *testing.T) {
	v4 := netip.MustParseAddr("127.0.0.1")
	v6 := netip.MustParseAddr("::1")

	_, err := RangeV6FromRange(v4, v6)
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = RangeV6FromRange(v6, v4)
	assert.ErrorIs(t, err, ErrInvalidAddress)

	// zone ID 被拒绝
	zoned := netip.MustParseAddr("fe80::1%eth0")
	_, err = RangeV6FromRange(zoned, zoned)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestRangeV6FromRangeMapped(t *testing.T) {
	// IPv4-mapped IPv6 按 128 位整数编码派生
	start := netip.MustParseAddr("::ffff:192.168.0.0")
	end := netip.MustParseAddr("::ffff:192.168.0.255")
	r, err := RangeV6FromRange(start, end)
	require.NoError(t, err)
	assert.Equal(t, uint8(120), r.Bits())
}

func TestParseRangeV6(t *testing.T) {
	r, err := ParseRangeV6("::1/24")
	require.NoError(t, err)
	assert.Equal(t, NewRangeV6(netip.MustParseAddr("::1"), 24), r)
	assert.Equal(t, "::1/24", r.String())

	r, err = ParseRangeV6("2001:db8::/64")
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::", r.NetworkAddress().String())
	assert.Equal(t, uint8(64), r.Bits())
}

func TestParseRangeV6Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty string", "", ErrMalformedCIDR},
		{"missing slash", "::1", ErrMalformedCIDR},
		{"trailing slash", "::1/", ErrMalformedCIDR},
		{"leading slash", "/64", ErrMalformedCIDR},
		{"bits only", "64", ErrMalformedCIDR},
		{"multiple slashes", "::1/64/", ErrMalformedCIDR},
		{"invalid address", "abs/24", ErrInvalidAddress},
		{"ipv4 address", "127.0.0.1/24", ErrInvalidAddress},
		{"zone id", "fe80::1%eth0/64", ErrInvalidAddress},
		{"bits not a number", "::1/ab", ErrInvalidPrefix},
		{"bits out of range", "::1/129", ErrPrefixOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRangeV6(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseRangeV6RoundTrip(t *testing.T) {
	tests := []string{
		"::/0",
		"::/112",
		"::1/128",
		"2001:db8::/64",
		"2001:db8::/127",
		"::ffff:192.168.0.0/120",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			r, err := ParseRangeV6(s)
			require.NoError(t, err)
			assert.Equal(t, s, r.String())

			again, err := ParseRangeV6(r.String())
			require.NoError(t, err)
			assert.Equal(t, r, again)
		})
	}
}

func TestNewRangeV6Panics(t *testing.T) {
	assert.Panics(t, func() { NewRangeV6(netip.MustParseAddr("::1"), 129) })
	assert.Panics(t, func() { NewRangeV6(netip.MustParseAddr("127.0.0.1"), 64) })
	assert.Panics(t, func() { NewRangeV6(netip.Addr{}, 0) })
}

func TestRangeV6Zero(t *testing.T) {
	var zero RangeV6
	assert.False(t, zero.IsValid())
	assert.Equal(t, "", zero.String())
	assert.False(t, zero.LastAddress().IsValid())
	assert.False(t, zero.Prefix().IsValid())
	assert.False(t, zero.IPRange().IsValid())
}

func TestRangeV6LastAddress(t *testing.T) {
	r := MustParseRangeV6("2001:db8::/64")
	assert.Equal(t, "2001:db8::ffff:ffff:ffff:ffff", r.LastAddress().String())

	r = MustParseRangeV6("::1/128")
	assert.Equal(t, "::1", r.LastAddress().String())

	r = MustParseRangeV6("::/0")
	assert.Equal(t, "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff", r.LastAddress().String())
}

func TestRangeV6Interop(t *testing.T) {
	r := MustParseRangeV6("2001:db8::/64")

	p := r.Prefix()
	assert.Equal(t, "2001:db8::/64", p.String())

	ipr := r.IPRange()
	assert.Equal(t, "2001:db8::", ipr.From().String())
	assert.Equal(t, "2001:db8::ffff:ffff:ffff:ffff", ipr.To().String())
}
