package xbits

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddrUint32(t *testing.T) {
	tests := []struct {
		input string
		want  uint32
	}{
		{"0.0.0.0", 0x00000000},
		{"0.0.255.255", 0x0000ffff},
		{"255.255.0.0", 0xffff0000},
		{"255.255.255.255", 0xffffffff},
		{"127.0.0.1", 0x7f000001},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, ok := AddrUint32(netip.MustParseAddr(tt.input))
			require.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}

	// 非 IPv4 地址
	_, ok := AddrUint32(netip.MustParseAddr("::1"))
	assert.False(t, ok)
	_, ok = AddrUint32(netip.Addr{})
	assert.False(t, ok)

	// IPv4-mapped IPv6 先 Unmap 再转换
	v, ok := AddrUint32(netip.MustParseAddr("::ffff:192.168.1.1"))
	require.True(t, ok)
	assert.Equal(t, uint32(0xc0a80101), v)
}

func TestAddrFromUint32(t *testing.T) {
	addr := AddrFromUint32(0xc0a80101)
	assert.Equal(t, "192.168.1.1", addr.String())
	assert.True(t, addr.Is4())

	assert.Equal(t, "0.0.0.0", AddrFromUint32(0).String())
	assert.Equal(t, "255.255.255.255", AddrFromUint32(0xffffffff).String())
}

func TestCommonPrefixBits32(t *testing.T) {
	// 相等输入返回位宽本身
	assert.Equal(t, uint8(32), CommonPrefixBits32(0x7f000001, 0x7f000001))
	// 全 0 与全 1 无公共前缀
	assert.Equal(t, uint8(0), CommonPrefixBits32(0, ^uint32(0)))
	// 192.168.0.0 与 192.168.0.255 共享 24 位
	assert.Equal(t, uint8(24), CommonPrefixBits32(0xc0a80000, 0xc0a800ff))
	// 仅最高位不同
	assert.Equal(t, uint8(0), CommonPrefixBits32(0, 0x80000000))
	// 仅最低位不同
	assert.Equal(t, uint8(31), CommonPrefixBits32(0xc0a80000, 0xc0a80001))
}

func TestCommonPostfixBits32(t *testing.T) {
	assert.Equal(t, uint8(32), CommonPostfixBits32(0x12345678, 0x12345678))
	assert.Equal(t, uint8(0), CommonPostfixBits32(0, 1))
	assert.Equal(t, uint8(31), CommonPostfixBits32(0, 0x80000000))
	assert.Equal(t, uint8(8), CommonPostfixBits32(0xc0a80000, 0xc0a80100))
}

func TestCommonPrefixBits128(t *testing.T) {
	zero := Uint128{}
	ones := zero.Not()
	one := Uint128From(0, 1)

	assert.Equal(t, uint8(128), CommonPrefixBits128(one, one))
	assert.Equal(t, uint8(0), CommonPrefixBits128(zero, ones))
	assert.Equal(t, uint8(127), CommonPrefixBits128(zero, one))
	// ::0 与 ::ffff 共享 112 位
	assert.Equal(t, uint8(112), CommonPrefixBits128(zero, Uint128From(0, 0xffff)))
	// 差异跨越高低字边界
	assert.Equal(t, uint8(63), CommonPrefixBits128(Uint128From(0, 0), Uint128From(1, 0)))
}

func TestCommonPostfixBits128(t *testing.T) {
	zero := Uint128{}
	ones := zero.Not()

	assert.Equal(t, uint8(128), CommonPostfixBits128(ones, ones))
	assert.Equal(t, uint8(0), CommonPostfixBits128(zero, Uint128From(0, 1)))
	assert.Equal(t, uint8(64), CommonPostfixBits128(zero, Uint128From(1, 0)))
	assert.Equal(t, uint8(127), CommonPostfixBits128(zero, Uint128From(1<<63, 0)))
}

func TestPrefixMask32(t *testing.T) {
	tests := []struct {
		n    uint8
		want uint32
	}{
		{0, 0x00000000},
		{1, 0x80000000},
		{16, 0xffff0000},
		{24, 0xffffff00},
		{31, 0xfffffffe},
		{32, 0xffffffff},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PrefixMask32(tt.n), "n=%d", tt.n)
	}

	assert.Panics(t, func() { PrefixMask32(33) })
}

func TestPostfixMask32(t *testing.T) {
	tests := []struct {
		n    uint8
		want uint32
	}{
		{0, 0x00000000},
		{1, 0x00000001},
		{8, 0x000000ff},
		{16, 0x0000ffff},
		{31, 0x7fffffff},
		{32, 0xffffffff},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PostfixMask32(tt.n), "n=%d", tt.n)
	}

	assert.Panics(t, func() { PostfixMask32(33) })
}

func TestPrefixMask128(t *testing.T) {
	tests := []struct {
		n    uint8
		want Uint128
	}{
		{0, Uint128From(0, 0)},
		{1, Uint128From(0x8000000000000000, 0)},
		{64, Uint128From(^uint64(0), 0)},
		{65, Uint128From(^uint64(0), 0x8000000000000000)},
		{112, Uint128From(^uint64(0), 0xffffffffffff0000)},
		{127, Uint128From(^uint64(0), ^uint64(1))},
		{128, Uint128From(^uint64(0), ^uint64(0))},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PrefixMask128(tt.n), "n=%d", tt.n)
	}

	assert.Panics(t, func() { PrefixMask128(129) })
}

func TestPostfixMask128(t *testing.T) {
	tests := []struct {
		n    uint8
		want Uint128
	}{
		{0, Uint128From(0, 0)},
		{1, Uint128From(0, 1)},
		{64, Uint128From(0, ^uint64(0))},
		{65, Uint128From(1, ^uint64(0))},
		{127, Uint128From(^uint64(0)>>1, ^uint64(0))},
		{128, Uint128From(^uint64(0), ^uint64(0))},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PostfixMask128(tt.n), "n=%d", tt.n)
	}

	assert.Panics(t, func() { PostfixMask128(129) })
}

// 掩码划分性质：前缀掩码与互补的后缀掩码恰好不重叠地覆盖整个位宽。
func TestMaskPartition32(t *testing.T) {
	for n := uint8(0); n <= 32; n++ {
		pre := PrefixMask32(n)
		post := PostfixMask32(32 - n)
		assert.Equal(t, ^uint32(0), pre|post, "n=%d", n)
		assert.Equal(t, uint32(0), pre&post, "n=%d", n)
	}
}

func TestMaskPartition128(t *testing.T) {
	ones := Uint128{}.Not()
	for n := uint8(0); n <= 128; n++ {
		pre := PrefixMask128(n)
		post := PostfixMask128(128 - n)
		assert.Equal(t, ones, pre.Or(post), "n=%d", n)
		assert.True(t, pre.And(post).IsZero(), "n=%d", n)
	}
}

// 前缀掩码取反即为互补的后缀掩码。
func TestMaskComplement(t *testing.T) {
	for n := uint8(0); n <= 32; n++ {
		assert.Equal(t, PostfixMask32(32-n), ^PrefixMask32(n), "n=%d", n)
	}
	for n := uint8(0); n <= 128; n++ {
		assert.Equal(t, PostfixMask128(128-n), PrefixMask128(n).Not(), "n=%d", n)
	}
}
