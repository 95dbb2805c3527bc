package xbits

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"net/netip"
)

// AddrFromUint32 从 IPv4 的 uint32 表示创建 [netip.Addr]。
// 使用网络字节序（大端）。
func AddrFromUint32(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

// AddrUint32 将 IPv4 地址转换为 uint32（网络字节序）。
// IPv4-mapped IPv6 地址先 Unmap 再转换。
// 非 IPv4 地址返回 (0, false)。
func AddrUint32(addr netip.Addr) (uint32, bool) {
	if !addr.Is4() && !addr.Is4In6() {
		return 0, false
	}
	b := addr.Unmap().As4()
	return binary.BigEndian.Uint32(b[:]), true
}

// CommonPrefixBits32 返回 a 与 b 相同的前导位个数，范围 [0, 32]。
// 即 a ^ b 的前导零个数；a == b 时返回 32。
func CommonPrefixBits32(a, b uint32) uint8 {
	return uint8(bits.LeadingZeros32(a ^ b))
}

// CommonPostfixBits32 返回 a 与 b 相同的尾随位个数，范围 [0, 32]。
// 即 a ^ b 的尾随零个数；a == b 时返回 32。
func CommonPostfixBits32(a, b uint32) uint8 {
	return uint8(bits.TrailingZeros32(a ^ b))
}

// CommonPrefixBits128 返回 a 与 b 相同的前导位个数，范围 [0, 128]。
// 即 a ^ b 的前导零个数；a == b 时返回 128。
func CommonPrefixBits128(a, b Uint128) uint8 {
	return uint8(a.Xor(b).LeadingZeros())
}

// CommonPostfixBits128 返回 a 与 b 相同的尾随位个数，范围 [0, 128]。
// 即 a ^ b 的尾随零个数；a == b 时返回 128。
func CommonPostfixBits128(a, b Uint128) uint8 {
	return uint8(a.Xor(b).TrailingZeros())
}

// PrefixMask32 返回高 n 位为 1、其余为 0 的 uint32 掩码。
// PrefixMask32(0) == 0，PrefixMask32(32) == 0xffffffff。
// n > 32 时 panic（调用方 bug，非外部输入错误）。
func PrefixMask32(n uint8) uint32 {
	if n > 32 {
		panic(fmt.Sprintf("xbits: PrefixMask32 bit count %d exceeds 32", n))
	}
	// Go 规范保证移位数 >= 位宽时结果为 0，n == 0 无需分支。
	return ^uint32(0) << (32 - n)
}

// PostfixMask32 返回低 n 位为 1、其余为 0 的 uint32 掩码。
// PostfixMask32(0) == 0，PostfixMask32(32) == 0xffffffff。
// n > 32 时 panic。
func PostfixMask32(n uint8) uint32 {
	if n > 32 {
		panic(fmt.Sprintf("xbits: PostfixMask32 bit count %d exceeds 32", n))
	}
	return ^uint32(0) >> (32 - n)
}

// PrefixMask128 返回高 n 位为 1、其余为 0 的 Uint128 掩码。
// PrefixMask128(0) == 0，PrefixMask128(128) == 全 1。
// n > 128 时 panic。
func PrefixMask128(n uint8) Uint128 {
	if n > 128 {
		panic(fmt.Sprintf("xbits: PrefixMask128 bit count %d exceeds 128", n))
	}
	if n <= 64 {
		return Uint128{hi: ^uint64(0) << (64 - n)}
	}
	return Uint128{hi: ^uint64(0), lo: ^uint64(0) << (128 - n)}
}

// PostfixMask128 返回低 n 位为 1、其余为 0 的 Uint128 掩码。
// PostfixMask128(0) == 0，PostfixMask128(128) == 全 1。
// n > 128 时 panic。
func PostfixMask128(n uint8) Uint128 {
	if n > 128 {
		panic(fmt.Sprintf("xbits: PostfixMask128 bit count %d exceeds 128", n))
	}
	if n <= 64 {
		return Uint128{lo: ^uint64(0) >> (64 - n)}
	}
	return Uint128{hi: ^uint64(0) >> (128 - n), lo: ^uint64(0)}
}
