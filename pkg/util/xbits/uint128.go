package xbits

import (
	"encoding/binary"
	"math/bits"
	"net/netip"
)

// Uint128 表示 128 位无符号整数，由高低两个 uint64 组成。
//
// Uint128 是不可变值类型：
//   - 零值表示数值 0
//   - 可直接比较（==）和用作 map key
//   - 所有运算返回新值，不修改接收者
type Uint128 struct {
	hi uint64
	lo uint64
}

// Uint128From 从高低两个 uint64 创建 Uint128。
func Uint128From(hi, lo uint64) Uint128 {
	return Uint128{hi: hi, lo: lo}
}

// Uint128From16 从 16 字节数组创建 Uint128（大端字节序）。
// 与 [netip.Addr.As16] 的编码一致。
func Uint128From16(b [16]byte) Uint128 {
	return Uint128{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// As16 返回 Uint128 的 16 字节表示（大端字节序）。
func (u Uint128) As16() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.hi)
	binary.BigEndian.PutUint64(b[8:], u.lo)
	return b
}

// Hi 返回高 64 位。
func (u Uint128) Hi() uint64 { return u.hi }

// Lo 返回低 64 位。
func (u Uint128) Lo() uint64 { return u.lo }

// IsZero 报告 u 是否为 0。
func (u Uint128) IsZero() bool { return u.hi|u.lo == 0 }

// Xor 返回 u ^ v。
func (u Uint128) Xor(v Uint128) Uint128 {
	return Uint128{hi: u.hi ^ v.hi, lo: u.lo ^ v.lo}
}

// And 返回 u & v。
func (u Uint128) And(v Uint128) Uint128 {
	return Uint128{hi: u.hi & v.hi, lo: u.lo & v.lo}
}

// Or 返回 u | v。
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{hi: u.hi | v.hi, lo: u.lo | v.lo}
}

// Not 返回 ^u（按位取反）。
func (u Uint128) Not() Uint128 {
	return Uint128{hi: ^u.hi, lo: ^u.lo}
}

// LeadingZeros 返回 u 的前导零位数，范围 [0, 128]。
// u 为 0 时返回 128，与 [bits.LeadingZeros64] 的边界语义一致。
func (u Uint128) LeadingZeros() int {
	if u.hi == 0 {
		return 64 + bits.LeadingZeros64(u.lo)
	}
	return bits.LeadingZeros64(u.hi)
}

// TrailingZeros 返回 u 的尾随零位数，范围 [0, 128]。
// u 为 0 时返回 128，与 [bits.TrailingZeros64] 的边界语义一致。
func (u Uint128) TrailingZeros() int {
	if u.lo == 0 {
		return 64 + bits.TrailingZeros64(u.hi)
	}
	return bits.TrailingZeros64(u.lo)
}

// Compare 比较两个 Uint128。
// 返回值：-1 (u < v), 0 (u == v), 1 (u > v)。
func (u Uint128) Compare(v Uint128) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	default:
		return 0
	}
}

// AddrUint128 将 IPv6 地址转换为 Uint128（网络字节序）。
// IPv4-mapped IPv6 地址按其 16 字节编码转换。
// 非 IPv6 地址（含纯 IPv4 与无效地址）返回 (Uint128{}, false)。
func AddrUint128(addr netip.Addr) (Uint128, bool) {
	if !addr.IsValid() || !addr.Is6() {
		return Uint128{}, false
	}
	return Uint128From16(addr.As16()), true
}

// AddrFromUint128 从 Uint128 创建 IPv6 [netip.Addr]。
// 使用网络字节序（大端）。
func AddrFromUint128(u Uint128) netip.Addr {
	return netip.AddrFrom16(u.As16())
}
