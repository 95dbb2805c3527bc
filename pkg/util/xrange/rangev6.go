package xrange

import (
	"fmt"
	"net/netip"
	"strconv"

	"go4.org/netipx"

	"github.com/omeyang/ipkit/pkg/util/xbits"
)

// RangeV6 表示一个 IPv6 CIDR 块：网络地址加前缀长度。
//
// 与 [RangeV4] 的算法完全相同，仅位宽不同（128 位，基于 [xbits.Uint128]）。
// 不可变值类型，可比较，可作 map key，并发安全。
//
// 使用 [NewRangeV6]、[RangeV6FromRange] 或 [ParseRangeV6] 创建。
type RangeV6 struct {
	network netip.Addr
	bits    uint8
}

// NewRangeV6 从网络地址和前缀长度直接构造 RangeV6。
//
// 宽容构造：不校验也不归一化主机位。需要边界校验时用 [RangeV6FromRange]。
// network 非 IPv6 或 bits > 128 时 panic（调用方 bug，非外部输入错误）。
func NewRangeV6(network netip.Addr, bits uint8) RangeV6 {
	if !network.Is6() || network.Is4() {
		panic("xrange: NewRangeV6 requires an IPv6 address")
	}
	if bits > 128 {
		panic("xrange: NewRangeV6 prefix length exceeds 128")
	}
	return RangeV6{network: network, bits: bits}
}

// RangeV6FromRange 从网络地址和"广播"地址（块内最后一个地址）派生 RangeV6。
//
// 前缀长度取两地址整数编码的公共前缀位数，随后校验：
//   - network 的主机位必须全 0
//   - broadcast 必须等于 network 置主机位全 1
//
// 任一校验失败返回 [ErrInvalidBoundary]。
// network == broadcast 时返回 /128 单主机块。
// 非 IPv6 地址或带 zone ID 的地址返回 [ErrInvalidAddress]。
func RangeV6FromRange(network, broadcast netip.Addr) (RangeV6, error) {
	n, ok := addrUint128Strict(network)
	if !ok {
		return RangeV6{}, fmt.Errorf("%w: network %s is not IPv6", ErrInvalidAddress, network)
	}
	b, ok := addrUint128Strict(broadcast)
	if !ok {
		return RangeV6{}, fmt.Errorf("%w: broadcast %s is not IPv6", ErrInvalidAddress, broadcast)
	}
	if network == broadcast {
		return RangeV6{network: network, bits: 128}, nil
	}

	bits := xbits.CommonPrefixBits128(n, b)
	netMask := xbits.PrefixMask128(bits)
	hostMask := netMask.Not()

	if !n.And(hostMask).IsZero() {
		return RangeV6{}, fmt.Errorf("%w: %s has non-zero host bits for /%d", ErrInvalidBoundary, network, bits)
	}
	if b != n.Or(hostMask) {
		return RangeV6{}, fmt.Errorf("%w: %s is not the last address of %s/%d", ErrInvalidBoundary, broadcast, network, bits)
	}

	return RangeV6{network: network, bits: bits}, nil
}

// addrUint128Strict 仅接受不带 zone ID 的 IPv6 地址
// （IPv4-mapped IPv6 视为 V6，见 [AddrVersion]）。
func addrUint128Strict(addr netip.Addr) (xbits.Uint128, bool) {
	if addr.Is4() || addr.Zone() != "" {
		return xbits.Uint128{}, false
	}
	return xbits.AddrUint128(addr)
}

// ParseRangeV6 解析 "address/bits" 形式的 IPv6 CIDR 字符串。
//
// 与 [RangeV6FromRange] 不同，解析不做主机位归一化：地址部分按原样保留。
// 错误分类与 [ParseRangeV4] 一致，前缀长度上限为 128。
// 带 zone ID 的地址（如 fe80::1%eth0）返回 [ErrInvalidAddress]。
func ParseRangeV6(s string) (RangeV6, error) {
	addrPart, bitsPart, err := splitCIDR(s)
	if err != nil {
		return RangeV6{}, err
	}
	addr, err := parseBoundaryAddr(addrPart)
	if err != nil {
		return RangeV6{}, err
	}
	if addr.Is4() {
		return RangeV6{}, fmt.Errorf("%w: %q is not IPv6", ErrInvalidAddress, addrPart)
	}
	bits, err := parseBits(bitsPart, 128)
	if err != nil {
		return RangeV6{}, err
	}
	return RangeV6{network: addr, bits: bits}, nil
}

// MustParseRangeV6 与 [ParseRangeV6] 相同，但失败时 panic。
// 适用于测试和程序启动时的常量初始化。
func MustParseRangeV6(s string) RangeV6 {
	r, err := ParseRangeV6(s)
	if err != nil {
		panic(err)
	}
	return r
}

// IsValid 报告 r 是否为有效块。零值 RangeV6{} 返回 false。
func (r RangeV6) IsValid() bool {
	return r.network.Is6() && !r.network.Is4()
}

// NetworkAddress 返回网络地址。
func (r RangeV6) NetworkAddress() netip.Addr {
	return r.network
}

// Bits 返回前缀长度，范围 [0, 128]。
func (r RangeV6) Bits() uint8 {
	return r.bits
}

// LastAddress 返回块内最后一个地址（网络地址置主机位全 1）。
// 对宽容构造的未对齐块，结果按当前地址的主机位置 1 计算。
// 无效块返回零值。
func (r RangeV6) LastAddress() netip.Addr {
	if !r.IsValid() {
		return netip.Addr{}
	}
	n, _ := xbits.AddrUint128(r.network)
	return xbits.AddrFromUint128(n.Or(xbits.PostfixMask128(128 - r.bits)))
}

// Prefix 返回等价的 [netip.Prefix]。无效块返回零值。
func (r RangeV6) Prefix() netip.Prefix {
	if !r.IsValid() {
		return netip.Prefix{}
	}
	return netip.PrefixFrom(r.network, int(r.bits))
}

// IPRange 返回块覆盖的 [netipx.IPRange]（先按前缀掩码归一化）。
// 无效块返回零值。
func (r RangeV6) IPRange() netipx.IPRange {
	if !r.IsValid() {
		return netipx.IPRange{}
	}
	return netipx.RangeOfPrefix(r.Prefix().Masked())
}

// String 返回 "address/bits" 形式的字符串，与 [ParseRangeV6] 互为逆操作。
// 无效块返回空字符串。
func (r RangeV6) String() string {
	if !r.IsValid() {
		return ""
	}
	return r.network.String() + "/" + strconv.Itoa(int(r.bits))
}
