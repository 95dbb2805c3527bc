package xrange

import (
	"fmt"
	"net/netip"
	"strconv"

	"go4.org/netipx"

	"github.com/omeyang/ipkit/pkg/util/xbits"
)

// RangeV4 表示一个 IPv4 CIDR 块：网络地址加前缀长度。
//
// RangeV4 是不可变值类型：
//   - 零值表示无效块，IsValid() 返回 false
//   - 可直接比较（==）和用作 map key
//   - 并发安全，无需加锁
//
// 使用 [NewRangeV4]、[RangeV4FromRange] 或 [ParseRangeV4] 创建。
type RangeV4 struct {
	network netip.Addr
	bits    uint8
}

// NewRangeV4 从网络地址和前缀长度直接构造 RangeV4。
//
// 宽容构造：不校验也不归一化主机位，地址按原样保留
// （如 NewRangeV4(127.0.0.1, 24) 合法）。需要边界校验时用 [RangeV4FromRange]。
// network 非 IPv4 或 bits > 32 时 panic（调用方 bug，非外部输入错误）。
func NewRangeV4(network netip.Addr, bits uint8) RangeV4 {
	if !network.Is4() {
		panic("xrange: NewRangeV4 requires an IPv4 address")
	}
	if bits > 32 {
		panic("xrange: NewRangeV4 prefix length exceeds 32")
	}
	return RangeV4{network: network, bits: bits}
}

// RangeV4FromRange 从网络地址和广播地址派生 RangeV4。
//
// 前缀长度取两地址整数编码的公共前缀位数，随后校验：
//   - network 的主机位必须全 0（它必须确实是网络地址）
//   - broadcast 必须等于 network 置主机位全 1（它必须确实是广播地址）
//
// 任一校验失败返回 [ErrInvalidBoundary]；仅共享长前缀但未对齐的
// 地址对（如 10.0.0.5 与 10.0.0.250）会被拒绝。
// network == broadcast 时返回 /32 单主机块。
// 非 IPv4 地址返回 [ErrInvalidAddress]。
func RangeV4FromRange(network, broadcast netip.Addr) (RangeV4, error) {
	n, ok := addrUint32Strict(network)
	if !ok {
		return RangeV4{}, fmt.Errorf("%w: network %s is not IPv4", ErrInvalidAddress, network)
	}
	b, ok := addrUint32Strict(broadcast)
	if !ok {
		return RangeV4{}, fmt.Errorf("%w: broadcast %s is not IPv4", ErrInvalidAddress, broadcast)
	}
	if network == broadcast {
		return RangeV4{network: network, bits: 32}, nil
	}

	bits := xbits.CommonPrefixBits32(n, b)
	netMask := xbits.PrefixMask32(bits)
	hostMask := ^netMask

	if n&hostMask != 0 {
		return RangeV4{}, fmt.Errorf("%w: %s has non-zero host bits for /%d", ErrInvalidBoundary, network, bits)
	}
	if b != n|hostMask {
		return RangeV4{}, fmt.Errorf("%w: %s is not the broadcast address of %s/%d", ErrInvalidBoundary, broadcast, network, bits)
	}

	return RangeV4{network: network, bits: bits}, nil
}

// addrUint32Strict 仅接受纯 IPv4 地址（IPv4-mapped IPv6 视为 V6，
// 见 [AddrVersion]）。
func addrUint32Strict(addr netip.Addr) (uint32, bool) {
	if !addr.Is4() {
		return 0, false
	}
	return xbits.AddrUint32(addr)
}

// ParseRangeV4 解析 "address/bits" 形式的 IPv4 CIDR 字符串。
//
// 与 [RangeV4FromRange] 不同，解析不做主机位归一化：地址部分按原样保留。
// 错误分类：
//   - 缺少 '/' 或空组件: [ErrMalformedCIDR]
//   - 地址非法或非 IPv4: [ErrInvalidAddress]
//   - 前缀长度非法整数: [ErrInvalidPrefix]
//   - 前缀长度大于 32: [ErrPrefixOutOfRange]
func ParseRangeV4(s string) (RangeV4, error) {
	addrPart, bitsPart, err := splitCIDR(s)
	if err != nil {
		return RangeV4{}, err
	}
	addr, err := parseBoundaryAddr(addrPart)
	if err != nil {
		return RangeV4{}, err
	}
	if !addr.Is4() {
		return RangeV4{}, fmt.Errorf("%w: %q is not IPv4", ErrInvalidAddress, addrPart)
	}
	bits, err := parseBits(bitsPart, 32)
	if err != nil {
		return RangeV4{}, err
	}
	return RangeV4{network: addr, bits: bits}, nil
}

// MustParseRangeV4 与 [ParseRangeV4] 相同，但失败时 panic。
// 适用于测试和程序启动时的常量初始化。
func MustParseRangeV4(s string) RangeV4 {
	r, err := ParseRangeV4(s)
	if err != nil {
		panic(err)
	}
	return r
}

// IsValid 报告 r 是否为有效块。零值 RangeV4{} 返回 false。
func (r RangeV4) IsValid() bool {
	return r.network.Is4()
}

// NetworkAddress 返回网络地址。
func (r RangeV4) NetworkAddress() netip.Addr {
	return r.network
}

// Bits 返回前缀长度，范围 [0, 32]。
func (r RangeV4) Bits() uint8 {
	return r.bits
}

// BroadcastAddress 返回块的广播地址（网络地址置主机位全 1）。
// 对宽容构造的未对齐块，结果按当前地址的主机位置 1 计算。
// 无效块返回零值。
func (r RangeV4) BroadcastAddress() netip.Addr {
	if !r.IsValid() {
		return netip.Addr{}
	}
	n, _ := xbits.AddrUint32(r.network)
	return xbits.AddrFromUint32(n | xbits.PostfixMask32(32-r.bits))
}

// Prefix 返回等价的 [netip.Prefix]。无效块返回零值。
func (r RangeV4) Prefix() netip.Prefix {
	if !r.IsValid() {
		return netip.Prefix{}
	}
	return netip.PrefixFrom(r.network, int(r.bits))
}

// IPRange 返回块覆盖的 [netipx.IPRange]（先按前缀掩码归一化）。
// 无效块返回零值。
func (r RangeV4) IPRange() netipx.IPRange {
	if !r.IsValid() {
		return netipx.IPRange{}
	}
	return netipx.RangeOfPrefix(r.Prefix().Masked())
}

// String 返回 "address/bits" 形式的字符串，与 [ParseRangeV4] 互为逆操作。
// 无效块返回空字符串。
func (r RangeV4) String() string {
	if !r.IsValid() {
		return ""
	}
	return r.network.String() + "/" + strconv.Itoa(int(r.bits))
}
