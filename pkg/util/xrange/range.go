package xrange

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// Range 是 IPv4/IPv6 CIDR 块的封闭联合类型：任一时刻只持有
// [RangeV4] 或 [RangeV6] 之一，由版本标签区分，绝不混合位宽。
//
// 零值表示无效 Range，IsValid() 返回 false。
// 不可变值类型，可比较，并发安全。
type Range struct {
	version Version
	v4      RangeV4
	v6      RangeV6
}

// RangeFrom4 将 RangeV4 包装为 Range。无效输入返回零值 Range。
func RangeFrom4(r RangeV4) Range {
	if !r.IsValid() {
		return Range{}
	}
	return Range{version: V4, v4: r}
}

// RangeFrom6 将 RangeV6 包装为 Range。无效输入返回零值 Range。
func RangeFrom6(r RangeV6) Range {
	if !r.IsValid() {
		return Range{}
	}
	return Range{version: V6, v6: r}
}

// FromRange 从起止地址对派生 CIDR 块。
//
// 两地址同为 IPv4 时委托 [RangeV4FromRange]，同为 IPv6 时委托
// [RangeV6FromRange]，并将结果包装为对应变体；版本不同则直接返回
// [ErrMixedVersions]，不做任何派生。
// 注意纯 IPv4 与 IPv4-mapped IPv6 视为不同版本（见 [AddrVersion]）。
func FromRange(start, end netip.Addr) (Range, error) {
	sv, ev := AddrVersion(start), AddrVersion(end)
	if sv == V0 {
		return Range{}, fmt.Errorf("%w: invalid start address", ErrInvalidAddress)
	}
	if ev == V0 {
		return Range{}, fmt.Errorf("%w: invalid end address", ErrInvalidAddress)
	}
	if sv != ev {
		return Range{}, fmt.Errorf("%w: %s (%s) and %s (%s)", ErrMixedVersions, start, sv, end, ev)
	}
	switch sv {
	case V4:
		r, err := RangeV4FromRange(start, end)
		if err != nil {
			return Range{}, err
		}
		return Range{version: V4, v4: r}, nil
	default:
		r, err := RangeV6FromRange(start, end)
		if err != nil {
			return Range{}, err
		}
		return Range{version: V6, v6: r}, nil
	}
}

// ParseRange 解析 "address/bits" 形式的 CIDR 字符串，
// 版本由地址部分自动识别后分发到对应变体的解析器。
// 错误分类与 [ParseRangeV4] / [ParseRangeV6] 一致。
func ParseRange(s string) (Range, error) {
	addrPart, _, err := splitCIDR(s)
	if err != nil {
		return Range{}, err
	}
	addr, err := parseBoundaryAddr(addrPart)
	if err != nil {
		return Range{}, err
	}
	if AddrVersion(addr) == V4 {
		r, err := ParseRangeV4(s)
		if err != nil {
			return Range{}, err
		}
		return Range{version: V4, v4: r}, nil
	}
	r, err := ParseRangeV6(s)
	if err != nil {
		return Range{}, err
	}
	return Range{version: V6, v6: r}, nil
}

// MustParseRange 与 [ParseRange] 相同，但失败时 panic。
// 适用于测试和程序启动时的常量初始化。
func MustParseRange(s string) Range {
	r, err := ParseRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

// FromIPRange 从 [netipx.IPRange] 派生 CIDR 块。
// 仅当范围恰好对齐为单个 CIDR 块时成功，否则返回 [ErrInvalidBoundary]。
// 需要把任意范围拆成多个 CIDR 块时，请直接使用 netipx.IPRange.Prefixes。
func FromIPRange(r netipx.IPRange) (Range, error) {
	if !r.IsValid() {
		return Range{}, fmt.Errorf("%w: invalid IPRange", ErrInvalidAddress)
	}
	return FromRange(r.From(), r.To())
}

// IsValid 报告 r 是否持有有效变体。
func (r Range) IsValid() bool {
	return r.version != V0
}

// Version 返回活动变体的 IP 版本；零值 Range 返回 V0。
func (r Range) Version() Version {
	return r.version
}

// IsV4 报告活动变体是否为 IPv4。
func (r Range) IsV4() bool {
	return r.version == V4
}

// IsV6 报告活动变体是否为 IPv6。
func (r Range) IsV6() bool {
	return r.version == V6
}

// V4 返回 IPv4 变体。仅当 IsV4() 为 true 时 ok 为 true。
func (r Range) V4() (RangeV4, bool) {
	return r.v4, r.version == V4
}

// V6 返回 IPv6 变体。仅当 IsV6() 为 true 时 ok 为 true。
func (r Range) V6() (RangeV6, bool) {
	return r.v6, r.version == V6
}

// NetworkAddress 返回活动变体的网络地址。零值 Range 返回零值地址。
func (r Range) NetworkAddress() netip.Addr {
	switch r.version {
	case V4:
		return r.v4.NetworkAddress()
	case V6:
		return r.v6.NetworkAddress()
	default:
		return netip.Addr{}
	}
}

// Bits 返回活动变体的前缀长度。零值 Range 返回 0。
func (r Range) Bits() uint8 {
	switch r.version {
	case V4:
		return r.v4.Bits()
	case V6:
		return r.v6.Bits()
	default:
		return 0
	}
}

// Prefix 返回活动变体的 [netip.Prefix]。零值 Range 返回零值。
func (r Range) Prefix() netip.Prefix {
	switch r.version {
	case V4:
		return r.v4.Prefix()
	case V6:
		return r.v6.Prefix()
	default:
		return netip.Prefix{}
	}
}

// IPRange 返回活动变体覆盖的 [netipx.IPRange]。零值 Range 返回零值。
func (r Range) IPRange() netipx.IPRange {
	switch r.version {
	case V4:
		return r.v4.IPRange()
	case V6:
		return r.v6.IPRange()
	default:
		return netipx.IPRange{}
	}
}

// String 分发到活动变体的 String。零值 Range 返回空字符串。
func (r Range) String() string {
	switch r.version {
	case V4:
		return r.v4.String()
	case V6:
		return r.v6.String()
	default:
		return ""
	}
}
