package xrange

import "net/netip"

// Version 表示 IP 协议版本。
type Version uint8

const (
	// V0 表示无效或未知的 IP 版本。
	V0 Version = 0
	// V4 表示 IPv4（32 位地址）。
	V4 Version = 4
	// V6 表示 IPv6（128 位地址）。
	V6 Version = 6
)

// String 返回版本的字符串表示。
func (v Version) String() string {
	switch v {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// AddrVersion 返回 addr 的 IP 版本（V4 或 V6）。
// 无效地址返回 V0。
//
// 设计决策: IPv4-mapped IPv6 地址（如 ::ffff:192.168.1.1）视为 V6，
// 因为其整数编码是 128 位，派生出的前缀长度也按 128 位计。
// 纯 IPv4 与 IPv4-mapped IPv6 因此被视为不同版本，混用会报
// [ErrMixedVersions]。如需跨族运算请先统一地址格式（netip.Addr.Unmap）。
func AddrVersion(addr netip.Addr) Version {
	switch {
	case addr.Is4():
		return V4
	case addr.IsValid():
		return V6
	default:
		return V0
	}
}
