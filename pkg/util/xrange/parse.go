package xrange

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// splitCIDR 在最后一个 '/' 处拆分 CIDR 字符串。
// 取最后一个而非第一个 '/'：IPv6 字面量本身不含 '/'，从尾部扫描对
// 畸形输入（如 "127.0.0.1/24/"）更稳健。
// 缺少 '/' 或任一侧为空时返回 [ErrMalformedCIDR]。
func splitCIDR(s string) (addrPart, bitsPart string, err error) {
	idx := strings.LastIndexByte(s, '/')
	if idx < 0 {
		return "", "", fmt.Errorf("%w: missing '/' separator: %q", ErrMalformedCIDR, s)
	}
	addrPart, bitsPart = s[:idx], s[idx+1:]
	if addrPart == "" || bitsPart == "" {
		return "", "", fmt.Errorf("%w: empty component: %q", ErrMalformedCIDR, s)
	}
	return addrPart, bitsPart, nil
}

// parseBits 解析前缀长度并校验不超过 width。
// 非法整数返回 [ErrInvalidPrefix]，超出位宽返回 [ErrPrefixOutOfRange]。
func parseBits(s string, width uint8) (uint8, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrefix, s)
	}
	if n > uint64(width) {
		return 0, fmt.Errorf("%w: %d (max %d)", ErrPrefixOutOfRange, n, width)
	}
	return uint8(n), nil
}

// parseBoundaryAddr 解析边界地址字符串。
// 设计决策: 拒绝包含 IPv6 zone ID 的地址（如 fe80::1%eth0）。
// zone 信息在整数编码中会被静默丢弃，使派生结果与原地址不再对应。
func parseBoundaryAddr(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	if addr.Zone() != "" {
		return netip.Addr{}, fmt.Errorf("%w: IPv6 zone ID is not supported: %q", ErrInvalidAddress, s)
	}
	return addr, nil
}
