// Package xbits 提供定宽无符号整数的位运算工具。
//
// xbits 服务于 IP 地址的整数化处理：IPv4 对应 32 位（uint32），
// IPv6 对应 128 位（[Uint128]，由两个 uint64 组成，Go 无原生 128 位整数）。
// 两种宽度提供完全相同的运算语义，仅宽度不同。
//
// # 核心功能
//
//   - uint128.go: [Uint128] 值类型及其位运算（Xor/And/Or/Not/前导零/尾随零）
//   - bits.go: 地址与整数互转、公共前缀/后缀位计数、前缀/后缀掩码构造
//
// # 快速示例
//
// 计算两个 IPv4 地址的公共前缀位数：
//
//	a, _ := xbits.AddrUint32(netip.MustParseAddr("192.168.0.0"))
//	b, _ := xbits.AddrUint32(netip.MustParseAddr("192.168.0.255"))
//	fmt.Println(xbits.CommonPrefixBits32(a, b)) // 24
//
// 构造前缀掩码：
//
//	mask := xbits.PrefixMask32(24) // 0xffffff00
//
// # 设计决策
//
//   - 所有函数为纯函数，无状态、无错误返回：
//     地址转换以 (value, ok) 报告地址族不匹配，
//     掩码构造对超出位宽的参数 panic（调用方 bug，非外部输入错误）
//   - 公共前缀位数 = XOR 后的前导零个数，公共后缀位数 = XOR 后的尾随零个数，
//     两者与 math/bits 的 LeadingZeros/TrailingZeros 语义一致：
//     相等输入（XOR 为全零）返回位宽本身
//   - [Uint128] 是可比较的不可变值类型，可直接用 == 判等、可作 map key
//   - 大端字节序（网络字节序）：最高有效字节在前，与 [netip.Addr] 的
//     As4/As16 编码一致
package xbits
