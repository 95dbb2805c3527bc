// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xbits: 32/128 位位运算原语，公共前缀/后缀长度、前缀/后缀掩码、Uint128
//   - xrange: IP 地址区间与 CIDR 块的互转，基于 net/netip + go4.org/netipx，
//     派生即校验（未对齐的边界对会报错而不是被取整）
//
// 设计原则：
//   - 不可变值类型，可安全并发读取
//   - 显式错误返回，预定义错误变量支持 errors.Is 判别
//   - 跨 IPv4/IPv6 统一的 API 形态
package util
