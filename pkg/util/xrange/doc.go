// Package xrange 提供起止地址对与 CIDR 块的互转工具。
//
// xrange 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 核心能力是从一对网络/广播边界地址派生出经过校验的 CIDR 块，
// 以及 "address/bits" 文本格式的解析与格式化。
// 位级运算（整数化、公共前缀计数、掩码构造）由
// [github.com/omeyang/ipkit/pkg/util/xbits] 提供。
//
// # 核心功能
//
//   - rangev4.go / rangev6.go: [RangeV4] / [RangeV6] 家族特化的 CIDR 块值类型，
//     构造（宽容）、派生（校验）、解析、格式化
//   - range.go: [Range] 封闭联合类型，按版本分发，拒绝混合版本输入
//   - parse.go: "address/bits" 文本的拆分与前缀长度校验
//   - encoding.go: Text/JSON 序列化
//   - wire.go: [WireBlock] 边界对形式的 JSON/BSON/YAML 序列化
//
// # 快速示例
//
// 从边界地址对派生 CIDR 块：
//
//	start := netip.MustParseAddr("192.168.0.0")
//	end := netip.MustParseAddr("192.168.0.255")
//	r, _ := xrange.FromRange(start, end)
//	fmt.Println(r)        // 192.168.0.0/24
//	fmt.Println(r.IsV4()) // true
//
// 解析与格式化：
//
//	r, _ := xrange.ParseRange("2001:db8::/64")
//	fmt.Println(r.Version())        // IPv6
//	fmt.Println(r.NetworkAddress()) // 2001:db8::
//	fmt.Println(r.Bits())           // 64
//
// # 派生与校验
//
// [FromRange] 的前缀长度不是猜测出来的：它取两个边界地址整数编码
// 首个不同位之前的公共前缀位数，然后反过来用派生出的掩码校验两个
// 边界地址——网络地址的主机位必须全 0，广播地址必须恰好是网络地址
// 置主机位全 1。仅共享长前缀但未对齐的地址对（如 10.0.0.5 与
// 10.0.0.250）会被 [ErrInvalidBoundary] 拒绝。派生是一步原子的
// 校验加构造，失败时不产生任何部分结果。
//
// 边界情形：
//   - 起止相同 → /32 或 /128 单主机块
//   - 整个地址空间（0.0.0.0-255.255.255.255）→ /0
//   - 相邻地址对（.0 与 .1）经一般路径派生为合法的 /31 或 /127
//
// # 宽容构造与派生构造
//
// [NewRangeV4] / [NewRangeV6] 和解析函数按原样保留地址，不校验
// 也不归一化主机位（与真实世界的宽容构造一致）；只有 [FromRange] /
// [RangeV4FromRange] / [RangeV6FromRange] 执行边界校验。
// 调用方需要归一化时可用 [Range.Prefix] 加 netip.Prefix.Masked。
//
// # 设计决策
//
//   - [Range] 是封闭联合（版本标签 + 两个变体），不是开放的多态层级；
//     IPv4/IPv6 各自持有完全独立的宽度特化实现，不用反射区分版本
//   - 纯 IPv4 与 IPv4-mapped IPv6 视为不同版本（见 [AddrVersion]），
//     混用返回 [ErrMixedVersions]，避免派生宽度从 128 静默变为 32
//   - 拒绝带 IPv6 zone ID 的地址：zone 在整数编码中会被静默丢弃，
//     使派生结果与原地址不再对应
//   - 所有可失败函数返回 error，预定义错误变量支持 errors.Is；
//     不重试（输入完全确定，重试无意义）、不静默恢复
//   - 任意未对齐范围拆分为多个 CIDR 块不在本包范围内，
//     请使用 netipx.IPRange.Prefixes
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xrange.ParseRange("10.0.0.0/33")
//	if errors.Is(err, xrange.ErrPrefixOutOfRange) {
//	    // 前缀长度超出位宽
//	}
//
// 只有程序员错误级的前置条件违反（宽容构造传入超位宽的前缀长度、
// 掩码函数传入超位宽的位数）会 panic，它们指示调用方 bug 而非
// 非法外部输入。
package xrange
