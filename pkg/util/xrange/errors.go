package xrange

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrMixedVersions 表示起止地址属于不同的 IP 版本。
	ErrMixedVersions = errors.New("xrange: mixed IP versions")

	// ErrInvalidAddress 表示无效的 IP 地址字符串或地址族不匹配。
	ErrInvalidAddress = errors.New("xrange: invalid IP address")

	// ErrInvalidPrefix 表示前缀长度不是合法的无符号整数。
	ErrInvalidPrefix = errors.New("xrange: invalid prefix length")

	// ErrMalformedCIDR 表示 CIDR 字符串缺少 '/' 分隔符或分隔后存在空组件。
	ErrMalformedCIDR = errors.New("xrange: malformed CIDR string")

	// ErrPrefixOutOfRange 表示前缀长度超出地址族位宽（IPv4 为 32，IPv6 为 128）。
	// 包装后的错误信息携带实际解析到的值。
	ErrPrefixOutOfRange = errors.New("xrange: prefix length out of range")

	// ErrInvalidBoundary 表示给定的网络/广播地址对不构成按派生前缀对齐的
	// CIDR 块（网络地址主机位非零，或广播地址不是主机位全 1）。
	ErrInvalidBoundary = errors.New("xrange: invalid network boundary")

	// ErrNilReceiver 表示对 nil 接收者调用了反序列化方法。
	ErrNilReceiver = errors.New("xrange: nil receiver")
)
