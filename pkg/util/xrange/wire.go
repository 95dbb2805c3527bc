package xrange

import (
	"fmt"
)

// WireBlock 是 CIDR 块的边界对序列化格式。
// 使用 JSON/BSON/YAML 标签 {"start":"...","end":"..."}，
// start 为网络地址，end 为块内最后一个地址。
//
// 设计决策: 序列化边界对而非 "address/bits" 字符串，使反序列化
// 必须经过 [FromRange] 的派生校验——被篡改或未对齐的边界对在解码时
// 即被拒绝，而不是等到使用时才暴露。
type WireBlock struct {
	Start string `json:"start" bson:"start" yaml:"start"`
	End   string `json:"end" bson:"end" yaml:"end"`
}

// WireBlockFrom 从 Range 创建 WireBlock。
// 零值 Range 返回错误。
func WireBlockFrom(r Range) (WireBlock, error) {
	switch r.version {
	case V4:
		return WireBlock{
			Start: r.v4.NetworkAddress().String(),
			End:   r.v4.BroadcastAddress().String(),
		}, nil
	case V6:
		return WireBlock{
			Start: r.v6.NetworkAddress().String(),
			End:   r.v6.LastAddress().String(),
		}, nil
	default:
		return WireBlock{}, fmt.Errorf("%w: zero Range", ErrInvalidAddress)
	}
}

// ToRange 将 WireBlock 还原为 Range，重新执行边界派生与校验。
// 地址非法返回 [ErrInvalidAddress]，版本混用返回 [ErrMixedVersions]，
// 边界对未对齐返回 [ErrInvalidBoundary]。
func (w WireBlock) ToRange() (Range, error) {
	start, err := parseBoundaryAddr(w.Start)
	if err != nil {
		return Range{}, err
	}
	end, err := parseBoundaryAddr(w.End)
	if err != nil {
		return Range{}, err
	}
	return FromRange(start, end)
}

// IsZero 报告 w 是否为零值（Start 和 End 都是空字符串）。
func (w WireBlock) IsZero() bool {
	return w.Start == "" && w.End == ""
}

// String 返回 "start-end" 形式的字符串。
// 起止相同只返回单个地址；零值返回空字符串；部分设置返回有值的部分。
func (w WireBlock) String() string {
	if w.Start == w.End {
		return w.Start
	}
	if w.Start == "" {
		return w.End
	}
	if w.End == "" {
		return w.Start
	}
	return w.Start + "-" + w.End
}
