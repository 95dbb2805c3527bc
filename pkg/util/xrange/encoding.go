package xrange

import (
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出 "address/bits" 格式。无效块输出空字节切片。
func (r RangeV4) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return []byte{}, nil
	}
	return []byte(r.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 空输入设置为零值。对 nil 接收者返回 [ErrNilReceiver]。
func (r *RangeV4) UnmarshalText(text []byte) error {
	if r == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*r = RangeV4{}
		return nil
	}
	parsed, err := ParseRangeV4(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出 "address/bits" 格式。无效块输出空字节切片。
func (r RangeV6) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return []byte{}, nil
	}
	return []byte(r.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 空输入设置为零值。对 nil 接收者返回 [ErrNilReceiver]。
func (r *RangeV6) UnmarshalText(text []byte) error {
	if r == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*r = RangeV6{}
		return nil
	}
	parsed, err := ParseRangeV6(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出活动变体的 "address/bits" 格式。零值 Range 输出空字节切片。
func (r Range) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return []byte{}, nil
	}
	return []byte(r.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 版本由地址部分自动识别。空输入设置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (r *Range) UnmarshalText(text []byte) error {
	if r == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*r = Range{}
		return nil
	}
	parsed, err := ParseRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]。
// 输出带引号的 "address/bits" 字符串。零值 Range 输出空字符串（""）。
//
// CIDR 字符串仅包含 [0-9a-f.:/] 字符，无需 JSON 转义，
// 因此直接构造带引号的字节切片，避免 [json.Marshal] 的反射开销。
func (r Range) MarshalJSON() ([]byte, error) {
	s := r.String()
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 空字符串或 null 设置为零值。对 nil 接收者返回 [ErrNilReceiver]。
func (r *Range) UnmarshalJSON(data []byte) error {
	if r == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		*r = Range{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedCIDR, err)
	}
	if s == "" {
		*r = Range{}
		return nil
	}
	parsed, err := ParseRange(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
