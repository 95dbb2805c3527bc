package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/ipkit/pkg/util/xrange"
)

// checkConfig 是 check 命令的配置文件结构。
type checkConfig struct {
	Blocks []blockEntry `koanf:"blocks"`
}

// blockEntry 是配置文件中的一项块定义：
// 要么给出 cidr 字符串，要么给出 start/end 边界地址对，二者互斥。
type blockEntry struct {
	Cidr  string `koanf:"cidr"`
	Start string `koanf:"start"`
	End   string `koanf:"end"`
}

// toRange 将配置项转换为 [xrange.Range]。
// 边界地址对经由 [xrange.WireBlock] 走完整的派生校验。
func (e blockEntry) toRange() (xrange.Range, error) {
	hasPair := e.Start != "" || e.End != ""
	switch {
	case e.Cidr != "" && hasPair:
		return xrange.Range{}, fmt.Errorf("cidr 与 start/end 互斥，只能给出其一")
	case e.Cidr != "":
		return xrange.ParseRange(e.Cidr)
	case e.Start != "" && e.End != "":
		return xrange.WireBlock{Start: e.Start, End: e.End}.ToRange()
	default:
		return xrange.Range{}, fmt.Errorf("空配置项：需要 cidr 或 start/end")
	}
}

// String 返回配置项的可读表示，用于校验输出。
func (e blockEntry) String() string {
	if e.Cidr != "" {
		return e.Cidr
	}
	return xrange.WireBlock{Start: e.Start, End: e.End}.String()
}

// loadCheckConfig 从文件加载 check 配置。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
func loadCheckConfig(path string) (*checkConfig, error) {
	parser, err := detectParser(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	var cfg checkConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("配置结构不匹配: %w", err)
	}
	return &cfg, nil
}

// detectParser 根据扩展名选择 koanf 解析器。
func detectParser(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, &usageError{msg: fmt.Sprintf("不支持的配置格式: %s（支持 .yaml/.yml/.json）", path)}
	}
}
