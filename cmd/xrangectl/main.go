// xrangectl 是 ipkit 的 CIDR 块派生与校验命令行工具。
//
// 用法:
//
//	xrangectl <命令> [命令参数]
//
// 命令:
//
//	derive <start> <end>   从起止边界地址派生 CIDR 块
//	parse <cidr>           解析 CIDR 字符串并打印块信息
//	check --config <file>  批量校验配置文件中的块定义
//	help                   显示帮助信息
//
// check 命令说明:
//
//	配置文件为 YAML 或 JSON（按扩展名识别），blocks 列表中的每项
//	要么给出 cidr 字符串，要么给出 start/end 边界地址对：
//
//	    blocks:
//	      - cidr: "192.168.0.0/24"
//	      - start: "10.0.0.0"
//	        end: "10.0.0.255"
//
//	边界地址对会经过完整的派生校验：未对齐的对（如 10.0.0.1 到
//	10.0.0.100）会被判为失败，而不是被静默拆分或取整。
//
// 退出码:
//
//	0: 全部成功
//	1: 派生/解析/校验失败
//	2: 参数错误（缺少参数、未知命令、配置文件格式不支持等）
//
// 示例:
//
//	xrangectl derive 192.168.0.0 192.168.0.255   # 192.168.0.0/24
//	xrangectl derive 2001:db8:: 2001:db8::1      # 2001:db8::/127
//	xrangectl parse 10.0.0.0/8
//	xrangectl check --config blocks.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "xrangectl",
		Usage:          "CIDR 块派生与校验工具",
		Version:        fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"XKit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run(args []string) int {
	app := createApp()

	if err := app.Run(context.Background(), args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
