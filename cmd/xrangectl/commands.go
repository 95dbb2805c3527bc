package main

import (
	"context"
	"fmt"
	"io"
	"net/netip"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ipkit/pkg/util/xrange"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误，映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createDeriveCommand(),
		createParseCommand(),
		createCheckCommand(),
	}
}

// createDeriveCommand 创建 derive 子命令。
func createDeriveCommand() *cli.Command {
	return &cli.Command{
		Name:      "derive",
		Aliases:   []string{"d"},
		Usage:     "从起止边界地址派生 CIDR 块",
		ArgsUsage: "<start> <end>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 2 {
				return &usageError{msg: "derive 需要两个参数: <start> <end>"}
			}
			return cmdDerive(os.Stdout, args[0], args[1])
		},
	}
}

func cmdDerive(w io.Writer, startStr, endStr string) error {
	start, err := netip.ParseAddr(startStr)
	if err != nil {
		return fmt.Errorf("起始地址非法 %q: %w", startStr, err)
	}
	end, err := netip.ParseAddr(endStr)
	if err != nil {
		return fmt.Errorf("结束地址非法 %q: %w", endStr, err)
	}
	r, err := xrange.FromRange(start, end)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, r)
	return nil
}

// createParseCommand 创建 parse 子命令。
func createParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"p"},
		Usage:     "解析 CIDR 字符串并打印块信息",
		ArgsUsage: "<cidr>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return &usageError{msg: "parse 需要一个参数: <cidr>"}
			}
			return cmdParse(os.Stdout, args[0])
		},
	}
}

func cmdParse(w io.Writer, s string) error {
	r, err := xrange.ParseRange(s)
	if err != nil {
		return err
	}
	ipr := r.IPRange()
	fmt.Fprintln(w, r)
	fmt.Fprintf(w, "  版本: %s\n", r.Version())
	fmt.Fprintf(w, "  前缀长度: %d\n", r.Bits())
	fmt.Fprintf(w, "  网络地址: %s\n", ipr.From())
	fmt.Fprintf(w, "  末地址: %s\n", ipr.To())
	return nil
}

// createCheckCommand 创建 check 子命令。
func createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:    "check",
		Aliases: []string{"c"},
		Usage:   "批量校验配置文件中的块定义",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"f"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			path := cmd.String("config")
			if path == "" {
				return &usageError{msg: "check 需要 --config 参数"}
			}
			return cmdCheck(os.Stdout, path)
		},
	}
}

func cmdCheck(w io.Writer, path string) error {
	cfg, err := loadCheckConfig(path)
	if err != nil {
		return err
	}

	failed := 0
	for i, entry := range cfg.Blocks {
		r, err := entry.toRange()
		if err != nil {
			failed++
			fmt.Fprintf(w, "[%d] fail %s: %v\n", i, entry, err)
			continue
		}
		fmt.Fprintf(w, "[%d] ok   %s\n", i, r)
	}
	fmt.Fprintf(w, "共 %d 项，失败 %d 项\n", len(cfg.Blocks), failed)

	if failed > 0 {
		return &exitError{code: 1}
	}
	return nil
}
