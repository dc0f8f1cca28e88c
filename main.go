package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rushbox/boardlayout/macro"
)

var errUsage = errors.New("需要且只需要一个布局文件路径")

func main() {
	input, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Usage: %s <BoardLayout.json>\n", os.Args[0])
		os.Exit(1)
	}
	if err := run(input, os.Stdout); err != nil {
		log.Fatalf("生成布局宏失败: %v", err)
	}
}

// parseArgs 只接受一个位置参数，不解释任何 flag；以 - 开头的参数也按路径处理。
func parseArgs(args []string) (string, error) {
	if len(args) != 1 {
		return "", errUsage
	}
	return args[0], nil
}

// run 读取布局 JSON 并把两个宏写到 out；任一步失败时 out 不会收到任何内容。
func run(inputPath string, out io.Writer) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("无法打开布局文件 %s: %w", inputPath, err)
	}
	defer file.Close()

	text, err := macro.Convert(file)
	if err != nil {
		return fmt.Errorf("解析布局 %s 失败: %w", inputPath, err)
	}
	if _, err := io.WriteString(out, text); err != nil {
		return fmt.Errorf("写出宏失败: %w", err)
	}
	return nil
}
