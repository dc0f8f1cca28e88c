// Command boardimport reads a header holding DEFAULT_BOARD_LAYOUT_A/B and
// prints the equivalent BoardLayout.json.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/goforj/godump"

	"github.com/rushbox/boardlayout/board"
	"github.com/rushbox/boardlayout/header"
)

func main() {
	boardLabel := flag.String("label", "", "写入 JSON 的 boardLabel")
	dump := flag.Bool("dump", false, "将解析出的语法树输出到标准错误")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <header.h>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	var dumpTo io.Writer
	if *dump {
		dumpTo = os.Stderr
	}
	if err := run(flag.Arg(0), *boardLabel, os.Stdout, dumpTo); err != nil {
		log.Fatalf("导入布局失败: %v", err)
	}
}

// run 解析头文件并写出布局 JSON；dumpTo 非空时额外输出语法树。
func run(inputPath, boardLabel string, out, dumpTo io.Writer) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("无法打开头文件 %s: %w", inputPath, err)
	}
	defer file.Close()

	doc, err := header.Parse(file)
	if err != nil {
		return fmt.Errorf("解析头文件失败: %w", err)
	}
	if dumpTo != nil {
		godump.Fdump(dumpTo, doc)
	}

	l, err := doc.Layout()
	if err != nil {
		return fmt.Errorf("还原布局失败: %w", err)
	}
	l.BoardLabel = boardLabel
	if err := board.WriteJSON(out, l); err != nil {
		return fmt.Errorf("写出 JSON 失败: %w", err)
	}
	return nil
}
