// Command boardpreview renders one or more BoardLayout.json files to a PDF or
// SVG preview, drawing each button the way the OLED firmware does.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/rushbox/boardlayout/binding"
	"github.com/rushbox/boardlayout/board"
	canvasrenderer "github.com/rushbox/boardlayout/renderer/canvas"
)

func main() {
	output := flag.String("out", "preview.pdf", "预览输出路径（.pdf 或 .svg）")
	font := flag.String("font", "", "标签字体（TTF/OTF）路径，为空时不绘制文字")
	label := flag.String("label", binding.DefaultLabel, "按键标签模板，可引用 ${x} ${y} ${pin} ${size} ${radius} ${label} ${group}")
	boardLabel := flag.String("board", "", "只渲染 boardLabel 匹配的布局")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <BoardLayout.json>...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	format, err := canvasrenderer.FormatFromPath(*output)
	if err != nil {
		log.Fatal(err)
	}
	r := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
		Format:   format,
		FontPath: *font,
		Label:    *label,
	})
	if err := run(flag.Args(), *output, *boardLabel, r); err != nil {
		log.Fatalf("生成预览失败: %v", err)
	}
	log.Printf("已生成预览：%s", *output)
}

// run 并发读取全部布局，按输入顺序渲染并写出。
func run(inputs []string, outputPath, boardLabel string, r *canvasrenderer.Renderer) error {
	layouts, err := loadLayouts(inputs)
	if err != nil {
		return err
	}
	if boardLabel != "" {
		l := findLayout(layouts, boardLabel)
		if l == nil {
			return fmt.Errorf("找不到 boardLabel 为 %q 的布局", boardLabel)
		}
		layouts = []*board.Layout{l}
	}

	data, err := r.Render(layouts)
	if err != nil {
		return fmt.Errorf("渲染预览失败: %w", err)
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("写入预览文件失败: %w", err)
	}
	return nil
}

func loadLayouts(paths []string) ([]*board.Layout, error) {
	layouts := make([]*board.Layout, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			l, err := loadLayout(path)
			if err != nil {
				return err
			}
			layouts[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return layouts, nil
}

func loadLayout(path string) (*board.Layout, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开布局文件 %s: %w", path, err)
	}
	defer file.Close()

	l, err := board.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("解析布局 %s 失败: %w", path, err)
	}
	return l, nil
}

// findLayout 按 boardLabel 查找布局。
func findLayout(layouts []*board.Layout, label string) *board.Layout {
	for _, l := range layouts {
		if l.BoardLabel == label {
			return l
		}
	}
	return nil
}
