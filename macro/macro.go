package macro

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rushbox/boardlayout/board"
)

const (
	// SplitX 是左右半屏的分界，x == SplitX 归入右半屏。
	SplitX = board.CanvasWidth / 2

	NameA = "DEFAULT_BOARD_LAYOUT_A"
	NameB = "DEFAULT_BOARD_LAYOUT_B"

	entryIndent = "    "
)

// ErrUnmappedRadius 表示半径无法对应到任何尺寸标记。
var ErrUnmappedRadius = errors.New("半径没有对应的尺寸标记")

// Groups 保存左右两组描述符，组内顺序与输入顺序一致。
type Groups struct {
	Left  []Descriptor
	Right []Descriptor
}

// Len 返回两组描述符总数。
func (g Groups) Len() int { return len(g.Left) + len(g.Right) }

// Split 为每个按键生成描述符并按 x 稳定划分到左右两组。
func Split(l *board.Layout) Groups {
	var g Groups
	if l == nil {
		return g
	}
	for _, b := range l.Buttons {
		d := NewDescriptor(b)
		if b.X < SplitX {
			g.Left = append(g.Left, d)
		} else {
			g.Right = append(g.Right, d)
		}
	}
	return g
}

// Format 生成单个 #define；空组输出 {}。
func Format(name string, entries []Descriptor) string {
	if len(entries) == 0 {
		return fmt.Sprintf("#define %s {}", name)
	}
	lines := make([]string, 0, len(entries))
	for _, d := range entries {
		lines = append(lines, entryIndent+d.String())
	}
	return fmt.Sprintf("#define %s {\\\n%s\\\n  }", name, strings.Join(lines, ",\\\n"))
}

// Write 依次写出 A、空行、B 两个宏。
func Write(w io.Writer, g Groups) error {
	_, err := fmt.Fprintf(w, "%s\n\n%s\n", Format(NameA, g.Left), Format(NameB, g.Right))
	return err
}

// Convert 把布局 JSON 转换为宏文本；出错时不返回任何部分输出。
func Convert(r io.Reader) (string, error) {
	l, err := board.Parse(r)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := Write(&buf, Split(l)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
