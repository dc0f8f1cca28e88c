package renderer

import "github.com/rushbox/boardlayout/board"

// Renderer 将一组板型布局输出为预览文件，例如 PDF 或 SVG。
// Render 返回生成的二进制数据以及可能的错误。
type Renderer interface {
	Render(layouts []*board.Layout) ([]byte, error)
}
