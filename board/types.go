package board

// 该文件定义板型布局的输入记录，供宏生成、头文件导入与预览共用。

// OLED 画布的默认尺寸（像素）。布局 JSON 未给出 width/height 时使用。
const (
	CanvasWidth  = 128
	CanvasHeight = 64
)

// Layout 对应一个 BoardLayout.json 文档。
type Layout struct {
	BoardLabel string   `json:"boardLabel,omitempty"`
	Width      int      `json:"width,omitempty"`
	Height     int      `json:"height,omitempty"`
	Buttons    []Button `json:"buttons"`
}

// Button 描述一个物理按键在屏幕上的位置与所接引脚。
type Button struct {
	X    int     `json:"x"`
	Y    int     `json:"y"`
	Pin  Pin     `json:"pin"`
	Size *string `json:"size,omitempty"` // nil 表示 JSON 中未出现 size
	// 以下字段只供网页端与预览使用，宏生成不读取
	Label string `json:"label,omitempty"`
	Group string `json:"group,omitempty"` // dpad/main/aux/trigger/addon
}

// SizeTag 返回按键的尺寸标记，缺省时视为 "md"。
func (b Button) SizeTag() string {
	if b.Size == nil {
		return DefaultSize
	}
	return *b.Size
}

// Radius 按尺寸表解析半径。
func (b Button) Radius() int { return RadiusFor(b.SizeTag()) }

// Bounds 返回布局画布尺寸，缺省为 128x64。
func (l *Layout) Bounds() (int, int) {
	w, h := l.Width, l.Height
	if w <= 0 {
		w = CanvasWidth
	}
	if h <= 0 {
		h = CanvasHeight
	}
	return w, h
}
