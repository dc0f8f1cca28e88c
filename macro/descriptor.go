package macro

import (
	"fmt"

	"github.com/rushbox/boardlayout/board"
)

// 固件头文件中的元素类型与形状标识。
const (
	ElementPinButton = "GP_ELEMENT_PIN_BUTTON"
	ShapeEllipse     = "GP_SHAPE_ELLIPSE"
)

// Descriptor 对应固件中一个按键绘制元素的初始化器：
// {kind, {x, y, rx, ry, stroke, fill, pin, shape}}。
type Descriptor struct {
	Kind    string
	X       int
	Y       int
	RadiusX int
	RadiusY int
	Stroke  int
	Fill    int
	Pin     board.Pin
	Shape   string
}

// NewDescriptor 由按键生成描述符，半径只取决于 size。
func NewDescriptor(b board.Button) Descriptor {
	r := b.Radius()
	return Descriptor{
		Kind:    ElementPinButton,
		X:       b.X,
		Y:       b.Y,
		RadiusX: r,
		RadiusY: r,
		Stroke:  1,
		Fill:    1,
		Pin:     b.Pin,
		Shape:   ShapeEllipse,
	}
}

// String 输出 C 初始化器文本。x、y 右对齐到 3 位，pin 左对齐到 3 位，以保持宏中各列对齐。
func (d Descriptor) String() string {
	return fmt.Sprintf("{%s, {%3d, %3d, %d, %d, %d, %d, %-3s, %s}}",
		d.Kind, d.X, d.Y, d.RadiusX, d.RadiusY, d.Stroke, d.Fill, d.Pin, d.Shape)
}

// Button 将描述符还原为按键，size 由半径反查。
func (d Descriptor) Button() (board.Button, error) {
	if d.RadiusX != d.RadiusY {
		return board.Button{}, fmt.Errorf("按键 %s 的半径不一致: %d != %d", d.Pin, d.RadiusX, d.RadiusY)
	}
	tag, ok := board.SizeForRadius(d.RadiusX)
	if !ok {
		return board.Button{}, fmt.Errorf("%w: %d", ErrUnmappedRadius, d.RadiusX)
	}
	return board.Button{X: d.X, Y: d.Y, Pin: d.Pin, Size: &tag}, nil
}
