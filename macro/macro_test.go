package macro

import (
	"errors"
	"strings"
	"testing"

	"github.com/rushbox/boardlayout/board"
)

func convertString(t *testing.T, src string) string {
	t.Helper()
	out, err := Convert(strings.NewReader(src))
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	return out
}

func TestConvertSingleButton(t *testing.T) {
	got := convertString(t, `{"buttons":[{"x":10,"y":20,"pin":5,"size":"sm"}]}`)
	want := `#define DEFAULT_BOARD_LAYOUT_A {\
    {GP_ELEMENT_PIN_BUTTON, { 10,  20, 3, 3, 1, 1, 5  , GP_SHAPE_ELLIPSE}}\
  }

#define DEFAULT_BOARD_LAYOUT_B {}
`
	if got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestConvertBothGroups(t *testing.T) {
	src := `{"buttons":[
		{"x":100,"y":5,"pin":12,"size":"lg"},
		{"x":8,"y":32,"pin":"GP3"},
		{"x":64,"y":40,"pin":13,"size":"xl"},
		{"x":63,"y":40,"pin":2}
	]}`
	want := `#define DEFAULT_BOARD_LAYOUT_A {\
    {GP_ELEMENT_PIN_BUTTON, {  8,  32, 6, 6, 1, 1, GP3, GP_SHAPE_ELLIPSE}},\
    {GP_ELEMENT_PIN_BUTTON, { 63,  40, 6, 6, 1, 1, 2  , GP_SHAPE_ELLIPSE}}\
  }

#define DEFAULT_BOARD_LAYOUT_B {\
    {GP_ELEMENT_PIN_BUTTON, {100,   5, 7, 7, 1, 1, 12 , GP_SHAPE_ELLIPSE}},\
    {GP_ELEMENT_PIN_BUTTON, { 64,  40, 5, 5, 1, 1, 13 , GP_SHAPE_ELLIPSE}}\
  }
`
	if got := convertString(t, src); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmptyLeftGroup(t *testing.T) {
	got := convertString(t, `{"buttons":[{"x":90,"y":20,"pin":1}]}`)
	if !strings.HasPrefix(got, "#define DEFAULT_BOARD_LAYOUT_A {}\n\n") {
		t.Fatalf("expected empty group A, got:\n%s", got)
	}
}

func TestNoButtons(t *testing.T) {
	got := convertString(t, `{"buttons":[]}`)
	want := "#define DEFAULT_BOARD_LAYOUT_A {}\n\n#define DEFAULT_BOARD_LAYOUT_B {}\n"
	if got != want {
		t.Fatalf("unexpected output: %q", got)
	}
}

// TestSplitIsStablePartition 断言：每个按键恰好出现在一组中，且组内保持输入顺序。
func TestSplitIsStablePartition(t *testing.T) {
	xs := []int{0, 127, 63, 64, 10, 200, -3, 64, 50}
	l := &board.Layout{}
	for i, x := range xs {
		l.Buttons = append(l.Buttons, board.Button{X: x, Y: i, Pin: board.IntPin(i)})
	}
	g := Split(l)
	if g.Len() != len(xs) {
		t.Fatalf("expected %d descriptors, got %d", len(xs), g.Len())
	}
	check := func(name string, ds []Descriptor, left bool) {
		last := -1
		for _, d := range ds {
			if (d.X < SplitX) != left {
				t.Fatalf("%s: x=%d placed in wrong group", name, d.X)
			}
			// y 保存了输入下标
			if d.Y <= last {
				t.Fatalf("%s: order not preserved, index %d after %d", name, d.Y, last)
			}
			last = d.Y
		}
	}
	check("left", g.Left, true)
	check("right", g.Right, false)
	if len(g.Left) != 5 || len(g.Right) != 4 {
		t.Fatalf("unexpected group sizes: %d/%d", len(g.Left), len(g.Right))
	}
}

func TestDescriptorString(t *testing.T) {
	md := board.SizeMedium
	d := NewDescriptor(board.Button{X: 5, Y: 123, Pin: board.Pin("GP10"), Size: &md})
	want := "{GP_ELEMENT_PIN_BUTTON, {  5, 123, 6, 6, 1, 1, GP10, GP_SHAPE_ELLIPSE}}"
	if got := d.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestDescriptorButton(t *testing.T) {
	d := Descriptor{Kind: ElementPinButton, X: 1, Y: 2, RadiusX: 7, RadiusY: 7, Pin: board.IntPin(4), Shape: ShapeEllipse}
	b, err := d.Button()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.SizeTag() != board.SizeLarge || b.X != 1 || b.Y != 2 || b.Pin != "4" {
		t.Fatalf("unexpected button: %+v", b)
	}

	d.RadiusX, d.RadiusY = 5, 5
	if _, err := d.Button(); !errors.Is(err, ErrUnmappedRadius) {
		t.Fatalf("expected ErrUnmappedRadius, got %v", err)
	}
	d.RadiusX = 6
	if _, err := d.Button(); err == nil {
		t.Fatalf("expected error for mismatched radii")
	}
}

func TestConvertErrorHasNoOutput(t *testing.T) {
	out, err := Convert(strings.NewReader(`{"buttons":[{"x":1}`))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, board.ErrMalformedJSON) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}
