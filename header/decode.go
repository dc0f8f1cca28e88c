package header

import (
	"errors"
	"fmt"

	"github.com/rushbox/boardlayout/board"
	"github.com/rushbox/boardlayout/macro"
)

var (
	ErrMissingDefine  = errors.New("define not found")
	ErrNotInitializer = errors.New("define is not an aggregate initializer")
	ErrUnknownElement = errors.New("unsupported element kind")
	ErrBadArity       = errors.New("wrong number of element arguments")
)

// pin button params: x, y, rx, ry, stroke, fill, pin, shape
const pinButtonArity = 8

// Descriptors converts the elements of the named define.
func (f *File) Descriptors(name string) ([]macro.Descriptor, error) {
	def := f.Lookup(name)
	if def == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingDefine, name)
	}
	if def.Body == nil {
		return nil, fmt.Errorf("%s: %w: %s", def.Pos, ErrNotInitializer, name)
	}
	out := make([]macro.Descriptor, 0, len(def.Body.Elements))
	for _, el := range def.Body.Elements {
		d, err := el.Descriptor()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// Descriptor converts a single pin-button element.
func (e *Element) Descriptor() (macro.Descriptor, error) {
	if e.Kind != macro.ElementPinButton {
		return macro.Descriptor{}, fmt.Errorf("%s: %w: %s", e.Pos, ErrUnknownElement, e.Kind)
	}
	if len(e.Args) != pinButtonArity {
		return macro.Descriptor{}, fmt.Errorf("%s: %w: got %d, want %d", e.Pos, ErrBadArity, len(e.Args), pinButtonArity)
	}

	ints := make([]int, 6)
	for i := range ints {
		n, err := e.Args[i].Int()
		if err != nil {
			return macro.Descriptor{}, err
		}
		ints[i] = n
	}
	shape := e.Args[7]
	if !shape.IsIdent() {
		return macro.Descriptor{}, fmt.Errorf("%s: shape must be an identifier, got %q", shape.Pos, shape.String())
	}

	return macro.Descriptor{
		Kind:    e.Kind,
		X:       ints[0],
		Y:       ints[1],
		RadiusX: ints[2],
		RadiusY: ints[3],
		Stroke:  ints[4],
		Fill:    ints[5],
		Pin:     board.Pin(e.Args[6].String()),
		Shape:   shape.String(),
	}, nil
}

// Layout rebuilds a board layout from DEFAULT_BOARD_LAYOUT_A followed by
// DEFAULT_BOARD_LAYOUT_B. The original interleaving of the two halves is not
// recoverable, so buttons come out grouped by half.
func (f *File) Layout() (*board.Layout, error) {
	l := &board.Layout{Buttons: []board.Button{}}
	for _, name := range []string{macro.NameA, macro.NameB} {
		descs, err := f.Descriptors(name)
		if err != nil {
			return nil, err
		}
		for _, d := range descs {
			btn, err := d.Button()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			l.Buttons = append(l.Buttons, btn)
		}
	}
	return l, nil
}
