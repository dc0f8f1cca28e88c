package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rushbox/boardlayout/board"
)

const generated = `#define DEFAULT_BOARD_LAYOUT_A {\
    {GP_ELEMENT_PIN_BUTTON, { 10,  20, 3, 3, 1, 1, 5  , GP_SHAPE_ELLIPSE}}\
  }

#define DEFAULT_BOARD_LAYOUT_B {\
    {GP_ELEMENT_PIN_BUTTON, { 90,  30, 7, 7, 1, 1, GP8, GP_SHAPE_ELLIPSE}}\
  }
`

func TestRunImportsHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.h")
	if err := os.WriteFile(path, []byte(generated), 0o644); err != nil {
		t.Fatalf("write header: %v", err)
	}
	var out, dump bytes.Buffer
	if err := run(path, "Rushbox", &out, &dump); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if dump.Len() == 0 {
		t.Fatalf("expected AST dump")
	}

	l, err := board.Parse(&out)
	if err != nil {
		t.Fatalf("output is not a valid layout: %v", err)
	}
	if l.BoardLabel != "Rushbox" || len(l.Buttons) != 2 {
		t.Fatalf("unexpected layout: %+v", l)
	}
	if l.Buttons[0].SizeTag() != board.SizeSmall || l.Buttons[1].Pin != "GP8" || l.Buttons[1].SizeTag() != board.SizeLarge {
		t.Fatalf("unexpected buttons: %+v", l.Buttons)
	}
}

func TestRunRejectsUnknownElement(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.h")
	src := strings.Replace(generated, "GP_ELEMENT_PIN_BUTTON", "GP_ELEMENT_WIDGET", 1)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write header: %v", err)
	}
	var out bytes.Buffer
	if err := run(path, "", &out, nil); err == nil {
		t.Fatalf("expected error")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output on error")
	}
}
