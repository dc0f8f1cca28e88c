package board

import (
	"encoding/json"
	"io"
)

// WriteJSON 将布局以缩进 JSON 写出，格式与 BoardLayout.json 一致。
func WriteJSON(w io.Writer, l *Layout) error {
	if l == nil {
		return nil
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
