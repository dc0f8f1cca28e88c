package board

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Parse 从 io.Reader 读取并解析布局 JSON。
func Parse(r io.Reader) (*Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("读取布局失败: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes 解析布局 JSON。x、y、pin 为必填字段，缺失或类型不符时返回 *FieldError。
// boardLabel、width、height、label、group 只做尽力解析，类型不符时忽略。
func ParseBytes(data []byte) (*Layout, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	raw, ok := doc["buttons"]
	if !ok || isNull(raw) {
		return nil, ErrMissingButtons
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingButtons, err)
	}

	layout := &Layout{Buttons: make([]Button, 0, len(items))}
	decodeOptional(doc, "boardLabel", &layout.BoardLabel)
	decodeOptional(doc, "width", &layout.Width)
	decodeOptional(doc, "height", &layout.Height)

	for i, item := range items {
		btn, err := parseButton(i, item)
		if err != nil {
			return nil, err
		}
		layout.Buttons = append(layout.Buttons, btn)
	}
	return layout, nil
}

func parseButton(index int, raw json.RawMessage) (Button, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Button{}, &FieldError{Index: index, Err: fmt.Errorf("%w: 按键必须是 JSON 对象", ErrInvalidField)}
	}

	var btn Button
	if err := requireField(index, fields, "x", &btn.X); err != nil {
		return Button{}, err
	}
	if err := requireField(index, fields, "y", &btn.Y); err != nil {
		return Button{}, err
	}
	if err := requireField(index, fields, "pin", &btn.Pin); err != nil {
		return Button{}, err
	}

	if v, ok := fields["size"]; ok {
		tag := sizeText(v)
		btn.Size = &tag
	}
	decodeOptional(fields, "label", &btn.Label)
	decodeOptional(fields, "group", &btn.Group)
	return btn, nil
}

func requireField(index int, fields map[string]json.RawMessage, name string, dst any) error {
	v, ok := fields[name]
	if !ok || isNull(v) {
		return &FieldError{Index: index, Field: name, Err: ErrMissingField}
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return &FieldError{Index: index, Field: name, Err: fmt.Errorf("%w: %v", ErrInvalidField, err)}
	}
	return nil
}

// sizeText 将 size 的 JSON 值转为标记：字符串取其内容，其余类型保留原始文本，因此永远查不到表。
func sizeText(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(v))
}

func decodeOptional(fields map[string]json.RawMessage, name string, dst any) {
	v, ok := fields[name]
	if !ok || isNull(v) {
		return
	}
	_ = json.Unmarshal(v, dst)
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
