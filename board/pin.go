package board

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Pin 保存引脚的文本形式。JSON 中既可以是整数也可以是字符串。
type Pin string

// IntPin 由整数引脚号构造 Pin。
func IntPin(n int) Pin { return Pin(strconv.Itoa(n)) }

// Number 在引脚为整数时返回其数值。
func (p Pin) Number() (int, bool) {
	n, err := strconv.Atoi(string(p))
	if err != nil || strconv.Itoa(n) != string(p) {
		return 0, false
	}
	return n, true
}

func (p Pin) String() string { return string(p) }

// UnmarshalJSON 接受整数或字符串。
func (p *Pin) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("引脚不能为空")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Pin(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("引脚必须是整数或字符串: %s", data)
	}
	*p = IntPin(n)
	return nil
}

// MarshalJSON 将整数引脚写回为 JSON 数字。
// Pin 不记录原始 JSON 类型：内容为整数的字符串引脚（如 "5"）也会写成 5。
func (p Pin) MarshalJSON() ([]byte, error) {
	if n, ok := p.Number(); ok {
		return []byte(strconv.Itoa(n)), nil
	}
	return json.Marshal(string(p))
}
