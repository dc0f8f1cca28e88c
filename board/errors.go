package board

import (
	"errors"
	"fmt"
)

// 输入错误的分类，可配合 errors.Is 判断。
var (
	ErrMalformedJSON  = errors.New("JSON 格式错误")
	ErrMissingButtons = errors.New(`缺少 "buttons" 数组`)
	ErrMissingField   = errors.New("缺少必填字段")
	ErrInvalidField   = errors.New("字段类型无效")
)

// FieldError 指出出错的按键下标与字段名。
type FieldError struct {
	Index int
	Field string // 为空表示整个按键条目有误
	Err   error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("buttons[%d]: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("buttons[%d].%s: %v", e.Index, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
