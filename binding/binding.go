package binding

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rushbox/boardlayout/board"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// DefaultLabel 是预览中按键标签的默认模板。
const DefaultLabel = "GP${pin}"

// Interpolate 将文本中的 ${name} 替换为 fields 中的值。
// ${name|fallback} 在字段缺失或为空时使用 fallback；字段不存在且没有 fallback 时保留原占位符。
func Interpolate(text string, fields map[string]string) string {
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		name, fallback, hasFallback := strings.Cut(groups[1], "|")
		name = strings.TrimSpace(name)
		if name == "" {
			return match
		}
		val, ok := fields[name]
		if ok && val != "" {
			return val
		}
		if hasFallback {
			return fallback
		}
		if ok {
			return val
		}
		return match
	})
}

// ButtonFields 返回可在模板中引用的按键字段。
func ButtonFields(b board.Button) map[string]string {
	return map[string]string{
		"x":      strconv.Itoa(b.X),
		"y":      strconv.Itoa(b.Y),
		"pin":    b.Pin.String(),
		"size":   b.SizeTag(),
		"radius": strconv.Itoa(b.Radius()),
		"label":  b.Label,
		"group":  b.Group,
	}
}

// Label 使用模板生成按键标签，模板为空时使用 DefaultLabel。
func Label(template string, b board.Button) string {
	if template == "" {
		template = DefaultLabel
	}
	return Interpolate(template, ButtonFields(b))
}
