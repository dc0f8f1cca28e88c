package board

// 尺寸标记。
const (
	SizeSmall  = "sm"
	SizeMedium = "md"
	SizeLarge  = "lg"

	// DefaultSize 是 size 缺省时代入查表的标记。
	DefaultSize = SizeMedium
	// FallbackRadius 只用于出现了但无法识别的标记，与 "md" 的半径不同。
	FallbackRadius = 5
)

var sizeRadius = map[string]int{
	SizeSmall:  3,
	SizeMedium: 6,
	SizeLarge:  7,
}

// RadiusFor 查表得到半径，未知标记返回 FallbackRadius。
func RadiusFor(tag string) int {
	if r, ok := sizeRadius[tag]; ok {
		return r
	}
	return FallbackRadius
}

// SizeForRadius 是 RadiusFor 的逆映射，仅覆盖尺寸表中的半径。
func SizeForRadius(radius int) (string, bool) {
	for tag, r := range sizeRadius {
		if r == radius {
			return tag, true
		}
	}
	return "", false
}
