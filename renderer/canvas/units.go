package canvasrenderer

// 画布以毫米为单位，布局中的 1 像素对应 1mm；字体接口使用 pt。
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// toPt 将毫米(mm)转换为点(pt)。
func toPt(mm float64) float64 { return mm * MmToPt }
