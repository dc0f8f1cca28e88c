package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/rushbox/boardlayout/binding"
	"github.com/rushbox/boardlayout/board"
	"github.com/rushbox/boardlayout/macro"
	"github.com/rushbox/boardlayout/renderer"
)

const (
	defaultMargin  = 8.0
	outlineWidth   = 0.3
	splitLineWidth = 0.2
	labelSize      = 2.0 // mm
	titleSize      = 3.0 // mm
	labelGap       = 0.6 // mm
)

// Format 是预览输出格式。
type Format string

const (
	FormatPDF Format = "pdf"
	FormatSVG Format = "svg"
)

// FormatFromPath 根据扩展名判断输出格式。
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "pdf":
		return FormatPDF, nil
	case "svg":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("不支持的预览格式 %q（仅支持 .pdf 与 .svg）", ext)
	}
}

var (
	boardColor  = canvas.Hex("#101010")
	borderColor = canvas.Hex("#5a5a5a")
	splitColor  = canvas.Hex("#8a8a8a")
	textColor   = canvas.Hex("#f0f0f0")
	transparent = color.RGBA{0, 0, 0, 0}

	// 与网页端 button-spot--<group> 的配色保持一致
	groupColors = map[string]color.Color{
		"dpad":    canvas.Hex("#3b82f6"),
		"main":    canvas.Hex("#ef4444"),
		"aux":     canvas.Hex("#a3a3a3"),
		"trigger": canvas.Hex("#f59e0b"),
		"addon":   canvas.Hex("#10b981"),
	}
	leftColor  = canvas.Hex("#60a5fa")
	rightColor = canvas.Hex("#f87171")
)

// Renderer draws board layouts via github.com/tdewolff/canvas.
type Renderer struct {
	format   Format
	fontPath string
	label    string
	margin   float64

	fontMu sync.Mutex
	family *canvas.FontFamily
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures the canvas renderer.
type Options struct {
	Format   Format
	FontPath string  // 为空时不绘制任何文字
	Label    string  // 按键标签模板，见 binding.Label
	Margin   float64 // mm，<=0 时使用默认值
}

// NewRenderer creates a PDF renderer without labels.
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{Format: FormatPDF}) }

// NewRendererWithOptions creates a renderer from options.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{
		format:   opts.Format,
		fontPath: opts.FontPath,
		label:    opts.Label,
		margin:   opts.Margin,
	}
	if r.format == "" {
		r.format = FormatPDF
	}
	if r.margin <= 0 {
		r.margin = defaultMargin
	}
	return r
}

// Render renders each layout as one page. SVG output holds exactly one layout.
func (r *Renderer) Render(layouts []*board.Layout) ([]byte, error) {
	if len(layouts) == 0 {
		return nil, fmt.Errorf("缺少可渲染的布局")
	}
	for i, l := range layouts {
		if l == nil {
			return nil, fmt.Errorf("第 %d 个布局为空", i+1)
		}
	}

	var buf bytes.Buffer
	switch r.format {
	case FormatPDF:
		w, h := r.pageSize(layouts[0])
		writer := pdf.New(&buf, w, h, nil)
		writer.SetInfo(documentTitle(layouts), "board layout preview", "", "", "boardpreview")
		for i, l := range layouts {
			if i > 0 {
				w, h = r.pageSize(l)
				writer.NewPage(w, h)
			}
			c, err := r.drawLayout(l)
			if err != nil {
				return nil, err
			}
			c.RenderTo(writer)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 PDF 失败: %w", err)
		}
	case FormatSVG:
		if len(layouts) != 1 {
			return nil, fmt.Errorf("SVG 预览只能包含一个布局，实际 %d 个", len(layouts))
		}
		c, err := r.drawLayout(layouts[0])
		if err != nil {
			return nil, err
		}
		w, h := r.pageSize(layouts[0])
		writer := svg.New(&buf, w, h, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 SVG 失败: %w", err)
		}
	default:
		return nil, fmt.Errorf("不支持的预览格式 %q", r.format)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) pageSize(l *board.Layout) (float64, float64) {
	w, h := l.Bounds()
	return float64(w) + 2*r.margin, float64(h) + 2*r.margin
}

func (r *Renderer) drawLayout(l *board.Layout) (*canvas.Canvas, error) {
	pw, ph := r.pageSize(l)
	w, h := l.Bounds()
	c := canvas.New(pw, ph)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 与布局一致，左上角为原点

	ctx.SetFillColor(boardColor)
	ctx.SetStrokeColor(borderColor)
	ctx.SetStrokeWidth(outlineWidth)
	ctx.DrawPath(r.margin, r.margin, canvas.Rectangle(float64(w), float64(h)))

	// 左右半屏分界线
	ctx.SetFillColor(transparent)
	ctx.SetStrokeColor(splitColor)
	ctx.SetStrokeWidth(splitLineWidth)
	split := &canvas.Path{}
	split.MoveTo(0, 0)
	split.LineTo(0, float64(h))
	ctx.DrawPath(r.margin+macro.SplitX, r.margin, split)

	for _, b := range l.Buttons {
		r.drawButton(ctx, b)
	}

	face, err := r.fontFace(labelSize)
	if err != nil {
		return nil, err
	}
	if face == nil {
		return c, nil
	}
	for _, b := range l.Buttons {
		d := macro.NewDescriptor(b)
		text := canvas.NewTextLine(face, binding.Label(r.label, b), canvas.Center)
		baseline := r.margin + float64(d.Y+d.RadiusY) + labelGap + face.Metrics().Ascent
		ctx.DrawText(r.margin+float64(d.X), baseline, text)
	}
	if l.BoardLabel != "" {
		titleFace, err := r.fontFace(titleSize)
		if err != nil {
			return nil, err
		}
		title := canvas.NewTextLine(titleFace, l.BoardLabel, canvas.Left)
		ctx.DrawText(r.margin, r.margin-labelGap, title)
	}
	return c, nil
}

// drawButton 按描述符绘制椭圆，与固件绘制的形状一致。
func (r *Renderer) drawButton(ctx *canvas.Context, b board.Button) {
	d := macro.NewDescriptor(b)
	col := buttonColor(b)
	if d.Fill != 0 {
		ctx.SetFillColor(col)
	} else {
		ctx.SetFillColor(transparent)
	}
	if d.Stroke != 0 {
		ctx.SetStrokeColor(textColor)
		ctx.SetStrokeWidth(outlineWidth)
	} else {
		ctx.SetStrokeColor(transparent)
	}
	ctx.DrawPath(r.margin+float64(d.X), r.margin+float64(d.Y), canvas.Ellipse(float64(d.RadiusX), float64(d.RadiusY)))
}

// buttonColor 优先按 group 取色，未知 group 按所在半屏取色。
func buttonColor(b board.Button) color.Color {
	if col, ok := groupColors[b.Group]; ok {
		return col
	}
	if b.X < macro.SplitX {
		return leftColor
	}
	return rightColor
}

// fontFace 返回指定字号（mm）的字体面；未配置字体时返回 nil。
func (r *Renderer) fontFace(sizeMM float64) (*canvas.FontFace, error) {
	if r.fontPath == "" {
		return nil, nil
	}
	family, err := r.ensureFontFamily()
	if err != nil {
		return nil, err
	}
	return family.Face(toPt(sizeMM), textColor, canvas.FontRegular, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if r.family != nil {
		return r.family, nil
	}
	data, err := os.ReadFile(r.fontPath)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", r.fontPath, err)
	}
	family := canvas.NewFontFamily("boardpreview")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载字体 %s 失败: %w", r.fontPath, err)
	}
	r.family = family
	return family, nil
}

func documentTitle(layouts []*board.Layout) string {
	labels := make([]string, 0, len(layouts))
	for _, l := range layouts {
		if l.BoardLabel != "" {
			labels = append(labels, l.BoardLabel)
		}
	}
	if len(labels) == 0 {
		return "Board layout"
	}
	return strings.Join(labels, ", ")
}
