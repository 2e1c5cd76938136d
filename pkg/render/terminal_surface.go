package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// 终端字符单元对应的模拟坐标尺寸（近似字符宽高比 1:2）
const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

// 亮度从低到高对应的字符
var intensityGlyphs = []rune{' ', '.', '\'', ':', '*', '+', '#', '@'}

// cell 预乘 alpha 的浮点颜色
type cell struct {
	r, g, b, a float64
}

// TerminalSurface 基于 tcell 字符单元的绘制表面
//
// 每个字符单元覆盖 CellWidth x CellHeight 的模拟坐标区域。
// 颜色以浮点累加（加法混合），Fade 按比例整体衰减，
// Present 把缓冲区写入 tcell.Screen。
type TerminalSurface struct {
	CellWidth  float64
	CellHeight float64

	cols, rows int
	cells      []cell
}

// NewTerminalSurface 创建 cols x rows 个字符单元的表面
func NewTerminalSurface(cols, rows int) *TerminalSurface {
	s := &TerminalSurface{
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
	}
	s.Resize(cols, rows)
	return s
}

// Resize 调整字符网格尺寸（内容清空）
func (s *TerminalSurface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 1), max(rows, 1)
	s.cells = make([]cell, s.cols*s.rows)
}

// GridSize 返回字符网格尺寸
func (s *TerminalSurface) GridSize() (cols, rows int) {
	return s.cols, s.rows
}

// SimulationSize 返回网格对应的模拟坐标尺寸
func (s *TerminalSurface) SimulationSize() (width, height float64) {
	return float64(s.cols) * s.CellWidth, float64(s.rows) * s.CellHeight
}

// CellToSimulation 将字符单元坐标转换为模拟坐标（单元中心）
func (s *TerminalSurface) CellToSimulation(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.CellWidth, (float64(row) + 0.5) * s.CellHeight
}

// Fade 所有单元按 (1 - alpha) 衰减，等价于 destination-out 填充
func (s *TerminalSurface) Fade(alpha float64) {
	keep := 1 - alpha
	for i := range s.cells {
		c := &s.cells[i]
		c.r *= keep
		c.g *= keep
		c.b *= keep
		c.a *= keep
	}
}

// StrokeLine 在字符网格上光栅化线段（DDA），颜色加法叠加
func (s *TerminalSurface) StrokeLine(x0, y0, x1, y1 float64, clr color.RGBA) {
	if clr.A == 0 {
		return
	}

	c0, r0 := x0/s.CellWidth, y0/s.CellHeight
	c1, r1 := x1/s.CellWidth, y1/s.CellHeight

	steps := int(math.Ceil(math.Max(math.Abs(c1-c0), math.Abs(r1-r0))))
	if steps == 0 {
		steps = 1
	}

	add := cell{
		r: float64(clr.R) / 255,
		g: float64(clr.G) / 255,
		b: float64(clr.B) / 255,
		a: float64(clr.A) / 255,
	}

	lastCol, lastRow := -1, -1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col := int(math.Floor(c0 + (c1-c0)*t))
		row := int(math.Floor(r0 + (r1-r0)*t))
		if col == lastCol && row == lastRow {
			continue
		}
		lastCol, lastRow = col, row
		s.blend(col, row, add)
	}
}

func (s *TerminalSurface) blend(col, row int, add cell) {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return
	}
	c := &s.cells[row*s.cols+col]
	c.r = math.Min(c.r+add.r, 1)
	c.g = math.Min(c.g+add.g, 1)
	c.b = math.Min(c.b+add.b, 1)
	c.a = math.Min(c.a+add.a, 1)
}

// At 返回单元颜色（0~255，预乘），越界返回透明
func (s *TerminalSurface) At(col, row int) color.RGBA {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return color.RGBA{}
	}
	c := s.cells[row*s.cols+col]
	return color.RGBA{
		R: uint8(math.Round(c.r * 255)),
		G: uint8(math.Round(c.g * 255)),
		B: uint8(math.Round(c.b * 255)),
		A: uint8(math.Round(c.a * 255)),
	}
}

// Glyph 根据单元亮度选择字符
func (s *TerminalSurface) Glyph(col, row int) rune {
	c := s.At(col, row)
	level := max(c.R, c.G, c.B)
	idx := int(level) * len(intensityGlyphs) / 256
	return intensityGlyphs[idx]
}

// Present 写入 tcell 屏幕（不调用 Show）
func (s *TerminalSurface) Present(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			glyph := s.Glyph(col, row)
			style := tcell.StyleDefault.Background(tcell.ColorBlack)
			if glyph != ' ' {
				c := s.At(col, row)
				style = style.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			}
			screen.SetContent(col, row, glyph, nil, style)
		}
	}
}
