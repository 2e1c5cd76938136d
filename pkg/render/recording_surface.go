package render

import "image/color"

// Stroke 一次 StrokeLine 调用
type Stroke struct {
	X0, Y0, X1, Y1 float64
	Color          color.RGBA
}

// RecordingSurface 只记录调用的无头表面
// 用于校验工具与测试，KeepStrokes 为 false 时只计数
type RecordingSurface struct {
	KeepStrokes bool

	Fades       int
	StrokeCount int
	Strokes     []Stroke
}

// Fade 记录一次擦除
func (s *RecordingSurface) Fade(alpha float64) {
	s.Fades++
}

// StrokeLine 记录一次绘制
func (s *RecordingSurface) StrokeLine(x0, y0, x1, y1 float64, clr color.RGBA) {
	s.StrokeCount++
	if s.KeepStrokes {
		s.Strokes = append(s.Strokes, Stroke{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: clr})
	}
}

// Reset 清空记录
func (s *RecordingSurface) Reset() {
	s.Fades = 0
	s.StrokeCount = 0
	s.Strokes = s.Strokes[:0]
}
