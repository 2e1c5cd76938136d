package utils

import "math"

// Point 屏幕坐标点（浮点）
type Point struct {
	X, Y float64
}

// Distance 计算两点之间的欧氏距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Angle 计算从 (x1, y1) 指向 (x2, y2) 的角度（弧度）
// 屏幕坐标系中 Y 轴向下，因此向上飞行的角度为负值
func Angle(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// NormalizeHue 将色相规整到 [0, 360) 区间
// 与 CSS hsl() 一致：超出范围的色相按 360 取模
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
