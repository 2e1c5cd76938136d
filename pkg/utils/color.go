package utils

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSLA 将 CSS 风格的 hsla(h, s%, l%, a) 转换为 color.RGBA（预乘 alpha）
//
// 参数:
//   - h: 色相（度），任意值，按 360 取模
//   - s, l: 饱和度与亮度（百分比 0 ~ 100）
//   - a: 不透明度 0 ~ 1
//
// 返回:
//   - color.RGBA: 预乘 alpha 的颜色，可直接交给 ebiten 或 image/draw 使用
func HSLA(h, s, l, a float64) color.RGBA {
	c := colorful.Hsl(NormalizeHue(h), clamp01(s/100), clamp01(l/100)).Clamped()
	r, g, b := c.RGB255()
	a = clamp01(a)
	return color.RGBA{
		R: uint8(math.Round(float64(r) * a)),
		G: uint8(math.Round(float64(g) * a)),
		B: uint8(math.Round(float64(b) * a)),
		A: uint8(math.Round(255 * a)),
	}
}

// HSL 不透明颜色，等价于 HSLA(h, s, l, 1)
func HSL(h, s, l float64) color.RGBA {
	return HSLA(h, s, l, 1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
