// Package render 提供烟花绘制表面（drawing surface）的抽象与实现
//
// 模拟层只依赖 Surface 接口：
//   - EbitenSurface: 桌面/移动端，基于 Ebitengine 的离屏画布
//   - TerminalSurface: 终端，基于 tcell 的字符单元缓冲
//
// 绘制语义与 HTML canvas 的烟花效果一致：每帧先以 destination-out
// 方式半透明擦除（旧笔画逐渐淡出），随后所有笔画以加法混合（lighter）叠加。
package render

import "image/color"

// Surface 绘制表面
type Surface interface {
	// Fade 以 destination-out 混合整体擦除，alpha 为擦除强度 (0~1)
	// 调用后恢复加法混合，后续 StrokeLine 叠加变亮
	Fade(alpha float64)

	// StrokeLine 以 1 像素宽度绘制线段
	// clr 为预乘 alpha 的颜色（image/color 约定）
	StrokeLine(x0, y0, x1, y1 float64, clr color.RGBA)
}
