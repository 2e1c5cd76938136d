package utils

// EaseOutQuad 二次方缓出：开始较快，结束慢
// 输入 t 会被截断到 [0, 1]
func EaseOutQuad(t float64) float64 {
	t = clamp01(t)
	return 1 - (1-t)*(1-t)
}

// FadeOut 经过 elapsed 秒后的剩余不透明度（duration 秒内从 1 缓出到 0）
func FadeOut(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return 1 - EaseOutQuad(elapsed/duration)
}
