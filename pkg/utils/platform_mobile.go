//go:build mobile

package utils

// hasCursor 移动端没有光标，CursorPosition 固定返回 (0, 0)
const hasCursor = false

// IsMobile 检测当前是否在移动设备上运行
// 移动端编译时返回 true
func IsMobile() bool {
	return true
}
