// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的指针状态
// 统一处理鼠标和触摸输入
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 指针位置
	X, Y int
	// 是否有活动的触摸
	IsTouching bool
	// 没有可用的指针位置（移动端触摸结束后没有光标）
	NoPointer bool
}

// GetInputState 获取当前帧的指针状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	// 首先检查新的触摸（移动设备）
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	// 活动的触摸（拖动）
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	if !hasCursor {
		state.NoPointer = true
		return state
	}

	// 其次检查鼠标（桌面设备）
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.X, state.Y = ebiten.CursorPosition()
	return state
}

// PointerEvent 一帧内归并出的指针事件
type PointerEvent struct {
	Moved   bool // 位置相对上一帧发生变化
	Clicked bool // 刚刚点击/触摸
	X, Y    int
}

// PointerTracker 将逐帧轮询的指针状态转换为移动/点击事件
//
// ebiten 只提供轮询接口，而烟花需要的是 "mousemove" 式的事件：
// 只有位置变化时才报告移动，第一帧只记录位置。
type PointerTracker struct {
	lastX, lastY int
	seen         bool
}

// Poll 读取 ebiten 当前输入并生成事件（必须在 Update 中调用）
func (t *PointerTracker) Poll() PointerEvent {
	return t.Observe(GetInputState())
}

// Observe 根据给定状态生成事件
func (t *PointerTracker) Observe(state InputState) PointerEvent {
	// 保留最后一次触摸位置，不报告移动
	if state.NoPointer {
		return PointerEvent{X: t.lastX, Y: t.lastY}
	}

	ev := PointerEvent{
		Clicked: state.JustPressed,
		X:       state.X,
		Y:       state.Y,
	}
	if t.seen && (state.X != t.lastX || state.Y != t.lastY) {
		ev.Moved = true
	}
	t.lastX, t.lastY = state.X, state.Y
	t.seen = true
	return ev
}

// Reset 忘记上一次的位置（例如窗口尺寸变化后）
func (t *PointerTracker) Reset() {
	t.seen = false
}
