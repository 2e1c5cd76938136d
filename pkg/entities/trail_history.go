package entities

import "github.com/gonewx/fireworks/pkg/utils"

// TrailHistory 固定长度的历史坐标，最新在前
//
// 创建时以起点填满，因此长度在整个生命周期内恒定。
type TrailHistory struct {
	points []utils.Point
}

// NewTrailHistory 创建长度为 n 的历史，所有点初始化为 (x, y)
func NewTrailHistory(n int, x, y float64) TrailHistory {
	if n < 1 {
		n = 1
	}
	points := make([]utils.Point, n)
	for i := range points {
		points[i] = utils.Point{X: x, Y: y}
	}
	return TrailHistory{points: points}
}

// Push 在最前插入新坐标，丢弃最旧的坐标
func (t *TrailHistory) Push(x, y float64) {
	copy(t.points[1:], t.points[:len(t.points)-1])
	t.points[0] = utils.Point{X: x, Y: y}
}

// Oldest 返回保留的最旧坐标（绘制线段的起点）
func (t *TrailHistory) Oldest() utils.Point {
	return t.points[len(t.points)-1]
}

// Len 历史长度
func (t *TrailHistory) Len() int {
	return len(t.points)
}

// Points 返回历史坐标副本（最新在前）
func (t *TrailHistory) Points() []utils.Point {
	out := make([]utils.Point, len(t.points))
	copy(out, t.points)
	return out
}
