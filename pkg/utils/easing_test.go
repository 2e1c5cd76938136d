package utils

import (
	"math"
	"testing"
)

func TestEaseOutQuad(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"起点", 0, 0},
		{"中点", 0.5, 0.75},
		{"终点", 1, 1},
		{"超出上限", 2, 1},
		{"低于下限", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EaseOutQuad(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EaseOutQuad(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFadeOut(t *testing.T) {
	tests := []struct {
		name              string
		elapsed, duration float64
		want              float64
	}{
		{"刚开始", 0, 1, 1},
		{"一半", 0.5, 1, 0.25},
		{"结束", 1, 1, 0},
		{"结束之后", 3, 1, 0},
		{"零时长", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FadeOut(tt.elapsed, tt.duration); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FadeOut(%v, %v) = %v, want %v", tt.elapsed, tt.duration, got, tt.want)
			}
		})
	}
}
