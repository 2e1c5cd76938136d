package entities

import (
	"math"
	"math/rand"

	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/render"
	"github.com/gonewx/fireworks/pkg/utils"
)

// Rocket 飞向目标点的烟花火箭
//
// 直线飞行（角度在创建时确定，不转向），速度指数增长。
// 到达目标时 Update 返回 true，由调度器负责在目标点生成爆炸并移除火箭。
type Rocket struct {
	X, Y             float64
	StartX, StartY   float64
	TargetX, TargetY float64

	DistanceToTarget float64 // 创建时计算一次
	DistanceTraveled float64 // 每帧按前瞻公式重算

	Angle        float64
	Speed        float64
	Acceleration float64

	Brightness float64 // 每个实例固定
	Trail      TrailHistory

	// TargetRadius 在 [min, max] 间循环，仅记录不参与绘制
	TargetRadius float64

	radiusMin, radiusMax, radiusStep float64
}

// NewRocket 创建从 (x, y) 飞向 (targetX, targetY) 的火箭
func NewRocket(x, y, targetX, targetY float64, cfg *config.RocketConfig, r *rand.Rand) *Rocket {
	return &Rocket{
		X:                x,
		Y:                y,
		StartX:           x,
		StartY:           y,
		TargetX:          targetX,
		TargetY:          targetY,
		DistanceToTarget: utils.Distance(x, y, targetX, targetY),
		Angle:            utils.Angle(x, y, targetX, targetY),
		Speed:            cfg.StartSpeed,
		Acceleration:     cfg.Acceleration,
		Brightness:       utils.RandomRange(r, cfg.BrightnessMin, cfg.BrightnessMax),
		Trail:            NewTrailHistory(cfg.TrailLength, x, y),
		TargetRadius:     cfg.TargetRadiusMin,
		radiusMin:        cfg.TargetRadiusMin,
		radiusMax:        cfg.TargetRadiusMax,
		radiusStep:       cfg.TargetRadiusStep,
	}
}

// Update 推进一帧，返回 true 表示已到达目标
//
// 到达判定使用前瞻距离：起点到 (x - vx, y - vy) 的距离，
// 即以"待定位移之前一步"的位置衡量。到达时不再应用位移。
func (rk *Rocket) Update() bool {
	rk.Trail.Push(rk.X, rk.Y)

	if rk.TargetRadius < rk.radiusMax {
		rk.TargetRadius += rk.radiusStep
	} else {
		rk.TargetRadius = rk.radiusMin
	}

	rk.Speed *= rk.Acceleration
	vx := math.Cos(rk.Angle) * rk.Speed
	vy := math.Sin(rk.Angle) * rk.Speed

	rk.DistanceTraveled = utils.Distance(rk.StartX, rk.StartY, rk.X-vx, rk.Y-vy)
	if rk.DistanceTraveled >= rk.DistanceToTarget {
		return true
	}

	rk.X += vx
	rk.Y += vy
	return false
}

// Draw 从最旧的拖尾点到当前位置绘制线段
//
// 每次绘制都重新随机色相（亮度固定），火箭尾迹逐帧变色。
func (rk *Rocket) Draw(s render.Surface, r *rand.Rand) {
	from := rk.Trail.Oldest()
	s.StrokeLine(from.X, from.Y, rk.X, rk.Y, utils.HSL(r.Float64()*360, 100, rk.Brightness))
}
