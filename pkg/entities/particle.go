package entities

import (
	"math"
	"math/rand"

	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/render"
	"github.com/gonewx/fireworks/pkg/utils"
)

// ParticleKind 粒子变体
type ParticleKind int

const (
	// ParticleSpark 爆炸火花：高速、强重力、可闪烁
	ParticleSpark ParticleKind = iota
	// ParticleTrail 指针拖尾火花：低速、弱重力、不闪烁
	ParticleTrail
)

// String 返回变体名称（用于日志）
func (k ParticleKind) String() string {
	switch k {
	case ParticleSpark:
		return "spark"
	case ParticleTrail:
		return "trail"
	default:
		return "unknown"
	}
}

// Particle 受重力影响、逐渐衰减的点，带一段短拖尾
//
// 粒子本身不知道自己所在的集合：Update 只报告是否应被移除，
// 由调度器负责驱逐。
type Particle struct {
	Kind ParticleKind

	X, Y  float64
	Trail TrailHistory

	// 速度用角度 + 标量表示
	Angle float64
	Speed float64

	Friction float64 // 每帧速度乘数
	Gravity  float64 // 每帧叠加到 Y 方向的位移

	Hue        float64 // 0 ~ 360
	Brightness float64 // 0 ~ 100
	Alpha      float64 // 1 → 0，单调不增
	Decay      float64 // 每帧 alpha 减少量（创建时确定）

	// Flicker 为 true 时，火花每帧重新随机亮度
	Flicker bool

	flickerMin, flickerMax float64
	rng                    *rand.Rand
}

// NewParticle 在 (x, y) 创建一个粒子
//
// 参数：
//   - kind: 粒子变体（火花或拖尾）
//   - x, y: 初始坐标
//   - cfg: 粒子配置
//   - r: 随机源（粒子保留引用，用于闪烁）
//
// 返回：
//   - *Particle: 新粒子，alpha 为 1
func NewParticle(kind ParticleKind, x, y float64, cfg *config.ParticleConfig, r *rand.Rand) *Particle {
	variant := cfg.Spark
	if kind == ParticleTrail {
		variant = cfg.Trail
	}

	return &Particle{
		Kind:       kind,
		X:          x,
		Y:          y,
		Trail:      NewTrailHistory(variant.TrailLength, x, y),
		Angle:      r.Float64() * 2 * math.Pi,
		Speed:      utils.RandomRange(r, variant.SpeedMin, variant.SpeedMax),
		Friction:   variant.Friction,
		Gravity:    variant.Gravity,
		Hue:        r.Float64() * 360,
		Brightness: utils.RandomRange(r, variant.BrightnessMin, variant.BrightnessMax),
		Alpha:      1,
		Decay:      utils.RandomRange(r, cfg.DecayMin, cfg.DecayMax),
		Flicker:    utils.Chance(r, cfg.FlickerChance),
		flickerMin: variant.FlickerBrightnessMin,
		flickerMax: variant.FlickerBrightnessMax,
		rng:        r,
	}
}

// Update 推进一帧
//
// 返回 true 表示粒子应被移除（alpha <= decay）。
// 截断发生在 alpha 变为非正之前，这是刻意保留的视觉截止点。
func (p *Particle) Update() bool {
	p.Trail.Push(p.X, p.Y)
	p.Speed *= p.Friction
	p.X += math.Cos(p.Angle) * p.Speed
	p.Y += math.Sin(p.Angle)*p.Speed + p.Gravity
	p.Alpha -= p.Decay

	if p.Flicker && p.Kind != ParticleTrail {
		p.Brightness = utils.RandomRange(p.rng, p.flickerMin, p.flickerMax)
	}

	return p.Alpha <= p.Decay
}

// Draw 从最旧的拖尾点到当前位置绘制线段：hsla(hue, 100%, brightness%, alpha)
func (p *Particle) Draw(s render.Surface) {
	from := p.Trail.Oldest()
	s.StrokeLine(from.X, from.Y, p.X, p.Y, utils.HSLA(p.Hue, 100, p.Brightness, p.Alpha))
}
