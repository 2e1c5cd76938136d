package game

import (
	"log"
	"math/rand"

	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/entities"
	"github.com/gonewx/fireworks/pkg/render"
	"github.com/gonewx/fireworks/pkg/utils"
)

// Display 烟花演出：帧调度器 + 外部事件入口
//
// 职责：
//   - 持有实体集合，按固定顺序（火箭 → 火花 → 拖尾）绘制并推进
//   - 火箭到达时在目标点生成爆炸并移除火箭（同一帧内）
//   - 庆典开始后按概率自动发射火箭，并执行开场连发
//   - 接收 Resize / StartCelebration / PointerMove / Click 事件
//
// 所有方法必须在同一个 goroutine 上调用。
type Display struct {
	cfg   *config.FireworksConfig
	rng   *rand.Rand
	sound Sound

	registry *Registry
	burst    burstTimer

	width, height float64
	celebrating   bool
}

// NewDisplay 创建演出
//
// 参数：
//   - cfg: 演出配置
//   - rng: 随机源（测试中注入固定种子）
//   - sound: 爆炸音效出口，可为 nil（静音）
//
// 返回：
//   - *Display: 尺寸为 1x1 的演出，调用方应随后 Resize
func NewDisplay(cfg *config.FireworksConfig, rng *rand.Rand, sound Sound) *Display {
	if sound == nil {
		sound = silentSound{}
	}
	return &Display{
		cfg:      cfg,
		rng:      rng,
		sound:    sound,
		registry: NewRegistry(),
		width:    1,
		height:   1,
	}
}

// Resize 更新绘制区域尺寸（最小 1x1）
// 已有实体不受影响，只影响之后的发射位置与目标
func (d *Display) Resize(width, height float64) {
	d.width = max(width, 1)
	d.height = max(height, 1)
}

// Size 当前绘制区域尺寸
func (d *Display) Size() (width, height float64) {
	return d.width, d.height
}

// Registry 返回实体集合
func (d *Display) Registry() *Registry {
	return d.registry
}

// IsCelebrating 庆典是否已开始
func (d *Display) IsCelebrating() bool {
	return d.celebrating
}

// StartCelebration 开始庆典（幂等）
// 解锁音频、开启自动发射，并在开场延迟后连发火箭
func (d *Display) StartCelebration() {
	if d.celebrating {
		return
	}
	d.sound.Unlock()
	d.celebrating = true

	c := d.cfg.Celebration
	d.burst.start(c.BurstDelay, c.BurstInterval, c.BurstCount)
	log.Printf("[Display] Celebration started: %d rockets after %.1fs", c.BurstCount, c.BurstDelay)
}

// PointerMove 指针移动：按概率在指针处生成一个拖尾粒子
func (d *Display) PointerMove(x, y float64) {
	if utils.Chance(d.rng, d.cfg.Pointer.TrailSpawnChance) {
		d.registry.AddTrail(entities.NewParticle(entities.ParticleTrail, x, y, &d.cfg.Particle, d.rng))
	}
}

// Click 指针点击
//
// 庆典未开始时只开始庆典；已开始时从底部中央向点击位置发射火箭，
// 在点击处生成一簇拖尾粒子，并再次解锁音频（恢复被挂起的后端）。
func (d *Display) Click(x, y float64) {
	if !d.celebrating {
		d.StartCelebration()
		return
	}

	d.launch(x, y)
	for i := 0; i < d.cfg.Pointer.ClickSparkles; i++ {
		d.registry.AddTrail(entities.NewParticle(entities.ParticleTrail, x, y, &d.cfg.Particle, d.rng))
	}
	d.sound.Unlock()
}

// Tick 执行一帧：擦除、绘制并推进所有实体、自动发射
//
// 物理常量按帧计算，dt 只用于开场连发的计时。
//
// 参数：
//   - s: 绘制表面（在帧之间保留内容）
//   - dt: 距上一帧的时间（秒）
func (d *Display) Tick(s render.Surface, dt float64) {
	for n := d.burst.advance(dt); n > 0; n-- {
		d.launchRandom()
	}

	s.Fade(d.cfg.Scheduler.FadeAlpha)

	reg := d.registry
	for i := len(reg.rockets) - 1; i >= 0; i-- {
		rk := reg.rockets[i]
		rk.Draw(s, d.rng)
		if rk.Update() {
			d.explode(rk.TargetX, rk.TargetY)
			reg.rockets = removeAt(reg.rockets, i)
		}
	}

	reg.sparks = tickParticles(s, reg.sparks)
	reg.trails = tickParticles(s, reg.trails)

	if d.celebrating && utils.Chance(d.rng, d.cfg.Scheduler.AmbientSpawnChance) {
		d.launchRandom()
	}
}

// tickParticles 倒序绘制并推进粒子，原地移除过期粒子
func tickParticles(s render.Surface, ps []*entities.Particle) []*entities.Particle {
	for i := len(ps) - 1; i >= 0; i-- {
		ps[i].Draw(s)
		if ps[i].Update() {
			ps = removeAt(ps, i)
		}
	}
	return ps
}

// explode 在目标点生成爆炸，庆典期间播放音效
func (d *Display) explode(x, y float64) {
	d.registry.AddSparks(entities.CreateExplosion(x, y, d.cfg, d.rng))
	if d.celebrating {
		d.sound.PlayExplosion()
	}
}

// launch 从底部中央发射一枚火箭
func (d *Display) launch(targetX, targetY float64) {
	d.registry.AddRocket(entities.NewRocket(d.width/2, d.height, targetX, targetY, &d.cfg.Rocket, d.rng))
}

// launchRandom 向上半屏的随机点发射火箭
func (d *Display) launchRandom() {
	tx := d.rng.Float64() * d.width
	ty := d.rng.Float64() * d.height / 2
	d.launch(tx, ty)
}
