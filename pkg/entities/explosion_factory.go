package entities

import (
	"math/rand"

	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/utils"
)

// CreateExplosion 在 (x, y) 生成一批爆炸火花
//
// 每批先抽取一个基础色相，所有火花的色相覆盖为 baseHue ± HueSpread，
// 形成相近色系的爆炸，而不是完全随机的颜色。
//
// 参数：
//   - x, y: 爆炸中心
//   - cfg: 完整配置（使用 Explosion 与 Particle 部分）
//   - r: 随机源
//
// 返回：
//   - []*Particle: ParticleCount 个火花
func CreateExplosion(x, y float64, cfg *config.FireworksConfig, r *rand.Rand) []*Particle {
	count := cfg.Explosion.ParticleCount
	spread := cfg.Explosion.HueSpread
	baseHue := r.Float64() * 360

	particles := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		p := NewParticle(ParticleSpark, x, y, &cfg.Particle, r)
		p.Hue = baseHue + utils.RandomRange(r, -spread, spread)
		particles = append(particles, p)
	}
	return particles
}
