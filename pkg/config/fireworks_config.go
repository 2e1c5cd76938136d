package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FireworksConfigPath 内嵌默认配置文件路径
const FireworksConfigPath = "data/fireworks.yaml"

// FireworksConfig 烟花演出配置
//
// 包含粒子、火箭、爆炸、调度器、庆典序列、指针交互和音频合成的全部参数。
// 物理参数均为"每帧"数值，帧率变化会改变视觉速度（可接受的限制）。
//
// 配置文件位置: data/fireworks.yaml
type FireworksConfig struct {
	Window      WindowConfig      `yaml:"window"`
	Particle    ParticleConfig    `yaml:"particle"`
	Rocket      RocketConfig      `yaml:"rocket"`
	Explosion   ExplosionConfig   `yaml:"explosion"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"`
	Celebration CelebrationConfig `yaml:"celebration"`
	Pointer     PointerConfig     `yaml:"pointer"`
	Audio       AudioConfig       `yaml:"audio"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`  // 初始窗口宽度（像素）
	Height int    `yaml:"height"` // 初始窗口高度（像素）
	Title  string `yaml:"title"`  // 窗口标题
}

// ParticleConfig 粒子配置
type ParticleConfig struct {
	DecayMin      float64         `yaml:"decayMin"`      // 每帧 alpha 衰减下限
	DecayMax      float64         `yaml:"decayMax"`      // 每帧 alpha 衰减上限（不含）
	FlickerChance float64         `yaml:"flickerChance"` // 闪烁概率
	Spark         ParticleVariant `yaml:"spark"`         // 爆炸火花
	Trail         ParticleVariant `yaml:"trail"`         // 指针拖尾火花
}

// ParticleVariant 粒子变体参数
type ParticleVariant struct {
	TrailLength          int     `yaml:"trailLength"`
	Friction             float64 `yaml:"friction"`
	Gravity              float64 `yaml:"gravity"`
	SpeedMin             float64 `yaml:"speedMin"`
	SpeedMax             float64 `yaml:"speedMax"`
	BrightnessMin        float64 `yaml:"brightnessMin"`
	BrightnessMax        float64 `yaml:"brightnessMax"`
	FlickerBrightnessMin float64 `yaml:"flickerBrightnessMin"`
	FlickerBrightnessMax float64 `yaml:"flickerBrightnessMax"`
}

// RocketConfig 火箭配置
type RocketConfig struct {
	TrailLength      int     `yaml:"trailLength"`
	StartSpeed       float64 `yaml:"startSpeed"`
	Acceleration     float64 `yaml:"acceleration"` // 每帧速度乘数（指数加速）
	BrightnessMin    float64 `yaml:"brightnessMin"`
	BrightnessMax    float64 `yaml:"brightnessMax"`
	TargetRadiusMin  float64 `yaml:"targetRadiusMin"`
	TargetRadiusMax  float64 `yaml:"targetRadiusMax"`
	TargetRadiusStep float64 `yaml:"targetRadiusStep"`
}

// ExplosionConfig 爆炸配置
type ExplosionConfig struct {
	ParticleCount int     `yaml:"particleCount"` // 每次爆炸的火花数量
	HueSpread     float64 `yaml:"hueSpread"`     // 色相偏移范围 ±HueSpread
}

// SchedulerConfig 帧调度配置
type SchedulerConfig struct {
	FadeAlpha          float64 `yaml:"fadeAlpha"`          // 每帧擦除强度（destination-out 填充的 alpha）
	AmbientSpawnChance float64 `yaml:"ambientSpawnChance"` // 庆典期间每帧自动发射火箭的概率
}

// CelebrationConfig 庆典开场序列配置（时间单位：秒）
type CelebrationConfig struct {
	BurstDelay    float64 `yaml:"burstDelay"`    // 开场过渡延迟
	BurstInterval float64 `yaml:"burstInterval"` // 连发间隔
	BurstCount    int     `yaml:"burstCount"`    // 连发火箭数量
}

// PointerConfig 指针交互配置
type PointerConfig struct {
	TrailSpawnChance float64 `yaml:"trailSpawnChance"` // 指针移动时生成拖尾粒子的概率
	ClickSparkles    int     `yaml:"clickSparkles"`    // 点击时生成的拖尾粒子数量
}

// AudioConfig 音频配置
type AudioConfig struct {
	SampleRate int        `yaml:"sampleRate"`
	Volume     float64    `yaml:"volume"` // 主音量 0.0 ~ 1.0
	Boom       BoomConfig `yaml:"boom"`
}

// BoomConfig 爆炸音色参数
type BoomConfig struct {
	FrequencyMin  float64 `yaml:"frequencyMin"`  // 起始频率下限（Hz）
	FrequencyMax  float64 `yaml:"frequencyMax"`  // 起始频率上限（Hz，不含）
	FrequencyEnd  float64 `yaml:"frequencyEnd"`  // 指数下滑的目标频率
	SweepDuration float64 `yaml:"sweepDuration"` // 频率下滑时长（秒）
	GainStart     float64 `yaml:"gainStart"`
	GainEnd       float64 `yaml:"gainEnd"`
	Duration      float64 `yaml:"duration"` // 音色总时长（秒），包络结束即丢弃
}

// Default 返回默认配置（与 data/fireworks.yaml 一致）
func Default() *FireworksConfig {
	variant := func(trail int, friction, gravity, speedMin, speedMax float64) ParticleVariant {
		return ParticleVariant{
			TrailLength:          trail,
			Friction:             friction,
			Gravity:              gravity,
			SpeedMin:             speedMin,
			SpeedMax:             speedMax,
			BrightnessMin:        40,
			BrightnessMax:        100,
			FlickerBrightnessMin: 20,
			FlickerBrightnessMax: 100,
		}
	}

	return &FireworksConfig{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Fireworks"},
		Particle: ParticleConfig{
			DecayMin:      0.005,
			DecayMax:      0.02,
			FlickerChance: 0.5,
			Spark:         variant(5, 0.92, 0.6, 1, 16),
			Trail:         variant(3, 0.95, 0.1, 0.5, 2.5),
		},
		Rocket: RocketConfig{
			TrailLength:      3,
			StartSpeed:       2,
			Acceleration:     1.05,
			BrightnessMin:    50,
			BrightnessMax:    100,
			TargetRadiusMin:  1,
			TargetRadiusMax:  8,
			TargetRadiusStep: 0.3,
		},
		Explosion: ExplosionConfig{ParticleCount: 80, HueSpread: 20},
		Scheduler: SchedulerConfig{FadeAlpha: 0.4, AmbientSpawnChance: 0.05},
		Celebration: CelebrationConfig{
			BurstDelay:    1.0,
			BurstInterval: 0.3,
			BurstCount:    11,
		},
		Pointer: PointerConfig{TrailSpawnChance: 0.3, ClickSparkles: 10},
		Audio: AudioConfig{
			SampleRate: 48000,
			Volume:     1.0,
			Boom: BoomConfig{
				FrequencyMin:  30,
				FrequencyMax:  110,
				FrequencyEnd:  0.01,
				SweepDuration: 0.5,
				GainStart:     0.2,
				GainEnd:       0.001,
				Duration:      0.6,
			},
		},
	}
}

// ParseFireworksConfig 解析 YAML 格式的烟花配置
//
// 未出现在 YAML 中的字段保留默认值，因此覆盖文件只需列出要修改的项。
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *FireworksConfig: 解析并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseFireworksConfig(data []byte) (*FireworksConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse fireworks config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fireworks config: %w", err)
	}

	return cfg, nil
}

// LoadFireworksConfig 从磁盘加载烟花配置
//
// 参数:
//   - path: 配置文件路径（如 "fireworks.yaml"）
//
// 返回:
//   - *FireworksConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadFireworksConfig(path string) (*FireworksConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fireworks config: %w", err)
	}
	return ParseFireworksConfig(data)
}

// Validate 验证配置有效性
//
// 检查：
//   - 摩擦系数在 (0,1) 内，轨迹长度至少为 1
//   - 所有 [min, max) 区间满足 min <= max
//   - 概率在 [0,1] 内，时长为正
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *FireworksConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Particle.DecayMin <= 0 || c.Particle.DecayMin > c.Particle.DecayMax {
		return fmt.Errorf("particle decay range invalid: min(%.4f) max(%.4f)", c.Particle.DecayMin, c.Particle.DecayMax)
	}
	if err := validateChance("particle.flickerChance", c.Particle.FlickerChance); err != nil {
		return err
	}
	if err := c.Particle.Spark.validate("spark"); err != nil {
		return err
	}
	if err := c.Particle.Trail.validate("trail"); err != nil {
		return err
	}

	if c.Rocket.TrailLength < 1 {
		return fmt.Errorf("rocket trailLength must be >= 1, got %d", c.Rocket.TrailLength)
	}
	if c.Rocket.StartSpeed <= 0 {
		return fmt.Errorf("rocket startSpeed must be > 0, got %.2f", c.Rocket.StartSpeed)
	}
	if c.Rocket.Acceleration < 1 {
		return fmt.Errorf("rocket acceleration must be >= 1, got %.2f", c.Rocket.Acceleration)
	}
	if err := validateRange("rocket brightness", c.Rocket.BrightnessMin, c.Rocket.BrightnessMax); err != nil {
		return err
	}
	if err := validateRange("rocket targetRadius", c.Rocket.TargetRadiusMin, c.Rocket.TargetRadiusMax); err != nil {
		return err
	}

	if c.Explosion.ParticleCount < 0 {
		return fmt.Errorf("explosion particleCount must be >= 0, got %d", c.Explosion.ParticleCount)
	}
	if c.Explosion.HueSpread < 0 {
		return fmt.Errorf("explosion hueSpread must be >= 0, got %.2f", c.Explosion.HueSpread)
	}

	if err := validateChance("scheduler.fadeAlpha", c.Scheduler.FadeAlpha); err != nil {
		return err
	}
	if err := validateChance("scheduler.ambientSpawnChance", c.Scheduler.AmbientSpawnChance); err != nil {
		return err
	}

	if c.Celebration.BurstDelay < 0 || c.Celebration.BurstInterval <= 0 {
		return fmt.Errorf("celebration timing invalid: delay(%.2f) interval(%.2f)",
			c.Celebration.BurstDelay, c.Celebration.BurstInterval)
	}
	if c.Celebration.BurstCount < 0 {
		return fmt.Errorf("celebration burstCount must be >= 0, got %d", c.Celebration.BurstCount)
	}

	if err := validateChance("pointer.trailSpawnChance", c.Pointer.TrailSpawnChance); err != nil {
		return err
	}
	if c.Pointer.ClickSparkles < 0 {
		return fmt.Errorf("pointer clickSparkles must be >= 0, got %d", c.Pointer.ClickSparkles)
	}

	return c.Audio.validate()
}

func (v ParticleVariant) validate(name string) error {
	if v.TrailLength < 1 {
		return fmt.Errorf("%s trailLength must be >= 1, got %d", name, v.TrailLength)
	}
	if v.Friction <= 0 || v.Friction >= 1 {
		return fmt.Errorf("%s friction must be in (0,1), got %.3f", name, v.Friction)
	}
	if err := validateRange(name+" speed", v.SpeedMin, v.SpeedMax); err != nil {
		return err
	}
	if err := validateRange(name+" brightness", v.BrightnessMin, v.BrightnessMax); err != nil {
		return err
	}
	return validateRange(name+" flickerBrightness", v.FlickerBrightnessMin, v.FlickerBrightnessMax)
}

func (a AudioConfig) validate() error {
	if a.SampleRate <= 0 {
		return fmt.Errorf("audio sampleRate must be > 0, got %d", a.SampleRate)
	}
	if a.Volume < 0 || a.Volume > 1 {
		return fmt.Errorf("audio volume must be in [0,1], got %.2f", a.Volume)
	}
	b := a.Boom
	if err := validateRange("boom frequency", b.FrequencyMin, b.FrequencyMax); err != nil {
		return err
	}
	// 指数曲线不能经过 0
	if b.FrequencyMin <= 0 || b.FrequencyEnd <= 0 || b.GainStart <= 0 || b.GainEnd <= 0 {
		return fmt.Errorf("boom frequencies and gains must be > 0")
	}
	if b.SweepDuration <= 0 || b.Duration <= 0 {
		return fmt.Errorf("boom durations must be > 0: sweep(%.2f) duration(%.2f)", b.SweepDuration, b.Duration)
	}
	return nil
}

func validateRange(name string, min, max float64) error {
	if min > max {
		return fmt.Errorf("%s range invalid: min(%.2f) > max(%.2f)", name, min, max)
	}
	return nil
}

func validateChance(name string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s must be in [0,1], got %.3f", name, p)
	}
	return nil
}
