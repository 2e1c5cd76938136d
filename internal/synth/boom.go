// Package synth 合成烟花爆炸音色
//
// 音色是一个锯齿波振荡器：频率与增益分别做指数下滑，
// 到达总时长后流结束。输出为 beep.Streamer，可交给 beep/speaker
// 直接播放，或通过 Render 渲染成 PCM 交给 ebiten/audio。
package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/utils"
)

// boom 锯齿波 + 指数频率/增益包络
type boom struct {
	rate  beep.SampleRate
	phase float64
	pos   int

	freqStart, freqEnd float64
	sweep              float64 // 频率下滑时长（秒）
	gainStart, gainEnd float64
	gainTime           float64 // 增益下滑时长（秒）
}

// NewBoom 创建一个起始频率为 freq 的爆炸音色
//
// 流在 cfg.Duration 秒后结束（beep.Take 截断）。
//
// 参数：
//   - freq: 起始频率（Hz）
//   - cfg: 音色参数
//   - rate: 采样率
//
// 返回：
//   - beep.Streamer: 单声道内容写入左右两个声道
func NewBoom(freq float64, cfg config.BoomConfig, rate beep.SampleRate) beep.Streamer {
	b := &boom{
		rate:      rate,
		freqStart: freq,
		freqEnd:   cfg.FrequencyEnd,
		sweep:     cfg.SweepDuration,
		gainStart: cfg.GainStart,
		gainEnd:   cfg.GainEnd,
		gainTime:  cfg.Duration,
	}
	return beep.Take(rate.N(seconds(cfg.Duration)), b)
}

// RandomFrequency 在 [FrequencyMin, FrequencyMax) 内抽取起始频率
func RandomFrequency(r *rand.Rand, cfg config.BoomConfig) float64 {
	return utils.RandomRange(r, cfg.FrequencyMin, cfg.FrequencyMax)
}

// NewExplosion 以随机频率创建爆炸音色，并应用主音量
func NewExplosion(r *rand.Rand, cfg config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return Volume(NewBoom(RandomFrequency(r, cfg.Boom), cfg.Boom, rate), cfg.Volume)
}

func (b *boom) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(b.pos) / float64(b.rate)

		freq := expRamp(b.freqStart, b.freqEnd, t, b.sweep)
		gain := expRamp(b.gainStart, b.gainEnd, t, b.gainTime)

		val := gain * 2.0 * (b.phase - 0.5)
		samples[i][0] = val
		samples[i][1] = val

		b.phase += freq / float64(b.rate)
		b.phase -= math.Floor(b.phase)
		b.pos++
	}
	return len(samples), true
}

func (b *boom) Err() error { return nil }

// expRamp 从 from 指数过渡到 to，耗时 d 秒，之后保持 to
func expRamp(from, to, t, d float64) float64 {
	if d <= 0 || t >= d {
		return to
	}
	if from <= 0 || to <= 0 {
		// 指数插值要求同号非零，退化为线性
		return from + (to-from)*t/d
	}
	return from * math.Pow(to/from, t/d)
}

// Volume 按线性音量包装流
// math.Log2(0) 为 -Inf，音量 <= 0 时直接静音
func Volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
