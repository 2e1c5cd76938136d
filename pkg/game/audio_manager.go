package game

import (
	"log"
	"math/rand"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/gonewx/fireworks/internal/synth"
	"github.com/gonewx/fireworks/pkg/config"
)

// AudioManager 通过 ebiten/audio 播放合成的爆炸音效
// 职责：
//   - 在第一次用户交互时创建（或复用）音频上下文
//   - 每次爆炸合成一段新的音色并交给独立的播放器
//   - 回收已播放完毕的播放器
//
// 没有复音数量上限；上下文创建前所有播放请求都是空操作。
type AudioManager struct {
	cfg config.AudioConfig
	rng *rand.Rand

	context *audio.Context
	players []*audio.Player

	volume float64
	muted  bool
}

// NewAudioManager 创建音频管理器（此时不创建音频上下文）
//
// 参数：
//   - cfg: 音频配置
//   - rng: 随机源，用于抽取每次爆炸的起始频率
//
// 返回：
//   - *AudioManager: 处于锁定状态的音频管理器
func NewAudioManager(cfg config.AudioConfig, rng *rand.Rand) *AudioManager {
	am := &AudioManager{
		cfg: cfg,
		rng: rng,
	}
	am.SetVolume(cfg.Volume)
	return am
}

// Unlock 解锁音频
// 每个进程只创建一个音频上下文：优先复用已存在的上下文
func (am *AudioManager) Unlock() {
	if am.context != nil {
		return
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(am.cfg.SampleRate)
		log.Printf("[AudioManager] Audio context created (%d Hz)", am.cfg.SampleRate)
	}
	am.context = ctx
}

// IsUnlocked 音频是否已解锁
func (am *AudioManager) IsUnlocked() bool {
	return am.context != nil
}

// PlayExplosion 播放一次爆炸音效
// 未解锁或已静音时不做任何事
func (am *AudioManager) PlayExplosion() {
	if am.context == nil || am.muted {
		return
	}
	am.prune()

	// 复用的上下文可能不是按配置的采样率创建的
	player := am.context.NewPlayerFromBytes(am.renderExplosion(am.context.SampleRate()))
	player.SetVolume(am.volume)
	player.Play()
	am.players = append(am.players, player)
}

// renderExplosion 以给定采样率合成一次爆炸音效的 PCM
func (am *AudioManager) renderExplosion(sampleRate int) []byte {
	freq := synth.RandomFrequency(am.rng, am.cfg.Boom)
	return synth.Render(synth.NewBoom(freq, am.cfg.Boom, beep.SampleRate(sampleRate)))
}

// SetVolume 设置音量（0.0 ~ 1.0），立即应用到正在播放的音效
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = min(max(volume, 0), 1)
	for _, p := range am.players {
		p.SetVolume(am.volume)
	}
}

// Volume 当前音量
func (am *AudioManager) Volume() float64 {
	return am.volume
}

// SetMuted 静音开关，静音时停止所有正在播放的音效
func (am *AudioManager) SetMuted(muted bool) {
	am.muted = muted
	if muted {
		for _, p := range am.players {
			p.Pause()
		}
		am.prune()
	}
}

// IsMuted 是否静音
func (am *AudioManager) IsMuted() bool {
	return am.muted
}

// ActivePlayers 正在播放的音效数量
func (am *AudioManager) ActivePlayers() int {
	am.prune()
	return len(am.players)
}

// prune 关闭并丢弃已停止的播放器
func (am *AudioManager) prune() {
	kept := am.players[:0]
	for _, p := range am.players {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close player: %v", err)
		}
	}
	clear(am.players[len(kept):])
	am.players = kept
}
