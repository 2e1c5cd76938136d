package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/gonewx/fireworks/internal/synth"
	"github.com/gonewx/fireworks/pkg/config"
)

// speakerSound 通过 beep/speaker 播放爆炸音效
// speaker 在第一次 Unlock 时初始化；初始化失败后保持静音
type speakerSound struct {
	cfg config.AudioConfig
	rng *rand.Rand

	initialized bool
	failed      bool
	muted       bool
}

func newSpeakerSound(cfg config.AudioConfig, rng *rand.Rand) *speakerSound {
	return &speakerSound{cfg: cfg, rng: rng}
}

// Unlock 初始化 speaker（只尝试一次）
func (s *speakerSound) Unlock() {
	if s.initialized || s.failed || s.muted {
		return
	}
	rate := beep.SampleRate(s.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		// 没有声卡时照常运行
		log.Printf("[Terminal] Audio initialization failed: %v", err)
		s.failed = true
		return
	}
	s.initialized = true
	log.Printf("[Terminal] Speaker initialized (%d Hz)", s.cfg.SampleRate)
}

// PlayExplosion 播放一次爆炸音效，speaker 负责混音
func (s *speakerSound) PlayExplosion() {
	if !s.initialized || s.muted {
		return
	}
	speaker.Play(synth.NewExplosion(s.rng, s.cfg))
}

// Close 关闭 speaker
func (s *speakerSound) Close() {
	if s.initialized {
		speaker.Close()
		s.initialized = false
	}
}
