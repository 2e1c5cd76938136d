// Package app 提供烟花演出的 ebiten.Game 包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/embedded"
	"github.com/gonewx/fireworks/pkg/game"
	"github.com/gonewx/fireworks/pkg/render"
	"github.com/gonewx/fireworks/pkg/utils"
)

const (
	introText       = "Click anywhere to start the celebration"
	introTextMobile = "Tap anywhere to start the celebration"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部配置文件路径，为空则使用嵌入的 data/fireworks.yaml
	ConfigPath string
	// Width/Height 覆盖配置中的窗口尺寸（0 表示不覆盖）
	Width, Height int
	// Mute 启动时静音
	Mute bool
	// Debug 显示实体数量与帧率
	Debug bool
}

// App 是烟花演出的核心包装器，实现 ebiten.Game 接口
//
// 画布在 App 中持有并跨帧保留；帧调度在 Update 中执行，
// Draw 只负责把画布贴到屏幕上。
type App struct {
	cfg     *config.FireworksConfig
	display *game.Display
	audio   *game.AudioManager
	surface *render.EbitenSurface
	pointer utils.PointerTracker

	debug bool

	// 开场提示：庆典开始后在 BurstDelay 内淡出
	prompt      *ebiten.Image
	introFading float64

	// Layout 记录的逻辑尺寸，在下一次 Update 中应用
	width, height int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化烟花应用
//
// 未指定 ConfigPath 时读取 embedded.Init() 提供的 data/fireworks.yaml，
// 未初始化则使用 config.Default()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	fwCfg, err := loadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	if cfg.Width > 0 {
		fwCfg.Window.Width = cfg.Width
	}
	if cfg.Height > 0 {
		fwCfg.Window.Height = cfg.Height
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	audioManager := game.NewAudioManager(fwCfg.Audio, rng)
	audioManager.SetMuted(cfg.Mute)
	log.Printf("[App] AudioManager initialized (muted: %v)", cfg.Mute)

	display := game.NewDisplay(fwCfg, rng, audioManager)
	display.Resize(float64(fwCfg.Window.Width), float64(fwCfg.Window.Height))

	return &App{
		cfg:     fwCfg,
		display: display,
		audio:   audioManager,
		surface: render.NewEbitenSurface(fwCfg.Window.Width, fwCfg.Window.Height),
		debug:   cfg.Debug,
		width:   fwCfg.Window.Width,
		height:  fwCfg.Window.Height,
	}, nil
}

// loadConfig 读取外部配置文件，未指定时使用嵌入配置（未嵌入时使用默认值）
func loadConfig(path string) (*config.FireworksConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading %s", path)
		return config.LoadFireworksConfig(path)
	}
	if !embedded.Exists(config.FireworksConfigPath) {
		log.Printf("[Config] No embedded %s, using defaults", config.FireworksConfigPath)
		return config.Default(), nil
	}
	data, err := embedded.ReadFile(config.FireworksConfigPath)
	if err != nil {
		return nil, fmt.Errorf("读取嵌入配置失败: %w", err)
	}
	return config.ParseFireworksConfig(data)
}

// Update 执行一帧
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.updateWindow()

	w, h := a.surface.Size()
	if w != a.width || h != a.height {
		a.surface.Resize(a.width, a.height)
		a.display.Resize(float64(a.width), float64(a.height))
		a.pointer.Reset()
		log.Printf("[App] Resized to %dx%d", a.width, a.height)
	}

	ev := a.pointer.Poll()
	if ev.Moved {
		a.display.PointerMove(float64(ev.X), float64(ev.Y))
	}
	if ev.Clicked {
		a.display.Click(float64(ev.X), float64(ev.Y))
	}

	dt := 1.0 / float64(ebiten.TPS())
	a.display.Tick(a.surface, dt)
	if a.display.IsCelebrating() && a.introFading < a.cfg.Celebration.BurstDelay {
		a.introFading += dt
	}
	return nil
}

// updateWindow 处理 F11 全屏切换
func (a *App) updateWindow() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.surface.Present(screen)

	a.drawPrompt(screen)

	if a.debug {
		reg := a.display.Registry()
		rockets, sparks, trails := reg.Counts()
		msg := fmt.Sprintf("TPS: %.1f  FPS: %.1f\nRockets: %d  Sparks: %d  Trails: %d  Total: %d\nAudio: unlocked=%v muted=%v volume=%.2f playing=%d",
			ebiten.ActualTPS(), ebiten.ActualFPS(),
			rockets, sparks, trails, reg.Total(),
			a.audio.IsUnlocked(), a.audio.IsMuted(), a.audio.Volume(), a.audio.ActivePlayers())
		ebitenutil.DebugPrint(screen, msg)
	}
}

// drawPrompt 绘制开场提示，庆典开始后缓出
func (a *App) drawPrompt(screen *ebiten.Image) {
	alpha := 1.0
	if a.display.IsCelebrating() {
		alpha = utils.FadeOut(a.introFading, a.cfg.Celebration.BurstDelay)
	}
	if alpha <= 0 {
		return
	}

	if a.prompt == nil {
		text := introText
		if utils.IsMobile() {
			text = introTextMobile
		}
		// 调试字体每个字符 6x16 像素
		a.prompt = ebiten.NewImage(len(text)*6, 16)
		ebitenutil.DebugPrint(a.prompt, text)
	}

	b := a.prompt.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(max(a.width/2-b.Dx()/2, 0)), float64(a.height/2-b.Dy()/2))
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(a.prompt, op)
}

// Layout 逻辑尺寸跟随窗口尺寸，画布在下一次 Update 时调整
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width = max(outsideWidth, 1)
	a.height = max(outsideHeight, 1)
	return a.width, a.height
}

// Config 返回生效的演出配置
func (a *App) Config() *config.FireworksConfig {
	return a.cfg
}
