package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/fireworks/pkg/app"
	"github.com/gonewx/fireworks/pkg/embedded"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag     = flag.String("config", "", "Path to a fireworks YAML config (default: embedded data/fireworks.yaml)")
	widthFlag      = flag.Int("width", 0, "Window width override")
	heightFlag     = flag.Int("height", 0, "Window height override")
	muteFlag       = flag.Bool("mute", false, "Start with sound muted")
	debugFlag      = flag.Bool("debug", false, "Show entity counters and frame rate")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen mode (F11 toggles)")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	fireworks, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Width:      *widthFlag,
		Height:     *heightFlag,
		Mute:       *muteFlag,
		Debug:      *debugFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	cfg := fireworks.Config()
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreenFlag)

	if err := ebiten.RunGame(fireworks); err != nil {
		log.Fatal(err)
	}
}
