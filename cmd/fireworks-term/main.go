// Package main runs the fireworks display inside a terminal.
//
// Usage:
//
//	go run ./cmd/fireworks-term [flags]
//
// Flags:
//
//	--config <path>   Fireworks YAML config (default: built-in values)
//	--mute            Disable sound
//	--fps <n>         Target frame rate (default 60)
//	--verbose         Log to fireworks-term.log
//
// Controls:
//
//	Mouse click       - Start the celebration, then launch a rocket to the cursor
//	Mouse move        - Leave a sparkle trail
//	Space             - Same as a click at the screen centre
//	Q/Escape/Ctrl+C   - Quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/game"
	"github.com/gonewx/fireworks/pkg/render"
)

const introText = "Click anywhere to start the celebration"

var (
	configFlag  = flag.String("config", "", "Path to a fireworks YAML config")
	muteFlag    = flag.Bool("mute", false, "Disable sound")
	fpsFlag     = flag.Int("fps", 60, "Target frame rate")
	verboseFlag = flag.Bool("verbose", false, "Write logs to fireworks-term.log")
)

// terminalApp 终端前端：tcell 事件经 channel 汇入帧循环所在的 goroutine
type terminalApp struct {
	screen  tcell.Screen
	surface *render.TerminalSurface
	display *game.Display
	sound   *speakerSound

	buttons tcell.ButtonMask
	lastCol int
	lastRow int
}

func newTerminalApp(cfg *config.FireworksConfig, mute bool) (*terminalApp, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	sound := newSpeakerSound(cfg.Audio, rng)
	sound.muted = mute

	cols, rows := screen.Size()
	surface := render.NewTerminalSurface(cols, rows)
	display := game.NewDisplay(cfg, rng, sound)
	display.Resize(surface.SimulationSize())

	return &terminalApp{
		screen:  screen,
		surface: surface,
		display: display,
		sound:   sound,
		lastCol: -1,
		lastRow: -1,
	}, nil
}

// handleEvent 处理一个输入事件，返回 false 表示退出
func (t *terminalApp) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := t.surface.CellToSimulation(col, row)

		if col != t.lastCol || row != t.lastRow {
			if t.lastCol >= 0 {
				t.display.PointerMove(x, y)
			}
			t.lastCol, t.lastRow = col, row
		}

		buttons := ev.Buttons()
		if buttons&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0 {
			t.display.Click(x, y)
		}
		t.buttons = buttons

	case *tcell.EventResize:
		cols, rows := ev.Size()
		t.surface.Resize(cols, rows)
		t.display.Resize(t.surface.SimulationSize())
		t.screen.Sync()
		log.Printf("[Terminal] Resized to %dx%d cells", cols, rows)
	}
	return true
}

// handleKey 处理按键，返回 false 表示退出
func (t *terminalApp) handleKey(key tcell.Key, r rune) bool {
	switch {
	case key == tcell.KeyEscape, key == tcell.KeyCtrlC:
		return false
	case key == tcell.KeyRune && (r == 'q' || r == 'Q'):
		return false
	case key == tcell.KeyRune && r == ' ':
		w, h := t.display.Size()
		t.display.Click(w/2, h/2)
	}
	return true
}

func (t *terminalApp) draw() {
	t.surface.Present(t.screen)

	if !t.display.IsCelebrating() {
		cols, rows := t.surface.GridSize()
		col := max((cols-len(introText))/2, 0)
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
		for i, r := range introText {
			t.screen.SetContent(col+i, rows/2, r, nil, style)
		}
	}

	t.screen.Show()
}

func (t *terminalApp) run(fps int) {
	frame := time.Second / time.Duration(max(fps, 1))
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !t.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			t.display.Tick(t.surface, dt)
			t.draw()
		}
	}
}

func (t *terminalApp) cleanup() {
	t.sound.Close()
	t.screen.Fini()
}

func loadConfig(path string) (*config.FireworksConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFireworksConfig(path)
}

func main() {
	flag.Parse()

	// 终端被 tcell 接管，日志只能写入文件
	if *verboseFlag {
		f, err := os.OpenFile("fireworks-term.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	app, err := newTerminalApp(cfg, *muteFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run(*fpsFlag)
}
