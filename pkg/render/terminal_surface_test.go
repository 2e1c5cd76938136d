package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTerminalSurface_StrokeLineLightsCells(t *testing.T) {
	s := NewTerminalSurface(10, 5)

	// 第 2 行，从第 1 列到第 4 列
	y := 2.5 * s.CellHeight
	s.StrokeLine(1.5*s.CellWidth, y, 4.5*s.CellWidth, y, color.RGBA{255, 0, 0, 255})

	for col := 0; col < 10; col++ {
		got := s.At(col, 2)
		lit := col >= 1 && col <= 4
		if lit && got.R != 255 {
			t.Errorf("cell (%d,2) = %v, want lit red", col, got)
		}
		if !lit && got != (color.RGBA{}) {
			t.Errorf("cell (%d,2) = %v, want empty", col, got)
		}
	}
}

func TestTerminalSurface_AdditiveBlendClamps(t *testing.T) {
	s := NewTerminalSurface(4, 4)
	x, y := s.CellToSimulation(1, 1)

	s.StrokeLine(x, y, x, y, color.RGBA{100, 50, 0, 200})
	s.StrokeLine(x, y, x, y, color.RGBA{100, 50, 0, 200})

	got := s.At(1, 1)
	if got.R != 200 || got.G != 100 {
		t.Errorf("additive result = %v, want R=200 G=100", got)
	}
	if got.A != 255 {
		t.Errorf("alpha should clamp to 255, got %d", got.A)
	}

	for i := 0; i < 3; i++ {
		s.StrokeLine(x, y, x, y, color.RGBA{100, 50, 0, 200})
	}
	if got := s.At(1, 1); got.R != 255 {
		t.Errorf("red should clamp to 255, got %d", got.R)
	}
}

func TestTerminalSurface_FadeDestinationOut(t *testing.T) {
	s := NewTerminalSurface(2, 2)
	x, y := s.CellToSimulation(0, 0)
	s.StrokeLine(x, y, x, y, color.RGBA{200, 200, 200, 255})

	s.Fade(0.4)

	got := s.At(0, 0)
	if got.R != 120 || got.A != 153 {
		t.Errorf("after Fade(0.4) = %v, want R=120 A=153", got)
	}

	// 多次擦除后趋近于零
	for i := 0; i < 30; i++ {
		s.Fade(0.4)
	}
	if got := s.At(0, 0); got.R != 0 {
		t.Errorf("after repeated fades R = %d, want 0", got.R)
	}
}

func TestTerminalSurface_OutOfBoundsIgnored(t *testing.T) {
	s := NewTerminalSurface(3, 3)
	s.StrokeLine(-100, -100, -50, -50, color.RGBA{255, 255, 255, 255})
	s.StrokeLine(1000, 1000, 2000, 2000, color.RGBA{255, 255, 255, 255})

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if got := s.At(col, row); got != (color.RGBA{}) {
				t.Errorf("cell (%d,%d) = %v, want empty", col, row, got)
			}
		}
	}
}

func TestTerminalSurface_SizeMapping(t *testing.T) {
	s := NewTerminalSurface(80, 24)

	w, h := s.SimulationSize()
	if w != 640 || h != 384 {
		t.Errorf("SimulationSize() = (%v, %v), want (640, 384)", w, h)
	}

	s.Resize(0, 0)
	if cols, rows := s.GridSize(); cols != 1 || rows != 1 {
		t.Errorf("GridSize() after Resize(0,0) = (%d, %d), want (1, 1)", cols, rows)
	}
}

func TestTerminalSurface_Present(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	s := NewTerminalSurface(4, 2)
	x, y := s.CellToSimulation(2, 1)
	s.StrokeLine(x, y, x, y, color.RGBA{255, 255, 255, 255})
	s.Present(screen)

	if r, _, _, _ := screen.GetContent(2, 1); r != '@' {
		t.Errorf("lit cell glyph = %q, want '@'", r)
	}
	if r, _, _, _ := screen.GetContent(0, 0); r != ' ' {
		t.Errorf("dark cell glyph = %q, want ' '", r)
	}
}
