package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 单批次顶点上限（索引为 uint16）
const maxBatchVertices = 60000

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// EbitenSurface 基于 Ebitengine 离屏画布的绘制表面
//
// 画布在帧之间保留内容，Fade 让旧笔画逐渐淡出形成拖尾光效。
// 笔画按批次累积，在 Flush（或下一次 Fade）时一次性以加法混合提交，
// 与 RenderSystem 的粒子批量渲染方式相同。
type EbitenSurface struct {
	canvas   *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewEbitenSurface 创建指定尺寸的离屏画布
func NewEbitenSurface(width, height int) *EbitenSurface {
	return &EbitenSurface{
		canvas: ebiten.NewImage(max(width, 1), max(height, 1)),
	}
}

// Resize 调整画布尺寸，保留已有内容（左上角对齐）
func (s *EbitenSurface) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	b := s.canvas.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return
	}

	s.Flush()
	next := ebiten.NewImage(width, height)
	next.DrawImage(s.canvas, nil)
	s.canvas.Deallocate()
	s.canvas = next
}

// Size 返回画布尺寸
func (s *EbitenSurface) Size() (int, int) {
	b := s.canvas.Bounds()
	return b.Dx(), b.Dy()
}

// Fade 以 destination-out 混合覆盖整个画布
func (s *EbitenSurface) Fade(alpha float64) {
	s.Flush()

	w, h := s.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Blend = ebiten.BlendDestinationOut
	s.canvas.DrawImage(whiteSubImage, op)
}

// StrokeLine 追加一条线段到当前批次
func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1 float64, clr color.RGBA) {
	if clr.A == 0 {
		return
	}
	if len(s.vertices) > maxBatchVertices {
		s.Flush()
	}

	var path vector.Path
	path.MoveTo(float32(x0), float32(y0))
	path.LineTo(float32(x1), float32(y1))

	start := len(s.vertices)
	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices, s.indices, &vector.StrokeOptions{
		Width: 1,
	})

	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255
	for i := start; i < len(s.vertices); i++ {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}
}

// Flush 提交当前批次（加法混合）
func (s *EbitenSurface) Flush() {
	if len(s.indices) == 0 {
		s.vertices = s.vertices[:0]
		return
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.Blend = ebiten.BlendLighter
	s.canvas.DrawTriangles(s.vertices, s.indices, whiteImage, op)

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
}

// Present 将画布绘制到屏幕
func (s *EbitenSurface) Present(screen *ebiten.Image) {
	s.Flush()
	screen.DrawImage(s.canvas, nil)
}
