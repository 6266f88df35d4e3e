package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ingyamilmolinar/hexsum/core/hex"
)

// drawRect draws a rectangle. It is defined as a variable so tests can
// override it to capture draw calls.
var drawRect = func(dst *ebiten.Image, r image.Rectangle, c color.Color, filled bool) {
	if filled {
		vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
	} else {
		vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), gridLineWidth, c, false)
	}
}

// drawButton renders a filled rectangle with a border. It can be overridden in tests.
var drawButton = func(dst *ebiten.Image, r image.Rectangle, fill, border color.Color, pressed bool) {
	fc := fill
	if pressed {
		if c, ok := fill.(color.RGBA); ok {
			fc = color.RGBA{c.R / 2, c.G / 2, c.B / 2, c.A}
		}
	}
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fc, false)
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), gridLineWidth, border, false)
}

// drawHex fills (when fill is non-nil) and strokes one hexagon. Tests replace
// it to record which cells were drawn and how.
var drawHex = func(dst *ebiten.Image, corners [6]hex.Point, fill, border color.Color, width float32) {
	var p vector.Path
	p.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, c := range corners[1:] {
		p.LineTo(float32(c.X), float32(c.Y))
	}
	p.Close()

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	if fill != nil {
		vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
		paint(vs, fill)
		dst.DrawTriangles(vs, is, pixel(color.White), op)
	}
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinMiter,
	})
	paint(vs, border)
	dst.DrawTriangles(vs, is, pixel(color.White), op)
}

// drawText draws s with its centre at (x,y), or its top-left corner there when
// centered is false. It falls back to the debug font if the UI face is
// unavailable.
var drawText = func(dst *ebiten.Image, s string, size, x, y float64, c color.Color, centered bool) {
	f := face(size)
	if f == nil {
		ebitenutil.DebugPrintAt(dst, s, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	if centered {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, f, op)
}

func paint(vs []ebiten.Vertex, c color.Color) {
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0.5, 0.5
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
}

// cache 1×1 images per colour
var pixelCache = map[string]*ebiten.Image{}

func key(c color.Color) string {
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("%d_%d_%d_%d", r, g, b, a)
}

func pixel(c color.Color) *ebiten.Image {
	k := key(c)
	if img, ok := pixelCache[k]; ok {
		return img
	}
	img := ebiten.NewImage(1, 1)
	img.Fill(c)
	pixelCache[k] = img
	return img
}
