// Package render owns every pixel the game draws: the procedural sprite
// atlas, font faces and the shared UI widgets.
package render

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/hikari/internal/domain/sprite"
)

// DefaultResolution is the edge length sprites are rasterised at.
const DefaultResolution = 96

// Rasterize draws id into a res×res image. ok is false for unknown IDs.
func Rasterize(id sprite.ID, res int) (img image.Image, ok bool) {
	r, ok := recipes[id]
	if !ok {
		return nil, false
	}
	dc := gg.NewContext(res, res)
	half := float64(res) / 2
	r(dc, half, half, half*0.98)
	return dc.Image(), true
}

// Atlas holds one GPU image per sprite.
type Atlas struct {
	res     int
	images  map[sprite.ID]*ebiten.Image
	missing *ebiten.Image
}

// NewAtlas rasterises every known sprite at res pixels.
func NewAtlas(res int) *Atlas {
	if res <= 0 {
		res = DefaultResolution
	}
	a := &Atlas{
		res:    res,
		images: make(map[sprite.ID]*ebiten.Image, len(sprite.All)),
	}
	for _, id := range sprite.All {
		if img, ok := Rasterize(id, res); ok {
			a.images[id] = ebiten.NewImageFromImage(img)
		}
	}

	dc := gg.NewContext(res, res)
	dc.SetColor(Pink)
	dc.DrawCircle(float64(res)/2, float64(res)/2, float64(res)/4)
	dc.Fill()
	a.missing = ebiten.NewImageFromImage(dc.Image())
	return a
}

// Has reports whether id has its own image.
func (a *Atlas) Has(id sprite.ID) bool {
	_, ok := a.images[id]
	return ok
}

// DrawSprite draws id centred on (x, y) scaled to size pixels.
// Unknown IDs draw a pink dot.
func (a *Atlas) DrawSprite(dst *ebiten.Image, id sprite.ID, x, y, size, alpha float64) {
	a.DrawSpriteRotated(dst, id, x, y, size, 0, alpha)
}

// DrawSpriteRotated is DrawSprite with a rotation in radians.
func (a *Atlas) DrawSpriteRotated(dst *ebiten.Image, id sprite.ID, x, y, size, angle, alpha float64) {
	if size <= 0 || alpha <= 0 {
		return
	}
	img, ok := a.images[id]
	if !ok {
		img = a.missing
	}
	half := float64(a.res) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-half, -half)
	op.GeoM.Scale(size/float64(a.res), size/float64(a.res))
	if angle != 0 {
		op.GeoM.Rotate(angle)
	}
	op.GeoM.Translate(x, y)
	if alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(alpha))
	}
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
