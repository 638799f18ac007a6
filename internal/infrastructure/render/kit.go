package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/hikari/internal/domain/entity"
	"github.com/younwookim/hikari/internal/domain/sprite"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// TextStyle controls DrawText. Y positions refer to the vertical middle of
// the text block.
type TextStyle struct {
	Size   float64
	Color  color.Color
	Align  text.Align
	Bold   bool
	Shadow bool
}

type faceKey struct {
	size int
	bold bool
}

type shapeKey struct {
	w, h, r int
}

// Kit is the drawing toolbox handed to scenes.
type Kit struct {
	*Atlas

	regular *truetype.Font
	bold    *truetype.Font
	faces   map[faceKey]text.Face

	shapes    map[shapeKey]*ebiten.Image
	gradients map[string]*ebiten.Image
}

// NewKit parses the bundled Go fonts and wraps atlas.
func NewKit(atlas *Atlas) (*Kit, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}

	return &Kit{
		Atlas:     atlas,
		regular:   regular,
		bold:      bold,
		faces:     make(map[faceKey]text.Face),
		shapes:    make(map[shapeKey]*ebiten.Image),
		gradients: make(map[string]*ebiten.Image),
	}, nil
}

// Face returns a cached face of the given pixel size.
func (k *Kit) Face(size float64, bold bool) text.Face {
	key := faceKey{size: int(math.Round(size)), bold: bold}
	if key.size < 1 {
		key.size = 1
	}
	if f, ok := k.faces[key]; ok {
		return f
	}
	ttf := k.regular
	if bold {
		ttf = k.bold
	}
	f := text.NewGoXFace(truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(key.size),
		DPI:     72,
		Hinting: font.HintingFull,
	}))
	k.faces[key] = f
	return f
}

// Measure returns the width of s in st.
func (k *Kit) Measure(s string, st TextStyle) float64 {
	w, _ := text.Measure(s, k.Face(st.Size, st.Bold), st.Size*1.35)
	return w
}

// DrawText draws s anchored at (x, y).
func (k *Kit) DrawText(dst *ebiten.Image, s string, x, y float64, st TextStyle) {
	if s == "" {
		return
	}
	face := k.Face(st.Size, st.Bold)
	clr := st.Color
	if clr == nil {
		clr = White
	}
	draw := func(dx, dy float64, c color.Color) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+dx, y+dy)
		op.ColorScale.ScaleWithColor(c)
		op.PrimaryAlign = st.Align
		op.SecondaryAlign = text.AlignCenter
		op.LineSpacing = st.Size * 1.35
		text.Draw(dst, s, face, op)
	}
	if st.Shadow {
		draw(1.5, 2, Fade(color.Black, 0.5))
	}
	draw(0, 0, clr)
}

// DrawCenterText draws bold shadowed text centred on (x, y).
func (k *Kit) DrawCenterText(dst *ebiten.Image, s string, x, y, size float64, clr color.Color) {
	k.DrawText(dst, s, x, y, TextStyle{Size: size, Color: clr, Align: text.AlignCenter, Bold: true, Shadow: true})
}

// DrawParagraph wraps s to maxW and draws it line by line from y.
func (k *Kit) DrawParagraph(dst *ebiten.Image, s string, x, y, maxW, lineH float64, st TextStyle) {
	cols := int(maxW / (st.Size * 0.55))
	for i, ln := range Wrap(s, cols) {
		k.DrawText(dst, ln, x, y+float64(i)*lineH, st)
	}
}

func (k *Kit) roundShape(w, h, r float64) *ebiten.Image {
	key := shapeKey{int(math.Ceil(w)), int(math.Ceil(h)), int(math.Round(r))}
	if key.w < 1 || key.h < 1 {
		return nil
	}
	if img, ok := k.shapes[key]; ok {
		return img
	}
	dc := gg.NewContext(key.w, key.h)
	dc.SetColor(color.White)
	dc.DrawRoundedRectangle(0, 0, float64(key.w), float64(key.h), float64(key.r))
	dc.Fill()
	img := ebiten.NewImageFromImage(dc.Image())
	k.shapes[key] = img
	return img
}

// FillRoundRect fills r with rounded corners of radius rad.
func (k *Kit) FillRoundRect(dst *ebiten.Image, r entity.Rect, rad float64, clr color.Color) {
	img := k.roundShape(r.W, r.H, rad)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(img, op)
}

// FillRect fills r with clr.
func (k *Kit) FillRect(dst *ebiten.Image, r entity.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// DrawButton draws a pill button with a centred label.
func (k *Kit) DrawButton(dst *ebiten.Image, label string, r entity.Rect, clr color.Color) {
	shadow := r
	shadow.Y += 2
	k.FillRoundRect(dst, shadow, r.H/2, Fade(color.Black, 0.3))
	k.FillRoundRect(dst, r, r.H/2, clr)
	cx, cy := r.Center()
	k.DrawText(dst, label, cx, cy, TextStyle{Size: math.Min(24, r.H*0.5), Color: White, Align: text.AlignCenter, Bold: true})
}

// DrawCounter draws the "label / current / goal" panel in the top right.
func (k *Kit) DrawCounter(dst *ebiten.Image, current, goal int, label string, cw float64) {
	x := cw - 10
	k.FillRoundRect(dst, entity.Rect{X: x - 160, Y: 10, W: 160, H: 50}, 12, Shade)
	k.DrawText(dst, label, x-10, 22, TextStyle{Size: 16, Color: White, Align: text.AlignEnd, Bold: true})
	k.DrawText(dst, fmt.Sprintf("%d / %d", current, goal), x-10, 45, TextStyle{Size: 22, Color: White, Align: text.AlignEnd, Bold: true})
}

// DrawScore draws a star and score panel in the top right.
func (k *Kit) DrawScore(dst *ebiten.Image, score int, cw float64) {
	k.FillRoundRect(dst, entity.Rect{X: cw - 170, Y: 10, W: 160, H: 36}, 12, Shade)
	k.DrawSprite(dst, sprite.Star, cw-152, 28, 18, 1)
	k.DrawText(dst, fmt.Sprintf("%d", score), cw-20, 28, TextStyle{Size: 20, Color: Gold, Align: text.AlignEnd, Bold: true})
}

// DrawProgressBar draws a rounded bar filled to ratio.
func (k *Kit) DrawProgressBar(dst *ebiten.Image, ratio float64, r entity.Rect, clr color.Color) {
	k.FillRoundRect(dst, r, r.H/2, Fade(color.Black, 0.3))
	fill := r
	fill.W = math.Max(r.H, r.W*math.Min(1, math.Max(0, ratio)))
	k.FillRoundRect(dst, fill, r.H/2, clr)
}

// FillGradient paints dst with a vertical gradient through stops.
func (k *Kit) FillGradient(dst *ebiten.Image, stops ...color.Color) {
	if len(stops) == 0 {
		return
	}
	if len(stops) == 1 {
		dst.Fill(stops[0])
		return
	}
	key := ""
	for _, c := range stops {
		r, g, b, a := c.RGBA()
		key += fmt.Sprintf("%04x%04x%04x%04x", r, g, b, a)
	}
	img, ok := k.gradients[key]
	if !ok {
		const h = 256
		dc := gg.NewContext(1, h)
		grad := gg.NewLinearGradient(0, 0, 0, h)
		for i, c := range stops {
			grad.AddColorStop(float64(i)/float64(len(stops)-1), c)
		}
		dc.SetFillStyle(grad)
		dc.DrawRectangle(0, 0, 1, h)
		dc.Fill()
		img = ebiten.NewImageFromImage(dc.Image())
		k.gradients[key] = img
	}
	b := dst.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), float64(b.Dy())/256)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

var hikariSparkles = []sprite.ID{sprite.Sparkle, sprite.Star, sprite.SwirlStar}

// DrawHikari draws the heroine with an orbiting sparkle. clock is seconds
// since the scene started.
func (k *Kit) DrawHikari(dst *ebiten.Image, x, y, size, clock float64) {
	k.DrawSprite(dst, sprite.Hikari, x, y, size, 1)
	t := clock * 6
	s := hikariSparkles[int(t)%len(hikariSparkles)]
	offX := math.Sin(t*2) * size * 0.5
	offY := math.Cos(t*3) * size * 0.3
	k.DrawSprite(dst, s, x+offX, y-size*0.5+offY, size*0.4, 1)
}

// DrawBubble draws Hikari with msg in a speech bubble above her.
func (k *Kit) DrawBubble(dst *ebiten.Image, x, y, size, clock float64, msg string) {
	k.DrawHikari(dst, x, y, size, clock)
	if msg == "" {
		return
	}
	st := TextStyle{Size: math.Max(14, size*0.35), Color: Ink, Align: text.AlignCenter}
	w := k.Measure(msg, st) + 24
	h := size*0.45 + 16
	by := y - size*1.2

	bx := x
	sw := float64(dst.Bounds().Dx())
	if bx-w/2 < 4 {
		bx = 4 + w/2
	}
	if bx+w/2 > sw-4 {
		bx = sw - 4 - w/2
	}

	outer := entity.Rect{X: bx - w/2, Y: by - h/2, W: w, H: h}
	inner := entity.Rect{X: outer.X + 2, Y: outer.Y + 2, W: w - 4, H: h - 4}
	k.FillRoundRect(dst, outer, 10, Pink)
	k.FillRoundRect(dst, inner, 8, Fade(White, 0.95))
	for i := 0; i < 5; i++ {
		half := float32(5 - i)
		vector.DrawFilledRect(dst, float32(x)-half, float32(by+h/2-2)+float32(i*2), half*2, 2, White, false)
	}
	k.DrawText(dst, msg, bx, by, st)
}
