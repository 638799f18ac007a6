package render

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/younwookim/hikari/internal/domain/sprite"
)

// recipe draws a figure centred on (x, y) fitting a circle of radius r.
type recipe func(dc *gg.Context, x, y, r float64)

func fillCircle(dc *gg.Context, hex string, x, y, r float64) {
	dc.SetHexColor(hex)
	dc.DrawCircle(x, y, r)
	dc.Fill()
}

func fillEllipse(dc *gg.Context, hex string, x, y, rx, ry float64) {
	dc.SetHexColor(hex)
	dc.DrawEllipse(x, y, rx, ry)
	dc.Fill()
}

func fillRect(dc *gg.Context, hex string, x, y, w, h float64) {
	dc.SetHexColor(hex)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()
}

func fillRound(dc *gg.Context, hex string, x, y, w, h, rad float64) {
	dc.SetHexColor(hex)
	dc.DrawRoundedRectangle(x, y, w, h, rad)
	dc.Fill()
}

func fillPoly(dc *gg.Context, hex string, pts ...float64) {
	dc.SetHexColor(hex)
	dc.NewSubPath()
	dc.MoveTo(pts[0], pts[1])
	for i := 2; i+1 < len(pts); i += 2 {
		dc.LineTo(pts[i], pts[i+1])
	}
	dc.ClosePath()
	dc.Fill()
}

func line(dc *gg.Context, hex string, w, x1, y1, x2, y2 float64) {
	dc.SetHexColor(hex)
	dc.SetLineWidth(w)
	dc.SetLineCapRound()
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
}

func star5(dc *gg.Context, hex string, x, y, outer, inner float64) {
	dc.SetHexColor(hex)
	dc.NewSubPath()
	for i := 0; i < 10; i++ {
		rr := outer
		if i%2 == 1 {
			rr = inner
		}
		a := -math.Pi/2 + math.Pi/5*float64(i)
		px, py := x+math.Cos(a)*rr, y+math.Sin(a)*rr
		if i == 0 {
			dc.MoveTo(px, py)
		} else {
			dc.LineTo(px, py)
		}
	}
	dc.ClosePath()
	dc.Fill()
}

func heart(dc *gg.Context, hex string, x, y, r float64) {
	dc.SetHexColor(hex)
	dc.NewSubPath()
	dc.MoveTo(x, y+r*0.8)
	dc.CubicTo(x-r*2, y-r*0.4, x-r, y-r*2, x, y-r*0.8)
	dc.CubicTo(x+r, y-r*2, x+r*2, y-r*0.4, x, y+r*0.8)
	dc.ClosePath()
	dc.Fill()
}

// eyes draws a pair of dot eyes and an optional smile.
func eyes(dc *gg.Context, x, y, r float64, smile bool) {
	fillCircle(dc, "#333333", x-r*0.3, y-r*0.05, r*0.1)
	fillCircle(dc, "#333333", x+r*0.3, y-r*0.05, r*0.1)
	fillCircle(dc, "#FFFFFF", x-r*0.27, y-r*0.09, r*0.035)
	fillCircle(dc, "#FFFFFF", x+r*0.33, y-r*0.09, r*0.035)
	if smile {
		dc.SetHexColor("#CC3344")
		dc.SetLineWidth(r * 0.07)
		dc.DrawArc(x, y+r*0.15, r*0.25, 0.2, math.Pi-0.2)
		dc.Stroke()
	}
}

func person(dc *gg.Context, x, y, r float64, hair string) {
	fillCircle(dc, hair, x, y-r*0.05, r*0.92)
	fillCircle(dc, "#FFDAB9", x, y+r*0.05, r*0.75)
	fillEllipse(dc, hair, x, y-r*0.55, r*0.7, r*0.3)
	eyes(dc, x, y+r*0.05, r, true)
}

func cloudShape(dc *gg.Context, hex string, x, y, r float64) {
	fillCircle(dc, hex, x-r*0.45, y+r*0.1, r*0.4)
	fillCircle(dc, hex, x+r*0.45, y+r*0.1, r*0.4)
	fillCircle(dc, hex, x, y-r*0.15, r*0.5)
	fillRect(dc, hex, x-r*0.45, y+r*0.1, r*0.9, r*0.4)
}

func poopShape(dc *gg.Context, x, y, r float64, body, shine string) {
	fillEllipse(dc, body, x, y+r*0.5, r*0.9, r*0.4)
	fillEllipse(dc, body, x, y+r*0.05, r*0.7, r*0.35)
	fillEllipse(dc, body, x, y-r*0.35, r*0.45, r*0.28)
	fillPoly(dc, body, x-r*0.15, y-r*0.5, x+r*0.15, y-r*0.5, x+r*0.05, y-r*0.9)
	fillEllipse(dc, shine, x-r*0.3, y+r*0.35, r*0.15, r*0.08)
	eyes(dc, x, y+r*0.15, r*0.8, true)
}

func slash(dc *gg.Context, x, y, r float64, main, glow string) {
	dc.SetLineCapRound()
	dc.SetHexColor(glow)
	dc.SetLineWidth(r * 0.35)
	dc.DrawArc(x, y, r*0.7, -math.Pi*0.9, -math.Pi*0.1)
	dc.Stroke()
	dc.SetHexColor(main)
	dc.SetLineWidth(r * 0.15)
	dc.DrawArc(x, y, r*0.7, -math.Pi*0.9, -math.Pi*0.1)
	dc.Stroke()
}

var recipes = map[sprite.ID]recipe{
	sprite.Hikari: func(dc *gg.Context, x, y, r float64) {
		fillCircle(dc, "#8B5E3C", x, y-r*0.05, r*0.95)
		fillEllipse(dc, "#8B5E3C", x-r*0.75, y+r*0.15, r*0.22, r*0.4)
		fillEllipse(dc, "#8B5E3C", x+r*0.75, y+r*0.15, r*0.22, r*0.4)
		fillCircle(dc, "#FFDAB9", x, y, r*0.78)
		fillEllipse(dc, "#8B5E3C", x, y-r*0.55, r*0.72, r*0.3)
		eyes(dc, x, y, r, true)
		fillEllipse(dc, "#FFB6C1", x-r*0.45, y+r*0.2, r*0.12, r*0.07)
		fillEllipse(dc, "#FFB6C1", x+r*0.45, y+r*0.2, r*0.12, r*0.07)
		fillCircle(dc, "#FF69B4", x+r*0.55, y-r*0.65, r*0.15)
	},
	sprite.Boy: func(dc *gg.Context, x, y, r float64) {
		person(dc, x, y, r, "#222222")
	},
	sprite.GirlRibbon: func(dc *gg.Context, x, y, r float64) {
		person(dc, x, y, r, "#5A3A1A")
		fillPoly(dc, "#FF1493", x, y-r*0.8, x-r*0.35, y-r*1.0, x-r*0.35, y-r*0.6)
		fillPoly(dc, "#FF1493", x, y-r*0.8, x+r*0.35, y-r*1.0, x+r*0.35, y-r*0.6)
	},
	sprite.Robot: func(dc *gg.Context, x, y, r float64) {
		line(dc, "#888888", r*0.06, x, y-r*0.6, x, y-r*0.9)
		fillCircle(dc, "#FF4444", x, y-r*0.92, r*0.1)
		fillRound(dc, "#AAB4BE", x-r*0.7, y-r*0.6, r*1.4, r*1.3, r*0.2)
		fillRound(dc, "#223344", x-r*0.5, y-r*0.35, r, r*0.45, r*0.1)
		fillCircle(dc, "#00FFCC", x-r*0.22, y-r*0.12, r*0.1)
		fillCircle(dc, "#00FFCC", x+r*0.22, y-r*0.12, r*0.1)
		fillRect(dc, "#667788", x-r*0.3, y+r*0.35, r*0.6, r*0.1)
	},
	sprite.Cat: func(dc *gg.Context, x, y, r float64) {
		fillPoly(dc, "#FFA500", x-r*0.75, y-r*0.2, x-r*0.6, y-r*0.95, x-r*0.15, y-r*0.6)
		fillPoly(dc, "#FFA500", x+r*0.75, y-r*0.2, x+r*0.6, y-r*0.95, x+r*0.15, y-r*0.6)
		fillCircle(dc, "#FFA500", x, y, r*0.78)
		eyes(dc, x, y, r, false)
		fillPoly(dc, "#FF69B4", x-r*0.08, y+r*0.12, x+r*0.08, y+r*0.12, x, y+r*0.22)
		line(dc, "#333333", r*0.03, x-r*0.2, y+r*0.2, x-r*0.8, y+r*0.1)
		line(dc, "#333333", r*0.03, x+r*0.2, y+r*0.2, x+r*0.8, y+r*0.1)
	},
	sprite.Rabbit: func(dc *gg.Context, x, y, r float64) {
		fillEllipse(dc, "#FFFFFF", x-r*0.3, y-r*0.75, r*0.17, r*0.45)
		fillEllipse(dc, "#FFFFFF", x+r*0.3, y-r*0.75, r*0.17, r*0.45)
		fillEllipse(dc, "#FFB6C1", x-r*0.3, y-r*0.75, r*0.08, r*0.32)
		fillEllipse(dc, "#FFB6C1", x+r*0.3, y-r*0.75, r*0.08, r*0.32)
		fillCircle(dc, "#FFFFFF", x, y+r*0.1, r*0.7)
		eyes(dc, x, y+r*0.1, r*0.9, true)
	},
	sprite.Oni: func(dc *gg.Context, x, y, r float64) {
		fillPoly(dc, "#FFF8DC", x-r*0.5, y-r*0.5, x-r*0.35, y-r, x-r*0.2, y-r*0.55)
		fillPoly(dc, "#FFF8DC", x+r*0.5, y-r*0.5, x+r*0.35, y-r, x+r*0.2, y-r*0.55)
		fillCircle(dc, "#E53935", x, y, r*0.8)
		fillRect(dc, "#222222", x-r*0.55, y-r*0.3, r*0.4, r*0.08)
		fillRect(dc, "#222222", x+r*0.15, y-r*0.3, r*0.4, r*0.08)
		eyes(dc, x, y+r*0.05, r, false)
		fillRect(dc, "#FFFFFF", x-r*0.3, y+r*0.35, r*0.6, r*0.12)
	},
	sprite.Tanjiro: func(dc *gg.Context, x, y, r float64) {
		fillCircle(dc, "#3A1A1A", x, y-r*0.05, r*0.92)
		fillCircle(dc, "#FFDAB9", x, y+r*0.05, r*0.75)
		fillEllipse(dc, "#3A1A1A", x, y-r*0.55, r*0.7, r*0.28)
		fillRect(dc, "#C0392B", x-r*0.55, y-r*0.45, r*0.2, r*0.15)
		eyes(dc, x, y+r*0.05, r, true)
		fillRound(dc, "#DDDDDD", x+r*0.6, y+r*0.35, r*0.12, r*0.3, r*0.05)
	},
	sprite.Demon: func(dc *gg.Context, x, y, r float64) {
		fillPoly(dc, "#EEEEEE", x-r*0.45, y-r*0.55, x-r*0.6, y-r*1.0, x-r*0.15, y-r*0.65)
		fillPoly(dc, "#EEEEEE", x+r*0.45, y-r*0.55, x+r*0.6, y-r*1.0, x+r*0.15, y-r*0.65)
		fillCircle(dc, "#6A1B9A", x, y, r*0.8)
		fillCircle(dc, "#FFEB3B", x-r*0.3, y-r*0.1, r*0.13)
		fillCircle(dc, "#FFEB3B", x+r*0.3, y-r*0.1, r*0.13)
		fillCircle(dc, "#B71C1C", x-r*0.3, y-r*0.1, r*0.05)
		fillCircle(dc, "#B71C1C", x+r*0.3, y-r*0.1, r*0.05)
		fillPoly(dc, "#FFFFFF", x-r*0.3, y+r*0.3, x+r*0.3, y+r*0.3, x, y+r*0.5)
	},
	sprite.DemonBoss: func(dc *gg.Context, x, y, r float64) {
		fillPoly(dc, "#FFD700", x-r*0.6, y-r*0.5, x-r*0.5, y-r, x-r*0.2, y-r*0.65, x, y-r*1.05, x+r*0.2, y-r*0.65, x+r*0.5, y-r, x+r*0.6, y-r*0.5)
		fillCircle(dc, "#880E4F", x, y+r*0.05, r*0.8)
		fillCircle(dc, "#FF1744", x-r*0.3, y-r*0.05, r*0.14)
		fillCircle(dc, "#FF1744", x+r*0.3, y-r*0.05, r*0.14)
		fillRect(dc, "#FFFFFF", x-r*0.35, y+r*0.35, r*0.7, r*0.1)
	},
	sprite.Ghost: func(dc *gg.Context, x, y, r float64) {
		dc.SetHexColor("#F0F0FF")
		dc.NewSubPath()
		dc.MoveTo(x-r*0.7, y+r*0.8)
		dc.LineTo(x-r*0.7, y-r*0.1)
		dc.QuadraticTo(x-r*0.7, y-r*0.9, x, y-r*0.9)
		dc.QuadraticTo(x+r*0.7, y-r*0.9, x+r*0.7, y-r*0.1)
		dc.LineTo(x+r*0.7, y+r*0.8)
		for i := 0; i < 4; i++ {
			fx := x + r*0.7 - float64(i+1)*r*0.35
			dc.QuadraticTo(fx+r*0.175, y+r*0.5, fx, y+r*0.8)
		}
		dc.ClosePath()
		dc.Fill()
		fillEllipse(dc, "#222244", x-r*0.25, y-r*0.2, r*0.12, r*0.18)
		fillEllipse(dc, "#222244", x+r*0.25, y-r*0.2, r*0.12, r*0.18)
		fillEllipse(dc, "#222244", x, y+r*0.2, r*0.12, r*0.08)
	},
	sprite.Skull: func(dc *gg.Context, x, y, r float64) {
		fillCircle(dc, "#F5F5F5", x, y-r*0.15, r*0.7)
		fillRect(dc, "#F5F5F5", x-r*0.35, y+r*0.3, r*0.7, r*0.4)
		fillCircle(dc, "#222222", x-r*0.27, y-r*0.15, r*0.18)
		fillCircle(dc, "#222222", x+r*0.27, y-r*0.15, r*0.18)
		fillPoly(dc, "#222222", x, y+r*0.05, x-r*0.08, y+r*0.2, x+r*0.08, y+r*0.2)
	},
	sprite.Pumpkin: func(dc *gg.Context, x, y, r float64) {
		fillRect(dc, "#2E7D32", x-r*0.07, y-r*0.9, r*0.14, r*0.3)
		fillEllipse(dc, "#FF8C00", x-r*0.35, y+r*0.1, r*0.45, r*0.7)
		fillEllipse(dc, "#FF8C00", x+r*0.35, y+r*0.1, r*0.45, r*0.7)
		fillEllipse(dc, "#FFA726", x, y+r*0.1, r*0.45, r*0.75)
		fillPoly(dc, "#4E2600", x-r*0.35, y-r*0.05, x-r*0.15, y-r*0.05, x-r*0.25, y-r*0.25)
		fillPoly(dc, "#4E2600", x+r*0.35, y-r*0.05, x+r*0.15, y-r*0.05, x+r*0.25, y-r*0.25)
	},
	sprite.SpaceHelmet: func(dc *gg.Context, x, y, r float64) {
		fillCircle(dc, "#E0E0E0", x, y, r*0.9)
		fillCircle(dc, "#81D4FA", x, y, r*0.68)
		fillEllipse(dc, "#FFFFFF", x-r*0.3, y-r*0.3, r*0.18, r*0.1)
		fillRect(dc, "#9E9E9E", x-r*0.5, y+r*0.7, r, r*0.2)
	},

	sprite.Poop: func(dc *gg.Context, x, y, r float64) {
		poopShape(dc, x, y, r, "#8B5A2B", "#B07A4A")
	},
	sprite.GoldenPoop: func(dc *gg.Context, x, y, r float64) {
		poopShape(dc, x, y, r, "#FFD700", "#FFF59D")
	},
	sprite.CoursePoop: func(dc *gg.Context, x, y, r float64) {
		poopShape(dc, x, y, r, "#6D4C41", "#A1887F")
	},
	sprite.Bomb: func(dc *gg.Context, x, y, r float64) {
		fillCircle(dc, "#222222", x, y+r*0.15, r*0.7)
		fillRect(dc, "#555555", x-r*0.15, y-r*0.65, r*0.3, r*0.2)
		line(dc, "#8D6E63", r*0.08, x, y-r*0.65, x+r*0.3, y-r*0.9)
		star5(dc, "#FF9800", x+r*0.35, y-r*0.9, r*0.2, r*0.08)
		fillCircle(dc, "#666666", x-r*0.25, y-r*0.05, r*0.12)
	},
	sprite.Explosion: func(dc *gg.Context, x, y, r float64) {
		star5(dc, "#FF5722", x, y, r*0.95, r*0.5)
		star5(dc, "#FFC107", x, y, r*0.65, r*0.35)
		fillCircle(dc, "#FFFDE7", x, y, r*0.25)
	},
	sprite.WormHead: func(dc *gg.Context, x, y, r float64) {
		fillCircle(dc, "#E91E63", x, y, r*0.8)
		fillCircle(dc, "#FFFFFF", x-r*0.28, y-r*0.15, r*0.2)
		fillCircle(dc, "#FFFFFF", x+r*0.28, y-r*0.15, r*0.2)
		fillCircle(dc, "#222222", x-r*0.25, y-r*0.12, r*0.1)
		fillCircle(dc, "#222222", x+r*0.31, y-r*0.12, r*0.1)
		fillEllipse(dc, "#880E4F", x, y+r*0.35, r*0.2, r*0.1)
	},
	sprite.Lightning: func(dc *gg.Context, x, y, r float64) {
		fillPoly(dc, "#FFEB3B", x+r*0.2, y-r, x-r*0.5, y+r*0.1, x-r*0.05, y+r*0.1, x-r*0.2, y+r, x+r*0.5, y-r*0.15, x+r*0.05, y-r*0.15)
	},
	sprite.GachaMachine: func(dc *gg.Context, x, y, r float64) {
		fillCircle(dc, "#B3E5FC", x, y-r*0.3, r*0.6)
		fillCircle(dc, "#FF5252", x-r*0.25, y-r*0.3, r*0.15)
		fillCircle(dc, "#FFEB3B", x+r*0.2, y-r*0.45, r*0.15)
		fillCircle(dc, "#69F0AE", x+r*0.1, y-r*0.1, r*0.15)
		fillRound(dc, "#E53935", x-r*0.6, y+r*0.2, r*1.2, r*0.75, r*0.1)
		fillCircle(dc, "#FFD54F", x, y+r*0.55, r*0.18)
	},
	sprite.Coin: func(dc *gg.Context, x, y, r float64) {
		fillCircle(dc, "#FFB300", x, y, r*0.85)
		fillCircle(dc, "#FFD54F", x, y, r*0.65)
		fillRect(dc, "#FFB300", x-r*0.08, y-r*0.4, r*0.16, r*0.8)
	},
	sprite.Swords: func(dc *gg.Context, x, y, r float64) {
		line(dc, "#B0BEC5", r*0.14, x-r*0.7, y+r*0.7, x+r*0.6, y-r*0.6)
		line(dc, "#B0BEC5", r*0.14, x+r*0.7, y+r*0.7, x-r*0.6, y-r*0.6)
		line(dc, "#8D6E63", r*0.18, x-r*0.75, y+r*0.75, x-r*0.45, y+r*0.45)
		line(dc, "#8D6E63", r*0.18, x+r*0.75, y+r*0.75, x+r*0.45, y+r*0.45)
	},
	sprite.Drum: func(dc *gg.Context, x, y, r float64) {
		fillRect(dc, "#D32F2F", x-r*0.7, y-r*0.3, r*1.4, r*0.7)
		fillEllipse(dc, "#FFF3E0", x, y-r*0.3, r*0.7, r*0.25)
		fillEllipse(dc, "#D32F2F", x, y+r*0.4, r*0.7, r*0.25)
		line(dc, "#8D6E63", r*0.08, x-r*0.2, y-r*0.4, x-r*0.7, y-r*0.9)
		line(dc, "#8D6E63", r*0.08, x+r*0.2, y-r*0.4, x+r*0.7, y-r*0.9)
	},
	sprite.Bike: func(dc *gg.Context, x, y, r float64) {
		dc.SetHexColor("#333333")
		dc.SetLineWidth(r * 0.1)
		dc.DrawCircle(x-r*0.5, y+r*0.3, r*0.38)
		dc.Stroke()
		dc.DrawCircle(x+r*0.5, y+r*0.3, r*0.38)
		dc.Stroke()
		line(dc, "#E91E63", r*0.1, x-r*0.5, y+r*0.3, x, y-r*0.2)
		line(dc, "#E91E63", r*0.1, x, y-r*0.2, x+r*0.5, y+r*0.3)
		line(dc, "#E91E63", r*0.1, x-r*0.1, y+r*0.3, x, y-r*0.2)
		line(dc, "#333333", r*0.08, x+r*0.35, y-r*0.35, x+r*0.5, y+r*0.3)
	},
	sprite.Bird: func(dc *gg.Context, x, y, r float64) {
		fillEllipse(dc, "#42A5F5", x, y, r*0.7, r*0.5)
		fillPoly(dc, "#1E88E5", x-r*0.1, y, x+r*0.3, y-r*0.7, x+r*0.4, y)
		fillPoly(dc, "#FFA000", x-r*0.7, y, x-r, y+r*0.1, x-r*0.7, y+r*0.2)
		fillCircle(dc, "#222222", x-r*0.4, y-r*0.1, r*0.07)
	},
	sprite.Mountain: func(dc *gg.Context, x, y, r float64) {
		fillPoly(dc, "#6D8B5A", x-r, y+r*0.8, x, y-r*0.8, x+r, y+r*0.8)
		fillPoly(dc, "#FFFFFF", x-r*0.25, y-r*0.3, x, y-r*0.8, x+r*0.25, y-r*0.3)
	},
	sprite.Cloud: func(dc *gg.Context, x, y, r float64) {
		cloudShape(dc, "#FFFFFF", x, y, r)
	},
	sprite.Rainbow: func(dc *gg.Context, x, y, r float64) {
		dc.SetLineWidth(r * 0.12)
		for i, c := range []string{"#F44336", "#FF9800", "#FFEB3B", "#4CAF50", "#2196F3", "#9C27B0"} {
			dc.SetHexColor(c)
			dc.DrawArc(x, y+r*0.5, r*(0.9-float64(i)*0.12), math.Pi, 2*math.Pi)
			dc.Stroke()
		}
	},
	sprite.RainbowIcon: func(dc *gg.Context, x, y, r float64) {
		fillCircle(dc, "#E1F5FE", x, y, r*0.9)
		dc.SetLineWidth(r * 0.12)
		for i, c := range []string{"#F44336", "#FFEB3B", "#4CAF50", "#2196F3"} {
			dc.SetHexColor(c)
			dc.DrawArc(x, y+r*0.35, r*(0.65-float64(i)*0.13), math.Pi, 2*math.Pi)
			dc.Stroke()
		}
	},
	sprite.FinishFlag: func(dc *gg.Context, x, y, r float64) {
		fillRect(dc, "#5D4037", x-r*0.6, y-r*0.9, r*0.1, r*1.8)
		for row := 0; row < 3; row++ {
			for col := 0; col < 4; col++ {
				hex := "#FFFFFF"
				if (row+col)%2 == 0 {
					hex = "#222222"
				}
				fillRect(dc, hex, x-r*0.5+float64(col)*r*0.3, y-r*0.9+float64(row)*r*0.3, r*0.3, r*0.3)
			}
		}
	},
	sprite.Lipstick: func(dc *gg.Context, x, y, r float64) {
		fillRect(dc, "#FFD700", x-r*0.3, y, r*0.6, r*0.85)
		fillRect(dc, "#E0E0E0", x-r*0.25, y-r*0.25, r*0.5, r*0.25)
		fillPoly(dc, "#E91E63", x-r*0.2, y-r*0.25, x+r*0.2, y-r*0.25, x+r*0.2, y-r*0.7, x-r*0.2, y-r*0.9)
	},
	sprite.Eye: func(dc *gg.Context, x, y, r float64) {
		fillEllipse(dc, "#FFFFFF", x, y, r*0.9, r*0.5)
		fillCircle(dc, "#1E88E5", x, y, r*0.35)
		fillCircle(dc, "#111111", x, y, r*0.17)
		fillCircle(dc, "#FFFFFF", x+r*0.1, y-r*0.1, r*0.07)
	},
	sprite.Pencil: func(dc *gg.Context, x, y, r float64) {
		dc.Push()
		dc.RotateAbout(gg.Radians(-45), x, y)
		fillRect(dc, "#FFC107", x-r*0.7, y-r*0.15, r*1.1, r*0.3)
		fillRect(dc, "#F48FB1", x-r*0.9, y-r*0.15, r*0.2, r*0.3)
		fillPoly(dc, "#FFE0B2", x+r*0.4, y-r*0.15, x+r*0.8, y, x+r*0.4, y+r*0.15)
		fillPoly(dc, "#333333", x+r*0.65, y-r*0.05, x+r*0.8, y, x+r*0.65, y+r*0.05)
		dc.Pop()
	},
	sprite.Palette: func(dc *gg.Context, x, y, r float64) {
		fillEllipse(dc, "#D7A86E", x, y, r*0.9, r*0.7)
		fillCircle(dc, "#FFFFFF", x+r*0.45, y+r*0.3, r*0.15)
		fillCircle(dc, "#F44336", x-r*0.45, y-r*0.15, r*0.13)
		fillCircle(dc, "#2196F3", x-r*0.1, y-r*0.4, r*0.13)
		fillCircle(dc, "#4CAF50", x+r*0.3, y-r*0.3, r*0.13)
		fillCircle(dc, "#FFEB3B", x-r*0.4, y+r*0.3, r*0.13)
	},
	sprite.Heart: func(dc *gg.Context, x, y, r float64) {
		heart(dc, "#FF1744", x, y, r*0.5)
	},
	sprite.Trophy: func(dc *gg.Context, x, y, r float64) {
		dc.SetHexColor("#FFC107")
		dc.SetLineWidth(r * 0.1)
		dc.DrawCircle(x-r*0.55, y-r*0.35, r*0.22)
		dc.Stroke()
		dc.DrawCircle(x+r*0.55, y-r*0.35, r*0.22)
		dc.Stroke()
		fillPoly(dc, "#FFC107", x-r*0.55, y-r*0.75, x+r*0.55, y-r*0.75, x+r*0.3, y+r*0.2, x-r*0.3, y+r*0.2)
		fillRect(dc, "#FFA000", x-r*0.1, y+r*0.2, r*0.2, r*0.35)
		fillRect(dc, "#8D6E63", x-r*0.4, y+r*0.55, r*0.8, r*0.25)
	},
	sprite.Toilet: func(dc *gg.Context, x, y, r float64) {
		fillRound(dc, "#ECEFF1", x-r*0.35, y-r*0.9, r*0.7, r*0.55, r*0.1)
		fillEllipse(dc, "#FFFFFF", x, y, r*0.75, r*0.35)
		fillEllipse(dc, "#90CAF9", x, y, r*0.5, r*0.2)
		fillPoly(dc, "#ECEFF1", x-r*0.5, y+r*0.2, x+r*0.5, y+r*0.2, x+r*0.3, y+r*0.85, x-r*0.3, y+r*0.85)
	},
	sprite.WaterDrop: func(dc *gg.Context, x, y, r float64) {
		fillCircle(dc, "#29B6F6", x, y+r*0.25, r*0.55)
		fillPoly(dc, "#29B6F6", x-r*0.5, y+r*0.1, x, y-r*0.9, x+r*0.5, y+r*0.1)
		fillEllipse(dc, "#E1F5FE", x-r*0.2, y+r*0.15, r*0.1, r*0.18)
	},
	sprite.Wave: func(dc *gg.Context, x, y, r float64) {
		dc.SetHexColor("#1E88E5")
		dc.NewSubPath()
		dc.MoveTo(x-r, y+r*0.8)
		dc.LineTo(x-r, y)
		dc.QuadraticTo(x-r*0.5, y-r*0.9, x, y-r*0.2)
		dc.QuadraticTo(x+r*0.5, y+r*0.4, x+r, y-r*0.3)
		dc.LineTo(x+r, y+r*0.8)
		dc.ClosePath()
		dc.Fill()
	},
	sprite.Splash: func(dc *gg.Context, x, y, r float64) {
		for i := 0; i < 6; i++ {
			a := float64(i) * math.Pi / 3
			fillCircle(dc, "#4FC3F7", x+math.Cos(a)*r*0.6, y+math.Sin(a)*r*0.6, r*0.18)
		}
		fillCircle(dc, "#81D4FA", x, y, r*0.35)
	},
	sprite.Door: func(dc *gg.Context, x, y, r float64) {
		fillRound(dc, "#795548", x-r*0.5, y-r*0.9, r, r*1.8, r*0.1)
		fillRect(dc, "#5D4037", x-r*0.38, y-r*0.75, r*0.76, r*0.6)
		fillRect(dc, "#5D4037", x-r*0.38, y-r*0.05, r*0.76, r*0.75)
		fillCircle(dc, "#FFD54F", x+r*0.3, y+r*0.05, r*0.08)
	},
	sprite.Box: func(dc *gg.Context, x, y, r float64) {
		fillRect(dc, "#C68642", x-r*0.75, y-r*0.6, r*1.5, r*1.3)
		fillRect(dc, "#A0522D", x-r*0.8, y-r*0.7, r*1.6, r*0.25)
		fillRect(dc, "#E0C097", x-r*0.1, y-r*0.7, r*0.2, r*1.4)
	},
	sprite.Tree: func(dc *gg.Context, x, y, r float64) {
		fillRect(dc, "#6D4C41", x-r*0.15, y+r*0.2, r*0.3, r*0.7)
		fillCircle(dc, "#2E7D32", x, y-r*0.25, r*0.6)
		fillCircle(dc, "#388E3C", x-r*0.35, y, r*0.4)
		fillCircle(dc, "#388E3C", x+r*0.35, y, r*0.4)
	},
	sprite.Rock: func(dc *gg.Context, x, y, r float64) {
		fillPoly(dc, "#78909C", x-r*0.85, y+r*0.6, x-r*0.6, y-r*0.2, x-r*0.1, y-r*0.55, x+r*0.5, y-r*0.35, x+r*0.85, y+r*0.6)
		fillPoly(dc, "#90A4AE", x-r*0.5, y-r*0.1, x-r*0.1, y-r*0.45, x+r*0.2, y-r*0.2)
	},
	sprite.Sparkle: func(dc *gg.Context, x, y, r float64) {
		fillPoly(dc, "#FFF59D", x, y-r*0.9, x+r*0.15, y-r*0.15, x+r*0.9, y, x+r*0.15, y+r*0.15, x, y+r*0.9, x-r*0.15, y+r*0.15, x-r*0.9, y, x-r*0.15, y-r*0.15)
	},
	sprite.Star: func(dc *gg.Context, x, y, r float64) {
		star5(dc, "#FFD700", x, y, r*0.9, r*0.4)
	},
	sprite.CourseStar: func(dc *gg.Context, x, y, r float64) {
		star5(dc, "#FFA000", x, y, r*0.95, r*0.45)
		star5(dc, "#FFEB3B", x, y, r*0.6, r*0.28)
	},
	sprite.GlowStar: func(dc *gg.Context, x, y, r float64) {
		fillCircle(dc, "#FFF9C480", x, y, r*0.95)
		star5(dc, "#FFEB3B", x, y, r*0.8, r*0.35)
	},
	sprite.SwirlStar: func(dc *gg.Context, x, y, r float64) {
		dc.SetHexColor("#FFCA28")
		dc.SetLineWidth(r * 0.1)
		dc.DrawArc(x, y, r*0.75, 0, math.Pi*1.5)
		dc.Stroke()
		star5(dc, "#FFD700", x, y, r*0.5, r*0.22)
	},
	sprite.Portal: func(dc *gg.Context, x, y, r float64) {
		for i, c := range []string{"#4A148C", "#7B1FA2", "#AB47BC", "#E1BEE7"} {
			fillCircle(dc, c, x, y, r*(0.95-float64(i)*0.22))
		}
	},
	sprite.Gamepad: func(dc *gg.Context, x, y, r float64) {
		fillRound(dc, "#5C6BC0", x-r*0.9, y-r*0.45, r*1.8, r*0.9, r*0.4)
		fillRect(dc, "#FFFFFF", x-r*0.6, y-r*0.07, r*0.4, r*0.14)
		fillRect(dc, "#FFFFFF", x-r*0.47, y-r*0.2, r*0.14, r*0.4)
		fillCircle(dc, "#FF5252", x+r*0.4, y-r*0.1, r*0.1)
		fillCircle(dc, "#FFEB3B", x+r*0.6, y+r*0.1, r*0.1)
	},
	sprite.Lock: func(dc *gg.Context, x, y, r float64) {
		dc.SetHexColor("#9E9E9E")
		dc.SetLineWidth(r * 0.15)
		dc.DrawArc(x, y-r*0.2, r*0.35, math.Pi, 2*math.Pi)
		dc.Stroke()
		fillRound(dc, "#FFC107", x-r*0.55, y-r*0.2, r*1.1, r*0.95, r*0.12)
		fillCircle(dc, "#5D4037", x, y+r*0.2, r*0.12)
	},
	sprite.Fire: func(dc *gg.Context, x, y, r float64) {
		fillPoly(dc, "#FF5722", x, y-r*0.95, x+r*0.6, y+r*0.1, x+r*0.45, y+r*0.8, x-r*0.45, y+r*0.8, x-r*0.6, y+r*0.1)
		fillPoly(dc, "#FFC107", x, y-r*0.3, x+r*0.3, y+r*0.3, x+r*0.2, y+r*0.8, x-r*0.2, y+r*0.8, x-r*0.3, y+r*0.3)
	},
	sprite.Celebration: func(dc *gg.Context, x, y, r float64) {
		fillPoly(dc, "#FF4081", x-r*0.8, y+r*0.8, x-r*0.2, y-r*0.4, x+r*0.4, y+r*0.2)
		fillCircle(dc, "#FFEB3B", x+r*0.4, y-r*0.5, r*0.12)
		fillCircle(dc, "#40C4FF", x+r*0.7, y-r*0.1, r*0.1)
		fillRect(dc, "#69F0AE", x, y-r*0.85, r*0.12, r*0.25)
		fillRect(dc, "#FF6E40", x+r*0.6, y+r*0.3, r*0.25, r*0.12)
	},
	sprite.Knife: func(dc *gg.Context, x, y, r float64) {
		dc.Push()
		dc.RotateAbout(gg.Radians(-45), x, y)
		fillPoly(dc, "#CFD8DC", x-r*0.2, y-r*0.15, x+r*0.9, y-r*0.05, x+r*0.9, y+r*0.05, x-r*0.2, y+r*0.15)
		fillRound(dc, "#5D4037", x-r*0.85, y-r*0.15, r*0.65, r*0.3, r*0.08)
		dc.Pop()
	},
	sprite.Katana: func(dc *gg.Context, x, y, r float64) {
		dc.Push()
		dc.RotateAbout(gg.Radians(-45), x, y)
		fillRect(dc, "#ECEFF1", x-r*0.3, y-r*0.06, r*1.2, r*0.12)
		fillEllipse(dc, "#FFD54F", x-r*0.3, y, r*0.06, r*0.2)
		fillRect(dc, "#1A237E", x-r*0.9, y-r*0.08, r*0.6, r*0.16)
		dc.Pop()
	},
	sprite.WaterSlash: func(dc *gg.Context, x, y, r float64) {
		slash(dc, x, y, r, "#E3F2FD", "#2196F3")
	},
	sprite.ThunderSlash: func(dc *gg.Context, x, y, r float64) {
		slash(dc, x, y, r, "#FFFDE7", "#FFC107")
	},
	sprite.FireSlash: func(dc *gg.Context, x, y, r float64) {
		slash(dc, x, y, r, "#FFF3E0", "#FF3D00")
	},
	sprite.BreathCircle: func(dc *gg.Context, x, y, r float64) {
		dc.SetHexColor("#80DEEA")
		dc.SetLineWidth(r * 0.08)
		dc.DrawCircle(x, y, r*0.85)
		dc.Stroke()
		dc.DrawRegularPolygon(6, x, y, r*0.6, 0)
		dc.Stroke()
		fillCircle(dc, "#E0F7FA", x, y, r*0.2)
	},
	sprite.FartCloud: func(dc *gg.Context, x, y, r float64) {
		cloudShape(dc, "#C5E1A5", x, y, r)
		fillCircle(dc, "#AED581", x+r*0.6, y+r*0.5, r*0.18)
	},
	sprite.Meteorite: func(dc *gg.Context, x, y, r float64) {
		fillPoly(dc, "#FF7043", x+r*0.2, y-r*0.2, x+r, y-r, x-r*0.2, y+r*0.2)
		fillCircle(dc, "#6D4C41", x-r*0.2, y+r*0.2, r*0.55)
		fillCircle(dc, "#4E342E", x-r*0.35, y+r*0.1, r*0.12)
		fillCircle(dc, "#4E342E", x, y+r*0.35, r*0.1)
	},
	sprite.Moon: func(dc *gg.Context, x, y, r float64) {
		fillCircle(dc, "#FFF59D", x, y, r*0.85)
		fillCircle(dc, "#FBC02D", x-r*0.3, y-r*0.2, r*0.15)
		fillCircle(dc, "#FBC02D", x+r*0.25, y+r*0.3, r*0.2)
		fillCircle(dc, "#FBC02D", x+r*0.35, y-r*0.35, r*0.1)
	},
	sprite.UFO: func(dc *gg.Context, x, y, r float64) {
		fillEllipse(dc, "#80DEEA", x, y-r*0.2, r*0.4, r*0.35)
		fillEllipse(dc, "#9E9E9E", x, y+r*0.1, r*0.95, r*0.3)
		for i := -2; i <= 2; i++ {
			fillCircle(dc, "#FFEB3B", x+float64(i)*r*0.35, y+r*0.12, r*0.07)
		}
	},
}
