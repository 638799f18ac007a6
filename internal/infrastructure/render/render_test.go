package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/hikari/internal/domain/sprite"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#FF69B4", color.RGBA{255, 105, 180, 255}},
		{"1a0533", color.RGBA{26, 5, 51, 255}},
		{"#00000080", color.RGBA{0, 0, 0, 128}},
		{"#GGGGGG", color.RGBA{128, 128, 128, 255}},
		{"#FFF", color.RGBA{128, 128, 128, 255}},
		{"", color.RGBA{128, 128, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Hex(tt.in))
		})
	}
}

func TestFade(t *testing.T) {
	assert.Equal(t, color.RGBA{0, 0, 0, 127}, Fade(color.Black, 0.5))
	assert.Equal(t, color.RGBA{}, Fade(White, -1))
	assert.Equal(t, White, Fade(White, 2))
}

func TestRasterize_AllSprites(t *testing.T) {
	for _, id := range sprite.All {
		t.Run(string(id), func(t *testing.T) {
			img, ok := Rasterize(id, 32)
			require.True(t, ok, "every sprite has a recipe")

			b := img.Bounds()
			assert.Equal(t, 32, b.Dx())
			painted := 0
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
						painted++
					}
				}
			}
			assert.Greater(t, painted, 20)
		})
	}
}

func TestRasterize_Unknown(t *testing.T) {
	img, ok := Rasterize("no-such-sprite", 32)
	assert.False(t, ok)
	assert.Nil(t, img)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		in   string
		cols int
		want []string
	}{
		{"fits", "hello world", 20, []string{"hello world"}},
		{"breaks on space", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"long word split", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"newline kept", "one\ntwo", 20, []string{"one", "two"}},
		{"empty", "", 10, []string{""}},
		{"wide runes", "ひかりちゃん", 4, []string{"ひか", "りち", "ゃん"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.in, tt.cols))
		})
	}
}

func TestReveal(t *testing.T) {
	assert.Equal(t, "", Reveal("hello", 0))
	assert.Equal(t, "hel", Reveal("hello", 3))
	assert.Equal(t, "hello", Reveal("hello", 99))
	assert.Equal(t, "ひ", Reveal("ひかり", 3), "a wide rune is not split")
	assert.Equal(t, 6, Cells("ひかり"))
}

func TestKit_FaceCache(t *testing.T) {
	k, err := NewKit(nil)
	require.NoError(t, err)

	a := k.Face(20, false)
	assert.Same(t, a, k.Face(20.2, false))
	assert.NotSame(t, a, k.Face(20, true))
	assert.NotSame(t, a, k.Face(24, false))

	w := k.Measure("Hikari", TextStyle{Size: 20})
	assert.Greater(t, w, 0.0)
	assert.Greater(t, k.Measure("Hikari", TextStyle{Size: 40}), w)
}
