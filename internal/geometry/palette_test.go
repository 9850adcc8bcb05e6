package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestPaletteSeeded(t *testing.T) {
	a := NewSeededPalette(30, 42)
	b := NewSeededPalette(30, 42)
	c := NewSeededPalette(30, 43)
	assert.Equal(t, 30, a.Len())
	assert.Equal(t, a, b)
	assert.NotEqual(t, a.At(0), c.At(0))
	for i := 0; i < a.Len(); i++ {
		col := a.At(i)
		assert.GreaterOrEqual(t, col.R, float32(0))
		assert.Less(t, col.R, float32(1))
		assert.Equal(t, float32(1), col.A)
	}
}

func TestPaletteAtWraps(t *testing.T) {
	p := NewSeededPalette(5, 7)
	assert.Equal(t, p.At(0), p.At(5))
	assert.Equal(t, p.At(4), p.At(-1))
	assert.Equal(t, p.At(2), p.At(12))
}

func TestPaletteMinimumSize(t *testing.T) {
	p := NewSeededPalette(0, 1)
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, p.At(0), p.At(3))
}

func TestColorFrom(t *testing.T) {
	assert.Equal(t, Color{R: 1, G: 1, B: 0, A: 1}, ColorFrom(colornames.Yellow))
	r, g, b, a := ColorFrom(colornames.Cornflowerblue).RGBA8()
	assert.Equal(t, [4]uint8{100, 149, 237, 255}, [4]uint8{r, g, b, a})
}

func TestColorRGBA8Clamps(t *testing.T) {
	r, g, b, a := Color{R: -0.5, G: 0.5, B: 2, A: 1}.RGBA8()
	assert.Equal(t, [4]uint8{0, 128, 255, 255}, [4]uint8{r, g, b, a})
}
