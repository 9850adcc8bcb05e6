package geometry

import "math/rand/v2"

// Palette is a fixed set of random colours generated once at startup.
// Its length is set by NewPalette and never changes.
type Palette struct {
	colors []Color
}

// NewPalette draws size opaque colours from rng. size below 1 is raised to 1 so At
// always has something to return.
func NewPalette(size int, rng *rand.Rand) *Palette {
	if size < 1 {
		size = 1
	}
	colors := make([]Color, size)
	for i := range colors {
		colors[i] = Color{R: rng.Float32(), G: rng.Float32(), B: rng.Float32(), A: 1}
	}
	return &Palette{colors: colors}
}

// NewSeededPalette is NewPalette with a PCG source seeded from seed.
func NewSeededPalette(size int, seed uint64) *Palette {
	return NewPalette(size, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Len returns the number of colours.
func (p *Palette) Len() int {
	return len(p.colors)
}

// At returns colour i, wrapping around the palette length. Negative indices count from the end.
func (p *Palette) At(i int) Color {
	n := len(p.colors)
	i %= n
	if i < 0 {
		i += n
	}
	return p.colors[i]
}
