package raster

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Perlin generates a band of Perlin noise, useful as a synthetic input with a
// broad, smooth histogram.
// scale controls the frequency of the noise (smaller = more detail);
// seed makes the output deterministic.
func Perlin(width, height int, scale float64, seed int64) *Band {
	if scale <= 0 {
		scale = 1
	}

	// alpha 2, beta 2, 3 octaves
	p := perlin.NewPerlin(2.0, 2.0, 3, seed)
	b := NewBand(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			val := p.Noise2D(float64(x)/scale, float64(y)/scale)
			// noise is roughly in [-1, 1]
			normalized := (val + 1.0) / 2.0
			b.Pix[y*width+x] = uint8(math.Max(0, math.Min(255, normalized*255)))
		}
	}

	return b
}

// PerlinRGB builds a three-band image from independently seeded noise bands.
func PerlinRGB(width, height int, scale float64, seed int64) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Bands: []*Band{
			Perlin(width, height, scale, seed),
			Perlin(width, height, scale, seed+1),
			Perlin(width, height, scale, seed+2),
		},
	}
}
