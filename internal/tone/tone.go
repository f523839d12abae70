// Package tone implements per-band point operations: threshold, brightness
// shift, contrast stretch and histogram equalization. Every operation works
// in place on the bands of a raster.Image.
package tone

import "github.com/MeKo-Tech/pixelops/internal/raster"

// Outcome reports what happened to one band of a statistics-driven operation.
// Uniform is set when the band holds a single value; such bands are either
// left untouched (stretch) or mapped to zero (equalization). It is a
// notification, not an error.
type Outcome struct {
	Band    int
	Min     uint8
	Max     uint8
	Uniform bool
}

// Uniforms returns the outcomes whose band was degenerate.
func Uniforms(outcomes []Outcome) []Outcome {
	var out []Outcome
	for _, o := range outcomes {
		if o.Uniform {
			out = append(out, o)
		}
	}
	return out
}

// Threshold binarizes every band: values below t become 0, values at or
// above t become 255.
func Threshold(img *raster.Image, t int) {
	for _, b := range img.Bands {
		for i, v := range b.Pix {
			if int(v) >= t {
				b.Pix[i] = 255
			} else {
				b.Pix[i] = 0
			}
		}
	}
}

// AdjustBrightness adds delta to every sample and clamps to [0, 255].
func AdjustBrightness(img *raster.Image, delta int) {
	for _, b := range img.Bands {
		for i, v := range b.Pix {
			b.Pix[i] = raster.ClampU8(int(v) + delta)
		}
	}
}
