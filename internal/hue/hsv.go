// Package hue converts between RGB and HSV, replaces hues and builds hue,
// saturation and value histograms of colour images.
//
// Hue is an angle in degrees in [0, 360). Saturation and value are in [0, 1].
// Achromatic colours (r == g == b) have hue 0 and saturation 0.
package hue

import (
	"math"

	"github.com/MeKo-Tech/pixelops/internal/raster"
)

// RGBToHSV converts an 8-bit RGB triple to HSV.
func RGBToHSV(r, g, b uint8) (h, s, v float64) {
	maxv := max(r, g, b)
	minv := min(r, g, b)
	delta := float64(maxv) - float64(minv)

	v = float64(maxv) / 255
	if maxv == 0 || delta == 0 {
		return 0, 0, v
	}
	s = delta / float64(maxv)

	rf, gf, bf := float64(r), float64(g), float64(b)
	switch maxv {
	case r:
		h = (gf - bf) / delta
		if h < 0 {
			h += 6
		}
	case g:
		h = (bf-rf)/delta + 2
	default:
		h = (rf-gf)/delta + 4
	}
	h *= 60
	if h >= 360 {
		h -= 360
	}
	return h, s, v
}

// HSVToRGB converts HSV to RGB channels in [0, 255] before rounding. Hue is
// taken modulo 360; s and v are clamped to [0, 1].
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	h = NormalizeHue(h)
	s = clamp01(s)
	v = clamp01(v) * 255

	if s == 0 {
		return v, v, v
	}

	sector := h / 60
	i := math.Floor(sector)
	f := sector - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// HSVToRGB8 is HSVToRGB rounded half-up and clamped to 8 bits.
func HSVToRGB8(h, s, v float64) (r, g, b uint8) {
	rf, gf, bf := HSVToRGB(h, s, v)
	return raster.RoundU8(rf), raster.RoundU8(gf), raster.RoundU8(bf)
}

// NormalizeHue maps any angle into [0, 360).
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func clamp01(x float64) float64 {
	switch {
	case x < 0 || math.IsNaN(x):
		return 0
	case x > 1:
		return 1
	}
	return x
}
