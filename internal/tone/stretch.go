package tone

import "github.com/MeKo-Tech/pixelops/internal/raster"

// ExtendDynamicRange linearly rescales each band so its minimum maps to 0 and
// its maximum to 255, computing (v-min)*255/(max-min) with integer truncation
// per pixel. Uniform bands are left unchanged.
func ExtendDynamicRange(img *raster.Image) []Outcome {
	outcomes := make([]Outcome, len(img.Bands))
	for i, b := range img.Bands {
		lo, hi := b.MinMax()
		outcomes[i] = Outcome{Band: i, Min: lo, Max: hi, Uniform: lo == hi}
		if lo == hi {
			continue
		}

		span := int(hi) - int(lo)
		for j, v := range b.Pix {
			b.Pix[j] = uint8((int(v) - int(lo)) * 255 / span)
		}
	}
	return outcomes
}

// ExtendDynamicRangeLUT produces the same result as ExtendDynamicRange but
// evaluates the formula once per level through a lookup table.
func ExtendDynamicRangeLUT(img *raster.Image) []Outcome {
	outcomes := make([]Outcome, len(img.Bands))
	for i, b := range img.Bands {
		lo, hi := b.MinMax()
		outcomes[i] = Outcome{Band: i, Min: lo, Max: hi, Uniform: lo == hi}
		if lo == hi {
			continue
		}

		lut := StretchLUT(lo, hi)
		lut.Apply(b)
	}
	return outcomes
}

// StretchLUT builds the contrast-stretch table for the range [lo, hi].
// Levels outside the range are clamped. A degenerate range yields the
// identity table.
func StretchLUT(lo, hi uint8) LUT {
	if lo >= hi {
		return Identity()
	}

	var lut LUT
	span := int(hi) - int(lo)
	for i := range lut {
		lut[i] = raster.ClampU8((i - int(lo)) * 255 / span)
	}
	return lut
}
