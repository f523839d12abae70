package tone

import "github.com/MeKo-Tech/pixelops/internal/raster"

// EqualizationLUT derives the equalization table from a histogram:
//
//	lut[i] = round((cum[i] - cumMin) / (total - cumMin) * 255)
//
// where cumMin is the first nonzero cumulative count. The second return value
// reports the degenerate case total == cumMin, in which every entry is 0.
func EqualizationLUT(h Histogram) (LUT, bool) {
	var lut LUT

	cum := h.Cumulative()
	total := cum[len(cum)-1]

	cumMin := 0
	for _, c := range cum {
		if c > 0 {
			cumMin = c
			break
		}
	}

	denom := total - cumMin
	if denom == 0 {
		return lut, true
	}

	for i, c := range cum {
		lut[i] = raster.RoundU8(float64(c-cumMin) / float64(denom) * 255)
	}
	return lut, false
}

// HistogramEqualization flattens the tonal distribution of every band in place.
func HistogramEqualization(img *raster.Image) []Outcome {
	outcomes := make([]Outcome, len(img.Bands))
	for i, b := range img.Bands {
		h := ComputeHistogram(b)
		lut, uniform := EqualizationLUT(h)
		lut.Apply(b)

		lo, hi := h.Min(), h.Max()
		outcomes[i] = Outcome{Band: i, Uniform: uniform}
		if lo >= 0 {
			outcomes[i].Min, outcomes[i].Max = uint8(lo), uint8(hi)
		}
	}
	return outcomes
}
