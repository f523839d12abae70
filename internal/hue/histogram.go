package hue

import (
	"math"

	"github.com/MeKo-Tech/pixelops/internal/raster"
)

// Histogram counts pixels per whole degree of hue.
type Histogram [360]int

// PercentHistogram counts pixels per whole percent of saturation or value.
type PercentHistogram [101]int

// HSVHistograms bundles the three per-channel histograms of an image.
type HSVHistograms struct {
	Hue        Histogram
	Saturation PercentHistogram
	Value      PercentHistogram
}

// Max returns the largest bin count.
func (h *Histogram) Max() int {
	m := 0
	for _, c := range h {
		m = max(m, c)
	}
	return m
}

// Total returns the number of counted pixels.
func (h *Histogram) Total() int {
	t := 0
	for _, c := range h {
		t += c
	}
	return t
}

// Total returns the number of counted pixels.
func (h *PercentHistogram) Total() int {
	t := 0
	for _, c := range h {
		t += c
	}
	return t
}

// ComputeHueHistogram bins floor(H) of every pixel of an RGB image.
// Achromatic pixels land in bin 0.
func ComputeHueHistogram(img *raster.Image) (Histogram, error) {
	var h Histogram
	if err := checkRGB(img); err != nil {
		return h, err
	}

	r, g, b := img.Bands[0].Pix, img.Bands[1].Pix, img.Bands[2].Pix
	for i := range r {
		hv, _, _ := RGBToHSV(r[i], g[i], b[i])
		h[hueBin(hv)]++
	}
	return h, nil
}

// ComputeHSVHistograms bins hue by degree and saturation and value by percent.
func ComputeHSVHistograms(img *raster.Image) (HSVHistograms, error) {
	var hs HSVHistograms
	if err := checkRGB(img); err != nil {
		return hs, err
	}

	r, g, b := img.Bands[0].Pix, img.Bands[1].Pix, img.Bands[2].Pix
	for i := range r {
		hv, s, v := RGBToHSV(r[i], g[i], b[i])
		hs.Hue[hueBin(hv)]++
		hs.Saturation[percentBin(s)]++
		hs.Value[percentBin(v)]++
	}
	return hs, nil
}

func hueBin(h float64) int {
	return min(max(int(math.Floor(h)), 0), 359)
}

func percentBin(x float64) int {
	return min(max(int(math.Floor(x*100)), 0), 100)
}
