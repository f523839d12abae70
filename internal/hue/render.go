package hue

import "github.com/MeKo-Tech/pixelops/internal/raster"

const (
	// DefaultRenderHeight is the height of a rendered hue histogram.
	DefaultRenderHeight = 300

	headroom = 20
)

// RenderHueHistogram draws h as a 360-column RGB image of the given height on
// a white background. Column x holds a bar in the fully saturated colour of
// hue x, growing up from the bottom row, scaled so the tallest bar reaches
// height-20 (the full height for images of 20 rows or fewer). Empty bins draw
// nothing.
func RenderHueHistogram(h Histogram, height int) *raster.Image {
	if height <= 0 {
		height = DefaultRenderHeight
	}
	const width = len(h)

	img := raster.NewImage(width, height, 3)
	for _, b := range img.Bands {
		b.Fill(255)
	}

	maxCount := h.Max()
	if maxCount == 0 {
		return img
	}

	usable := height
	if height > headroom {
		usable = height - headroom
	}

	for x, count := range h {
		if count == 0 {
			continue
		}
		bar := float64(count) / float64(maxCount) * float64(usable)
		top := max(int(float64(height)-bar), 0)
		if top > height-1 {
			top = height - 1
		}

		r, g, b := HSVToRGB8(float64(x), 1, 1)
		for y := top; y < height; y++ {
			img.Bands[0].Set(x, y, r)
			img.Bands[1].Set(x, y, g)
			img.Bands[2].Set(x, y, b)
		}
	}
	return img
}
