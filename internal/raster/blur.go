package raster

import (
	"image"

	"github.com/disintegration/gift"
)

// GaussianBlur returns a smoothed copy of b. The sigma parameter controls the
// blur radius (larger = more blur); sigma <= 0 returns an unmodified copy.
// Used to suppress noise before gradient extraction.
func GaussianBlur(b *Band, sigma float32) *Band {
	if sigma <= 0 {
		return b.Clone()
	}

	g := gift.New(gift.GaussianBlur(sigma))
	dst := image.NewGray(g.Bounds(b.Gray().Bounds()))
	g.Draw(dst, b.Gray())

	return &Band{Width: b.Width, Height: b.Height, Pix: dst.Pix}
}

// BlurImage applies GaussianBlur to every band.
func BlurImage(img *Image, sigma float32) *Image {
	out := &Image{Width: img.Width, Height: img.Height, Bands: make([]*Band, len(img.Bands))}
	for i, b := range img.Bands {
		out.Bands[i] = GaussianBlur(b, sigma)
	}
	return out
}
