package raster

import (
	"fmt"
	"image"
	"image/color"
)

// FromImage splits a decoded image into bands. Gray sources produce a single
// band; everything else produces three bands (R, G, B) with alpha dropped.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch s := src.(type) {
	case *image.Gray:
		b := NewBand(w, h)
		for y := 0; y < h; y++ {
			copy(b.Pix[y*w:(y+1)*w], s.Pix[s.PixOffset(bounds.Min.X, bounds.Min.Y+y):])
		}
		return &Image{Width: w, Height: h, Bands: []*Band{b}}
	case *image.Gray16:
		b := NewBand(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				b.Pix[y*w+x] = uint8(s.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y >> 8)
			}
		}
		return &Image{Width: w, Height: h, Bands: []*Band{b}}
	}

	img := NewImage(w, h, 3)
	r, g, bl := img.Bands[0].Pix, img.Bands[1].Pix, img.Bands[2].Pix

	if s, ok := src.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := s.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
				j := y*w + x
				r[j], g[j], bl[j] = s.Pix[i], s.Pix[i+1], s.Pix[i+2]
			}
		}
		return img
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			j := y*w + x
			r[j], g[j], bl[j] = c.R, c.G, c.B
		}
	}
	return img
}

// ToImage assembles bands into a standard image: *image.Gray for one band,
// opaque *image.NRGBA for three.
func (img *Image) ToImage() (image.Image, error) {
	rect := image.Rect(0, 0, img.Width, img.Height)

	switch len(img.Bands) {
	case 1:
		dst := image.NewGray(rect)
		copy(dst.Pix, img.Bands[0].Pix)
		return dst, nil
	case 3:
		dst := image.NewNRGBA(rect)
		r, g, b := img.Bands[0].Pix, img.Bands[1].Pix, img.Bands[2].Pix
		for j := range r {
			i := j * 4
			dst.Pix[i] = r[j]
			dst.Pix[i+1] = g[j]
			dst.Pix[i+2] = b[j]
			dst.Pix[i+3] = 255
		}
		return dst, nil
	default:
		return nil, fmt.Errorf("%w: cannot encode %d bands", ErrBandCount, len(img.Bands))
	}
}

// Grayscale collapses an RGB image to one band with 0.3R + 0.59G + 0.11B,
// truncated. A single-band image is returned as a copy of its band.
func Grayscale(img *Image) (*Band, error) {
	switch len(img.Bands) {
	case 1:
		return img.Bands[0].Clone(), nil
	case 3:
	default:
		return nil, fmt.Errorf("%w: grayscale needs 1 or 3 bands, got %d", ErrBandCount, len(img.Bands))
	}

	gray := NewBand(img.Width, img.Height)
	r, g, b := img.Bands[0].Pix, img.Bands[1].Pix, img.Bands[2].Pix
	for i := range gray.Pix {
		// exact: (30R + 59G + 11B) / 100
		gray.Pix[i] = uint8((30*int(r[i]) + 59*int(g[i]) + 11*int(b[i])) / 100)
	}
	return gray, nil
}
