// Package raster holds the in-memory buffers the engines operate on: 8-bit
// bands, widened signed bands, and multi-band images whose bands share one
// width and height.
package raster

import (
	"errors"
	"fmt"
	"image"
	"unsafe"
)

var (
	// ErrShapeMismatch is returned when two buffers differ in size or band count.
	ErrShapeMismatch = errors.New("raster: buffers differ in shape")
	// ErrAliased is returned when an operation needs distinct input and output
	// buffers but was given the same storage twice.
	ErrAliased = errors.New("raster: input and output share storage")
	// ErrBandCount is returned when an image has the wrong number of bands.
	ErrBandCount = errors.New("raster: unexpected band count")
)

// Band is a single 8-bit channel stored row-major with stride Width.
type Band struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewBand allocates a zero-filled band.
func NewBand(width, height int) *Band {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("raster: negative band size %dx%d", width, height))
	}
	return &Band{Width: width, Height: height, Pix: make([]uint8, width*height)}
}

// In reports whether (x, y) lies inside the band.
func (b *Band) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// At returns the sample at (x, y), or 0 outside the band.
func (b *Band) At(x, y int) uint8 {
	if !b.In(x, y) {
		return 0
	}
	return b.Pix[y*b.Width+x]
}

// Set writes the sample at (x, y). Writes outside the band are ignored.
func (b *Band) Set(x, y int, v uint8) {
	if !b.In(x, y) {
		return
	}
	b.Pix[y*b.Width+x] = v
}

// Fill sets every sample to v.
func (b *Band) Fill(v uint8) {
	for i := range b.Pix {
		b.Pix[i] = v
	}
}

// Clone returns a deep copy.
func (b *Band) Clone() *Band {
	c := &Band{Width: b.Width, Height: b.Height, Pix: make([]uint8, len(b.Pix))}
	copy(c.Pix, b.Pix)
	return c
}

// NewSameShape allocates a zero-filled band with b's dimensions.
func (b *Band) NewSameShape() *Band {
	return NewBand(b.Width, b.Height)
}

// SameShape reports whether o has b's dimensions.
func (b *Band) SameShape(o *Band) bool {
	return b.Width == o.Width && b.Height == o.Height
}

// MinMax returns the smallest and largest sample. An empty band yields (0, 0).
func (b *Band) MinMax() (lo, hi uint8) {
	if len(b.Pix) == 0 {
		return 0, 0
	}
	lo, hi = 255, 0
	for _, v := range b.Pix {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Gray exposes the band as an *image.Gray sharing the same pixel storage.
func (b *Band) Gray() *image.Gray {
	return &image.Gray{Pix: b.Pix, Stride: b.Width, Rect: image.Rect(0, 0, b.Width, b.Height)}
}

// Aliased reports whether a and b share any pixel storage, including
// slices of one backing array that overlap at an offset.
func Aliased(a, b *Band) bool {
	if a == b {
		return true
	}
	if len(a.Pix) == 0 || len(b.Pix) == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a.Pix)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b.Pix)))
	return a0 < b0+uintptr(len(b.Pix)) && b0 < a0+uintptr(len(a.Pix))
}

// WideBand is a signed 16-bit channel used for convolution results that can
// be negative or exceed 255.
type WideBand struct {
	Width  int
	Height int
	Pix    []int16
}

// NewWideBand allocates a zero-filled wide band.
func NewWideBand(width, height int) *WideBand {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("raster: negative band size %dx%d", width, height))
	}
	return &WideBand{Width: width, Height: height, Pix: make([]int16, width*height)}
}

func (w *WideBand) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < w.Width && y < w.Height
}

// At returns the value at (x, y), or 0 outside the band.
func (w *WideBand) At(x, y int) int16 {
	if !w.inside(x, y) {
		return 0
	}
	return w.Pix[y*w.Width+x]
}

// Set writes the value at (x, y). Writes outside the band are ignored.
func (w *WideBand) Set(x, y int, v int16) {
	if !w.inside(x, y) {
		return
	}
	w.Pix[y*w.Width+x] = v
}

// MinMax returns the smallest and largest values. An empty band gives (0, 0).
func (w *WideBand) MinMax() (lo, hi int16) {
	if len(w.Pix) == 0 {
		return 0, 0
	}
	lo, hi = w.Pix[0], w.Pix[0]
	for _, v := range w.Pix[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// Rescaled converts to an 8-bit band by mapping the observed [min, max]
// linearly onto [0, 255] with integer truncation. A uniform band gives zeros.
func (w *WideBand) Rescaled() *Band {
	b := NewBand(w.Width, w.Height)
	lo, hi := w.MinMax()
	if lo == hi {
		return b
	}
	span := int(hi) - int(lo)
	for i, v := range w.Pix {
		b.Pix[i] = uint8((int(v) - int(lo)) * 255 / span)
	}
	return b
}

// Image is a stack of bands sharing one width and height.
type Image struct {
	Width  int
	Height int
	Bands  []*Band
}

// NewImage allocates a zero-filled image with n bands.
func NewImage(width, height, n int) *Image {
	img := &Image{Width: width, Height: height, Bands: make([]*Band, n)}
	for i := range img.Bands {
		img.Bands[i] = NewBand(width, height)
	}
	return img
}

// FromBands wraps existing bands into an image. All bands must share one shape.
func FromBands(bands ...*Band) (*Image, error) {
	if len(bands) == 0 {
		return nil, fmt.Errorf("%w: no bands", ErrBandCount)
	}
	for i, b := range bands[1:] {
		if !b.SameShape(bands[0]) {
			return nil, fmt.Errorf("%w: band %d is %dx%d, band 0 is %dx%d",
				ErrShapeMismatch, i+1, b.Width, b.Height, bands[0].Width, bands[0].Height)
		}
	}
	return &Image{Width: bands[0].Width, Height: bands[0].Height, Bands: bands}, nil
}

// NumBands returns the number of bands.
func (img *Image) NumBands() int { return len(img.Bands) }

// Band returns band i.
func (img *Image) Band(i int) *Band { return img.Bands[i] }

// NewSameShape allocates a zero-filled image with img's dimensions and band count.
func (img *Image) NewSameShape() *Image {
	return NewImage(img.Width, img.Height, len(img.Bands))
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	c := &Image{Width: img.Width, Height: img.Height, Bands: make([]*Band, len(img.Bands))}
	for i, b := range img.Bands {
		c.Bands[i] = b.Clone()
	}
	return c
}

// SameShape reports whether o has img's dimensions and band count.
func (img *Image) SameShape(o *Image) bool {
	return img.Width == o.Width && img.Height == o.Height && len(img.Bands) == len(o.Bands)
}

// CheckPair validates an input/output pair for engines that read one image and
// write another: same shape, no shared band storage.
func CheckPair(in, out *Image) error {
	if !in.SameShape(out) {
		return fmt.Errorf("%w: input %dx%dx%d, output %dx%dx%d", ErrShapeMismatch,
			in.Width, in.Height, len(in.Bands), out.Width, out.Height, len(out.Bands))
	}
	for i := range in.Bands {
		for j := range out.Bands {
			if Aliased(in.Bands[i], out.Bands[j]) {
				return fmt.Errorf("%w: input band %d, output band %d", ErrAliased, i, j)
			}
		}
	}
	return nil
}

// CheckBandPair is CheckPair for single bands.
func CheckBandPair(in, out *Band) error {
	if !in.SameShape(out) {
		return fmt.Errorf("%w: input %dx%d, output %dx%d", ErrShapeMismatch, in.Width, in.Height, out.Width, out.Height)
	}
	if Aliased(in, out) {
		return ErrAliased
	}
	return nil
}
