// Package convolve implements integer 2D convolution over raster bands.
//
// Only pixels with a complete kernel neighborhood are written. Pixels closer
// than the kernel margin to an edge keep whatever the output buffer already
// held, so callers choose the border policy by how they pre-populate the
// output (a copy of the input, zeros, ...). The engine never reads outside the
// input buffer.
package convolve

import (
	"errors"
	"fmt"

	"github.com/MeKo-Tech/pixelops/internal/kernel"
	"github.com/MeKo-Tech/pixelops/internal/raster"
)

// ErrInvalidSize is returned for a mean filter size that is not a positive odd number.
var ErrInvalidSize = errors.New("convolve: filter size must be a positive odd number")

// Convolve writes the clamped weighted sum of each full neighborhood of in
// into out. in and out must have the same shape and must not share storage.
func Convolve(in, out *raster.Band, k kernel.Kernel) error {
	if err := raster.CheckBandPair(in, out); err != nil {
		return err
	}
	each(in, k, func(i, sum int) {
		out.Pix[i] = raster.ClampU8(sum)
	})
	return nil
}

// ConvolveWide is Convolve with a signed 16-bit output. Sums are stored as is;
// values beyond the int16 range saturate at its limits.
func ConvolveWide(in *raster.Band, out *raster.WideBand, k kernel.Kernel) error {
	if in.Width != out.Width || in.Height != out.Height {
		return fmt.Errorf("%w: input %dx%d, output %dx%d", raster.ErrShapeMismatch, in.Width, in.Height, out.Width, out.Height)
	}
	each(in, k, func(i, sum int) {
		out.Pix[i] = raster.ClampI16(sum)
	})
	return nil
}

// each visits every interior pixel of in and reports its pixel index together
// with the kernel-weighted sum of its neighborhood.
func each(in *raster.Band, k kernel.Kernel, emit func(i, sum int)) {
	mx, my := k.MarginX(), k.MarginY()
	w := in.Width

	for y := my; y < in.Height-my; y++ {
		for x := mx; x < w-mx; x++ {
			sum := 0
			for ky := 0; ky < k.Rows(); ky++ {
				row := (y + ky - my) * w
				for kx := 0; kx < k.Cols(); kx++ {
					sum += int(in.Pix[row+x+kx-mx]) * k.At(ky, kx)
				}
			}
			emit(y*w+x, sum)
		}
	}
}

// ConvolveImage convolves every band of in with k. The result starts as a
// copy of in, so border pixels keep their input values.
func ConvolveImage(in *raster.Image, k kernel.Kernel) (*raster.Image, error) {
	out := in.Clone()
	for i := range in.Bands {
		if err := Convolve(in.Bands[i], out.Bands[i], k); err != nil {
			return nil, fmt.Errorf("band %d: %w", i, err)
		}
	}
	return out, nil
}

// ConvolveImageWide returns one zero-initialized wide band per input band
// holding the unclamped convolution.
func ConvolveImageWide(in *raster.Image, k kernel.Kernel) ([]*raster.WideBand, error) {
	out := make([]*raster.WideBand, len(in.Bands))
	for i, b := range in.Bands {
		out[i] = raster.NewWideBand(b.Width, b.Height)
		if err := ConvolveWide(b, out[i], k); err != nil {
			return nil, fmt.Errorf("band %d: %w", i, err)
		}
	}
	return out, nil
}
