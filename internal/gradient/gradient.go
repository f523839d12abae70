// Package gradient computes edge strength as the Euclidean magnitude of two
// independent convolutions, one per axis.
package gradient

import (
	"math"

	"github.com/MeKo-Tech/pixelops/internal/kernel"
	"github.com/MeKo-Tech/pixelops/internal/raster"
)

// Magnitude writes floor(sqrt(sumX² + sumY²)), clamped to 255, for every
// pixel where both kernels have a full neighborhood. The kernels may have
// different, non-square shapes; the processed region is bounded by the larger
// of their margins on each axis, while each sum is indexed with its own
// kernel's margins. Pixels outside the region are not written.
func Magnitude(in, out *raster.Band, kx, ky kernel.Kernel) error {
	if err := raster.CheckBandPair(in, out); err != nil {
		return err
	}

	xmx, xmy := kx.MarginX(), kx.MarginY()
	ymx, ymy := ky.MarginX(), ky.MarginY()
	marginX := max(xmx, ymx)
	marginY := max(xmy, ymy)
	w := in.Width

	for y := marginY; y < in.Height-marginY; y++ {
		for x := marginX; x < w-marginX; x++ {
			sumX := weightedSum(in, kx, x-xmx, y-xmy)
			sumY := weightedSum(in, ky, x-ymx, y-ymy)

			mag := int(math.Sqrt(float64(sumX*sumX + sumY*sumY)))
			if mag > 255 {
				mag = 255
			}
			out.Pix[y*w+x] = uint8(mag)
		}
	}
	return nil
}

// weightedSum correlates k with the window of in whose top-left corner is (x0, y0).
func weightedSum(in *raster.Band, k kernel.Kernel, x0, y0 int) int {
	sum := 0
	for i := 0; i < k.Rows(); i++ {
		row := (y0 + i) * in.Width
		for j := 0; j < k.Cols(); j++ {
			sum += int(in.Pix[row+x0+j]) * k.At(i, j)
		}
	}
	return sum
}

// Apply runs Magnitude with a preset pair into a zero-filled output, so border
// pixels come out black.
func Apply(in *raster.Band, p Pair) (*raster.Band, error) {
	out := in.NewSameShape()
	if err := Magnitude(in, out, p.X, p.Y); err != nil {
		return nil, err
	}
	return out, nil
}
