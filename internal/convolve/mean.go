package convolve

import (
	"fmt"

	"github.com/MeKo-Tech/pixelops/internal/raster"
)

// MeanFilter replaces each interior pixel of every band with the integer mean
// (sum / size², truncated) of its size×size neighborhood. Borders within
// size/2 of an edge are left as they are in out.
func MeanFilter(in, out *raster.Image, size int) error {
	if size < 1 || size%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if err := raster.CheckPair(in, out); err != nil {
		return err
	}

	margin := size / 2
	area := size * size

	for band := range in.Bands {
		src := in.Bands[band]
		dst := out.Bands[band]
		w := src.Width

		for y := margin; y < src.Height-margin; y++ {
			for x := margin; x < w-margin; x++ {
				sum := 0
				for dy := -margin; dy <= margin; dy++ {
					row := (y + dy) * w
					for dx := -margin; dx <= margin; dx++ {
						sum += int(src.Pix[row+x+dx])
					}
				}
				dst.Pix[y*w+x] = uint8(sum / area)
			}
		}
	}
	return nil
}

// MeanImage runs MeanFilter into a copy of in, so borders keep their input values.
func MeanImage(in *raster.Image, size int) (*raster.Image, error) {
	out := in.Clone()
	if err := MeanFilter(in, out, size); err != nil {
		return nil, err
	}
	return out, nil
}
