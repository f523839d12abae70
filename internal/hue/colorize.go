package hue

import (
	"fmt"

	"github.com/MeKo-Tech/pixelops/internal/raster"
)

// Colorize sets the hue of every pixel of the RGB image in to newHue, keeping
// saturation and value, and writes the result to out. Achromatic pixels stay
// gray because their saturation is 0.
func Colorize(in, out *raster.Image, newHue float64) error {
	if err := checkRGB(in); err != nil {
		return err
	}
	if err := raster.CheckPair(in, out); err != nil {
		return err
	}

	newHue = NormalizeHue(newHue)
	ri, gi, bi := in.Bands[0].Pix, in.Bands[1].Pix, in.Bands[2].Pix
	rOut, gOut, bOut := out.Bands[0].Pix, out.Bands[1].Pix, out.Bands[2].Pix

	for i := range ri {
		_, s, v := RGBToHSV(ri[i], gi[i], bi[i])
		rOut[i], gOut[i], bOut[i] = HSVToRGB8(newHue, s, v)
	}
	return nil
}

// ColorizeImage allocates the output for Colorize.
func ColorizeImage(in *raster.Image, newHue float64) (*raster.Image, error) {
	out := in.NewSameShape()
	if err := Colorize(in, out, newHue); err != nil {
		return nil, err
	}
	return out, nil
}

func checkRGB(img *raster.Image) error {
	if img.NumBands() != 3 {
		return fmt.Errorf("%w: need 3 bands (RGB), got %d", raster.ErrBandCount, img.NumBands())
	}
	return nil
}
