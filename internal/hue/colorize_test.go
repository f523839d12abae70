package hue

import (
	"errors"
	"math"
	"testing"

	"github.com/MeKo-Tech/pixelops/internal/raster"
)

func singlePixel(r, g, b uint8) *raster.Image {
	img := raster.NewImage(1, 1, 3)
	img.Bands[0].Pix[0], img.Bands[1].Pix[0], img.Bands[2].Pix[0] = r, g, b
	return img
}

func TestColorizeKnownPixel(t *testing.T) {
	out, err := ColorizeImage(singlePixel(200, 50, 50), 270)
	if err != nil {
		t.Fatalf("ColorizeImage: %v", err)
	}
	got := [3]uint8{out.Bands[0].Pix[0], out.Bands[1].Pix[0], out.Bands[2].Pix[0]}
	if got != [3]uint8{125, 50, 200} {
		t.Errorf("colorize(200,50,50, 270) = %v, want [125 50 200]", got)
	}
}

func TestColorizeKeepsGray(t *testing.T) {
	out, err := ColorizeImage(singlePixel(90, 90, 90), 45)
	if err != nil {
		t.Fatalf("ColorizeImage: %v", err)
	}
	for b := 0; b < 3; b++ {
		if out.Bands[b].Pix[0] != 90 {
			t.Errorf("band %d = %d, want 90", b, out.Bands[b].Pix[0])
		}
	}
}

func TestColorizeHueAndValueProperty(t *testing.T) {
	in := raster.PerlinRGB(64, 64, 5, 42)

	for _, newHue := range []float64{0, 45.5, 120, 270, 359, 400} {
		out, err := ColorizeImage(in, newHue)
		if err != nil {
			t.Fatalf("ColorizeImage(%v): %v", newHue, err)
		}

		for i := range in.Bands[0].Pix {
			r, g, b := out.Bands[0].Pix[i], out.Bands[1].Pix[i], out.Bands[2].Pix[i]
			_, _, vIn := RGBToHSV(in.Bands[0].Pix[i], in.Bands[1].Pix[i], in.Bands[2].Pix[i])
			h, _, vOut := RGBToHSV(r, g, b)

			if math.Abs(vIn-vOut) > 1.0/255+1e-9 {
				t.Fatalf("hue %v pixel %d: V %.4f -> %.4f", newHue, i, vIn, vOut)
			}

			// Rounding each channel moves the hue by at most about 120/delta degrees.
			delta := float64(max(r, g, b)) - float64(min(r, g, b))
			if delta < 10 {
				continue
			}
			if d := hueDistance(h, newHue); d > 120/delta {
				t.Fatalf("hue %v pixel %d: got hue %.3f (delta %.0f)", newHue, i, h, delta)
			}
		}
	}
}

func TestColorizeErrors(t *testing.T) {
	rgb := raster.NewImage(2, 2, 3)

	if err := Colorize(raster.NewImage(2, 2, 1), raster.NewImage(2, 2, 1), 10); !errors.Is(err, raster.ErrBandCount) {
		t.Errorf("gray input error = %v, want ErrBandCount", err)
	}
	if err := Colorize(rgb, raster.NewImage(3, 2, 3), 10); !errors.Is(err, raster.ErrShapeMismatch) {
		t.Errorf("shape error = %v, want ErrShapeMismatch", err)
	}
	if err := Colorize(rgb, rgb, 10); !errors.Is(err, raster.ErrAliased) {
		t.Errorf("aliased error = %v, want ErrAliased", err)
	}

	partial := raster.NewImage(2, 2, 3)
	partial.Bands[1] = rgb.Bands[2]
	if err := Colorize(rgb, partial, 10); !errors.Is(err, raster.ErrAliased) {
		t.Errorf("shared band error = %v, want ErrAliased", err)
	}
}
