// Package imageio loads image files into rasters and saves rasters back to
// disk. Formats are chosen from the file extension.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // registers the WebP decoder

	"github.com/MeKo-Tech/pixelops/internal/raster"
)

// ErrUnsupportedFormat is returned by Save for extensions with no encoder.
var ErrUnsupportedFormat = errors.New("imageio: unsupported output format")

// JPEGQuality is the quality used when saving .jpg/.jpeg files.
const JPEGQuality = 95

// Load decodes the image at path, applying EXIF orientation. Gray sources
// give a 1-band raster, everything else 3 bands (RGB). A rotated gray JPEG
// comes back from imaging as NRGBA; it still loads as one band.
func Load(path string) (*raster.Image, error) {
	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	img := raster.FromImage(src)
	if _, ok := src.(*image.NRGBA); ok && img.NumBands() == 3 && grayModel(path) {
		return raster.FromBands(img.Bands[0])
	}
	return img, nil
}

// grayModel reports whether the file at path declares a gray colour model.
func grayModel(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return false
	}
	return cfg.ColorModel == color.GrayModel || cfg.ColorModel == color.Gray16Model
}

// LoadGray loads path as a single band, converting colour sources with the
// 0.3/0.59/0.11 luma weights.
func LoadGray(path string) (*raster.Image, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	if img.NumBands() == 1 {
		return img, nil
	}
	gray, err := raster.Grayscale(img)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return raster.FromBands(gray)
}

// CheckOutput reports whether path has an extension Save can encode.
func CheckOutput(path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("save %s: %w", path, ErrUnsupportedFormat)
	}
	return nil
}

// Save encodes img to path. The format is taken from the extension.
func Save(path string, img *raster.Image) error {
	if err := CheckOutput(path); err != nil {
		return err
	}

	out, err := img.ToImage()
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := imaging.Save(out, path, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
