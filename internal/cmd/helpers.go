package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/pixelops/internal/imageio"
	"github.com/MeKo-Tech/pixelops/internal/raster"
)

// stepSpecs returns the --step values when given on the command line and the
// configured list under key otherwise. Reading the flag directly keeps
// kernel text such as "1,2,1;2,4,2;1,2,1" in one piece.
func stepSpecs(cmd *cobra.Command, key string) ([]string, error) {
	if f := cmd.Flags().Lookup("step"); f != nil && f.Changed {
		return cmd.Flags().GetStringArray("step")
	}
	steps := viper.GetStringSlice(key)
	if len(steps) == 0 {
		return nil, fmt.Errorf("at least one --step is required")
	}
	return steps, nil
}

// loadForOutput validates the output extension before reading the input, so
// a bad output name fails without touching any file.
func loadForOutput(input, output string, gray bool) (*raster.Image, error) {
	if err := imageio.CheckOutput(output); err != nil {
		return nil, err
	}
	if gray {
		return imageio.LoadGray(input)
	}
	return imageio.Load(input)
}

func saveOutput(output string, img *raster.Image) error {
	if dir := filepath.Dir(output); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	if err := imageio.Save(output, img); err != nil {
		return err
	}
	logger.Info("Image written", "path", output, "width", img.Width, "height", img.Height, "bands", img.NumBands())
	return nil
}
