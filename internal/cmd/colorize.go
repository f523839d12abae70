package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/pixelops/internal/hue"
	"github.com/MeKo-Tech/pixelops/internal/raster"
)

var colorizeCmd = &cobra.Command{
	Use:   "colorize <input> <output>",
	Short: "Replace the hue of every pixel",
	Long: `Colorize converts each pixel to HSV, replaces its hue with --hue (degrees,
taken modulo 360) and converts back. Saturation and value are kept, so gray
pixels stay gray. Grayscale inputs are rejected.`,
	Args: cobra.ExactArgs(2),
	RunE: runColorize,
}

func init() {
	rootCmd.AddCommand(colorizeCmd)

	colorizeCmd.Flags().Float64("hue", 0, "New hue in degrees, e.g. 270 (required)")

	bindFlags(colorizeCmd, [][2]string{
		{"colorize.hue", "hue"},
	})
}

func runColorize(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	if logger == nil {
		initLogging()
	}

	if !viper.IsSet("colorize.hue") {
		return fmt.Errorf("--hue is required")
	}
	newHue := viper.GetFloat64("colorize.hue")

	img, err := loadForOutput(input, output, false)
	if err != nil {
		return err
	}
	if img.NumBands() != 3 {
		return fmt.Errorf("%w: %s is grayscale, colorize needs an RGB image", raster.ErrBandCount, input)
	}

	logger.Debug("Colorizing", "input", input, "hue", hue.NormalizeHue(newHue))
	result, err := hue.ColorizeImage(img, newHue)
	if err != nil {
		return err
	}
	return saveOutput(output, result)
}
