package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/pixelops/internal/gradient"
	"github.com/MeKo-Tech/pixelops/internal/kernel"
	"github.com/MeKo-Tech/pixelops/internal/raster"
)

var gradientCmd = &cobra.Command{
	Use:   "gradient <input> <output>",
	Short: "Compute the gradient magnitude of a grayscale image",
	Long: `Gradient converts the input to grayscale and writes
floor(sqrt(gx² + gy²)), clamped to 255, where gx and gy are the responses of
a horizontal and a vertical kernel. Border pixels are black.

Use --preset (` + strings.Join(gradient.Presets(), ", ") + `) or give both
--kernel-x and --kernel-y. --blur smooths the input with a Gaussian first.`,
	Args: cobra.ExactArgs(2),
	RunE: runGradient,
}

func init() {
	rootCmd.AddCommand(gradientCmd)

	gradientCmd.Flags().StringP("preset", "p", "sobel", "Kernel pair preset")
	gradientCmd.Flags().String("kernel-x", "", "Custom horizontal kernel (overrides --preset)")
	gradientCmd.Flags().String("kernel-y", "", "Custom vertical kernel (overrides --preset)")
	gradientCmd.Flags().Float64("blur", 0, "Gaussian sigma applied before differencing (0 disables)")

	bindFlags(gradientCmd, [][2]string{
		{"gradient.preset", "preset"},
		{"gradient.kernel_x", "kernel-x"},
		{"gradient.kernel_y", "kernel-y"},
		{"gradient.blur", "blur"},
	})
}

func runGradient(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]
	presetName := viper.GetString("gradient.preset")
	kxText := viper.GetString("gradient.kernel_x")
	kyText := viper.GetString("gradient.kernel_y")
	sigma := viper.GetFloat64("gradient.blur")

	if logger == nil {
		initLogging()
	}

	pair, err := gradientPair(presetName, kxText, kyText)
	if err != nil {
		return err
	}
	if sigma < 0 {
		return fmt.Errorf("--blur must not be negative, got %v", sigma)
	}

	img, err := loadForOutput(input, output, true)
	if err != nil {
		return err
	}

	band := img.Bands[0]
	if sigma > 0 {
		logger.Debug("Pre-smoothing", "sigma", sigma)
		band = raster.GaussianBlur(band, float32(sigma))
	}

	logger.Debug("Computing gradient", "pair", pair.Name, "kx", pair.X.String(), "ky", pair.Y.String())
	mag, err := gradient.Apply(band, pair)
	if err != nil {
		return err
	}
	result, err := raster.FromBands(mag)
	if err != nil {
		return err
	}
	return saveOutput(output, result)
}

func gradientPair(preset, kx, ky string) (gradient.Pair, error) {
	if kx == "" && ky == "" {
		return gradient.Preset(preset)
	}
	if kx == "" || ky == "" {
		return gradient.Pair{}, fmt.Errorf("--kernel-x and --kernel-y must be given together")
	}

	x, err := kernel.Parse(kx)
	if err != nil {
		return gradient.Pair{}, fmt.Errorf("invalid --kernel-x: %w", err)
	}
	y, err := kernel.Parse(ky)
	if err != nil {
		return gradient.Pair{}, fmt.Errorf("invalid --kernel-y: %w", err)
	}
	return gradient.Pair{Name: "custom", X: x, Y: y}, nil
}
