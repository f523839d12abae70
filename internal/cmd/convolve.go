package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/pixelops/internal/convolve"
	"github.com/MeKo-Tech/pixelops/internal/kernel"
	"github.com/MeKo-Tech/pixelops/internal/raster"
)

var convolveCmd = &cobra.Command{
	Use:   "convolve <input> <output>",
	Short: "Convolve every band with an integer kernel",
	Long: `Convolve correlates each band with an odd-sized integer kernel.

Pixels within the kernel margin of the border keep their input values.
By default sums are clamped to [0, 255]. With --wide the signed 16-bit sums
are kept and each band is rescaled from its observed range to [0, 255],
which makes negative responses visible.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvolve,
}

var meanCmd = &cobra.Command{
	Use:   "mean <input> <output>",
	Short: "Apply a size x size mean filter",
	Args:  cobra.ExactArgs(2),
	RunE:  runMean,
}

func init() {
	rootCmd.AddCommand(convolveCmd)
	rootCmd.AddCommand(meanCmd)

	convolveCmd.Flags().StringP("kernel", "k", "", `Kernel rows separated by ';', e.g. "0,-1,0;-1,5,-1;0,-1,0"`)
	convolveCmd.Flags().Bool("wide", false, "Keep signed 16-bit sums and rescale per band")

	meanCmd.Flags().IntP("size", "s", 3, "Odd neighborhood size")

	bindFlags(convolveCmd, [][2]string{
		{"convolve.kernel", "kernel"},
		{"convolve.wide", "wide"},
	})
	bindFlags(meanCmd, [][2]string{
		{"mean.size", "size"},
	})
}

func runConvolve(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]
	kernelText := viper.GetString("convolve.kernel")
	wide := viper.GetBool("convolve.wide")

	if logger == nil {
		initLogging()
	}

	if kernelText == "" {
		return fmt.Errorf("--kernel is required")
	}
	k, err := kernel.Parse(kernelText)
	if err != nil {
		return fmt.Errorf("invalid kernel: %w", err)
	}

	img, err := loadForOutput(input, output, false)
	if err != nil {
		return err
	}
	logger.Debug("Convolving", "input", input, "kernel", k.String(), "rows", k.Rows(), "cols", k.Cols(), "sum", k.Sum(), "wide", wide)

	var result *raster.Image
	if wide {
		planes, err := convolve.ConvolveImageWide(img, k)
		if err != nil {
			return err
		}
		bands := make([]*raster.Band, len(planes))
		for i, w := range planes {
			lo, hi := w.MinMax()
			logger.Info("Wide band range", "band", i, "min", lo, "max", hi)
			bands[i] = w.Rescaled()
		}
		if result, err = raster.FromBands(bands...); err != nil {
			return err
		}
	} else {
		if result, err = convolve.ConvolveImage(img, k); err != nil {
			return err
		}
	}

	return saveOutput(output, result)
}

func runMean(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]
	size := viper.GetInt("mean.size")

	if logger == nil {
		initLogging()
	}

	if size < 1 || size%2 == 0 {
		return fmt.Errorf("%w: --size must be odd and positive, got %d", convolve.ErrInvalidSize, size)
	}

	img, err := loadForOutput(input, output, false)
	if err != nil {
		return err
	}
	result, err := convolve.MeanImage(img, size)
	if err != nil {
		return err
	}
	return saveOutput(output, result)
}
