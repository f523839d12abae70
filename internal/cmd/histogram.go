package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/pixelops/internal/hue"
	"github.com/MeKo-Tech/pixelops/internal/imageio"
	"github.com/MeKo-Tech/pixelops/internal/report"
	"github.com/MeKo-Tech/pixelops/internal/tone"
)

var histogramCmd = &cobra.Command{
	Use:   "histogram <input>",
	Short: "Print level or HSV histograms of an image",
	Long: `Histogram prints the nonzero bins of an image's histograms to stdout.

Grayscale images get a 256-level histogram. Colour images get hue (per
degree), saturation and value (per percent) histograms, or one level
histogram per RGB band with --bands. --hue-image additionally renders the
hue histogram as a 360-pixel-wide bar chart.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistogram,
}

func init() {
	rootCmd.AddCommand(histogramCmd)

	histogramCmd.Flags().Bool("bands", false, "Print level histograms per band instead of HSV histograms")
	histogramCmd.Flags().String("hue-image", "", "Render the hue histogram to this file")
	histogramCmd.Flags().Int("hue-height", hue.DefaultRenderHeight, "Height of the rendered hue histogram")

	bindFlags(histogramCmd, [][2]string{
		{"histogram.bands", "bands"},
		{"histogram.hue_image", "hue-image"},
		{"histogram.hue_height", "hue-height"},
	})
}

func runHistogram(cmd *cobra.Command, args []string) error {
	input := args[0]
	perBand := viper.GetBool("histogram.bands")
	hueImage := viper.GetString("histogram.hue_image")
	hueHeight := viper.GetInt("histogram.hue_height")

	if logger == nil {
		initLogging()
	}

	if hueImage != "" {
		if err := imageio.CheckOutput(hueImage); err != nil {
			return err
		}
		if hueHeight <= 0 {
			return fmt.Errorf("--hue-height must be positive, got %d", hueHeight)
		}
	}

	img, err := imageio.Load(input)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if img.NumBands() == 1 || perBand {
		for i, b := range img.Bands {
			if err := report.WriteHistogram(out, i, tone.ComputeHistogram(b)); err != nil {
				return err
			}
		}
	} else {
		hs, err := hue.ComputeHSVHistograms(img)
		if err != nil {
			return err
		}
		if err := report.WriteHSVHistograms(out, hs); err != nil {
			return err
		}
	}

	if hueImage == "" {
		return nil
	}
	h, err := hue.ComputeHueHistogram(img)
	if err != nil {
		return fmt.Errorf("--hue-image: %w", err)
	}
	return saveOutput(hueImage, hue.RenderHueHistogram(h, hueHeight))
}
