package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/pixelops/internal/imageio"
	"github.com/MeKo-Tech/pixelops/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run <input> <output>",
	Short: "Run a pipeline of steps on one image",
	Long: `Run applies a sequence of steps to one image, in order.

Steps are given with repeated --step flags, each "name" or "name:arg":

  gray, threshold:T, brightness:D, stretch, stretch-lut, equalize,
  mean:N, convolve:K, gradient:PRESET, blur:SIGMA, colorize:H

Kernels use ';' between rows and ',' or spaces between values, e.g.
  pixelops run in.png out.png --step gray --step "convolve:1,2,1;2,4,2;1,2,1"`,
	Args: cobra.ExactArgs(2),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringArray("step", nil, "Pipeline step (repeatable), e.g. --step gray --step mean:3")

	bindFlags(runCmd, [][2]string{
		{"run.steps", "step"},
	})
}

func runRun(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	if logger == nil {
		initLogging()
	}

	specs, err := stepSpecs(cmd, "run.steps")
	if err != nil {
		return err
	}
	p, err := pipeline.Parse(specs, logger)
	if err != nil {
		return err
	}
	if err := imageio.CheckOutput(output); err != nil {
		return err
	}

	fp, err := pipeline.NewFileProcessor(p, true, logger)
	if err != nil {
		return err
	}
	fp.ReportNotices(cmd.OutOrStdout())

	logger.Info("Running pipeline", "input", input, "output", output, "steps", p.String())
	if _, err := fp.Process(cmd.Context(), input, output); err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	return nil
}
