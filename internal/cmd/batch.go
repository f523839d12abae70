package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/pixelops/internal/imageio"
	"github.com/MeKo-Tech/pixelops/internal/pipeline"
	"github.com/MeKo-Tech/pixelops/internal/worker"
)

var batchCmd = &cobra.Command{
	Use:   "batch <input-dir> <output-dir>",
	Short: "Run a pipeline over every image in a directory",
	Long: `Batch runs the same pipeline (see "pixelops run --help") over every
image file directly inside <input-dir>, writing results with the same base
name into <output-dir>. Files are processed in parallel.`,
	Args: cobra.ExactArgs(2),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringArray("step", nil, "Pipeline step (repeatable)")
	batchCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	batchCmd.Flags().Bool("progress", true, "Show progress bar")
	batchCmd.Flags().Bool("force", false, "Overwrite outputs that already exist")
	batchCmd.Flags().String("ext", "", "Output extension (default: same as input, WebP becomes PNG)")
	batchCmd.Flags().Bool("allow-failures", false, "Exit successfully even if some images fail")

	bindFlags(batchCmd, [][2]string{
		{"batch.steps", "step"},
		{"batch.workers", "workers"},
		{"batch.progress", "progress"},
		{"batch.force", "force"},
		{"batch.ext", "ext"},
		{"batch.allow_failures", "allow-failures"},
	})
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputDir, outputDir := args[0], args[1]
	workers := viper.GetInt("batch.workers")
	showProgress := viper.GetBool("batch.progress")
	force := viper.GetBool("batch.force")
	ext := viper.GetString("batch.ext")
	allowFailures := viper.GetBool("batch.allow_failures")

	if logger == nil {
		initLogging()
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	specs, err := stepSpecs(cmd, "batch.steps")
	if err != nil {
		return err
	}
	p, err := pipeline.Parse(specs, logger)
	if err != nil {
		return err
	}
	if ext != "" {
		if err := imageio.CheckOutput("x." + trimDot(ext)); err != nil {
			return err
		}
	}

	tasks, err := worker.DirTasks(inputDir, outputDir, ext)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		logger.Warn("No images found", "dir", inputDir)
		return nil
	}

	fp, err := pipeline.NewFileProcessor(p, force, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("Received interrupt signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	progress := worker.NewProgress(len(tasks), showProgress)
	pool := worker.New(worker.Config{
		Workers:    workers,
		Processor:  fp,
		OnProgress: progress.Callback(),
	})

	logger.Info("Starting batch", "input_dir", inputDir, "output_dir", outputDir, "images", len(tasks), "workers", workers, "steps", p.String())
	results := pool.Run(ctx, tasks)
	progress.Done()

	failed := worker.Failed(results)
	for _, r := range failed {
		logger.Error("Image processing failed", "input", r.Task.Input, "error", r.Err)
	}
	logger.Info(progress.Summary())

	if n := len(failed) + len(tasks) - len(results); n > 0 {
		if allowFailures {
			logger.Warn("Some images failed, but continuing due to --allow-failures flag", "failed_count", n)
			return nil
		}
		return fmt.Errorf("%d of %d images failed", n, len(tasks))
	}
	return nil
}

func trimDot(ext string) string {
	if len(ext) > 0 && ext[0] == '.' {
		return ext[1:]
	}
	return ext
}
