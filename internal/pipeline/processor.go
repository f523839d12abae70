package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/MeKo-Tech/pixelops/internal/imageio"
	"github.com/MeKo-Tech/pixelops/internal/report"
)

// FileProcessor loads an image, runs a pipeline on it and saves the result.
type FileProcessor struct {
	pipeline *Pipeline
	logger   *slog.Logger
	force    bool

	mu      sync.Mutex
	notices io.Writer
}

// NewFileProcessor prepares a processor. When force is false, outputs that
// already exist are skipped.
func NewFileProcessor(p *Pipeline, force bool, logger *slog.Logger) (*FileProcessor, error) {
	if p == nil || len(p.Steps) == 0 {
		return nil, ErrEmpty
	}
	return &FileProcessor{pipeline: p, force: force, logger: logger}, nil
}

// ReportNotices makes Process print uniform-band notices to w. Writes from
// concurrent calls are serialized.
func (fp *FileProcessor) ReportNotices(w io.Writer) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.notices = w
}

// Process runs the pipeline from input to output. It returns the output path,
// which is also returned when the file was skipped.
func (fp *FileProcessor) Process(ctx context.Context, input, output string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !fp.force {
		if _, err := os.Stat(output); err == nil {
			fp.log().Info("Output already exists; skipping", "input", input, "path", output)
			return output, nil
		}
	}

	fp.log().Debug("Loading image", "path", input)
	img, err := imageio.Load(input)
	if err != nil {
		return "", err
	}

	result, notices, err := fp.pipeline.Apply(img)
	if err != nil {
		return "", fmt.Errorf("process %s: %w", input, err)
	}
	fp.writeNotices(input, notices)

	// No writes after cancellation.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if dir := filepath.Dir(output); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output dir: %w", err)
		}
	}

	fp.log().Info("Writing image", "input", input, "path", output, "steps", fp.pipeline.String())
	if err := imageio.Save(output, result); err != nil {
		return "", err
	}
	return output, nil
}

func (fp *FileProcessor) writeNotices(input string, notices []Notice) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	if fp.notices == nil {
		return
	}
	for _, n := range notices {
		if err := report.WriteOutcomes(fp.notices, n.Step, n.Outcomes); err != nil {
			fp.log().Warn("Failed to write notice", "input", input, "error", err)
			return
		}
	}
}

func (fp *FileProcessor) log() *slog.Logger {
	if fp.logger != nil {
		return fp.logger
	}
	return slog.Default()
}
