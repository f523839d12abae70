// Package pipeline chains the image engines into a sequence of named steps and
// runs that sequence over files.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/MeKo-Tech/pixelops/internal/raster"
	"github.com/MeKo-Tech/pixelops/internal/tone"
)

// ErrEmpty is returned by Parse when no steps are given.
var ErrEmpty = errors.New("pipeline: no steps")

// Pipeline applies its steps in order. A Pipeline holds no per-image state
// and may be shared between goroutines.
type Pipeline struct {
	Steps  []Step
	logger *slog.Logger
}

// Parse builds a pipeline from step specs such as "gray", "mean:3" or
// "convolve:1,2,1;2,4,2;1,2,1".
func Parse(specs []string, logger *slog.Logger) (*Pipeline, error) {
	if len(specs) == 0 {
		return nil, ErrEmpty
	}

	steps := make([]Step, 0, len(specs))
	for i, spec := range specs {
		s, err := ParseStep(spec)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps = append(steps, s)
	}
	return &Pipeline{Steps: steps, logger: logger}, nil
}

// Notice holds the uniform bands one step reported.
type Notice struct {
	Step     string
	Outcomes []tone.Outcome
}

// Apply runs every step on img. Tone steps modify their input in place, so
// callers that need the original must pass a clone. Uniform bands reported
// by stretch or equalization are logged and returned as notices; they never
// fail the run.
func (p *Pipeline) Apply(img *raster.Image) (*raster.Image, []Notice, error) {
	cur := img
	var notices []Notice
	for i, s := range p.Steps {
		p.log().Debug("Applying step", "index", i+1, "step", s.String(), "bands", cur.NumBands())

		next, outcomes, err := s.apply(cur)
		if err != nil {
			return nil, nil, fmt.Errorf("step %d (%s): %w", i+1, s, err)
		}
		if uniform := tone.Uniforms(outcomes); len(uniform) > 0 {
			for _, o := range uniform {
				p.log().Info("Uniform band", "step", s.String(), "band", o.Band, "value", o.Min)
			}
			notices = append(notices, Notice{Step: s.Name, Outcomes: uniform})
		}
		cur = next
	}
	return cur, notices, nil
}

// String lists the steps separated by " -> ".
func (p *Pipeline) String() string {
	out := ""
	for i, s := range p.Steps {
		if i > 0 {
			out += " -> "
		}
		out += s.String()
	}
	return out
}

func (p *Pipeline) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return slog.Default()
}
