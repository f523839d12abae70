package pipeline

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/pixelops/internal/convolve"
	"github.com/MeKo-Tech/pixelops/internal/gradient"
	"github.com/MeKo-Tech/pixelops/internal/hue"
	"github.com/MeKo-Tech/pixelops/internal/kernel"
	"github.com/MeKo-Tech/pixelops/internal/raster"
	"github.com/MeKo-Tech/pixelops/internal/tone"
)

var (
	// ErrUnknownStep is returned for step names that are not registered.
	ErrUnknownStep = errors.New("pipeline: unknown step")
	// ErrBadArgument is returned when a step argument is missing or malformed.
	ErrBadArgument = errors.New("pipeline: bad step argument")
)

// applyFunc runs one step. Tone steps work in place and return their input;
// neighborhood steps return a new image. Outcomes are only set by steps that
// derive statistics from the band.
type applyFunc func(img *raster.Image) (*raster.Image, []tone.Outcome, error)

// Step is one parsed processing stage.
type Step struct {
	Name  string
	Arg   string
	apply applyFunc
}

// String renders the step in the form accepted by ParseStep.
func (s Step) String() string {
	if s.Arg == "" {
		return s.Name
	}
	return s.Name + ":" + s.Arg
}

type builder struct {
	needsArg bool
	build    func(arg string) (applyFunc, error)
}

var builders = map[string]builder{
	"gray":        {build: noArg(grayStep)},
	"stretch":     {build: noArg(toneStep(tone.ExtendDynamicRange))},
	"stretch-lut": {build: noArg(toneStep(tone.ExtendDynamicRangeLUT))},
	"equalize":    {build: noArg(toneStep(tone.HistogramEqualization))},
	"threshold":   {needsArg: true, build: buildThreshold},
	"brightness":  {needsArg: true, build: buildBrightness},
	"mean":        {needsArg: true, build: buildMean},
	"convolve":    {needsArg: true, build: buildConvolve},
	"gradient":    {needsArg: true, build: buildGradient},
	"blur":        {needsArg: true, build: buildBlur},
	"colorize":    {needsArg: true, build: buildColorize},
}

// StepNames lists the registered step names in sorted order.
func StepNames() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseStep parses "name" or "name:arg".
func ParseStep(spec string) (Step, error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(spec), ":")
	name = strings.ToLower(strings.TrimSpace(name))
	arg = strings.TrimSpace(arg)

	b, ok := builders[name]
	if !ok {
		return Step{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownStep, name, strings.Join(StepNames(), ", "))
	}
	if b.needsArg && arg == "" {
		return Step{}, fmt.Errorf("%w: %s requires an argument", ErrBadArgument, name)
	}
	if !b.needsArg && arg != "" {
		return Step{}, fmt.Errorf("%w: %s takes no argument, got %q", ErrBadArgument, name, arg)
	}

	fn, err := b.build(arg)
	if err != nil {
		return Step{}, fmt.Errorf("step %s: %w", name, err)
	}
	return Step{Name: name, Arg: arg, apply: fn}, nil
}

func noArg(fn applyFunc) func(string) (applyFunc, error) {
	return func(string) (applyFunc, error) { return fn, nil }
}

func toneStep(fn func(*raster.Image) []tone.Outcome) applyFunc {
	return func(img *raster.Image) (*raster.Image, []tone.Outcome, error) {
		return img, fn(img), nil
	}
}

func grayStep(img *raster.Image) (*raster.Image, []tone.Outcome, error) {
	if img.NumBands() == 1 {
		return img, nil, nil
	}
	g, err := raster.Grayscale(img)
	if err != nil {
		return nil, nil, err
	}
	out, err := raster.FromBands(g)
	return out, nil, err
}

func parseInt(arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadArgument, arg)
	}
	return v, nil
}

func parseFloat(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrBadArgument, arg)
	}
	return v, nil
}

func buildThreshold(arg string) (applyFunc, error) {
	t, err := parseInt(arg)
	if err != nil {
		return nil, err
	}
	return func(img *raster.Image) (*raster.Image, []tone.Outcome, error) {
		tone.Threshold(img, t)
		return img, nil, nil
	}, nil
}

func buildBrightness(arg string) (applyFunc, error) {
	delta, err := parseInt(arg)
	if err != nil {
		return nil, err
	}
	return func(img *raster.Image) (*raster.Image, []tone.Outcome, error) {
		tone.AdjustBrightness(img, delta)
		return img, nil, nil
	}, nil
}

func buildMean(arg string) (applyFunc, error) {
	size, err := parseInt(arg)
	if err != nil {
		return nil, err
	}
	if size < 1 || size%2 == 0 {
		return nil, fmt.Errorf("%w: mean size must be odd and positive, got %d", convolve.ErrInvalidSize, size)
	}
	return func(img *raster.Image) (*raster.Image, []tone.Outcome, error) {
		out, err := convolve.MeanImage(img, size)
		return out, nil, err
	}, nil
}

func buildConvolve(arg string) (applyFunc, error) {
	k, err := kernel.Parse(arg)
	if err != nil {
		return nil, err
	}
	return func(img *raster.Image) (*raster.Image, []tone.Outcome, error) {
		out, err := convolve.ConvolveImage(img, k)
		return out, nil, err
	}, nil
}

func buildGradient(arg string) (applyFunc, error) {
	p, err := gradient.Preset(arg)
	if err != nil {
		return nil, err
	}
	return func(img *raster.Image) (*raster.Image, []tone.Outcome, error) {
		bands := make([]*raster.Band, img.NumBands())
		for i, b := range img.Bands {
			mag, err := gradient.Apply(b, p)
			if err != nil {
				return nil, nil, err
			}
			bands[i] = mag
		}
		out, err := raster.FromBands(bands...)
		return out, nil, err
	}, nil
}

func buildBlur(arg string) (applyFunc, error) {
	sigma, err := parseFloat(arg)
	if err != nil {
		return nil, err
	}
	if sigma < 0 {
		return nil, fmt.Errorf("%w: blur sigma must not be negative, got %v", ErrBadArgument, sigma)
	}
	return func(img *raster.Image) (*raster.Image, []tone.Outcome, error) {
		return raster.BlurImage(img, float32(sigma)), nil, nil
	}, nil
}

func buildColorize(arg string) (applyFunc, error) {
	h, err := parseFloat(arg)
	if err != nil {
		return nil, err
	}
	return func(img *raster.Image) (*raster.Image, []tone.Outcome, error) {
		out, err := hue.ColorizeImage(img, h)
		return out, nil, err
	}, nil
}
