package gradient

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MeKo-Tech/pixelops/internal/kernel"
)

// ErrUnknownPreset is returned by Preset for names not in the table.
var ErrUnknownPreset = errors.New("gradient: unknown preset")

// Pair is a horizontal/vertical kernel pair.
type Pair struct {
	Name string
	X    kernel.Kernel
	Y    kernel.Kernel
}

var (
	// Sobel weights the center row/column by 2.
	Sobel = Pair{
		Name: "sobel",
		X:    kernel.MustNew([][]int{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}),
		Y:    kernel.MustNew([][]int{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}),
	}

	// Prewitt is the unweighted 3x3 difference.
	Prewitt = Pair{
		Name: "prewitt",
		X:    kernel.MustNew([][]int{{-1, 0, 1}, {-1, 0, 1}, {-1, 0, 1}}),
		Y:    kernel.MustNew([][]int{{-1, -1, -1}, {0, 0, 0}, {1, 1, 1}}),
	}

	// Central is the minimal 1x3 / 3x1 central difference.
	Central = Pair{
		Name: "central",
		X:    kernel.MustNew([][]int{{-1, 0, 1}}),
		Y:    kernel.MustNew([][]int{{-1}, {0}, {1}}),
	}
)

var presets = map[string]Pair{
	Sobel.Name:   Sobel,
	Prewitt.Name: Prewitt,
	Central.Name: Central,
}

// Preset looks up a pair by case-insensitive name.
func Preset(name string) (Pair, error) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Pair{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownPreset, name, strings.Join(Presets(), ", "))
	}
	return p, nil
}

// Presets returns the preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
