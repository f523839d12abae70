package tone

import "github.com/MeKo-Tech/pixelops/internal/raster"

// LUT maps every possible 8-bit sample to a replacement value.
type LUT [256]uint8

// Identity returns the table that maps every value to itself.
func Identity() LUT {
	var l LUT
	for i := range l {
		l[i] = uint8(i)
	}
	return l
}

// Apply replaces every sample of b by its table entry.
func (l *LUT) Apply(b *raster.Band) {
	for i, v := range b.Pix {
		b.Pix[i] = l[v]
	}
}
