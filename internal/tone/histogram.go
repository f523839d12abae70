package tone

import "github.com/MeKo-Tech/pixelops/internal/raster"

// Histogram counts the occurrences of each 8-bit level in a band.
type Histogram [256]int

// ComputeHistogram counts the levels of b.
func ComputeHistogram(b *raster.Band) Histogram {
	var h Histogram
	for _, v := range b.Pix {
		h[v]++
	}
	return h
}

// Total is the number of samples counted.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h {
		total += c
	}
	return total
}

// Cumulative returns the running sum of the counts.
func (h *Histogram) Cumulative() [256]int {
	var cum [256]int
	sum := 0
	for i, c := range h {
		sum += c
		cum[i] = sum
	}
	return cum
}

// Min returns the lowest level with a nonzero count, or -1 when empty.
func (h *Histogram) Min() int {
	for i, c := range h {
		if c > 0 {
			return i
		}
	}
	return -1
}

// Max returns the highest level with a nonzero count, or -1 when empty.
func (h *Histogram) Max() int {
	for i := len(h) - 1; i >= 0; i-- {
		if h[i] > 0 {
			return i
		}
	}
	return -1
}
