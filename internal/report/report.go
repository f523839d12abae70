// Package report formats histograms and band outcomes as plain text.
package report

import (
	"fmt"
	"io"

	"github.com/MeKo-Tech/pixelops/internal/hue"
	"github.com/MeKo-Tech/pixelops/internal/tone"
)

// WriteHistogram prints the nonzero levels of a band histogram, one per line.
func WriteHistogram(w io.Writer, band int, h tone.Histogram) error {
	if _, err := fmt.Fprintf(w, "Histogram band %d (%d pixels):\n", band, h.Total()); err != nil {
		return err
	}
	for level, count := range h {
		if count == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "level %d: %d pixels\n", level, count); err != nil {
			return err
		}
	}
	return nil
}

// WriteHueHistogram prints the nonzero hue bins.
func WriteHueHistogram(w io.Writer, h hue.Histogram) error {
	if _, err := fmt.Fprintln(w, "Hue histogram:"); err != nil {
		return err
	}
	for deg, count := range h {
		if count == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "hue %d°: %d pixels\n", deg, count); err != nil {
			return err
		}
	}
	return nil
}

// WritePercentHistogram prints the nonzero bins of a saturation or value
// histogram under the given title.
func WritePercentHistogram(w io.Writer, title string, h hue.PercentHistogram) error {
	if _, err := fmt.Fprintf(w, "%s histogram:\n", title); err != nil {
		return err
	}
	for pct, count := range h {
		if count == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s %d%%: %d pixels\n", title, pct, count); err != nil {
			return err
		}
	}
	return nil
}

// WriteHSVHistograms prints hue, saturation and value histograms separated by
// blank lines.
func WriteHSVHistograms(w io.Writer, hs hue.HSVHistograms) error {
	if err := WriteHueHistogram(w, hs.Hue); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := WritePercentHistogram(w, "Saturation", hs.Saturation); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return WritePercentHistogram(w, "Value", hs.Value)
}

// WriteOutcomes prints a notice for every uniform band reported by op.
// Non-degenerate bands produce no output.
func WriteOutcomes(w io.Writer, op string, outcomes []tone.Outcome) error {
	effect := "left unchanged"
	if op == "equalize" {
		effect = "mapped to 0"
	}
	for _, o := range tone.Uniforms(outcomes) {
		if _, err := fmt.Fprintf(w, "%s: band %d is uniform (value %d), %s\n", op, o.Band, o.Min, effect); err != nil {
			return err
		}
	}
	return nil
}
