package worker

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const barWidth = 30

// Progress renders a one-line progress bar for a batch run.
type Progress struct {
	out     io.Writer
	start   time.Time
	mu      sync.Mutex
	state   progressState
	enabled bool
}

type progressState struct {
	completed int
	total     int
	failed    int
}

// NewProgress creates a tracker writing to stderr. A disabled tracker still
// counts but prints nothing.
func NewProgress(total int, enabled bool) *Progress {
	return &Progress{
		out:     os.Stderr,
		start:   time.Now(),
		state:   progressState{total: total},
		enabled: enabled,
	}
}

// Update records the latest counts and redraws the bar.
func (p *Progress) Update(completed, total, failed int) {
	p.mu.Lock()
	p.state = progressState{completed: completed, total: total, failed: failed}
	p.mu.Unlock()

	if p.enabled {
		p.Print()
	}
}

// Callback adapts the tracker to Config.OnProgress.
func (p *Progress) Callback() ProgressFunc {
	return p.Update
}

func (p *Progress) snapshot() (progressState, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state, time.Since(p.start)
}

// Print redraws the bar in place using a carriage return.
func (p *Progress) Print() {
	s, elapsed := p.snapshot()
	rate := perSecond(s.completed, elapsed)

	filled := 0
	if s.total > 0 {
		filled = min(s.completed*barWidth/s.total, barWidth)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\r[%s%s] %d/%d images",
		strings.Repeat("█", filled), strings.Repeat("░", barWidth-filled), s.completed, s.total)
	if s.failed > 0 {
		fmt.Fprintf(&b, " (%d failed)", s.failed)
	}
	fmt.Fprintf(&b, " - %.1f images/sec", rate)

	switch {
	case s.completed >= s.total:
		fmt.Fprintf(&b, " - Done in %s", formatDuration(elapsed))
	case rate > 0:
		eta := time.Duration(float64(s.total-s.completed) / rate * float64(time.Second))
		fmt.Fprintf(&b, " - ETA: %s", formatDuration(eta))
	}

	// trailing blanks overwrite a longer previous line
	b.WriteString("          ")
	fmt.Fprint(p.out, b.String())
}

// Done prints the final state followed by a newline.
func (p *Progress) Done() {
	if !p.enabled {
		return
	}
	p.Print()
	fmt.Fprintln(p.out)
}

// Summary describes the finished run in one line.
func (p *Progress) Summary() string {
	s, elapsed := p.snapshot()
	return fmt.Sprintf("Processed %d/%d images (%d failed) in %s (%.1f images/sec)",
		s.completed-s.failed, s.total, s.failed, formatDuration(elapsed), perSecond(s.completed, elapsed))
}

func perSecond(n int, d time.Duration) float64 {
	if n == 0 || d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.0fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
	}
}
