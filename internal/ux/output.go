package ux

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// Sink writes timestamped progress lines to a destination. Build runs
// tee a Sink into both the console and the per-run log file, so lines
// carry no color codes.
type Sink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSink returns a Sink writing to w. A nil w discards everything.
func NewSink(w io.Writer) *Sink {
	if w == nil {
		w = io.Discard
	}
	return &Sink{w: w}
}

// Line writes one timestamped line.
func (s *Sink) Line(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "[%s] %s\n", timestamp(), fmt.Sprintf(format, args...))
}

// Write passes raw bytes through untouched, letting the sink double as
// the destination for streamed subprocess output.
func (s *Sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Tee returns a Sink that writes each line to both destinations.
func (s *Sink) Tee(w io.Writer) *Sink {
	if w == nil {
		return s
	}
	return NewSink(io.MultiWriter(s.w, w))
}

// Headerf prints a banner separating one lecture build from the next.
func Headerf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\n%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
	fmt.Fprintf(w, "%s[%s]%s  %s%s%s\n",
		Dim, timestamp(), Reset, Bold, fmt.Sprintf(format, args...), Reset)
	fmt.Fprintf(w, "%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
}

// Successf prints a green check notification.
func Successf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s✓ %s%s\n", Green, fmt.Sprintf(format, args...), Reset)
}

// Warnf prints a yellow warning notification.
func Warnf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s⚠ %s%s\n", Yellow, fmt.Sprintf(format, args...), Reset)
}

// Failf prints a red failure notification.
func Failf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s✗ %s%s\n", Red, fmt.Sprintf(format, args...), Reset)
}

// Infof prints a dim informational line.
func Infof(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s→ %s%s\n", Dim, fmt.Sprintf(format, args...), Reset)
}
