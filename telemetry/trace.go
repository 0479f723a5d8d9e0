package telemetry

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/planes/game"
)

// TraceRecord is one CSV row: the state of one plane after one tick.
type TraceRecord struct {
	Tick    int64   `csv:"tick"`
	Plane   int     `csv:"plane"`
	Name    string  `csv:"name"`
	X       float64 `csv:"x"`
	Y       float64 `csv:"y"`
	VX      float64 `csv:"vx"`
	VY      float64 `csv:"vy"`
	Heading float64 `csv:"heading"`
}

// TraceWriter writes plane states as CSV every interval ticks.
// A nil *TraceWriter is a valid no-op writer.
type TraceWriter struct {
	w        io.Writer
	closer   io.Closer
	interval int64

	headerWritten bool
	failed        bool
	rows          int64
}

// NewTraceWriter writes to w. interval < 1 means every tick.
func NewTraceWriter(w io.Writer, interval int) *TraceWriter {
	if interval < 1 {
		interval = 1
	}
	return &TraceWriter{w: w, interval: int64(interval)}
}

// OpenTrace creates the trace file at path.
// Returns nil if path is empty (trace disabled).
func OpenTrace(path string, interval int) (*TraceWriter, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating trace directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}
	tw := NewTraceWriter(f, interval)
	tw.closer = f
	return tw, nil
}

// Record writes one row per plane when tick falls on the interval.
// The first write error is logged and disables the trace.
func (t *TraceWriter) Record(tick int64, planes []game.PlaneState) {
	if t == nil || t.failed || tick%t.interval != 0 {
		return
	}

	records := make([]TraceRecord, len(planes))
	for i, p := range planes {
		records[i] = TraceRecord{
			Tick:    tick,
			Plane:   p.Index + 1,
			Name:    p.Name,
			X:       p.Position.X,
			Y:       p.Position.Y,
			VX:      p.Velocity.X,
			VY:      p.Velocity.Y,
			Heading: p.Heading,
		}
	}

	var err error
	if !t.headerWritten {
		err = gocsv.Marshal(records, t.w)
		t.headerWritten = true
	} else {
		err = gocsv.MarshalWithoutHeaders(records, t.w)
	}
	if err != nil {
		t.failed = true
		slog.Warn("trace_write_failed", "tick", tick, "error", err)
		return
	}
	t.rows += int64(len(records))
}

// Rows returns the number of data rows written.
func (t *TraceWriter) Rows() int64 {
	if t == nil {
		return 0
	}
	return t.rows
}

// Close closes the underlying file, if the writer opened one.
func (t *TraceWriter) Close() error {
	if t == nil || t.closer == nil {
		return nil
	}
	return t.closer.Close()
}
