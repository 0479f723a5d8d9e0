// Package telemetry collects frame statistics and writes diagnostic traces.
package telemetry

import (
	"log/slog"
	"time"
)

// FrameSample describes one rendered frame of the fixed-step loop.
type FrameSample struct {
	Steps   int           // Updates run before the render
	Dropped int           // Updates skipped by the per-frame cap
	Elapsed time.Duration // Clock time since the previous frame
}

// FrameCollector tracks frame samples over a rolling window and logs a
// summary every reportEvery of accumulated frame time.
type FrameCollector struct {
	windowSize  int
	samples     []FrameSample
	writeIndex  int
	sampleCount int

	reportEvery time.Duration
	sinceReport time.Duration

	totalFrames  int64
	totalSteps   int64
	totalDropped int64
}

// NewFrameCollector creates a collector.
// windowSize: number of frames to average over (e.g., 120).
// reportEvery: interval between frame_stats log lines; 0 disables logging.
func NewFrameCollector(windowSize int, reportEvery time.Duration) *FrameCollector {
	if windowSize < 1 {
		windowSize = 120
	}
	return &FrameCollector{
		windowSize:  windowSize,
		samples:     make([]FrameSample, windowSize),
		reportEvery: reportEvery,
	}
}

// Record adds one frame sample. Safe on a nil collector.
func (c *FrameCollector) Record(s FrameSample) {
	if c == nil {
		return
	}
	c.samples[c.writeIndex] = s
	c.writeIndex = (c.writeIndex + 1) % c.windowSize
	if c.sampleCount < c.windowSize {
		c.sampleCount++
	}

	c.totalFrames++
	c.totalSteps += int64(s.Steps)
	c.totalDropped += int64(s.Dropped)

	if c.reportEvery <= 0 {
		return
	}
	c.sinceReport += s.Elapsed
	if c.sinceReport >= c.reportEvery {
		c.sinceReport = 0
		slog.Info("frame_stats", "stats", c.Stats())
	}
}

// FrameStats holds aggregated frame statistics.
type FrameStats struct {
	// Rolling window
	Frames     int
	AvgSteps   float64
	MaxSteps   int
	IdleFrames int // Frames that rendered without any update
	AvgFrame   time.Duration
	FPS        float64

	// Lifetime totals
	TotalFrames  int64
	TotalSteps   int64
	TotalDropped int64
}

// Stats computes aggregated statistics over the current window.
func (c *FrameCollector) Stats() FrameStats {
	if c == nil {
		return FrameStats{}
	}
	stats := FrameStats{
		Frames:       c.sampleCount,
		TotalFrames:  c.totalFrames,
		TotalSteps:   c.totalSteps,
		TotalDropped: c.totalDropped,
	}
	if c.sampleCount == 0 {
		return stats
	}

	var steps int
	var elapsed time.Duration
	for i := 0; i < c.sampleCount; i++ {
		s := c.samples[i]
		steps += s.Steps
		elapsed += s.Elapsed
		if s.Steps > stats.MaxSteps {
			stats.MaxSteps = s.Steps
		}
		if s.Steps == 0 {
			stats.IdleFrames++
		}
	}

	stats.AvgSteps = float64(steps) / float64(c.sampleCount)
	stats.AvgFrame = elapsed / time.Duration(c.sampleCount)
	if stats.AvgFrame > 0 {
		stats.FPS = float64(time.Second) / float64(stats.AvgFrame)
	}
	return stats
}

// LogValue implements slog.LogValuer for structured logging.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("frames", s.Frames),
		slog.Float64("avg_steps", s.AvgSteps),
		slog.Int("max_steps", s.MaxSteps),
		slog.Int("idle_frames", s.IdleFrames),
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Float64("fps", s.FPS),
		slog.Int64("total_frames", s.TotalFrames),
		slog.Int64("total_steps", s.TotalSteps),
		slog.Int64("total_dropped", s.TotalDropped),
	)
}
