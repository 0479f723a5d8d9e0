package telemetry

import (
	"testing"
	"time"
)

func TestFrameCollector_Averages(t *testing.T) {
	fc := NewFrameCollector(10, 0)

	fc.Record(FrameSample{Steps: 0, Elapsed: 4 * time.Millisecond})
	fc.Record(FrameSample{Steps: 1, Elapsed: 16 * time.Millisecond})
	fc.Record(FrameSample{Steps: 3, Elapsed: 52 * time.Millisecond})
	fc.Record(FrameSample{Steps: 0, Elapsed: 8 * time.Millisecond})

	stats := fc.Stats()
	if stats.Frames != 4 {
		t.Errorf("frames = %d, want 4", stats.Frames)
	}
	if stats.AvgSteps != 1 {
		t.Errorf("avg steps = %v, want 1", stats.AvgSteps)
	}
	if stats.MaxSteps != 3 {
		t.Errorf("max steps = %d, want 3", stats.MaxSteps)
	}
	if stats.IdleFrames != 2 {
		t.Errorf("idle frames = %d, want 2", stats.IdleFrames)
	}
	if stats.AvgFrame != 20*time.Millisecond {
		t.Errorf("avg frame = %v, want 20ms", stats.AvgFrame)
	}
	if stats.FPS != 50 {
		t.Errorf("fps = %v, want 50", stats.FPS)
	}
}

func TestFrameCollector_RollingWindow(t *testing.T) {
	fc := NewFrameCollector(5, 0)

	for i := 0; i < 10; i++ {
		fc.Record(FrameSample{Steps: 1, Elapsed: time.Millisecond})
	}
	// Replace the whole window with busier frames.
	for i := 0; i < 5; i++ {
		fc.Record(FrameSample{Steps: 2, Dropped: 1, Elapsed: time.Millisecond})
	}

	stats := fc.Stats()
	if stats.Frames != 5 {
		t.Errorf("window frames = %d, want 5", stats.Frames)
	}
	if stats.AvgSteps != 2 {
		t.Errorf("avg steps = %v, want 2 (old samples should be evicted)", stats.AvgSteps)
	}
	if stats.TotalFrames != 15 || stats.TotalSteps != 20 || stats.TotalDropped != 5 {
		t.Errorf("totals = %d frames, %d steps, %d dropped", stats.TotalFrames, stats.TotalSteps, stats.TotalDropped)
	}
}

func TestFrameCollector_Empty(t *testing.T) {
	stats := NewFrameCollector(0, time.Second).Stats()
	if stats.Frames != 0 || stats.FPS != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestFrameCollector_NilSafe(t *testing.T) {
	var fc *FrameCollector
	fc.Record(FrameSample{Steps: 1})
	if stats := fc.Stats(); stats.TotalFrames != 0 {
		t.Errorf("nil collector reported %+v", stats)
	}
}

func TestFrameCollector_ReportResets(t *testing.T) {
	fc := NewFrameCollector(4, 10*time.Millisecond)
	for i := 0; i < 3; i++ {
		fc.Record(FrameSample{Steps: 1, Elapsed: 4 * time.Millisecond})
	}
	// 12ms accumulated: one report, 0 carried over.
	if fc.sinceReport != 0 {
		t.Errorf("sinceReport = %v, want 0 after a report", fc.sinceReport)
	}
	fc.Record(FrameSample{Steps: 1, Elapsed: 4 * time.Millisecond})
	if fc.sinceReport != 4*time.Millisecond {
		t.Errorf("sinceReport = %v, want 4ms", fc.sinceReport)
	}
}
