package telemetry

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/planes/game"
)

func samplePlanes() []game.PlaneState {
	return []game.PlaneState{
		{Index: 0, Name: "plane1", Position: r2.Vec{X: 300, Y: 180}, Velocity: r2.Vec{X: 1, Y: -1}, Heading: 45},
		{Index: 1, Name: "plane2", Position: r2.Vec{X: 500, Y: 300}, Velocity: r2.Vec{X: 2, Y: 0}, Heading: 90},
	}
}

func TestTraceWriter_HeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTraceWriter(&buf, 1)

	tw.Record(1, samplePlanes())
	tw.Record(2, samplePlanes())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header + 4 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "tick,plane,name,x,y") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if strings.Count(buf.String(), "tick,") != 1 {
		t.Error("header written more than once")
	}
	if tw.Rows() != 4 {
		t.Errorf("rows = %d, want 4", tw.Rows())
	}

	var records []TraceRecord
	if err := gocsv.UnmarshalBytes(buf.Bytes(), &records); err != nil {
		t.Fatalf("reading trace back: %v", err)
	}
	if records[3].Tick != 2 || records[3].Plane != 2 || records[3].VX != 2 {
		t.Errorf("last record = %+v", records[3])
	}
}

func TestTraceWriter_Interval(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTraceWriter(&buf, 10)

	for tick := int64(1); tick <= 30; tick++ {
		tw.Record(tick, samplePlanes()[:1])
	}
	if tw.Rows() != 3 {
		t.Errorf("rows = %d, want 3 (ticks 10, 20, 30)", tw.Rows())
	}
}

type failingWriter struct{ writes int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	return 0, errors.New("disk full")
}

func TestTraceWriter_DisablesAfterError(t *testing.T) {
	fw := &failingWriter{}
	tw := NewTraceWriter(fw, 1)

	tw.Record(1, samplePlanes())
	writes := fw.writes
	tw.Record(2, samplePlanes())

	if fw.writes != writes {
		t.Error("trace kept writing after a failure")
	}
	if tw.Rows() != 0 {
		t.Errorf("rows = %d, want 0", tw.Rows())
	}
}

func TestTraceWriter_NilSafe(t *testing.T) {
	tw, err := OpenTrace("", 1)
	if err != nil || tw != nil {
		t.Fatalf("OpenTrace(\"\") = %v, %v; want nil, nil", tw, err)
	}
	tw.Record(1, samplePlanes())
	if err := tw.Close(); err != nil {
		t.Errorf("Close on nil writer: %v", err)
	}
}

func TestOpenTrace_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "trace.csv")
	tw, err := OpenTrace(path, 1)
	if err != nil {
		t.Fatalf("OpenTrace: %v", err)
	}
	tw.Record(1, samplePlanes())
	if err := tw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading trace: %v", err)
	}
	if !strings.Contains(string(data), "plane2") {
		t.Errorf("trace missing plane2 row:\n%s", data)
	}
}
