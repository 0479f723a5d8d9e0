package input

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestParseButton(t *testing.T) {
	tests := []struct {
		name    string
		want    Button
		wantErr bool
	}{
		{"left", ButtonLeft, false},
		{"Right", ButtonRight, false},
		{" middle ", ButtonMiddle, false},
		{"back", ButtonBack, false},
		{"thumb", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseButton(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseButton(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseButton(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestButtonStringRoundtrip(t *testing.T) {
	for _, b := range Buttons {
		got, err := ParseButton(b.String())
		if err != nil || got != b {
			t.Errorf("ParseButton(%q) = %v, %v; want %v", b.String(), got, err, b)
		}
	}
	if s := Button(42).String(); s != "button(42)" {
		t.Errorf("unknown button string = %q", s)
	}
}

func TestQueueDrains(t *testing.T) {
	var q Queue
	if evs := q.Poll(); evs != nil {
		t.Fatalf("empty queue polled %v", evs)
	}

	q.Push(Event{Kind: Closed}, Event{Kind: KeyPressed, Key: KeyEscape})
	if q.Len() != 2 {
		t.Fatalf("expected 2 pending events, got %d", q.Len())
	}

	evs := q.Poll()
	if len(evs) != 2 || evs[0].Kind != Closed || evs[1].Key != KeyEscape {
		t.Errorf("unexpected events %+v", evs)
	}
	if q.Len() != 0 {
		t.Errorf("queue not drained, %d left", q.Len())
	}
}

func TestTrackerPairsPressAndRelease(t *testing.T) {
	tr := NewTracker()
	tr.Press(ButtonLeft, r2.Vec{X: 100, Y: 100})

	if !tr.Pending(ButtonLeft) {
		t.Fatal("expected left press to be pending")
	}

	g, ok := tr.Release(ButtonLeft, r2.Vec{X: 200, Y: 100})
	if !ok {
		t.Fatal("expected completed gesture")
	}
	if d := g.Drag(); d.X != 100 || d.Y != 0 {
		t.Errorf("drag = %v, want (100, 0)", d)
	}
	if tr.Pending(ButtonLeft) {
		t.Error("press should be consumed by release")
	}
}

func TestTrackerIgnoresOrphanRelease(t *testing.T) {
	tr := NewTracker()
	tr.Press(ButtonLeft, r2.Vec{X: 10, Y: 10})

	if _, ok := tr.Release(ButtonRight, r2.Vec{X: 50, Y: 50}); ok {
		t.Error("release on a button without press must not complete a gesture")
	}
	if !tr.Pending(ButtonLeft) {
		t.Error("left press should survive a right release")
	}
}

func TestTrackerSecondPressReplacesFirst(t *testing.T) {
	tr := NewTracker()
	tr.Press(ButtonLeft, r2.Vec{X: 0, Y: 0})
	tr.Press(ButtonLeft, r2.Vec{X: 5, Y: 5})

	g, _ := tr.Release(ButtonLeft, r2.Vec{X: 10, Y: 5})
	if d := g.Drag(); d.X != 5 || d.Y != 0 {
		t.Errorf("drag = %v, want (5, 0)", d)
	}
}
