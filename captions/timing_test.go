package captions

import (
	"math"
	"testing"
)

func TestAllocateEmpty(t *testing.T) {
	if got := Allocate(nil, 8.0, 0.4, 0.2); got != nil {
		t.Fatalf("Allocate(nil) = %v; want nil", got)
	}
}

func TestAllocateProportions(t *testing.T) {
	chunks := []Chunk{
		{Text: "a", WordCount: 5},
		{Text: "b", WordCount: 3},
		{Text: "c", WordCount: 3},
		{Text: "d", WordCount: 9},
	}
	got := Allocate(chunks, 8.0, 0.4, 0.2)
	if len(got) != 4 {
		t.Fatalf("Allocate returned %d intervals; want 4", len(got))
	}

	const available = 7.4
	wantDur := []float64{
		available * 5 / 20,
		available * 3 / 20,
		available * 3 / 20,
		available * 9 / 20,
	}

	if got[0].Start != 0.4 {
		t.Fatalf("first interval starts at %v; want 0.4", got[0].Start)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Start <= got[i-1].Start {
			t.Fatalf("starts not strictly increasing at %d: %v", i, got)
		}
		if math.Abs(got[i].Start-got[i-1].End) > 1e-9 {
			t.Fatalf("gap between interval %d and %d: %v", i-1, i, got)
		}
	}
	for i := range got[:3] {
		if d := got[i].End - got[i].Start; math.Abs(d-wantDur[i]) > 1e-9 {
			t.Fatalf("interval %d duration = %v; want %v", i, d, wantDur[i])
		}
	}
	if last := got[3]; last.End > 8.0-0.05+1e-9 {
		t.Fatalf("last interval ends at %v; want <= 7.95", last.End)
	}
}

func TestAllocateClampsLastEnd(t *testing.T) {
	// lead-in + tail-out barely fit: the computed final end would exceed
	// total-0.05 and must be clamped.
	chunks := []Chunk{{Text: "only", WordCount: 3}}
	got := Allocate(chunks, 8.0, 0.4, 0.0)
	if got[0].End != 8.0-0.05 {
		t.Fatalf("last end = %v; want %v", got[0].End, 8.0-0.05)
	}
}

func TestAllocateDegenerateWindow(t *testing.T) {
	// When lead-in and tail-out eat the whole duration the window is
	// floored at 0.5s so widths stay positive.
	chunks := []Chunk{{Text: "a", WordCount: 3}, {Text: "b", WordCount: 3}}
	got := Allocate(chunks, 1.0, 0.6, 0.5)
	for i, iv := range got {
		if iv.End <= iv.Start {
			t.Fatalf("interval %d not positive width: %+v", i, iv)
		}
	}
}
