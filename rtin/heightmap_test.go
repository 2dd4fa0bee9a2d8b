package rtin

import "testing"

func TestNewHeightmapRejectsNonPowerOfTwo(t *testing.T) {
	if _, err := NewHeightmap(3, make([]uint16, 9)); err == nil {
		t.Fatal("NewHeightmap(3, ...) = nil error, want PreconditionError")
	}
}

func TestNewHeightmapRejectsTooSmall(t *testing.T) {
	if _, err := NewHeightmap(1, make([]uint16, 1)); err == nil {
		t.Fatal("NewHeightmap(1, ...) = nil error, want PreconditionError")
	}
}

func TestNewHeightmapRejectsWrongSampleCount(t *testing.T) {
	if _, err := NewHeightmap(4, make([]uint16, 15)); err == nil {
		t.Fatal("NewHeightmap(4, 15 samples) = nil error, want PreconditionError")
	}
}

func TestNewHeightmapAccepts(t *testing.T) {
	hm, err := NewHeightmap(4, make([]uint16, 16))
	if err != nil {
		t.Fatalf("NewHeightmap(4, 16 samples) = %v, want nil error", err)
	}
	if hm.GridSize() != 5 {
		t.Fatalf("GridSize() = %d, want 5", hm.GridSize())
	}
}

func TestHeightmapSampleClampsToEdge(t *testing.T) {
	samples := []uint16{10, 20, 30, 40}
	hm, err := NewHeightmap(2, samples)
	if err != nil {
		t.Fatal(err)
	}
	// Lattice index W (2) sits one past the last backing pixel on each
	// axis; it must clamp to W-1, not index out of bounds.
	got := hm.Sample(Point{2, 2})
	want := hm.Sample(Point{1, 1})
	if got != want {
		t.Fatalf("Sample at outer lattice edge = %v, want clamp to %v", got, want)
	}
}
