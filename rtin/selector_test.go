package rtin

import "testing"

func TestSelectThresholdOneIsRootsOnly(t *testing.T) {
	hm := flatHeightmap(8, 10000)
	em := BuildErrorMap(hm, nil)

	selected := Select(hm, em, 1, nil)
	if len(selected) != 2 {
		t.Fatalf("Select at threshold 1 on flat heightmap = %d triangles, want 2 (the two roots)", len(selected))
	}
	seen := map[BinID]bool{}
	for _, b := range selected {
		seen[b] = true
	}
	if !seen[rootBottomLeft] || !seen[rootTopRight] {
		t.Fatalf("Select at threshold 1 = %v, want exactly the two root triangles", selected)
	}
}

func TestSelectThresholdZeroIsFullResolution(t *testing.T) {
	w := int32(8)
	samples := make([]uint16, w*w)
	for y := int32(0); y < w; y++ {
		for x := int32(0); x < w; x++ {
			// A quadratic surface: every second difference along every
			// hypotenuse direction (a, b) is proportional to a^2+b^2 > 0,
			// so no interior triangle ever measures exactly zero error.
			samples[y*w+x] = uint16((x*x + y*y) * 100)
		}
	}
	hm, err := NewHeightmap(w, samples)
	if err != nil {
		t.Fatal(err)
	}
	em := BuildErrorMap(hm, nil)

	selected := Select(hm, em, 0, nil)

	lastLevel := levelCount(w)
	for _, b := range selected {
		if int32(b.Level()) != lastLevel {
			t.Errorf("Select at threshold 0 kept non-leaf bin_id %#b at level %d, want level %d",
				uint32(b), b.Level(), lastLevel)
		}
	}
	wantLeaves := w * w * 2
	if int32(len(selected)) != wantLeaves {
		t.Fatalf("Select at threshold 0 = %d triangles, want %d (full resolution)", len(selected), wantLeaves)
	}
}

func TestSelectClampsOutOfRangeThreshold(t *testing.T) {
	hm := flatHeightmap(4, 5000)
	em := BuildErrorMap(hm, nil)

	below := Select(hm, em, -10, nil)
	atZero := Select(hm, em, 0, nil)
	if len(below) != len(atZero) {
		t.Fatalf("Select(-10) = %d triangles, Select(0) = %d; negative threshold should clamp to 0", len(below), len(atZero))
	}

	above := Select(hm, em, 10, nil)
	atOne := Select(hm, em, 1, nil)
	if len(above) != len(atOne) {
		t.Fatalf("Select(10) = %d triangles, Select(1) = %d; overshooting threshold should clamp to 1", len(above), len(atOne))
	}
}
