package rtin

import "testing"

func TestApproxEqual(t *testing.T) {
	if !approxEqual(1.0, 1.0+1e-7) {
		t.Error("approxEqual(1.0, 1.0+1e-7) = false, want true")
	}
	if approxEqual(1.0, 1.1) {
		t.Error("approxEqual(1.0, 1.1) = true, want false")
	}
}
