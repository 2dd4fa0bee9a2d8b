package rtin

import "testing"

func TestCornersRootTopRight(t *testing.T) {
	c := Corners(0b11, 4)
	want := Triangle{A: Point{0, 0}, B: Point{4, 4}, C: Point{4, 0}}
	if c != want {
		t.Errorf("Corners(0b11, 4) = %+v, want %+v", c, want)
	}
}

func TestCornersOneDescent(t *testing.T) {
	c := Corners(0b110, 4)
	want := Triangle{A: Point{0, 4}, B: Point{4, 4}, C: Point{2, 2}}
	if c != want {
		t.Errorf("Corners(0b110, 4) = %+v, want %+v", c, want)
	}
}

func TestCornersMidpointIsLattice(t *testing.T) {
	// P2/I2: every non-leaf triangle's hypotenuse endpoints share parity,
	// so the midpoint always lands exactly on a lattice point.
	w := int32(16)
	for level := uint32(0); level < 6; level++ {
		for idx := indexLevelStart(level); idx < indexLevelStart(level+1); idx++ {
			b := IndexToBinID(idx)
			c := Corners(b, w)
			if (c.A.X+c.B.X)%2 != 0 || (c.A.Y+c.B.Y)%2 != 0 {
				t.Errorf("Corners(%#b, %d) hypotenuse midpoint not on lattice: A=%v B=%v",
					uint32(b), w, c.A, c.B)
			}
		}
	}
}

func TestPartitionSteps(t *testing.T) {
	got := partitionSteps(0b10110)
	want := []PartitionStep{BottomLeft, Left, Left, Right}
	if len(got) != len(want) {
		t.Fatalf("partitionSteps(0b10110) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("partitionSteps(0b10110)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPartitionStepsRootSelector(t *testing.T) {
	ttable := []struct {
		binID BinID
		root  PartitionStep
	}{
		{0b10, BottomLeft},
		{0b11, TopRight},
	}
	for _, tt := range ttable {
		steps := partitionSteps(tt.binID)
		if len(steps) != 1 || steps[0] != tt.root {
			t.Errorf("partitionSteps(%#b) = %v, want [%v]", uint32(tt.binID), steps, tt.root)
		}
	}
}
