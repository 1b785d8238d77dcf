package engine

import "testing"

func TestDirectionOffsets(t *testing.T) {
	cases := []struct {
		d      Direction
		dx, dy int
	}{
		{Up, 0, -1}, {UpRight, 1, -1}, {Right, 1, 0}, {DownRight, 1, 1},
		{Down, 0, 1}, {DownLeft, -1, 1}, {Left, -1, 0}, {UpLeft, -1, -1},
	}
	for _, c := range cases {
		dx, dy := c.d.Offset()
		if dx != c.dx || dy != c.dy {
			t.Fatalf("%s offset = (%d,%d), want (%d,%d)", c.d, dx, dy, c.dx, c.dy)
		}
	}
}

// L1: RotateLeft45 ∘ RotateRight45 = identity, and vice versa; same for 90.
func TestRotateRoundTrip(t *testing.T) {
	for d := Direction(0); d < directionCount; d++ {
		if got := d.Rotate(1).Rotate(-1); got != d {
			t.Fatalf("45 round trip from %s landed on %s", d, got)
		}
		if got := d.Rotate(-1).Rotate(1); got != d {
			t.Fatalf("45 reverse round trip from %s landed on %s", d, got)
		}
		if got := d.Rotate(2).Rotate(-2); got != d {
			t.Fatalf("90 round trip from %s landed on %s", d, got)
		}
		if got := d.Rotate(-2).Rotate(2); got != d {
			t.Fatalf("90 reverse round trip from %s landed on %s", d, got)
		}
	}
}

// L2: rotating by 45 degrees eight times returns the original direction.
func TestRotateEightTimesIsIdentity(t *testing.T) {
	d := Up
	for i := 0; i < 8; i++ {
		d = d.Rotate(1)
	}
	if d != Up {
		t.Fatalf("eight 45-degree rotations landed on %s, want UP", d)
	}
}

func TestOppositeIsFourRotations(t *testing.T) {
	for d := Direction(0); d < directionCount; d++ {
		if d.Opposite() != d.Rotate(4) {
			t.Fatalf("%s.Opposite() != Rotate(4)", d)
		}
	}
}
