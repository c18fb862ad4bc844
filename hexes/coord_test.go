package hexes

import "testing"

func TestSnapOfCenters(t *testing.T) {
	for q := -5; q <= 5; q++ {
		for r := -5; r <= 5; r++ {
			c := Coord{Q: q, R: r}
			x, y := c.Point()
			if got := Snap(x, y); got != c {
				t.Fatalf("snap(%v) = %v", c, got)
			}
		}
	}
}

func TestSnapIdempotent(t *testing.T) {
	points := [][2]float64{
		{0.1, 0.2},
		{1.7, -2.3},
		{-0.49, 0.51},
		{3.99, 3.99},
		{-5.01, 2.5},
	}
	for _, pt := range points {
		c := Snap(pt[0], pt[1])
		x, y := c.Point()
		if got := Snap(x, y); got != c {
			t.Fatalf("snap not idempotent at %v: %v vs %v", pt, c, got)
		}
	}
}

func TestWalkNeighbors(t *testing.T) {
	// each direction step is a non-zero move with |s| = |q+r| at most 1
	for d := NorthEast; d <= NorthWest; d++ {
		delta := d.Delta()
		if delta.Q+delta.R < -1 || delta.Q+delta.R > 1 {
			t.Fatalf("bad delta %v", delta)
		}
		if delta == (Coord{}) {
			t.Fatalf("zero delta for %v", d)
		}
	}
}

func TestDirRotated(t *testing.T) {
	if NorthEast.Rotated(Right) != East {
		t.Fatal()
	}
	if NorthWest.Rotated(Right) != NorthEast {
		t.Fatal()
	}
	if East.Rotated(Back) != West {
		t.Fatal()
	}
}
