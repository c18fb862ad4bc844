package hexes

import "testing"

func TestParseRoundTrip(t *testing.T) {
	for _, str := range []string{
		"northeast,qaq",
		"east,eee",
		"west,qqq",
		"southeast,deaqq",
		"southwest,",
		"northwest,wedsaq",
	} {
		p, err := Parse(str)
		if err != nil {
			t.Fatal(err)
		}
		if p.String() != str {
			t.Fatalf("got %q, want %q", p.String(), str)
		}
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("north,qaq"); err == nil {
		t.Fatal("expected error")
	}
	if _, err := Parse("east,qxq"); err == nil {
		t.Fatal("expected error")
	}
	if _, err := Parse("east"); err == nil {
		t.Fatal("expected error")
	}
}

func TestEqualIgnoresStart(t *testing.T) {
	a := MustParse("northeast,qaq")
	b := MustParse("southwest,qaq")
	if !a.Equal(b) {
		t.Fatal("expected equal")
	}
	c := MustParse("northeast,qaqw")
	if a.Equal(c) {
		t.Fatal("expected not equal")
	}
}

func TestReversedTwice(t *testing.T) {
	for _, str := range []string{
		"east,aqwed",
		"west,qqq",
		"northeast,",
	} {
		p := MustParse(str)
		r := p.Reversed().Reversed()
		if !p.Equal(r) {
			t.Fatalf("%s: got %s", str, r)
		}
	}
}

func TestMirroredTwice(t *testing.T) {
	p := MustParse("southeast,deaqq")
	m := p.Mirrored().Mirrored()
	if !p.Equal(m) {
		t.Fatalf("got %s", m)
	}
	if m.Start != p.Start {
		t.Fatalf("got %v", m.Start)
	}
}

func TestReversedEndsAtStart(t *testing.T) {
	// walking the reversal visits the original coords back to front,
	// shifted to start at the original endpoint
	p := MustParse("east,aqwed")
	coords := p.Coords()
	end := coords[len(coords)-1]

	rev := p.Reversed()
	revCoords := rev.Coords()
	for i, c := range revCoords {
		orig := coords[len(coords)-1-i]
		want := Coord{Q: orig.Q - end.Q, R: orig.R - end.R}
		if c != want {
			t.Fatalf("step %d: got %v, want %v", i, c, want)
		}
	}
}

func TestCoordsLength(t *testing.T) {
	p := MustParse("east,eee")
	if len(p.Coords()) != 5 {
		t.Fatalf("got %d", len(p.Coords()))
	}
}

func TestRotated(t *testing.T) {
	p := MustParse("northeast,qaq")
	r := p.Rotated(Right)
	if r.Start != East {
		t.Fatalf("got %v", r.Start)
	}
	if !r.Equal(p) {
		t.Fatal("rotation must not change the shape")
	}
}
