package hexvm

import "testing"

func TestDoubleDisplay(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0, "0.00"},
		{1.5, "1.50"},
		{1234.567, "1,234.57"},
		{-2000, "-2,000.00"},
	}
	for _, c := range cases {
		if got := Render(Double(c.v)); got != c.want {
			t.Fatalf("%v: got %q, want %q", c.v, got, c.want)
		}
	}
}

func TestStringDisplay(t *testing.T) {
	if got := Render(String("hello")); got != `"hello"` {
		t.Fatalf("got %q", got)
	}
}

func TestPatternDisplay(t *testing.T) {
	if got := Render(Introspection); got != "west,qqq" {
		t.Fatalf("got %q", got)
	}
}

func TestListDisplay(t *testing.T) {
	// commas separate values, but not around patterns
	l := List{Double(1), Double(2)}
	if got := Render(l); got != "[1.00, 2.00]" {
		t.Fatalf("got %q", got)
	}

	l = List{Introspection, Retrospection}
	if got := Render(l); got != "[west,qqq east,eee]" {
		t.Fatalf("got %q", got)
	}

	l = List{Double(1), Introspection, Double(2)}
	if got := Render(l); got != "[1.00 west,qqq 2.00]" {
		t.Fatalf("got %q", got)
	}

	if got := Render(List{}); got != "[]" {
		t.Fatalf("got %q", got)
	}
}
