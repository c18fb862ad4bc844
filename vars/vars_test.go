package vars

import "testing"

func TestDerefOrZero(t *testing.T) {
	if DerefOrZero[int](nil) != 0 {
		t.Fatal()
	}
	n := 42
	if DerefOrZero(&n) != 42 {
		t.Fatal()
	}
}

func TestFirstNonZero(t *testing.T) {
	if FirstNonZero("", "a", "b") != "a" {
		t.Fatal()
	}
	if FirstNonZero(0, 0) != 0 {
		t.Fatal()
	}
}

func TestStrToBool(t *testing.T) {
	if !StrToBool("Yes") || StrToBool("no") || StrToBool("") {
		t.Fatal()
	}
}
