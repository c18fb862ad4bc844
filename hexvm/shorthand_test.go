package hexvm

import (
	"math"
	"testing"
)

func checkPatterns(t *testing.T, got []*Pattern, want ...*Pattern) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d patterns, want %d: %v", len(got), len(want), names(got))
	}
	for i := range got {
		if got[i].Name != want[i].Name {
			t.Fatalf("slot %d: got %s, want %s", i, got[i].Name, want[i].Name)
		}
	}
}

func names(ps []*Pattern) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestPatternsEmpty(t *testing.T) {
	got, err := Patterns()
	if err != nil {
		t.Fatal(err)
	}
	checkPatterns(t, got)
}

func TestPatternsLists(t *testing.T) {
	got, err := Patterns([]any{})
	if err != nil {
		t.Fatal(err)
	}
	checkPatterns(t, got, VacantReflection)

	got, err = Patterns([]any{[]any{}})
	if err != nil {
		t.Fatal(err)
	}
	checkPatterns(t, got, VacantReflection, SinglesPurification)

	got, err = Patterns([]any{MindsReflection})
	if err != nil {
		t.Fatal(err)
	}
	checkPatterns(t, got, Introspection, MindsReflection, Retrospection)

	got, err = Patterns([]any{[]any{MindsReflection}})
	if err != nil {
		t.Fatal(err)
	}
	checkPatterns(t, got, Introspection, MindsReflection, Retrospection, SinglesPurification)
}

func TestPatternsEscapeControls(t *testing.T) {
	got, err := Patterns(Introspection)
	if err != nil {
		t.Fatal(err)
	}
	checkPatterns(t, got, Introspection)

	got, err = Patterns([]any{Introspection})
	if err != nil {
		t.Fatal(err)
	}
	checkPatterns(t, got, Consideration, Introspection, SinglesPurification)

	got, err = Patterns([]any{Introspection, MindsReflection})
	if err != nil {
		t.Fatal(err)
	}
	checkPatterns(t, got,
		Introspection, Consideration, Introspection, MindsReflection, Retrospection)

	got, err = Patterns([]any{[]any{Introspection}})
	if err != nil {
		t.Fatal(err)
	}
	checkPatterns(t, got,
		Consideration, Introspection, SinglesPurification, SinglesPurification)

	got, err = Patterns([]any{[]any{Introspection}, MindsReflection})
	if err != nil {
		t.Fatal(err)
	}
	checkPatterns(t, got,
		Introspection,
		Consideration, Consideration, Consideration, Introspection, SinglesPurification,
		MindsReflection,
		Retrospection)
}

func TestPatternsConstants(t *testing.T) {
	got, err := Patterns(nil, true, false)
	if err != nil {
		t.Fatal(err)
	}
	checkPatterns(t, got, NullaryReflection, TrueReflection, FalseReflection)

	got, err = Patterns(Vector3{X: 2 * math.Pi, Y: math.Pi, Z: math.E})
	if err != nil {
		t.Fatal(err)
	}
	checkPatterns(t, got,
		CirclesReflection, ArcsReflection, EulersReflection, VectorExaltation)

	got, err = Patterns(Vector3{Y: -1})
	if err != nil {
		t.Fatal(err)
	}
	checkPatterns(t, got, VectorReflectionNegY)
}

func TestPatternsNumbers(t *testing.T) {
	got, err := Patterns(42)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Name != "Numerical Reflection: 42" {
		t.Fatalf("got %s", got[0].Name)
	}

	if _, err := Patterns(2001); err == nil {
		t.Fatal("expected out of range error")
	}
	if _, err := Patterns(1.5); err == nil {
		t.Fatal("expected non-integer error")
	}
}
