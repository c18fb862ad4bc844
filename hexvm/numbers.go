package hexvm

import (
	"fmt"

	"github.com/astavie/hexcast/hexes"
)

// Numerical reflections encode an integer as a prefix naming the
// sign followed by a value walk: w adds one, q adds five, e adds
// ten, a doubles, d halves.
const (
	numberPositivePrefix = "aqaa"
	numberNegativePrefix = "dedd"

	NumberMin = -2000
	NumberMax = 2000
)

// numberSuffixes maps each value in [0, NumberMax] to its shortest
// value walk, found breadth-first from zero.
var numberSuffixes = buildNumberSuffixes()

func buildNumberSuffixes() []string {
	suffixes := make([]string, NumberMax+1)
	seen := make([]bool, NumberMax+1)
	seen[0] = true
	queue := []int{0}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, step := range []struct {
			letter byte
			next   int
		}{
			{'w', v + 1},
			{'q', v + 5},
			{'e', v + 10},
			{'a', v * 2},
		} {
			if step.next < 1 || step.next > NumberMax || seen[step.next] {
				continue
			}
			seen[step.next] = true
			suffixes[step.next] = suffixes[v] + string(step.letter)
			queue = append(queue, step.next)
		}
	}
	return suffixes
}

func decodeNumberSuffix(suffix string) (int, bool) {
	value := 0
	for i := range len(suffix) {
		switch suffix[i] {
		case 'w':
			value++
		case 'q':
			value += 5
		case 'e':
			value += 10
		case 'a':
			value *= 2
		case 'd':
			if value%2 != 0 {
				return 0, false
			}
			value /= 2
		default:
			return 0, false
		}
		if value > NumberMax {
			return 0, false
		}
	}
	return value, true
}

// NumberStrings returns the known angle strings for the integer; the
// shorthand compiler picks the first.
func NumberStrings(n int) ([]string, error) {
	if n < NumberMin || n > NumberMax {
		return nil, fmt.Errorf("number out of range: %d", n)
	}
	if n < 0 {
		return []string{numberNegativePrefix + numberSuffixes[-n]}, nil
	}
	return []string{numberPositivePrefix + numberSuffixes[n]}, nil
}

func newNumberPattern(value int) *Pattern {
	var shape hexes.Pattern
	strs, err := NumberStrings(value)
	if err == nil {
		start := hexes.SouthEast
		if value < 0 {
			start = hexes.NorthEast
		}
		shape, err = hexes.New(start, strs[0])
		if err != nil {
			panic(err)
		}
	}
	return &Pattern{
		Shape: shape,
		Name:  fmt.Sprintf("Numerical Reflection: %d", value),
		Action: func(vm *VM, env Env) CastResult {
			return pushed(Double(value))
		},
	}
}

// NumericalReflection builds the pattern pushing the given value.
// Non-integers and values outside the table are a domain error.
func NumericalReflection(value float64) (*Pattern, error) {
	n := int(value)
	if float64(n) != value {
		return nil, fmt.Errorf("not an encodable number: %v", value)
	}
	if _, err := NumberStrings(n); err != nil {
		return nil, err
	}
	return newNumberPattern(n), nil
}
