package hexvm

import "math"

// Tolerance is the absolute error under which two doubles, or two
// vector components, count as the same value.
const Tolerance = 1e-4

// Iota is a value in the interpreter's closed variant set.
//
// Display returns an ordered sequence of atoms: strings, nested
// Iotas, or raw hexes.Pattern shapes. Render flattens them.
type Iota interface {
	Truthy() bool
	Equals(other Iota) bool
	Type() *IotaType
	Display() []any
}

type Null struct{}

func (Null) Truthy() bool { return false }

func (Null) Equals(other Iota) bool {
	_, ok := other.(Null)
	return ok
}

func (Null) Type() *IotaType { return NullTag }

func (Null) Display() []any { return []any{"Null"} }

// Garbage marks a value the program has no business reading.
type Garbage struct{}

func (Garbage) Truthy() bool { return false }

func (Garbage) Equals(other Iota) bool {
	_, ok := other.(Garbage)
	return ok
}

func (Garbage) Type() *IotaType { return GarbageTag }

func (Garbage) Display() []any { return []any{"Garbage"} }

type Boolean bool

func (b Boolean) Truthy() bool { return bool(b) }

func (b Boolean) Equals(other Iota) bool {
	o, ok := other.(Boolean)
	return ok && o == b
}

func (Boolean) Type() *IotaType { return BooleanTag }

func (b Boolean) Display() []any {
	if b {
		return []any{"True"}
	}
	return []any{"False"}
}

type Double float64

func (d Double) Truthy() bool { return d != 0 }

func (d Double) Equals(other Iota) bool {
	o, ok := other.(Double)
	return ok && math.Abs(float64(o-d)) < Tolerance
}

func (Double) Type() *IotaType { return DoubleTag }

func (d Double) Display() []any {
	return []any{formatDouble(float64(d))}
}

type String string

func (s String) Truthy() bool { return s != "" }

func (s String) Equals(other Iota) bool {
	o, ok := other.(String)
	return ok && o == s
}

func (String) Type() *IotaType { return StringTag }

func (s String) Display() []any {
	return []any{`"` + string(s) + `"`}
}

type Vector3 struct {
	X, Y, Z float64
}

// Truthy requires all three components non-zero.
func (v Vector3) Truthy() bool {
	return v.X != 0 && v.Y != 0 && v.Z != 0
}

func (v Vector3) Equals(other Iota) bool {
	o, ok := other.(Vector3)
	if !ok {
		return false
	}
	dx, dy, dz := v.X-o.X, v.Y-o.Y, v.Z-o.Z
	return dx*dx+dy*dy+dz*dz < Tolerance*Tolerance
}

func (Vector3) Type() *IotaType { return VectorTag }

func (v Vector3) Display() []any {
	return []any{
		"(" + formatDouble(v.X) + ", " + formatDouble(v.Y) + ", " + formatDouble(v.Z) + ")",
	}
}

type List []Iota

func (l List) Truthy() bool { return len(l) > 0 }

func (l List) Equals(other Iota) bool {
	o, ok := other.(List)
	if !ok || len(o) != len(l) {
		return false
	}
	for i, it := range l {
		if !it.Equals(o[i]) {
			return false
		}
	}
	return true
}

func (List) Type() *IotaType { return ListTag }

func (l List) Display() []any {
	atoms := make([]any, 0, 2+2*len(l))
	atoms = append(atoms, "[")
	for i, it := range l {
		if i > 0 {
			_, prevPattern := l[i-1].(*Pattern)
			_, curPattern := it.(*Pattern)
			if prevPattern || curPattern {
				atoms = append(atoms, " ")
			} else {
				atoms = append(atoms, ", ")
			}
		}
		atoms = append(atoms, it)
	}
	atoms = append(atoms, "]")
	return atoms
}

// FromHost converts a host literal into an iota. Unknown values
// convert to Garbage.
func FromHost(v any) Iota {
	switch x := v.(type) {
	case nil:
		return Null{}
	case Iota:
		return x
	case bool:
		return Boolean(x)
	case float64:
		return Double(x)
	case float32:
		return Double(x)
	case int:
		return Double(x)
	case int64:
		return Double(x)
	case string:
		return String(x)
	case []any:
		l := make(List, len(x))
		for i, e := range x {
			l[i] = FromHost(e)
		}
		return l
	}
	return Garbage{}
}
