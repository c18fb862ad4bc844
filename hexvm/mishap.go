package hexvm

import "fmt"

// MishapKind tags the runtime misuses the VM reports. A mishap never
// unwinds; it is carried on the CastResult and the surrounding frame
// continues.
type MishapKind uint8

const (
	MishapTooFewArgs MishapKind = iota
	MishapWrongType
	MishapUnescapedValue
	MishapTooManyCloseParens
	MishapDivideByZero
)

type Mishap struct {
	Kind     MishapKind
	Expected *IotaType
	Got      Iota
	Slot     int
	Wanted   int
}

func (m *Mishap) Error() string {
	switch m.Kind {
	case MishapTooFewArgs:
		return fmt.Sprintf("expected %d arguments on the stack", m.Wanted)
	case MishapWrongType:
		return fmt.Sprintf("expected %s at slot %d, got %s", m.Expected.Name, m.Slot, m.Got.Type().Name)
	case MishapUnescapedValue:
		return fmt.Sprintf("unescaped %s", m.Got.Type().Name)
	case MishapTooManyCloseParens:
		return "closing quotation that never opened"
	case MishapDivideByZero:
		return "division by zero"
	}
	return "mishap"
}

// result wraps the mishap into a failed cast with an empty diff:
// errored, or invalid for an unescaped value.
func (m *Mishap) result() CastResult {
	resolution := ResolutionErrored
	if m.Kind == MishapUnescapedValue {
		resolution = ResolutionInvalid
	}
	return CastResult{
		Resolution: resolution,
		Sound:      SoundMishap,
		Mishap:     m,
	}
}
