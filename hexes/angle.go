package hexes

// Angle is a turn amount in sixths of a full turn.
type Angle uint8

const (
	Forward Angle = iota
	Right
	RightBack
	Back
	LeftBack
	Left
)

const angleLetters = "wedsaq"

// Letter returns the serialized form of the angle.
func (a Angle) Letter() byte {
	return angleLetters[a]
}

// Negated returns the angle turned the other way around.
func (a Angle) Negated() Angle {
	return Angle((5 * uint8(a)) % 6)
}

func ParseAngle(c byte) (Angle, error) {
	for i := range len(angleLetters) {
		if angleLetters[i] == c {
			return Angle(i), nil
		}
	}
	return 0, &ParseError{Input: string(c), Reason: "unknown angle"}
}
