package hexes

import "strings"

// Pattern is a walk on the grid: a starting direction plus a sequence
// of turns. Two patterns with the same turns are the same shape no
// matter which way the walk is oriented.
type Pattern struct {
	Start  Dir
	Angles []Angle
}

// New builds a pattern from a starting direction and angle letters.
func New(start Dir, angles string) (Pattern, error) {
	as := make([]Angle, len(angles))
	for i := range len(angles) {
		a, err := ParseAngle(angles[i])
		if err != nil {
			return Pattern{}, err
		}
		as[i] = a
	}
	return Pattern{Start: start, Angles: as}, nil
}

// Parse reads the "<dir>,<angles>" string form.
func Parse(str string) (Pattern, error) {
	dirStr, angles, ok := strings.Cut(str, ",")
	if !ok {
		return Pattern{}, &ParseError{Input: str, Reason: "missing comma"}
	}
	dir, err := ParseDir(dirStr)
	if err != nil {
		return Pattern{}, err
	}
	return New(dir, angles)
}

func MustParse(str string) Pattern {
	p, err := Parse(str)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pattern) String() string {
	var sb strings.Builder
	sb.WriteString(p.Start.String())
	sb.WriteByte(',')
	for _, a := range p.Angles {
		sb.WriteByte(a.Letter())
	}
	return sb.String()
}

// Signature returns the angle letters alone, the orientation-free
// identity of the pattern.
func (p Pattern) Signature() string {
	var sb strings.Builder
	for _, a := range p.Angles {
		sb.WriteByte(a.Letter())
	}
	return sb.String()
}

// Equal ignores the starting direction: a pattern is an unlabeled shape.
func (p Pattern) Equal(o Pattern) bool {
	if len(p.Angles) != len(o.Angles) {
		return false
	}
	for i, a := range p.Angles {
		if o.Angles[i] != a {
			return false
		}
	}
	return true
}

// Coords returns the visited coordinates, origin included.
func (p Pattern) Coords() []Coord {
	coords := make([]Coord, 0, 2+len(p.Angles))
	pos := Coord{}
	coords = append(coords, pos)
	dir := p.Start
	pos = pos.Add(dir.Delta())
	coords = append(coords, pos)
	for _, a := range p.Angles {
		dir = dir.Rotated(a)
		pos = pos.Add(dir.Delta())
		coords = append(coords, pos)
	}
	return coords
}

// Reversed walks the pattern back to front.
func (p Pattern) Reversed() Pattern {
	sum := 0
	for _, a := range p.Angles {
		sum += int(a)
	}
	angles := make([]Angle, len(p.Angles))
	for i, a := range p.Angles {
		angles[len(angles)-1-i] = a.Negated()
	}
	return Pattern{
		Start:  Dir((int(p.Start) + sum + 3) % 6),
		Angles: angles,
	}
}

// Mirrored reflects the pattern across the grid's vertical axis.
func (p Pattern) Mirrored() Pattern {
	angles := make([]Angle, len(p.Angles))
	for i, a := range p.Angles {
		angles[i] = a.Negated()
	}
	return Pattern{
		Start:  Dir(5 - uint8(p.Start)),
		Angles: angles,
	}
}

// Rotated turns the whole pattern by the given angle.
func (p Pattern) Rotated(a Angle) Pattern {
	angles := make([]Angle, len(p.Angles))
	copy(angles, p.Angles)
	return Pattern{
		Start:  p.Start.Rotated(a),
		Angles: angles,
	}
}
