package hexes

import "math"

// Coord is an axial coordinate on a pointy-top hex grid.
type Coord struct {
	Q int
	R int
}

func (c Coord) Add(o Coord) Coord {
	return Coord{Q: c.Q + o.Q, R: c.R + o.R}
}

// Point returns the Cartesian center of the hex.
func (c Coord) Point() (x, y float64) {
	x = math.Sqrt(3)*float64(c.Q) + math.Sqrt(3)/2*float64(c.R)
	y = 1.5 * float64(c.R)
	return
}

// Snap returns the hex containing the Cartesian point, using the
// axial rounding fix on the component with the larger residual.
func Snap(x, y float64) Coord {
	qf := math.Sqrt(3)/3*x - y/3
	rf := 2 * y / 3

	q := math.Round(qf)
	r := math.Round(rf)
	qd := qf - q
	rd := rf - r

	if math.Abs(qd) >= math.Abs(rd) {
		q += math.Round(qd + rd/2)
	} else {
		r += math.Round(rd + qd/2)
	}

	return Coord{Q: int(q), R: int(r)}
}
