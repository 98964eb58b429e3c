package define

// Pos is a block position, or an extent, as x, y, z.
type Pos [3]int

func (p Pos) X() int { return p[0] }
func (p Pos) Y() int { return p[1] }
func (p Pos) Z() int { return p[2] }

func (p Pos) Add(o Pos) Pos {
	return Pos{p[0] + o[0], p[1] + o[1], p[2] + o[2]}
}

func (p Pos) Subtract(o Pos) Pos {
	return Pos{p[0] - o[0], p[1] - o[1], p[2] - o[2]}
}

// Volume treats p as an extent.
func (p Pos) Volume() int {
	return p[0] * p[1] * p[2]
}
