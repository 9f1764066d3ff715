package fire

import "math"

// Direction indexes the eight compass neighbors, clockwise from north.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Directions lists the neighbor directions in evaluation order.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var directionOffsets = [8]struct{ dr, dc int }{
	{-1, 0},
	{-1, 1},
	{0, 1},
	{1, 1},
	{1, 0},
	{1, -1},
	{0, -1},
	{-1, -1},
}

var directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Angle returns the compass bearing of the direction in degrees.
func (d Direction) Angle() float64 { return float64(d) * 45 }

// Offset returns the row and column delta towards the neighbor.
func (d Direction) Offset() (int, int) {
	o := directionOffsets[d]
	return o.dr, o.dc
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "?"
	}
	return directionNames[d]
}

// fullWindSpeed is the speed in m/s that yields a wind strength of 1. Faster
// winds are not capped.
const fullWindSpeed = 20.0

// WindTable holds the spread multiplier for each neighbor direction.
type WindTable [8]float64

// NewWindTable derives the per-direction multipliers from a wind speed and
// bearing. Directions aligned with the wind get 1+strength, opposing
// directions 1-strength.
func NewWindTable(speed, direction float64) WindTable {
	var t WindTable
	strength := speed / fullWindSpeed
	bearing := math.Mod(direction, 360)
	if bearing < 0 {
		bearing += 360
	}
	for _, d := range Directions {
		diff := math.Abs(bearing - d.Angle())
		if diff > 180 {
			diff = 360 - diff
		}
		t[d] = 1 + math.Cos(diff*math.Pi/180)*strength
	}
	return t
}

// Max returns the direction with the largest multiplier.
func (t WindTable) Max() Direction {
	best := North
	for _, d := range Directions {
		if t[d] > t[best] {
			best = d
		}
	}
	return best
}

// Min returns the direction with the smallest multiplier.
func (t WindTable) Min() Direction {
	worst := North
	for _, d := range Directions {
		if t[d] < t[worst] {
			worst = d
		}
	}
	return worst
}
