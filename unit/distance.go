package unit

import "fmt"

// DistanceUnit names a unit of length. The canonical base unit is Meters.
type DistanceUnit uint8

const (
	Meters DistanceUnit = iota
	Kilometers
	Miles
	Feet
)

// distanceToMeters gives the number of meters in one unit of the key.
var distanceToMeters = map[DistanceUnit]float64{
	Meters:     1.0,
	Kilometers: 1000.0,
	Miles:      1609.344,
	Feet:       0.3048,
}

func (u DistanceUnit) String() string {
	switch u {
	case Meters:
		return "meters"
	case Kilometers:
		return "kilometers"
	case Miles:
		return "miles"
	case Feet:
		return "feet"
	default:
		return fmt.Sprintf("DistanceUnit(%d)", uint8(u))
	}
}

// Distance is a length tagged implicitly by the unit it is paired with at
// the call site; see Convert.
type Distance float64

// Convert converts d, expressed in from, into to.
//
// Complexity: O(1).
func Convert(d Distance, from, to DistanceUnit) Distance {
	if from == to {
		return d
	}
	meters := float64(d) * distanceToMeters[from]
	return Distance(meters / distanceToMeters[to])
}
