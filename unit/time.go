package unit

import "fmt"

// TimeUnit names a unit of duration. The canonical base unit is Seconds.
type TimeUnit uint8

const (
	Seconds TimeUnit = iota
	Minutes
	Hours
	Milliseconds
)

var timeToSeconds = map[TimeUnit]float64{
	Seconds:      1.0,
	Minutes:      60.0,
	Hours:        3600.0,
	Milliseconds: 0.001,
}

func (u TimeUnit) String() string {
	switch u {
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	case Milliseconds:
		return "milliseconds"
	default:
		return fmt.Sprintf("TimeUnit(%d)", uint8(u))
	}
}

// Time is a duration tagged implicitly by the unit it is paired with at
// the call site; see ConvertTime.
type Time float64

// ConvertTime converts t, expressed in from, into to.
//
// Complexity: O(1).
func ConvertTime(t Time, from, to TimeUnit) Time {
	if from == to {
		return t
	}
	seconds := float64(t) * timeToSeconds[from]
	return Time(seconds / timeToSeconds[to])
}
