package statemodel

import (
	"fmt"

	"github.com/openrouteengine/compass/unit"
)

// StateVar is a single slot of a StateVector. Its meaning is opaque
// without the StateModel that declared it.
type StateVar float64

// FeatureKind tags which typed accessors a Feature supports.
type FeatureKind uint8

const (
	FeatureDistance FeatureKind = iota
	FeatureTime
	FeatureEnergy
	FeatureCustom
)

func (k FeatureKind) String() string {
	switch k {
	case FeatureDistance:
		return "distance"
	case FeatureTime:
		return "time"
	case FeatureEnergy:
		return "energy"
	case FeatureCustom:
		return "custom"
	default:
		return fmt.Sprintf("FeatureKind(%d)", uint8(k))
	}
}

// Feature is one named declaration inside a StateModel: what kind of
// quantity it holds, the unit (or codec) it is stored in, and the
// encoded initial value a fresh StateVector starts with. Features are
// immutable once built; a query that wants a different initial value or
// unit builds a new Feature rather than mutating one in place.
type Feature struct {
	kind         FeatureKind
	distanceUnit unit.DistanceUnit
	timeUnit     unit.TimeUnit
	energyUnit   unit.EnergyUnit
	format       CustomFormat
	initial      StateVar
}

func (f Feature) Kind() FeatureKind { return f.kind }

// DistanceFeature declares a distance-valued feature stored in u,
// starting at initial (expressed in u).
func DistanceFeature(u unit.DistanceUnit, initial unit.Distance) Feature {
	return Feature{kind: FeatureDistance, distanceUnit: u, initial: StateVar(initial)}
}

// TimeFeature declares a time-valued feature stored in u, starting at
// initial (expressed in u).
func TimeFeature(u unit.TimeUnit, initial unit.Time) Feature {
	return Feature{kind: FeatureTime, timeUnit: u, initial: StateVar(initial)}
}

// EnergyFeature declares an energy-valued feature stored in u, starting
// at initial (expressed in u).
func EnergyFeature(u unit.EnergyUnit, initial unit.Energy) Feature {
	return Feature{kind: FeatureEnergy, energyUnit: u, initial: StateVar(initial)}
}

// CustomFeature declares a feature whose accessors are governed by an
// explicit codec rather than a physical unit, starting at the given
// encoded initial value.
func CustomFeature(format CustomFormat, initial StateVar) Feature {
	return Feature{kind: FeatureCustom, format: format, initial: initial}
}
