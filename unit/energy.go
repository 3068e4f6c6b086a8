package unit

import "fmt"

// EnergyUnit names a unit of energy. The canonical base unit is
// KilowattHours, chosen (rather than the SI joule) because every built-in
// predictive energy model in this engine reports and accumulates in
// kilowatt-hours or gallons of gasoline equivalent.
type EnergyUnit uint8

const (
	KilowattHours EnergyUnit = iota
	GallonsGasoline
	MegajoulesEnergy
)

// energyToKwh gives the number of kilowatt-hours in one unit of the key.
// 1 gallon of gasoline equivalent (GGE) = 33.7 kWh; 1 MJ = 0.277778 kWh.
var energyToKwh = map[EnergyUnit]float64{
	KilowattHours:    1.0,
	GallonsGasoline:  33.7,
	MegajoulesEnergy: 0.277778,
}

func (u EnergyUnit) String() string {
	switch u {
	case KilowattHours:
		return "kilowatt_hours"
	case GallonsGasoline:
		return "gallons_gasoline"
	case MegajoulesEnergy:
		return "megajoules"
	default:
		return fmt.Sprintf("EnergyUnit(%d)", uint8(u))
	}
}

// Energy is an energy quantity tagged implicitly by the unit it is
// paired with at the call site; see ConvertEnergy.
type Energy float64

// ConvertEnergy converts e, expressed in from, into to.
//
// Complexity: O(1).
func ConvertEnergy(e Energy, from, to EnergyUnit) Energy {
	if from == to {
		return e
	}
	kwh := float64(e) * energyToKwh[from]
	return Energy(kwh / energyToKwh[to])
}
