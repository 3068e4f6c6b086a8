package config

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/openrouteengine/compass/cost"
	"github.com/openrouteengine/compass/statemodel"
	"github.com/openrouteengine/compass/traversal"
	"github.com/openrouteengine/compass/traversal/energy"
	"github.com/openrouteengine/compass/unit"
)

// ToFeature builds the statemodel.Feature this spec declares. Exactly
// one of DistanceUnit, TimeUnit, EnergyUnit, or Format must be set.
func (s FeatureSpec) ToFeature() (statemodel.Feature, error) {
	set := 0
	for _, v := range []string{s.DistanceUnit, s.TimeUnit, s.EnergyUnit, s.Format} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return statemodel.Feature{}, fmt.Errorf("%w: exactly one of distance_unit/time_unit/energy_unit/format must be set, got %d", ErrInvalidFeatureSpec, set)
	}

	switch {
	case s.DistanceUnit != "":
		u, err := parseDistanceUnit(s.DistanceUnit)
		if err != nil {
			return statemodel.Feature{}, err
		}
		return statemodel.DistanceFeature(u, unit.Distance(s.Initial)), nil
	case s.TimeUnit != "":
		u, err := parseTimeUnit(s.TimeUnit)
		if err != nil {
			return statemodel.Feature{}, err
		}
		return statemodel.TimeFeature(u, unit.Time(s.Initial)), nil
	case s.EnergyUnit != "":
		u, err := parseEnergyUnit(s.EnergyUnit)
		if err != nil {
			return statemodel.Feature{}, err
		}
		return statemodel.EnergyFeature(u, unit.Energy(s.Initial)), nil
	default:
		kind, err := parseFormatKind(s.Format)
		if err != nil {
			return statemodel.Feature{}, err
		}
		return statemodel.CustomFeature(statemodel.CustomFormat{Kind: kind}, statemodel.StateVar(s.Initial)), nil
	}
}

func parseDistanceUnit(s string) (unit.DistanceUnit, error) {
	switch s {
	case "meters":
		return unit.Meters, nil
	case "kilometers":
		return unit.Kilometers, nil
	case "miles":
		return unit.Miles, nil
	case "feet":
		return unit.Feet, nil
	default:
		return 0, fmt.Errorf("%w: distance unit %q", ErrUnknownUnit, s)
	}
}

func parseTimeUnit(s string) (unit.TimeUnit, error) {
	switch s {
	case "seconds":
		return unit.Seconds, nil
	case "minutes":
		return unit.Minutes, nil
	case "hours":
		return unit.Hours, nil
	case "milliseconds":
		return unit.Milliseconds, nil
	default:
		return 0, fmt.Errorf("%w: time unit %q", ErrUnknownUnit, s)
	}
}

func parseEnergyUnit(s string) (unit.EnergyUnit, error) {
	switch s {
	case "kilowatt_hours":
		return unit.KilowattHours, nil
	case "gallons_gasoline":
		return unit.GallonsGasoline, nil
	case "megajoules":
		return unit.MegajoulesEnergy, nil
	default:
		return 0, fmt.Errorf("%w: energy unit %q", ErrUnknownUnit, s)
	}
}

func parseFormatKind(s string) (statemodel.FormatKind, error) {
	switch s {
	case "floating_point":
		return statemodel.FloatingPoint, nil
	case "signed_integer":
		return statemodel.SignedInteger, nil
	case "unsigned_integer":
		return statemodel.UnsignedInteger, nil
	case "boolean":
		return statemodel.Boolean, nil
	default:
		return 0, fmt.Errorf("%w: format %q", ErrUnknownUnit, s)
	}
}

// ToModel builds the cost.Model this spec describes.
func (c CostModelConfig) ToModel() (*cost.Model, error) {
	var agg cost.Aggregation
	switch c.Aggregation {
	case "sum":
		agg = cost.Sum
	case "mul":
		agg = cost.Mul
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAggregation, c.Aggregation)
	}
	return cost.New(c.Features, c.Weights, c.Rates, agg)
}

// ToModel builds the traversal.Model this spec describes, dispatching
// on Type. "distance" and "speed" read their parameters directly out
// of Params; "energy_grid" additionally builds an energy.Grid from a
// "values" param given as a list of rows, one row per speed and one
// column per grade.
func (t TraversalModelConfig) ToModel() (traversal.Model, error) {
	switch t.Type {
	case "distance":
		featureName, _ := t.Params["feature_name"].(string)
		unitName, _ := t.Params["unit"].(string)
		u, err := parseDistanceUnit(unitName)
		if err != nil {
			return nil, err
		}
		return traversal.NewDistanceModel(featureName, u), nil

	case "speed":
		timeFeature, _ := t.Params["time_feature"].(string)
		speedFeature, _ := t.Params["speed_feature"].(string)
		timeUnitName, _ := t.Params["time_unit"].(string)
		tu, err := parseTimeUnit(timeUnitName)
		if err != nil {
			return nil, err
		}
		defaultMph, _ := toFloat64(t.Params["default_speed_mph"])
		speedByClass := map[uint8]float64{}
		if raw, ok := t.Params["speed_by_road_class"].(map[string]interface{}); ok {
			for k, v := range raw {
				var class uint8
				if _, err := fmt.Sscanf(k, "%d", &class); err != nil {
					continue
				}
				if f, ok := toFloat64(v); ok {
					speedByClass[class] = f
				}
			}
		}
		return traversal.NewSpeedModel(timeFeature, speedFeature, tu, speedByClass, defaultMph), nil

	case "energy_grid":
		energyFeature, _ := t.Params["energy_feature"].(string)
		speedFeature, _ := t.Params["speed_feature"].(string)
		speeds, err := floatSlice(t.Params["speeds"])
		if err != nil {
			return nil, err
		}
		grades, err := floatSlice(t.Params["grades"])
		if err != nil {
			return nil, err
		}
		rows, err := rowsOfFloatSlices(t.Params["values"])
		if err != nil {
			return nil, err
		}
		dense := mat.NewDense(len(speeds), len(grades), nil)
		for i, row := range rows {
			for j, v := range row {
				dense.Set(i, j, v)
			}
		}
		grid, err := energy.NewGrid(speeds, grades, dense)
		if err != nil {
			return nil, err
		}
		return energy.NewModel(energyFeature, speedFeature, grid), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTraversalModelType, t.Type)
	}
}

// toFloat64 normalizes the handful of numeric types a YAML, TOML, or
// JSON decoder produces for an interface{} destination (json always
// gives float64; yaml.v3 and go-toml/v2 give int or int64 for
// integer-looking literals).
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func floatSlice(raw interface{}) ([]float64, error) {
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected a list of numbers", ErrInvalidFeatureSpec)
	}
	out := make([]float64, len(items))
	for i, v := range items {
		f, ok := toFloat64(v)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is not a number", ErrInvalidFeatureSpec, i)
		}
		out[i] = f
	}
	return out, nil
}

func rowsOfFloatSlices(raw interface{}) ([][]float64, error) {
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected a list of rows", ErrInvalidFeatureSpec)
	}
	out := make([][]float64, len(items))
	for i, v := range items {
		row, err := floatSlice(v)
		if err != nil {
			return nil, err
		}
		out[i] = row
	}
	return out, nil
}
