package statemodel

import (
	"encoding/json"
	"sort"

	"go.uber.org/zap"

	"github.com/openrouteengine/compass/unit"
)

// StateVector is the flat numeric state a TraversalModel carries along a
// route. Its length always equals the StateModel's feature count; every
// slot is meaningless without that model.
type StateVector []StateVar

// StateModel names, orders, and type-checks access to a StateVector. It
// is built once per query by New from one feature set (Extend merges a
// second model's features on top of an existing one) and is safe for
// concurrent read-only use afterward.
type StateModel struct {
	c core
}

// New builds a StateModel from a set of named features. Feature order
// is fixed at build time by sorting names lexicographically, so two
// models built from the same feature set always assign the same index
// to the same name regardless of map iteration order.
func New(features map[string]Feature) (StateModel, error) {
	names := make([]string, 0, len(features))
	for name := range features {
		names = append(names, name)
	}
	sort.Strings(names)

	switch len(names) {
	case 0:
		return StateModel{c: &nFeatures{names: nil, feats: nil, index: map[string]int{}}}, nil
	case 1:
		return StateModel{c: &oneFeature{name: names[0], feat: features[names[0]]}}, nil
	case 2:
		m := &twoFeatures{}
		for i, n := range names {
			m.names[i], m.feats[i] = n, features[n]
		}
		return StateModel{c: m}, nil
	case 3:
		m := &threeFeatures{}
		for i, n := range names {
			m.names[i], m.feats[i] = n, features[n]
		}
		return StateModel{c: m}, nil
	case 4:
		m := &fourFeatures{}
		for i, n := range names {
			m.names[i], m.feats[i] = n, features[n]
		}
		return StateModel{c: m}, nil
	default:
		m := &nFeatures{
			names: names,
			feats: make([]Feature, len(names)),
			index: make(map[string]int, len(names)),
		}
		for i, n := range names {
			m.feats[i] = features[n]
			m.index[n] = i
		}
		return StateModel{c: m}, nil
	}
}

// Len reports the number of features declared on the model, which is
// also the length of every StateVector it produces.
func (m StateModel) Len() int { return m.c.len() }

// GetIndex returns the StateVector slot for name.
func (m StateModel) GetIndex(name string) (int, error) {
	i, ok := m.c.indexOf(name)
	if !ok {
		return 0, unknownFeaturef(name)
	}
	return i, nil
}

// GetFeature returns the declaration for name.
func (m StateModel) GetFeature(name string) (Feature, error) {
	i, err := m.GetIndex(name)
	if err != nil {
		return Feature{}, err
	}
	return m.c.featureAt(i), nil
}

// InitialState builds a fresh StateVector with every slot set to its
// feature's declared initial value.
func (m StateModel) InitialState() StateVector {
	sv := make(StateVector, m.c.len())
	for i := 0; i < m.c.len(); i++ {
		sv[i] = m.c.featureAt(i).initial
	}
	return sv
}

func (m StateModel) checkVector(state StateVector) error {
	if len(state) != m.c.len() {
		return sizeMismatchf(m.c.len(), len(state))
	}
	return nil
}

// GetValue reads the raw, untyped StateVar at name out of state.
func (m StateModel) GetValue(state StateVector, name string) (StateVar, error) {
	if err := m.checkVector(state); err != nil {
		return 0, err
	}
	i, err := m.GetIndex(name)
	if err != nil {
		return 0, err
	}
	return state[i], nil
}

// GetDelta returns end[name] - start[name], the contribution of one leg
// of a route to a single feature.
func (m StateModel) GetDelta(start, end StateVector, name string) (StateVar, error) {
	a, err := m.GetValue(start, name)
	if err != nil {
		return 0, err
	}
	b, err := m.GetValue(end, name)
	if err != nil {
		return 0, err
	}
	return b - a, nil
}

func (m StateModel) distanceFeature(name string) (int, Feature, error) {
	i, err := m.GetIndex(name)
	if err != nil {
		return 0, Feature{}, err
	}
	f := m.c.featureAt(i)
	if f.kind != FeatureDistance {
		return 0, Feature{}, incompatiblef(name, FeatureDistance, f.kind)
	}
	return i, f, nil
}

// GetDistance reads name out of state as a Distance in outputUnit.
func (m StateModel) GetDistance(state StateVector, name string, outputUnit unit.DistanceUnit) (unit.Distance, error) {
	if err := m.checkVector(state); err != nil {
		return 0, err
	}
	i, f, err := m.distanceFeature(name)
	if err != nil {
		return 0, err
	}
	return unit.Convert(unit.Distance(state[i]), f.distanceUnit, outputUnit), nil
}

// SetDistance writes value (expressed in valueUnit) into name's native
// unit, returning the updated StateVector. state is not mutated.
func (m StateModel) SetDistance(state StateVector, name string, value unit.Distance, valueUnit unit.DistanceUnit) (StateVector, error) {
	if err := m.checkVector(state); err != nil {
		return nil, err
	}
	i, f, err := m.distanceFeature(name)
	if err != nil {
		return nil, err
	}
	out := append(StateVector(nil), state...)
	out[i] = StateVar(unit.Convert(value, valueUnit, f.distanceUnit))
	return out, nil
}

// AddDistance adds delta (expressed in deltaUnit) to name's current
// value, returning the updated StateVector.
func (m StateModel) AddDistance(state StateVector, name string, delta unit.Distance, deltaUnit unit.DistanceUnit) (StateVector, error) {
	current, err := m.GetDistance(state, name, deltaUnit)
	if err != nil {
		return nil, err
	}
	return m.SetDistance(state, name, current+delta, deltaUnit)
}

func (m StateModel) timeFeature(name string) (int, Feature, error) {
	i, err := m.GetIndex(name)
	if err != nil {
		return 0, Feature{}, err
	}
	f := m.c.featureAt(i)
	if f.kind != FeatureTime {
		return 0, Feature{}, incompatiblef(name, FeatureTime, f.kind)
	}
	return i, f, nil
}

// GetTime reads name out of state as a Time in outputUnit.
func (m StateModel) GetTime(state StateVector, name string, outputUnit unit.TimeUnit) (unit.Time, error) {
	if err := m.checkVector(state); err != nil {
		return 0, err
	}
	i, f, err := m.timeFeature(name)
	if err != nil {
		return 0, err
	}
	return unit.ConvertTime(unit.Time(state[i]), f.timeUnit, outputUnit), nil
}

// SetTime writes value (expressed in valueUnit) into name's native unit.
func (m StateModel) SetTime(state StateVector, name string, value unit.Time, valueUnit unit.TimeUnit) (StateVector, error) {
	if err := m.checkVector(state); err != nil {
		return nil, err
	}
	i, f, err := m.timeFeature(name)
	if err != nil {
		return nil, err
	}
	out := append(StateVector(nil), state...)
	out[i] = StateVar(unit.ConvertTime(value, valueUnit, f.timeUnit))
	return out, nil
}

// AddTime adds delta (expressed in deltaUnit) to name's current value.
func (m StateModel) AddTime(state StateVector, name string, delta unit.Time, deltaUnit unit.TimeUnit) (StateVector, error) {
	current, err := m.GetTime(state, name, deltaUnit)
	if err != nil {
		return nil, err
	}
	return m.SetTime(state, name, current+delta, deltaUnit)
}

func (m StateModel) energyFeature(name string) (int, Feature, error) {
	i, err := m.GetIndex(name)
	if err != nil {
		return 0, Feature{}, err
	}
	f := m.c.featureAt(i)
	if f.kind != FeatureEnergy {
		return 0, Feature{}, incompatiblef(name, FeatureEnergy, f.kind)
	}
	return i, f, nil
}

// GetEnergy reads name out of state as an Energy in outputUnit.
func (m StateModel) GetEnergy(state StateVector, name string, outputUnit unit.EnergyUnit) (unit.Energy, error) {
	if err := m.checkVector(state); err != nil {
		return 0, err
	}
	i, f, err := m.energyFeature(name)
	if err != nil {
		return 0, err
	}
	return unit.ConvertEnergy(unit.Energy(state[i]), f.energyUnit, outputUnit), nil
}

// SetEnergy writes value (expressed in valueUnit) into name's native unit.
func (m StateModel) SetEnergy(state StateVector, name string, value unit.Energy, valueUnit unit.EnergyUnit) (StateVector, error) {
	if err := m.checkVector(state); err != nil {
		return nil, err
	}
	i, f, err := m.energyFeature(name)
	if err != nil {
		return nil, err
	}
	out := append(StateVector(nil), state...)
	out[i] = StateVar(unit.ConvertEnergy(value, valueUnit, f.energyUnit))
	return out, nil
}

// AddEnergy adds delta (expressed in deltaUnit) to name's current value.
func (m StateModel) AddEnergy(state StateVector, name string, delta unit.Energy, deltaUnit unit.EnergyUnit) (StateVector, error) {
	current, err := m.GetEnergy(state, name, deltaUnit)
	if err != nil {
		return nil, err
	}
	return m.SetEnergy(state, name, current+delta, deltaUnit)
}

func (m StateModel) customFeature(name string) (int, Feature, error) {
	i, err := m.GetIndex(name)
	if err != nil {
		return 0, Feature{}, err
	}
	f := m.c.featureAt(i)
	if f.kind != FeatureCustom {
		return 0, Feature{}, incompatiblef(name, FeatureCustom, f.kind)
	}
	return i, f, nil
}

// GetCustomF64 reads name out of state through its codec as a float64.
func (m StateModel) GetCustomF64(state StateVector, name string) (float64, error) {
	if err := m.checkVector(state); err != nil {
		return 0, err
	}
	i, f, err := m.customFeature(name)
	if err != nil {
		return 0, err
	}
	return f.format.decodeF64(state[i])
}

// SetCustomF64 encodes value through name's codec and writes it into
// state, returning the updated StateVector.
func (m StateModel) SetCustomF64(state StateVector, name string, value float64) (StateVector, error) {
	if err := m.checkVector(state); err != nil {
		return nil, err
	}
	i, f, err := m.customFeature(name)
	if err != nil {
		return nil, err
	}
	encoded, err := f.format.encodeF64(value)
	if err != nil {
		return nil, err
	}
	out := append(StateVector(nil), state...)
	out[i] = encoded
	return out, nil
}

// GetCustomI64 reads name out of state through its codec as an int64.
func (m StateModel) GetCustomI64(state StateVector, name string) (int64, error) {
	if err := m.checkVector(state); err != nil {
		return 0, err
	}
	i, f, err := m.customFeature(name)
	if err != nil {
		return 0, err
	}
	return f.format.decodeI64(state[i])
}

// SetCustomI64 encodes value through name's codec and writes it into state.
func (m StateModel) SetCustomI64(state StateVector, name string, value int64) (StateVector, error) {
	if err := m.checkVector(state); err != nil {
		return nil, err
	}
	i, f, err := m.customFeature(name)
	if err != nil {
		return nil, err
	}
	encoded, err := f.format.encodeI64(value)
	if err != nil {
		return nil, err
	}
	out := append(StateVector(nil), state...)
	out[i] = encoded
	return out, nil
}

// GetCustomU64 reads name out of state through its codec as a uint64.
func (m StateModel) GetCustomU64(state StateVector, name string) (uint64, error) {
	if err := m.checkVector(state); err != nil {
		return 0, err
	}
	i, f, err := m.customFeature(name)
	if err != nil {
		return 0, err
	}
	return f.format.decodeU64(state[i])
}

// SetCustomU64 encodes value through name's codec and writes it into state.
func (m StateModel) SetCustomU64(state StateVector, name string, value uint64) (StateVector, error) {
	if err := m.checkVector(state); err != nil {
		return nil, err
	}
	i, f, err := m.customFeature(name)
	if err != nil {
		return nil, err
	}
	encoded, err := f.format.encodeU64(value)
	if err != nil {
		return nil, err
	}
	out := append(StateVector(nil), state...)
	out[i] = encoded
	return out, nil
}

// GetCustomBool reads name out of state through its codec as a bool.
func (m StateModel) GetCustomBool(state StateVector, name string) (bool, error) {
	if err := m.checkVector(state); err != nil {
		return false, err
	}
	i, f, err := m.customFeature(name)
	if err != nil {
		return false, err
	}
	return f.format.decodeBool(state[i])
}

// SetCustomBool encodes value through name's codec and writes it into state.
func (m StateModel) SetCustomBool(state StateVector, name string, value bool) (StateVector, error) {
	if err := m.checkVector(state); err != nil {
		return nil, err
	}
	i, f, err := m.customFeature(name)
	if err != nil {
		return nil, err
	}
	encoded, err := f.format.encodeBool(value)
	if err != nil {
		return nil, err
	}
	out := append(StateVector(nil), state...)
	out[i] = encoded
	return out, nil
}

// Extend merges other's features on top of m's, returning a new model.
// A feature name present in both is taken from other, and a warning is
// logged naming the overwritten feature — silently shadowing an engine
// default with a query override is a common source of confusing cost
// results, so it is worth a log line even though it is not an error.
func (m StateModel) Extend(other StateModel) StateModel {
	merged := make(map[string]Feature, m.c.len()+other.c.len())
	for i := 0; i < m.c.len(); i++ {
		merged[m.c.nameAt(i)] = m.c.featureAt(i)
	}
	for i := 0; i < other.c.len(); i++ {
		name := other.c.nameAt(i)
		if _, exists := merged[name]; exists {
			zap.L().Warn("statemodel: extend overwrote existing feature", zap.String("feature", name))
		}
		merged[name] = other.c.featureAt(i)
	}
	built, _ := New(merged)
	return built
}

type serializedFeature struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Unit string `json:"unit,omitempty"`
}

// SerializeStateModel renders the model's feature declarations, in
// index order, as a JSON array.
func (m StateModel) SerializeStateModel() ([]byte, error) {
	out := make([]serializedFeature, m.c.len())
	for i := 0; i < m.c.len(); i++ {
		f := m.c.featureAt(i)
		sf := serializedFeature{Name: m.c.nameAt(i), Kind: f.kind.String()}
		switch f.kind {
		case FeatureDistance:
			sf.Unit = f.distanceUnit.String()
		case FeatureTime:
			sf.Unit = f.timeUnit.String()
		case FeatureEnergy:
			sf.Unit = f.energyUnit.String()
		case FeatureCustom:
			sf.Unit = f.format.Kind.String()
		}
		out[i] = sf
	}
	return json.Marshal(out)
}

// SerializeState renders state as a JSON object keyed by feature name,
// with each value expressed in the feature's native unit.
func (m StateModel) SerializeState(state StateVector) ([]byte, error) {
	if err := m.checkVector(state); err != nil {
		return nil, err
	}
	out := make(map[string]float64, m.c.len())
	for i := 0; i < m.c.len(); i++ {
		out[m.c.nameAt(i)] = float64(state[i])
	}
	return json.Marshal(out)
}
