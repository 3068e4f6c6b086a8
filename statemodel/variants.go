package statemodel

// core is the minimal lookup surface a StateModel variant must provide;
// every typed getter, setter, and serialization routine in model.go is
// written once against this interface instead of being duplicated per
// variant.
type core interface {
	len() int
	indexOf(name string) (int, bool)
	nameAt(i int) string
	featureAt(i int) Feature
}

type oneFeature struct {
	name string
	feat Feature
}

func (m *oneFeature) len() int { return 1 }
func (m *oneFeature) indexOf(name string) (int, bool) {
	if name == m.name {
		return 0, true
	}
	return 0, false
}
func (m *oneFeature) nameAt(i int) string     { return m.name }
func (m *oneFeature) featureAt(i int) Feature { return m.feat }

type twoFeatures struct {
	names [2]string
	feats [2]Feature
}

func (m *twoFeatures) len() int { return 2 }
func (m *twoFeatures) indexOf(name string) (int, bool) {
	for i, n := range m.names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}
func (m *twoFeatures) nameAt(i int) string     { return m.names[i] }
func (m *twoFeatures) featureAt(i int) Feature { return m.feats[i] }

type threeFeatures struct {
	names [3]string
	feats [3]Feature
}

func (m *threeFeatures) len() int { return 3 }
func (m *threeFeatures) indexOf(name string) (int, bool) {
	for i, n := range m.names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}
func (m *threeFeatures) nameAt(i int) string     { return m.names[i] }
func (m *threeFeatures) featureAt(i int) Feature { return m.feats[i] }

type fourFeatures struct {
	names [4]string
	feats [4]Feature
}

func (m *fourFeatures) len() int { return 4 }
func (m *fourFeatures) indexOf(name string) (int, bool) {
	for i, n := range m.names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}
func (m *fourFeatures) nameAt(i int) string     { return m.names[i] }
func (m *fourFeatures) featureAt(i int) Feature { return m.feats[i] }

// nFeatures backs any model with five or more features, or with zero
// (an empty model is legal: a TraversalModel that tracks nothing still
// needs a StateModel to hand callers an empty StateVector).
type nFeatures struct {
	names []string
	feats []Feature
	index map[string]int
}

func (m *nFeatures) len() int { return len(m.names) }
func (m *nFeatures) indexOf(name string) (int, bool) {
	i, ok := m.index[name]
	return i, ok
}
func (m *nFeatures) nameAt(i int) string     { return m.names[i] }
func (m *nFeatures) featureAt(i int) Feature { return m.feats[i] }
