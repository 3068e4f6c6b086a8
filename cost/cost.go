package cost

import "errors"

var (
	// ErrUnknownFeature is returned when the model references a feature
	// name the supplied StateModel does not declare.
	ErrUnknownFeature = errors.New("cost: unknown feature")

	// ErrBuildError is returned by New when the supplied configuration is
	// invalid, e.g. a negative rate or weight.
	ErrBuildError = errors.New("cost: build error")
)

// Cost is a non-negative scalar. Arithmetic on Cost never needs to
// special-case negative values: every producer in this package already
// clamps before returning one.
type Cost float64

const (
	Zero Cost = 0
	One  Cost = 1
)

// Aggregation selects how per-feature weighted costs fold into a Cost.
type Aggregation uint8

const (
	// Sum folds with +, identity Zero.
	Sum Aggregation = iota
	// Mul folds with *, identity One — except that an empty input
	// yields Zero, not One. An unconfigured Mul model (no cost-bearing
	// features) would otherwise report every route as costing exactly
	// One regardless of its actual length, silently comparing equal for
	// all candidates; returning Zero instead makes a missing
	// configuration visibly wrong rather than quietly uninformative.
	Mul
)

func (a Aggregation) fold(values []Cost) Cost {
	if len(values) == 0 {
		return Zero
	}
	switch a {
	case Mul:
		total := One
		for _, v := range values {
			total *= v
		}
		return total
	default:
		var total Cost
		for _, v := range values {
			total += v
		}
		return total
	}
}
