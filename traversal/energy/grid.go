package energy

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/openrouteengine/compass/traversal"
)

// Grid is a 2D lookup table of energy rate (kWh per mile) indexed by
// speed (mph) on one axis and grade (percent) on the other.
type Grid struct {
	speeds []float64 // ascending
	grades []float64 // ascending
	values *mat.Dense // len(speeds) rows, len(grades) cols
}

// NewGrid builds a Grid from ascending, strictly increasing axes and a
// matching values matrix. Returns ErrBuildError if the axes are not
// strictly increasing or values' dimensions don't match.
func NewGrid(speeds, grades []float64, values *mat.Dense) (*Grid, error) {
	if !strictlyIncreasing(speeds) {
		return nil, fmt.Errorf("%w: speed axis must be strictly increasing", traversal.ErrBuildError)
	}
	if !strictlyIncreasing(grades) {
		return nil, fmt.Errorf("%w: grade axis must be strictly increasing", traversal.ErrBuildError)
	}
	r, c := values.Dims()
	if r != len(speeds) || c != len(grades) {
		return nil, fmt.Errorf("%w: values is %dx%d, axes are %dx%d", traversal.ErrBuildError, r, c, len(speeds), len(grades))
	}
	return &Grid{
		speeds: append([]float64(nil), speeds...),
		grades: append([]float64(nil), grades...),
		values: values,
	}, nil
}

func strictlyIncreasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return len(xs) >= 2
}

// Predict returns the interpolated energy rate (kWh/mile) at
// (speedMph, gradePercent). Exact grid corners return the stored value
// with no floating-point interpolation error; points outside [min,max]
// on either axis return traversal.ErrPredictionInvalid.
func (g *Grid) Predict(speedMph, gradePercent float64) (float64, error) {
	si, sf, err := bracket(g.speeds, speedMph)
	if err != nil {
		return 0, err
	}
	gi, gf, err := bracket(g.grades, gradePercent)
	if err != nil {
		return 0, err
	}

	q11 := g.values.At(si, gi)
	q12 := g.values.At(si, gi+1)
	q21 := g.values.At(si+1, gi)
	q22 := g.values.At(si+1, gi+1)

	top := q11*(1-gf) + q12*gf
	bottom := q21*(1-gf) + q22*gf
	return top*(1-sf) + bottom*sf, nil
}

// bracket finds the grid cell containing x on axis, returning the
// lower index and the fractional position within the cell ([0,1]). A
// value exactly on an axis point returns fraction 0 against that index
// (or, for the last axis point, fraction 1 against the index before
// it), so callers reconstruct the stored value exactly rather than
// picking up interpolation error.
func bracket(axis []float64, x float64) (int, float64, error) {
	last := len(axis) - 1
	if x < axis[0] || x > axis[last] {
		return 0, 0, fmt.Errorf("%w: value %v outside grid bounds [%v, %v]", traversal.ErrPredictionInvalid, x, axis[0], axis[last])
	}
	i := sort.SearchFloat64s(axis, x)
	if i <= last && axis[i] == x {
		if i == last {
			return last - 1, 1, nil
		}
		return i, 0, nil
	}
	lo := i - 1
	hi := i
	frac := (x - axis[lo]) / (axis[hi] - axis[lo])
	return lo, frac, nil
}
