package statemodel

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFeature is returned when a caller asks for a feature name
	// the model was not built with.
	ErrUnknownFeature = errors.New("statemodel: unknown feature")

	// ErrIncompatibleFeatureType is returned when a typed getter or setter
	// is used against a feature declared as a different kind, e.g.
	// GetDistance on a feature built with EnergyFeature.
	ErrIncompatibleFeatureType = errors.New("statemodel: incompatible feature type")

	// ErrStateVectorSizeMismatch is returned when a StateVector's length
	// does not equal the model's feature count.
	ErrStateVectorSizeMismatch = errors.New("statemodel: state vector size mismatch")

	// ErrCodecError is returned when a custom feature's encode or decode
	// step rejects a value (out of range, not integral, not 0/1).
	ErrCodecError = errors.New("statemodel: codec error")
)

func unknownFeaturef(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownFeature, name)
}

func incompatiblef(name string, want, got FeatureKind) error {
	return fmt.Errorf("%w: feature %q is %s, not %s", ErrIncompatibleFeatureType, name, got, want)
}

func sizeMismatchf(want, got int) error {
	return fmt.Errorf("%w: want %d, got %d", ErrStateVectorSizeMismatch, want, got)
}

func codecErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCodecError, fmt.Sprintf(format, args...))
}
