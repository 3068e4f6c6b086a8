package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openrouteengine/compass/internal/geo"
)

func TestHaversineMeters_SamePointIsZero(t *testing.T) {
	assert.InDelta(t, 0.0, geo.HaversineMeters(40.0, -105.0, 40.0, -105.0), 1e-9)
}

func TestHaversineMeters_OneDegreeLatitudeIsRoughlyOneHundredElevenKm(t *testing.T) {
	d := geo.HaversineMeters(0, 0, 1, 0)
	assert.InDelta(t, 111195.0, d, 200)
}

func TestValidateCoordinate_RejectsOutOfRangeLatitude(t *testing.T) {
	assert.Error(t, geo.ValidateCoordinate(91, 0))
	assert.Error(t, geo.ValidateCoordinate(-91, 0))
}

func TestValidateCoordinate_RejectsOutOfRangeLongitude(t *testing.T) {
	assert.Error(t, geo.ValidateCoordinate(0, 181))
	assert.Error(t, geo.ValidateCoordinate(0, -181))
}

func TestValidateCoordinate_AcceptsValidCoordinate(t *testing.T) {
	assert.NoError(t, geo.ValidateCoordinate(40.0, -105.0))
}
