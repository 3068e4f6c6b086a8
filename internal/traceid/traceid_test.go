package traceid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openrouteengine/compass/internal/traceid"
)

func TestNew_ProducesDistinctIDs(t *testing.T) {
	a := traceid.New()
	b := traceid.New()
	assert.NotEqual(t, a, b)
	assert.Len(t, a.String(), 36)
}
