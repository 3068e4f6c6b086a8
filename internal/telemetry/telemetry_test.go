package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/openrouteengine/compass/internal/telemetry"
)

func TestInit_InstallsAndRestoresGlobalLogger(t *testing.T) {
	before := zap.L()

	restore, err := telemetry.Init(true)
	assert.NoError(t, err)
	assert.NotNil(t, restore)
	assert.NotEqual(t, before, zap.L())

	restore()
}
