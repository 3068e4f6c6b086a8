package telemetry

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init builds a zap logger and installs it as the process global via
// zap.ReplaceGlobals, so code elsewhere in the module can just call
// zap.L() without threading a logger through every constructor. It
// returns a function that syncs the new logger and then calls the undo
// function zap.ReplaceGlobals gave back, which callers should defer to
// restore the previous global on shutdown.
func Init(verbose bool) (func(), error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("telemetry: building logger: %w", err)
	}
	restore := zap.ReplaceGlobals(logger)
	return func() {
		_ = logger.Sync()
		restore()
	}, nil
}
