// Package telemetry configures the process-global zap logger used by
// compassctl and by library code (statemodel.Extend, internal/watch)
// that logs through zap.L() rather than taking a logger dependency.
package telemetry
