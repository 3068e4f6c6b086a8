// Package config loads the structured Query and EngineConfig objects
// compassctl operates on from YAML, TOML, or JSON files, and builds
// the statemodel.Feature, cost.Model, and traversal.Model values they
// describe.
package config
