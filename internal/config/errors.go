package config

import "errors"

// ErrUnsupportedFormat is returned when a config path's extension isn't
// one of .yaml/.yml, .toml, or .json.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// ErrInvalidFeatureSpec is returned when a state-feature declaration
// names no recognized unit or format field, or names more than one.
var ErrInvalidFeatureSpec = errors.New("config: invalid feature spec")

// ErrUnknownUnit is returned when a unit string doesn't match any
// known unit name for its dimension.
var ErrUnknownUnit = errors.New("config: unknown unit")

// ErrUnknownAggregation is returned for a cost aggregation mode other
// than "sum" or "mul".
var ErrUnknownAggregation = errors.New("config: unknown aggregation mode")

// ErrUnknownTraversalModelType is returned when a traversal_model.type
// doesn't match a registered factory.
var ErrUnknownTraversalModelType = errors.New("config: unknown traversal model type")
