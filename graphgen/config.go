package graphgen

import "math/rand"

// DistanceFn returns the distance (meters) for the edge running from
// index i to index j in whatever index space a generator uses.
type DistanceFn func(rng *rand.Rand, i, j int) float64

// GradeFn returns the grade (percent) for the same edge.
type GradeFn func(rng *rand.Rand, i, j int) float64

// RoadClassFn returns the road class byte for the same edge.
type RoadClassFn func(rng *rand.Rand, i, j int) uint8

// DefaultDistanceMeters is used by generators that don't vary edge
// length, e.g. Cycle and Grid's uniform lattice spacing.
const DefaultDistanceMeters = 100.0

func defaultDistanceFn(_ *rand.Rand, _, _ int) float64  { return DefaultDistanceMeters }
func defaultGradeFn(_ *rand.Rand, _, _ int) float64     { return 0 }
func defaultRoadClassFn(_ *rand.Rand, _, _ int) uint8   { return 1 }

// Option customizes a generator's config before it builds a graph.
//
// As a rule, Option constructors never panic at runtime and ignore
// invalid inputs rather than produce a half-configured generator.
type Option func(cfg *config)

type config struct {
	rng         *rand.Rand
	distanceFn  DistanceFn
	gradeFn     GradeFn
	roadClassFn RoadClassFn
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		rng:         rand.New(rand.NewSource(1)),
		distanceFn:  defaultDistanceFn,
		gradeFn:     defaultGradeFn,
		roadClassFn: defaultRoadClassFn,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds the generator's RNG for reproducible random topology
// and edge attribute generation.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithDistanceFn overrides how edge distances are generated. A nil fn
// is a no-op.
func WithDistanceFn(fn DistanceFn) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.distanceFn = fn
		}
	}
}

// WithGradeFn overrides how edge grades are generated. A nil fn is a
// no-op.
func WithGradeFn(fn GradeFn) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.gradeFn = fn
		}
	}
}

// WithRoadClassFn overrides how edge road classes are generated. A nil
// fn is a no-op.
func WithRoadClassFn(fn RoadClassFn) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.roadClassFn = fn
		}
	}
}
