// Package graphgen builds small synthetic road networks for tests and
// benchmarks: line, cycle, grid, and random-sparse topologies, each
// producing a fully-formed *graph.Graph through graph.Builder.
//
// Every generator accepts the same functional-options configuration —
// a distance function, a grade function, a road-class function, and an
// optional seeded RNG — following the config/BuilderOption split the
// teacher's synthetic-graph package uses: a private config struct
// mutated in order by a slice of exported Option values, with Option
// constructors that no-op on a nil or invalid argument rather than
// panic.
package graphgen
