// Package traceid mints identifiers for search invocations so a query
// can be followed through compassctl's log lines. The identifier is not
// part of the serialized result.
package traceid
