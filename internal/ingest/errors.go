package ingest

import "errors"

// ErrMalformedRecord is returned when a vertex or edge row can't be
// parsed into its expected fields.
var ErrMalformedRecord = errors.New("ingest: malformed record")

// ErrSchemaMismatch is returned when a SQLite source is missing one of
// the tables or columns ingest expects.
var ErrSchemaMismatch = errors.New("ingest: schema mismatch")
