package ingest

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/openrouteengine/compass/graph"
)

// SQLiteSource builds a Graph from a SQLite database with a "vertices"
// table (vertex_id, lon, lat) and an "edges" table (edge_id, src, dst,
// distance, grade, road_class), the on-disk storage form named
// alongside CSVSource.
type SQLiteSource struct {
	Path string
}

// NewSQLiteSource returns a SQLiteSource reading from the database at
// path, opened read-only.
func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{Path: path}
}

// Load opens the database, counts rows in each table to preallocate
// the builder, fills it, and closes the connection before returning.
func (s *SQLiteSource) Load() (*graph.Graph, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", s.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("ingest: opening %s: %w", s.Path, err)
	}
	defer db.Close()

	nVertices, err := countRows(db, "vertices")
	if err != nil {
		return nil, err
	}
	nEdges, err := countRows(db, "edges")
	if err != nil {
		return nil, err
	}

	b := graph.NewBuilder(nVertices, nEdges)

	if err := fillVerticesFromDB(db, b); err != nil {
		return nil, err
	}
	if err := fillEdgesFromDB(db, b); err != nil {
		return nil, err
	}

	return b.Build()
}

func countRows(db *sql.DB, table string) (int, error) {
	var n int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := db.QueryRow(query).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: table %q: %v", ErrSchemaMismatch, table, err)
	}
	return n, nil
}

func fillVerticesFromDB(db *sql.DB, b *graph.Builder) error {
	rows, err := db.Query(`SELECT vertex_id, lon, lat FROM vertices`)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uint64
		var lon, lat float64
		if err := rows.Scan(&id, &lon, &lat); err != nil {
			return fmt.Errorf("%w: scanning vertex row: %v", ErrMalformedRecord, err)
		}
		if err := b.AddVertex(graph.VertexId(id), graph.Coordinate{Lon: lon, Lat: lat}); err != nil {
			return err
		}
	}
	return rows.Err()
}

func fillEdgesFromDB(db *sql.DB, b *graph.Builder) error {
	rows, err := db.Query(`SELECT edge_id, src, dst, distance, grade, road_class FROM edges`)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, src, dst uint64
		var distance, grade float64
		var roadClass uint8
		if err := rows.Scan(&id, &src, &dst, &distance, &grade, &roadClass); err != nil {
			return fmt.Errorf("%w: scanning edge row: %v", ErrMalformedRecord, err)
		}
		if err := b.AddEdge(graph.EdgeId(id), graph.VertexId(src), graph.VertexId(dst), distance, grade, roadClass); err != nil {
			return err
		}
	}
	return rows.Err()
}
