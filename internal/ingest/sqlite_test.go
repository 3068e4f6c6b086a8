package ingest_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/openrouteengine/compass/internal/ingest"
)

func seedTestDB(t *testing.T, path string) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE vertices (vertex_id INTEGER, lon REAL, lat REAL);
		CREATE TABLE edges (edge_id INTEGER, src INTEGER, dst INTEGER, distance REAL, grade REAL, road_class INTEGER);
		INSERT INTO vertices VALUES (0, -105.0, 40.0), (1, -105.1, 40.1), (2, -105.2, 40.2);
		INSERT INTO edges VALUES (0, 0, 1, 100, 0, 1), (1, 1, 2, 200, 2.5, 2);
	`)
	require.NoError(t, err)
}

func TestSQLiteSource_LoadBuildsGraphMatchingTables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "network.db")
	seedTestDB(t, path)

	src := ingest.NewSQLiteSource(path)
	g, err := src.Load()
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 2, g.NumEdges())

	e1, err := g.EdgeAttr(1)
	require.NoError(t, err)
	assert.Equal(t, 200.0, e1.Distance)
	assert.Equal(t, 2.5, e1.Grade)
	assert.Equal(t, uint8(2), e1.RoadClass)
}

func TestSQLiteSource_MissingTableIsSchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	db.Close()

	src := ingest.NewSQLiteSource(path)
	_, err = src.Load()
	assert.ErrorIs(t, err, ingest.ErrSchemaMismatch)
}
