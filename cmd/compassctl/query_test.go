package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunQuery_EndToEndOverCSVGraph(t *testing.T) {
	dir := t.TempDir()
	vertexPath := writeFile(t, dir, "vertices.csv", "vertex_id,lon,lat\n0,0,0\n1,0,0\n2,0,0\n")
	edgePath := writeFile(t, dir, "edges.csv", "edge_id,src,dst,distance,grade,road_class\n0,0,1,100,0,1\n1,1,2,200,0,1\n")

	engineConfigPath := writeFile(t, dir, "engine.yaml", `
state_model_features:
  distance:
    distance_unit: meters
cost_model:
  weights: {distance: 1.0}
  rates: {distance: 1.0}
  aggregation: sum
  features: [distance]
vertex_csv_path: `+vertexPath+`
edge_csv_path: `+edgePath+`
`)

	queryPath := writeFile(t, dir, "query.yaml", `
origin_vertex: 0
destination_vertex: 2
cost_model:
  weights: {distance: 1.0}
  rates: {distance: 1.0}
  aggregation: sum
  features: [distance]
traversal_model:
  type: distance
  params:
    feature_name: distance
    unit: meters
`)

	out, err := runQuery(engineConfigPath, queryPath, "json", false)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"edge_id": 0`)
	assert.Contains(t, string(out), `"edge_id": 1`)
}
