package main

import (
	"fmt"

	"github.com/openrouteengine/compass/graph"
	"github.com/openrouteengine/compass/internal/config"
	"github.com/openrouteengine/compass/internal/ingest"
	"github.com/openrouteengine/compass/search"
	"github.com/openrouteengine/compass/statemodel"
)

// loadGraph ingests a Graph from whichever source the engine config
// names, preferring SQLite when both are set.
func loadGraph(ec *config.EngineConfig) (*graph.Graph, error) {
	switch {
	case ec.SQLitePath != "":
		return ingest.NewSQLiteSource(ec.SQLitePath).Load()
	case ec.VertexCSVPath != "" && ec.EdgeCSVPath != "":
		return ingest.NewCSVSource(ec.VertexCSVPath, ec.EdgeCSVPath).Load()
	default:
		return nil, fmt.Errorf("engine config names no ingestion source (sqlite_path or vertex_csv_path+edge_csv_path)")
	}
}

// buildStateModel turns a config.FeatureSpec map into a statemodel.StateModel.
func buildStateModel(specs map[string]config.FeatureSpec) (statemodel.StateModel, error) {
	features := make(map[string]statemodel.Feature, len(specs))
	for name, spec := range specs {
		f, err := spec.ToFeature()
		if err != nil {
			return statemodel.StateModel{}, fmt.Errorf("feature %q: %w", name, err)
		}
		features[name] = f
	}
	return statemodel.New(features)
}

// buildEngine assembles a search.Engine for one query: the engine
// config supplies the StateModel's declared features and the default
// CostModel, both overridable per query; the query supplies the
// TraversalModel (which has no sensible engine-wide default).
func buildEngine(ec *config.EngineConfig, qc *config.QueryConfig, g *graph.Graph, dir graph.Direction) (*search.Engine, error) {
	featureSpecs := ec.StateModelFeatures
	if len(qc.StateModelOverrides) > 0 {
		merged := make(map[string]config.FeatureSpec, len(featureSpecs)+len(qc.StateModelOverrides))
		for k, v := range featureSpecs {
			merged[k] = v
		}
		for k, v := range qc.StateModelOverrides {
			merged[k] = v
		}
		featureSpecs = merged
	}
	sm, err := buildStateModel(featureSpecs)
	if err != nil {
		return nil, err
	}

	costCfg := ec.CostModel
	if qc.CostModel.Aggregation != "" {
		costCfg = qc.CostModel
	}
	cm, err := costCfg.ToModel()
	if err != nil {
		return nil, fmt.Errorf("cost model: %w", err)
	}

	tm, err := qc.TraversalModel.ToModel()
	if err != nil {
		return nil, fmt.Errorf("traversal model: %w", err)
	}

	return &search.Engine{
		Graph:          g,
		Direction:      dir,
		TraversalModel: tm,
		CostModel:      cm,
		StateModel:     sm,
	}, nil
}
