package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openrouteengine/compass/graph"
	"github.com/openrouteengine/compass/internal/config"
	"github.com/openrouteengine/compass/internal/resultio"
	"github.com/openrouteengine/compass/internal/traceid"
	"github.com/openrouteengine/compass/search"
)

var (
	queryEngineConfigPath string
	queryConfigPath       string
	queryFormat           string
	queryReverse          bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run one search from a query config and print the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := runQuery(queryEngineConfigPath, queryConfigPath, queryFormat, queryReverse)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	queryCmd.Flags().StringVar(&queryEngineConfigPath, "engine-config", "", "path to engine config (yaml/toml/json)")
	queryCmd.Flags().StringVar(&queryConfigPath, "query", "", "path to query config (yaml/toml/json)")
	queryCmd.Flags().StringVar(&queryFormat, "format", "json", "output format: json or yaml")
	queryCmd.Flags().BoolVar(&queryReverse, "reverse", false, "search backward from destination to origin")
	queryCmd.MarkFlagRequired("engine-config")
	queryCmd.MarkFlagRequired("query")
}

// runQuery loads configs, builds and runs the engine, and serializes
// the result in the requested format. Split out of RunE so serve can
// reuse it per watched file.
func runQuery(engineConfigPath, queryPath, format string, reverse bool) ([]byte, error) {
	id := traceid.New()
	zap.L().Info("query starting", zap.String("trace_id", id.String()), zap.String("query_config", queryPath))

	ec, err := config.LoadEngineConfig(engineConfigPath)
	if err != nil {
		return nil, err
	}
	qc, err := config.LoadQuery(queryPath)
	if err != nil {
		return nil, err
	}
	g, err := loadGraph(ec)
	if err != nil {
		return nil, err
	}

	dir := graph.Forward
	if reverse {
		dir = graph.Reverse
	}
	engine, err := buildEngine(ec, qc, g, dir)
	if err != nil {
		return nil, err
	}

	q := search.Query{Origin: graph.VertexId(qc.OriginVertex), ExportTree: qc.ExportTree}
	if qc.DestinationVertex != nil {
		dest := graph.VertexId(*qc.DestinationVertex)
		q.Destination = &dest
	}

	result, err := engine.Run(context.Background(), q)
	if err != nil {
		zap.L().Error("query failed", zap.String("trace_id", id.String()), zap.Error(err))
		return nil, err
	}
	zap.L().Info("query complete", zap.String("trace_id", id.String()), zap.Int("route_edges", len(result.Route)))

	if format == "yaml" {
		return resultio.MarshalYAML(result)
	}
	return resultio.MarshalJSON(result)
}
