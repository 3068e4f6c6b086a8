package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openrouteengine/compass/internal/config"
)

var ingestEngineConfigPath string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Build a graph from an engine config's CSV or SQLite source and report its size",
	RunE: func(cmd *cobra.Command, args []string) error {
		ec, err := config.LoadEngineConfig(ingestEngineConfigPath)
		if err != nil {
			return err
		}
		g, err := loadGraph(ec)
		if err != nil {
			return err
		}
		zap.L().Info("ingest complete", zap.Int("vertices", g.NumVertices()), zap.Int("edges", g.NumEdges()))
		fmt.Printf("vertices: %d\nedges: %d\n", g.NumVertices(), g.NumEdges())
		return nil
	},
}

func init() {
	ingestCmd.Flags().StringVar(&ingestEngineConfigPath, "engine-config", "", "path to engine config (yaml/toml/json)")
	ingestCmd.MarkFlagRequired("engine-config")
}
