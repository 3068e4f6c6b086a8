package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openrouteengine/compass/internal/watch"
)

var (
	serveEngineConfigPath string
	serveQueryDir         string
	serveFormat           string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Watch a directory of query configs and re-run affected queries as they change",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		onChange := func(path string) {
			out, err := runQuery(serveEngineConfigPath, path, serveFormat, false)
			if err != nil {
				zap.L().Error("serve: query failed", zap.String("path", path), zap.Error(err))
				return
			}
			fmt.Println(string(out))
		}

		w := watch.New(serveQueryDir, onChange)
		zap.L().Info("serve watching for query configs", zap.String("dir", serveQueryDir))
		return w.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveEngineConfigPath, "engine-config", "", "path to engine config (yaml/toml/json)")
	serveCmd.Flags().StringVar(&serveQueryDir, "query-dir", "", "directory to watch for new or changed query configs")
	serveCmd.Flags().StringVar(&serveFormat, "format", "json", "output format: json or yaml")
	serveCmd.MarkFlagRequired("engine-config")
	serveCmd.MarkFlagRequired("query-dir")
}
