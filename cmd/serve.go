package cmd

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/abhisek/opsdojo/internal/api"
	"github.com/abhisek/opsdojo/internal/feedback"
	"github.com/abhisek/opsdojo/internal/llm"
	"github.com/abhisek/opsdojo/internal/runs"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the run operations over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.Serve.Addr
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		composerOpts := []feedback.Option{}
		if cfg.ElaborateFeedback {
			// Elaboration is optional on the HTTP surface: without a
			// configured provider the templates stand alone.
			if llmCfg, ok := llm.DiscoverConfig(); ok {
				provider, err := llm.NewProvider(cmd.Context(), llmCfg, s.LLMEventRepo())
				if err != nil {
					slog.Warn("provider unavailable, feedback stays template-only", "error", err)
				} else {
					composerOpts = append(composerOpts, feedback.WithElaboration(provider))
				}
			}
		}

		mgr := runs.NewManager(s, feedback.New(composerOpts...), runs.Options{MaxAttempts: cfg.MaxAttempts})

		gin.SetMode(gin.ReleaseMode)
		router := gin.New()
		router.Use(gin.Recovery())

		v1 := router.Group("/v1")
		api.RegisterRoutes(v1, api.NewHandlers(mgr))

		slog.Info("listening", "addr", addr)
		return router.Run(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides config, default :8080)")
}
