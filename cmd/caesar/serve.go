package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"GoCaesar/internal/config"
	"GoCaesar/internal/lexicon"
	"GoCaesar/internal/ranker"
	"GoCaesar/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analyze API over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	engine := ranker.New(lexicon.NewScorer(lexicon.NewRegistry()))
	handler := server.NewHandler(engine, logger)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"version": Version,
		})
	})
	mux.HandleFunc("GET /ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"name":    "GoCaesar",
			"version": Version,
		})
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  config.Duration(cfg.Server.ReadTimeout, 30*time.Second),
		WriteTimeout: config.Duration(cfg.Server.WriteTimeout, 60*time.Second),
		IdleTimeout:  config.Duration(cfg.Server.IdleTimeout, 120*time.Second),
	}

	logger.Info("listening",
		zap.String("addr", srv.Addr),
		zap.String("version", Version),
		zap.String("default_lang", cfg.Analysis.DefaultLang),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
