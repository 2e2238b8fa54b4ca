package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sahyadri-labs/fra-atlas/internal/engine"
	"github.com/sahyadri-labs/fra-atlas/internal/model"
	"github.com/sahyadri-labs/fra-atlas/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP analysis API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEngine(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(env),
		}
		ln, err := net.Listen("tcp", srv.Addr)
		if err != nil {
			return eris.Wrap(err, "server listen")
		}

		zap.L().Info("starting server", zap.Int("port", port))
		return runServer(ctx, srv, ln)
	},
}

const shutdownTimeout = 10 * time.Second

// runServer serves until ctx is canceled, then drains in-flight requests.
// The signal context is already canceled at shutdown time, so the drain
// gets its own bounded context.
func runServer(ctx context.Context, srv *http.Server, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server serve")
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return eris.Wrap(err, "server shutdown")
	}
	if err := <-errCh; err != nil && err != http.ErrServerClosed {
		return eris.Wrap(err, "server serve")
	}
	return nil
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func newRouter(env *engineEnv) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(api chi.Router) {
		api.Post("/analysis", handleAnalysis(env))
		api.Post("/analysis/batch", handleBatch(env))
		api.Post("/validate-coordinates", handleValidate)
		api.Get("/regions", handleRegions(env))
		api.Get("/analyses", handleListAnalyses(env))
		api.Get("/analyses/{id}", handleGetAnalysis(env))
	})

	return r
}

type analysisRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKM  float64 `json:"radius_km,omitempty"`
}

func handleAnalysis(env *engineEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var body analysisRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		radius := body.RadiusKM
		if radius == 0 {
			radius = cfg.Engine.DefaultRadiusKM
		}

		result, err := env.Engine.Analyze(req.Context(), body.Latitude, body.Longitude, radius)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func handleBatch(env *engineEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Locations []engine.BatchPoint `json:"locations"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := env.Engine.AnalyzeBatch(req.Context(), body.Locations, cfg.Batch.MaxConcurrent)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func handleValidate(w http.ResponseWriter, req *http.Request) {
	var body analysisRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := model.NewAnalysisRequest(body.Latitude, body.Longitude, body.RadiusKM); err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"valid": false, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"valid": true})
}

func handleRegions(env *engineEnv) http.HandlerFunc {
	type regionInfo struct {
		Key    string   `json:"key"`
		MinLat float64  `json:"min_lat"`
		MaxLat float64  `json:"max_lat"`
		MinLon float64  `json:"min_lon"`
		MaxLon float64  `json:"max_lon"`
		Tribes []string `json:"dominant_tribes,omitempty"`
		Forest string   `json:"forest_type,omitempty"`
	}
	return func(w http.ResponseWriter, req *http.Request) {
		boxes := env.Regions.Boxes()
		regions := make([]regionInfo, 0, len(boxes))
		for _, b := range boxes {
			regions = append(regions, regionInfo{
				Key:    b.Key,
				MinLat: b.MinLat,
				MaxLat: b.MaxLat,
				MinLon: b.MinLon,
				MaxLon: b.MaxLon,
				Tribes: b.Profile.DominantTribes,
				Forest: b.Profile.ForestType,
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{"regions": regions})
	}
}

func handleListAnalyses(env *engineEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if env.Store == nil {
			writeError(w, http.StatusServiceUnavailable, "persistence disabled")
			return
		}
		filter := store.AnalysisFilter{
			Region: req.URL.Query().Get("region"),
			Tier:   model.Tier(req.URL.Query().Get("tier")),
		}
		records, err := env.Store.ListAnalyses(req.Context(), filter)
		if err != nil {
			zap.L().Error("list analyses failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "list analyses failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"analyses": records, "count": len(records)})
	}
}

func handleGetAnalysis(env *engineEnv) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if env.Store == nil {
			writeError(w, http.StatusServiceUnavailable, "persistence disabled")
			return
		}
		id := chi.URLParam(req, "id")
		rec, err := env.Store.GetAnalysis(req.Context(), id)
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
