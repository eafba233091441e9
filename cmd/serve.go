package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wardrecon/boundary-engine/internal/geojson"
	"github.com/wardrecon/boundary-engine/internal/geomath"
	"github.com/wardrecon/boundary-engine/internal/golden"
	"github.com/wardrecon/boundary-engine/internal/legaldesc"
	"github.com/wardrecon/boundary-engine/internal/reconstruct"
	"github.com/wardrecon/boundary-engine/internal/streetnet"
	"github.com/wardrecon/boundary-engine/internal/streetnet/shpload"
)

var (
	servePort          int
	serveStreetNetFile string
)

// buildMux constructs the HTTP handler for the reconstruction service.
// net is a read-only street network shared across concurrent requests.
func buildMux(net streetnet.Query) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /reconstruct", func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		var wards []legaldesc.WardLegalDescription
		if err := json.NewDecoder(r.Body).Decode(&wards); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if len(wards) == 0 {
			http.Error(w, `{"error":"at least one ward legal description is required"}`, http.StatusBadRequest)
			return
		}

		results, err := reconstruct.ReconstructCity(r.Context(), wards, net, cfg.ToMatcherConfig(), cfg.ToBuilderConfig())
		if err != nil {
			zap.L().Error("reconstruction request failed", zap.String("request_id", requestID), zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}

		rings := make([][]geomath.Position, 0, len(results))
		props := make([]geojson.WardProperties, 0, len(results))
		for _, res := range results {
			if !res.Success {
				continue
			}
			rings = append(rings, res.Polygon.Ring)
			props = append(props, geojson.WardProperties{
				WardID:   res.Polygon.WardID,
				WardName: res.Polygon.WardName,
				CityFIPS: res.Polygon.CityFIPS,
				CityName: res.Polygon.CityName,
				State:    res.Polygon.State,
			})
		}

		fc, err := geojson.EncodeWardFeatureCollection(rings, props)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(fc)
	})

	mux.HandleFunc("POST /validate", func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		var req struct {
			Golden        json.RawMessage `json:"golden"`
			Reconstructed json.RawMessage `json:"reconstructed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		gv, _, err := golden.LoadGoldenVector(req.Golden)
		if err != nil {
			http.Error(w, fmt.Sprintf(`{"error":%q}`, err.Error()), http.StatusBadRequest)
			return
		}

		rings, props, err := geojson.DecodeFeatureCollection(req.Reconstructed)
		if err != nil {
			http.Error(w, fmt.Sprintf(`{"error":%q}`, err.Error()), http.StatusBadRequest)
			return
		}

		byWard := make(map[string][]geomath.Position, len(rings))
		for i, ring := range rings {
			byWard[props[i].WardID] = ring
		}

		result, err := golden.ValidateCityAgainstGolden(byWard, gv, cfg.ToGoldenVectorConfig())
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	})

	return mux
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP reconstruction and validation service",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		net, err := loadServeStreetNetwork()
		if err != nil {
			return err
		}

		mux := buildMux(net)
		port := resolvePort(servePort, cfg.Server.Port)
		return startServer(ctx, mux, port)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	serveCmd.Flags().StringVar(&serveStreetNetFile, "street-network", "", "path to a TIGER/Line street shapefile to serve against")
	_ = serveCmd.MarkFlagRequired("street-network")
	rootCmd.AddCommand(serveCmd)
}

func loadServeStreetNetwork() (streetnet.Query, error) {
	providerSegments, err := shpload.Load(serveStreetNetFile, cfg.StreetNetwork.CityFIPS)
	if err != nil {
		return nil, fmt.Errorf("load street network: %w", err)
	}
	net, err := streetnet.FromProviderWithCellSize(providerSegments, cfg.StreetNetwork.CellSizeDeg)
	if err != nil {
		return nil, fmt.Errorf("index street network: %w", err)
	}
	return net, nil
}

// startServer creates and runs the HTTP server with graceful shutdown.
func startServer(ctx context.Context, handler http.Handler, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		zap.L().Info("shutting down server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	zap.L().Info("starting server", zap.Int("port", port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return eris.Wrap(err, "server listen")
	}
	return nil
}

// resolvePort returns the port flag value if non-zero, otherwise the config default.
func resolvePort(flagPort, configPort int) int {
	if flagPort != 0 {
		return flagPort
	}
	return configPort
}
