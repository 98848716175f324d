package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"FlowTagger/internal/config"
	"FlowTagger/internal/metrics"
	"FlowTagger/internal/pipeline"
	"FlowTagger/internal/report"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	configPath := "configs/config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Metrics registry
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	// Initialize router
	r := mux.NewRouter()

	// Create API handler with its dependencies
	apiHandler := &APIHandler{cfg: cfg, metrics: m}

	// Define API routes
	r.HandleFunc("/api/v1/report", apiHandler.reportHandler).Methods("GET")
	r.HandleFunc("/healthz", apiHandler.healthHandler).Methods("GET")
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Start HTTP server
	server := &http.Server{
		Addr:    cfg.API.ListenAddr,
		Handler: r,
	}

	go func() {
		log.Printf("API server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v", server.Addr, err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("API server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("API server exited.")
}

// APIHandler holds the dependencies for API handlers.
type APIHandler struct {
	cfg     *config.Config
	metrics *metrics.Metrics
}

// reportHandler runs one tagging pass over the configured inputs and
// returns the counts as JSON, preserving first-insertion order.
func (h *APIHandler) reportHandler(w http.ResponseWriter, r *http.Request) {
	rep, err := pipeline.Run(h.cfg)
	if err != nil {
		h.metrics.RunFailuresTotal.Inc()
		h.metrics.RequestsTotal.WithLabelValues("/api/v1/report", "500").Inc()
		http.Error(w, fmt.Sprintf("failed to run tagging pass: %v", err), http.StatusInternalServerError)
		return
	}
	h.metrics.ObserveRun(rep.Stats)

	summary := report.Summarize(rep, time.Now().UTC().Format(time.RFC3339))
	jsonBytes, err := json.Marshal(summary)
	if err != nil {
		h.metrics.RequestsTotal.WithLabelValues("/api/v1/report", "500").Inc()
		http.Error(w, fmt.Sprintf("failed to marshal response: %v", err), http.StatusInternalServerError)
		return
	}

	h.metrics.RequestsTotal.WithLabelValues("/api/v1/report", "200").Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(jsonBytes)
}

// healthHandler reports liveness.
func (h *APIHandler) healthHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.RequestsTotal.WithLabelValues("/healthz", "200").Inc()
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
