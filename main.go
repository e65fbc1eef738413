package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mime-registry/internal/handlers"
	"mime-registry/internal/logging"
	"mime-registry/internal/metrics"
	"mime-registry/internal/middleware"
	"mime-registry/internal/mimetypes"
	"mime-registry/internal/startup"

	"github.com/gorilla/mux"
)

func main() {
	startTime := time.Now()

	// Load configuration
	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	// Seed the registry
	seedStart := time.Now()
	registry := mimetypes.NewDefault()
	registry.RegisterEmptyTypes = config.AllowEmptyTypes
	if config.ExtraTypesFile != "" {
		if err := registry.AddTypesFromFile(config.ExtraTypesFile); err != nil {
			startup.LogFatal("Failed to load %s: %v", config.ExtraTypesFile, err)
		}
	}
	seedDuration := time.Since(seedStart)
	startup.LogRegistryInit(registry.TypeCount(), registry.ExtCount(), seedDuration)

	metrics.InitializeMetrics()
	metrics.SeedLoadDuration.Set(seedDuration.Seconds())
	metrics.RegisteredTypes.Set(float64(registry.TypeCount()))
	metrics.RegisteredExtensions.Set(float64(registry.ExtCount()))

	// Initialize handlers
	h := handlers.New(registry)

	// Setup router
	router := setupRouter(h)
	startup.LogHTTPRoutes(router)

	// Apply metrics middleware
	metricsHandler := middleware.Metrics(middleware.DefaultMetricsConfig())(router)

	// Apply logging middleware
	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = config.LogHealthChecks
	handler := middleware.Logger(loggingConfig)(metricsHandler)

	// Create server
	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Serve Prometheus metrics on a separate port
	var metricsSrv *http.Server
	if config.MetricsEnabled {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", h.MetricsHandler())
		metricsSrv = &http.Server{
			Addr:        ":" + config.MetricsPort,
			Handler:     metricsMux,
			ReadTimeout: 15 * time.Second,
		}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != http.ErrServerClosed {
				logging.Error("Metrics server error: %v", err)
			}
		}()
	}

	// Start graceful shutdown handler
	go handleShutdown(srv, metricsSrv)

	// Start server
	startup.LogServerStarted(startup.ServerConfig{
		Port:            config.Port,
		MetricsPort:     config.MetricsPort,
		MetricsEnabled:  config.MetricsEnabled,
		StartupDuration: time.Since(startTime),
	})
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		startup.LogFatal("Server error: %v", err)
	}
}

func setupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()

	// Health check and version routes
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET", "HEAD")
	r.HandleFunc("/readyz", h.ReadinessCheck).Methods("GET")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	// Lookup API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/types/{category}/{subtype:.+}/alt", h.GetAltTypes).Methods("GET")
	api.HandleFunc("/types/{category}/{subtype:.+}", h.GetTypeExtensions).Methods("GET")
	api.HandleFunc("/types", h.AddType).Methods("POST")
	api.HandleFunc("/extensions/{ext}", h.GetExtensionTypes).Methods("GET")

	return r
}

func handleShutdown(srv, metricsSrv *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(ctx); err != nil {
			logging.Warn("Metrics server shutdown error: %v", err)
		} else {
			startup.LogShutdownStepComplete("Metrics server stopped")
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete("HTTP server stopped")
	}

	startup.LogShutdownComplete()
}
