package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/bangohan/kondate/internal/api"
	"github.com/bangohan/kondate/internal/cache"
	"github.com/bangohan/kondate/internal/config"
	"github.com/bangohan/kondate/internal/db"
	"github.com/bangohan/kondate/internal/httpclient"
	"github.com/bangohan/kondate/internal/logger"
	"github.com/bangohan/kondate/internal/metrics"
	"github.com/bangohan/kondate/internal/middleware"
	"github.com/bangohan/kondate/internal/services/gemini"
	"github.com/bangohan/kondate/internal/services/suggestion"
	"github.com/bangohan/kondate/internal/store"
	"github.com/bangohan/kondate/internal/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/riandyrn/otelchi"
	otelchimetric "github.com/riandyrn/otelchi/metric"
	"go.opentelemetry.io/otel"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize telemetry
	if cfg.OtelExporterOTLPEndpoint != "" {
		shutdown, err := telemetry.InitTelemetry(ctx, cfg.ServiceName, cfg.ServiceVersion, cfg.Env, cfg.OtelExporterOTLPEndpoint, nil)
		if err != nil {
			slog.Warn("Failed to init telemetry", "error", err)
		} else {
			defer shutdown(ctx)
		}
	}

	// Initialize business metrics
	if err := metrics.Init(); err != nil {
		slog.Warn("Failed to init business metrics", "error", err)
	}

	// Initialize logger with OTel support
	logger := logger.New(cfg.Env)
	slog.SetDefault(logger)

	if !cfg.HasCredential() {
		slog.Warn("GOOGLE_API_KEY is not set; suggestion requests will fail until it is configured")
	}

	// Optional suggestion history
	var history *store.SuggestionStore
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		history = store.NewSuggestionStore(pool)
		if err := history.Migrate(ctx); err != nil {
			log.Fatalf("Failed to migrate suggestion store: %v", err)
		}
	}

	// Gemini client for catalog and generation
	geminiOpts := []gemini.Option{
		gemini.WithHTTPClient(httpclient.NewInstrumentedClient(time.Duration(cfg.Gemini.RequestTimeoutSeconds) * time.Second)),
	}
	if cfg.Gemini.BaseURL != "" {
		geminiOpts = append(geminiOpts, gemini.WithBaseURL(cfg.Gemini.BaseURL))
	}
	geminiClient := gemini.NewClient(cfg.GoogleAPIKey, geminiOpts...)

	// Session-scoped model catalog
	catalog := cache.NewCatalog(geminiClient, time.Duration(cfg.Gemini.CatalogTTLSeconds)*time.Second)

	// Suggestion pipeline
	var recorder suggestion.Recorder
	if history != nil {
		recorder = history
	}
	svc := suggestion.NewService(cfg.HasCredential(), catalog, geminiClient, recorder).
		WithPriorities(cfg.Gemini.Priorities)

	// API handlers
	var historyReader api.History
	if history != nil {
		historyReader = history
	}
	apiServer := api.NewServer(cfg, svc, historyReader)

	// Router
	r := chi.NewRouter()

	// Middleware
	r.Use(otelchi.Middleware(cfg.ServiceName,
		otelchi.WithChiRoutes(r),
		otelchi.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/health"
		}),
	))

	// HTTP metrics
	metricCfg := otelchimetric.NewBaseConfig(cfg.ServiceName, otelchimetric.WithMeterProvider(otel.GetMeterProvider()))
	r.Use(otelchimetric.NewRequestDurationMillis(metricCfg))
	r.Use(otelchimetric.NewRequestInFlight(metricCfg))
	r.Use(otelchimetric.NewResponseSizeBytes(metricCfg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes, protected when AUTH_JWT_SECRET is set
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg))
		r.Post("/api/v1/suggestions", apiServer.HandleCreateSuggestion)
		r.Get("/api/v1/suggestions", apiServer.HandleListSuggestions)
		r.Get("/api/v1/models", apiServer.HandleModels)
	})

	slog.Info("Starting server", "port", cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
