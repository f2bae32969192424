package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/tabbit-app/tabbit-backend/docs"
	"github.com/tabbit-app/tabbit-backend/internal/config"
	"github.com/tabbit-app/tabbit-backend/internal/database"
	"github.com/tabbit-app/tabbit-backend/internal/friend"
	"github.com/tabbit-app/tabbit-backend/internal/receipt"
	"github.com/tabbit-app/tabbit-backend/internal/scan"
	"github.com/tabbit-app/tabbit-backend/pkg/logging"
	"github.com/tabbit-app/tabbit-backend/pkg/metrics"
	mw "github.com/tabbit-app/tabbit-backend/pkg/middleware"
)

// @title        Tabbit API
// @version      1.0
// @description  Backend for the Tabbit receipt-splitting app: receipt storage, the split engine, friends, and the scanning boundary.
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("Connected to database")

	// Receipt feature (the split engine lives underneath its service)
	receiptRepo := receipt.NewRepository(db)
	receiptService := receipt.NewService(receiptRepo)
	receiptHandler := receipt.NewHandler(receiptService)

	// Friend feature
	friendRepo := friend.NewRepository(db)
	friendService := friend.NewService(friendRepo)
	friendHandler := friend.NewHandler(friendService)

	// Scanning boundary (external service)
	scanClient := scan.NewClient(cfg.ScanAPIURL, cfg.ScanAPIKey)
	scanHandler := scan.NewHandler(scanClient)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(mw.DeviceIdentity)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Device-ID"},
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/receipts", receiptHandler.Routes())
		r.Mount("/friends", friendHandler.Routes())
		r.Mount("/scan", scanHandler.Routes())

		// Public share page data, addressed by share code rather than id
		r.Get("/share/{code}", receiptHandler.Share)
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("Server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
