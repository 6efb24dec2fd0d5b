package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/rpattn/txnimport/internal/config"
	"github.com/rpattn/txnimport/internal/db"
	"github.com/rpattn/txnimport/internal/ingestion"
	"github.com/rpattn/txnimport/internal/middleware"
	"github.com/rpattn/txnimport/internal/query"
	"github.com/rpattn/txnimport/internal/repository"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load(".", logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup database connection
	conn, err := db.NewConnection(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer conn.Close()

	// Run migrations
	if err := db.RunMigrations(cfg.Database, "./migrations"); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Create repositories
	importRepo := repository.NewImportRepository(conn.Pool)
	transactionRepo := repository.NewTransactionRepository(conn)

	// Register one parser per supported format; duplicates fail here, at
	// startup, not at request time.
	registry, err := ingestion.NewRegistry(
		ingestion.NewCSVParser(cfg.Import.CSVHeaderRow),
		ingestion.NewXMLParser(),
		ingestion.NewXLSXParser(cfg.Import.CSVHeaderRow),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build format registry")
	}

	importService := ingestion.NewService(importRepo, transactionRepo, registry, ingestion.NewValidator(), logger)
	queryService := query.NewService(transactionRepo)

	// Setup CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
	})

	mux := http.NewServeMux()
	mux.Handle("/api/v1/uploads", ingestion.NewHTTPHandler(importService, cfg.Import.MaxUploadBytes, logger))
	mux.Handle("/api/v1/transactions", query.NewHTTPHandler(queryService, logger))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})

	handler := middleware.CorrelationID(
		middleware.Logging(logger)(corsHandler.Handler(mux)),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Msg("starting transactions API")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}
