package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"prompt-console/internal/credential"
	"prompt-console/internal/gemini"
	"prompt-console/internal/message"
	"prompt-console/internal/responselog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// main is the entry point for the ConsoleService.
func main() {
	// .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
	zerolog.TimeFieldFormat = time.RFC3339
	configureLogLevel(os.Getenv("LOG_LEVEL"))

	// Need the database connection string for the preference store. Fail
	// fast if it's not set.
	connStr := os.Getenv("DB_CONNECTION_STRING")
	if connStr == "" {
		log.Fatal().Msg("DB_CONNECTION_STRING environment variable is not set")
	}

	db, err := connectDB(connStr)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not connect to database")
	}
	defer db.Close() // Make sure the connection is closed on exit.
	log.Info().Msg("Database connected")

	// This is the dependency injection part, done manually.
	// We create each layer and pass it to the next.

	// One REST client serves as both the validation probe and the
	// generation call.
	geminiClient := gemini.NewClient(os.Getenv("GEMINI_API_BASE_URL"), os.Getenv("GEMINI_MODEL"))

	// Data access layer.
	prefRepo := credential.NewPostgresRepository(db)

	// Business logic layer.
	credService := credential.NewService(geminiClient, prefRepo)
	msgService := message.NewService(geminiClient)

	// The response log lives for the lifetime of the process.
	logStore := responselog.NewMemoryStore()

	// API layer.
	credHandler := credential.NewHandler(credService)
	msgHandler := message.NewHandler(msgService, credService, logStore)
	logHandler := responselog.NewHandler(logStore)

	// Set up the chi router.
	r := chi.NewRouter()

	// Add standard middleware.
	r.Use(middleware.Logger)    // Log requests
	r.Use(middleware.Recoverer) // Handle panics gracefully

	// Simple health check.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ConsoleService OK"))
	})

	// Register all the API routes from the handlers.
	credHandler.RegisterRoutes(r)
	msgHandler.RegisterRoutes(r)
	logHandler.RegisterRoutes(r)

	// Find the port to run on, or use a default.
	port := os.Getenv("PORT")
	if port == "" {
		port = "8085" // Default for ConsoleService
	}

	log.Info().Str("port", port).Msg("ConsoleService starting")

	// Start the server and block until it errors or is stopped.
	if err := http.ListenAndServe(fmt.Sprintf(":%s", port), r); err != nil {
		log.Fatal().Err(err).Msg("Could not start server")
	}
}

// configureLogLevel maps the LOG_LEVEL env var onto zerolog's global level.
func configureLogLevel(level string) {
	switch level {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// connectDB is a helper to open and verify the database connection.
func connectDB(connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, err
	}
	// Ping() ensures the connection is actually valid.
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
