package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"examforge/internal/api"
	"examforge/internal/api/handlers"
	"examforge/internal/archive"
	"examforge/internal/gemini"
	"examforge/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables first; a missing .env file is fine when
	// the variables come from the system environment.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("FATAL: Error loading .env file: %v", err)
		}
		log.Println("WARN: .env file not found. Relying on system environment variables.")
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The AI credential is required; its absence is a startup-fatal
	// condition, not a per-request error.
	geminiClient, err := gemini.NewClient(ctx, os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer geminiClient.Close()

	// Record store: Postgres when DATABASE_URL is set, in-memory otherwise.
	var recordStore store.Store
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		pgStore, err := store.NewPostgresStore(ctx, dbURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pgStore.Close()
		recordStore = pgStore
		log.Println("INFO: using Postgres record store")
	} else {
		recordStore = store.NewMemoryStore()
		log.Println("INFO: using in-memory record store")
	}

	// Upload archival is optional; a nil client disables it.
	archiveClient, err := archive.NewClient(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize archive storage: %v", err)
	}

	router := gin.Default()
	// Uploads are capped at 10 MiB; leave headroom for multipart framing.
	router.MaxMultipartMemory = 12 << 20

	handler := handlers.NewHandler(recordStore, geminiClient, archiveClient)
	api.SetupRoutes(router, handler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Server listening on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}
