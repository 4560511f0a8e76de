// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
//
//	@title			Mergington High School Activities API
//	@version		1.0
//	@description	Browse extracurricular activities and manage student sign-ups.
//	@BasePath		/
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

	"github.com/Shivanand-hulikatti/activity-board/internal/board"
	"github.com/Shivanand-hulikatti/activity-board/internal/config"
	"github.com/Shivanand-hulikatti/activity-board/internal/database"
	"github.com/Shivanand-hulikatti/activity-board/internal/docs"
	"github.com/Shivanand-hulikatti/activity-board/internal/handler"
	"github.com/Shivanand-hulikatti/activity-board/internal/repository"
	"github.com/Shivanand-hulikatti/activity-board/internal/service"
	"github.com/Shivanand-hulikatti/activity-board/internal/web"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ── 1. Open the activity store ────────────────────────────────────────
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer closeStore()
	log.Printf("✓ Using %s store", cfg.Store)

	// ── 2. Wire up layers ────────────────────────────────────────────────
	activitySvc := service.NewActivityService(store)
	activityHandler := handler.NewActivityHandler(activitySvc)

	state := web.NewState()
	ctrl := board.New(
		board.NewClient(cfg.BoardAPIURL, nil),
		state,
		board.NewStatusLine(cfg.MessageTTL),
	)
	boardHandler := web.NewHandler(ctrl, state, web.WithCSRFKey(cfg.BoardCSRFKey))

	// ── 3. Build the router ───────────────────────────────────────────────
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(handler.Logger)          // access log
	r.Use(handler.CORS)            // permissive CORS for demo

	r.Get("/", handler.RedirectToBoard)
	r.Get("/health", handler.HealthCheck)

	// API routes
	r.Mount("/activities", activityHandler.Routes())
	r.Get("/swagger/*", docs.Handler())

	// Board page, its fragments, and the stylesheet.
	r.Mount("/", boardHandler.Routes())

	// ── 4. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		log.Printf("✓ Server listening on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	log.Println("server stopped")
}

// openStore builds the store selected by STORE and seeds it on first use.
// The returned func releases the store's resources.
func openStore(ctx context.Context, cfg config.Config) (service.ActivityStore, func(), error) {
	switch cfg.Store {
	case config.StoreSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewSQLiteRepository(db)
		if err := repo.Seed(ctx, repository.SeedCatalog()); err != nil {
			_ = repo.Close()
			return nil, nil, fmt.Errorf("seed sqlite: %w", err)
		}
		return repo, func() { _ = repo.Close() }, nil

	case config.StorePostgres:
		pool, err := database.NewPool(ctx, cfg.DB.DSN())
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		repo := repository.NewActivityRepository(pool)
		if err := repo.Seed(ctx, repository.SeedCatalog()); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("seed postgres: %w", err)
		}
		return repo, pool.Close, nil

	default:
		repo := repository.NewMemoryRepository()
		if err := repo.Seed(ctx, repository.SeedCatalog()); err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}
