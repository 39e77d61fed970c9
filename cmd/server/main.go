// Package main is the entry point for the Month Planner server.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/month-planner/backend/internal/api"
	"github.com/month-planner/backend/internal/config"
	"github.com/month-planner/backend/internal/storage"
	"github.com/month-planner/backend/internal/store"
	"github.com/month-planner/backend/internal/web"
	"github.com/month-planner/backend/internal/websocket"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	configPath := flag.String("config", "./config.yaml", "Path to the YAML config file")
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	dataDir := flag.String("data", "", "Data directory for the SQLite database (overrides config)")
	flag.Parse()

	log.Printf("Starting Month Planner (version: %s)...", version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config %q: %v", *configPath, err)
	}
	if *addr != "" {
		cfg.Listen = *addr
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	// Database and persisted event slot.
	db, err := storage.NewDB(filepath.Join(cfg.DataDir, "month-planner.db"))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := storage.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Event store over the durable slot.
	events, err := store.New(storage.NewSlotRepository(db))
	if err != nil {
		log.Fatalf("Failed to load event store: %v", err)
	}
	log.Printf("Loaded %d events", events.Count())

	// Change broadcasts: every store mutation re-renders open views.
	hub := websocket.NewHub()
	go hub.Run()

	broadcaster := websocket.NewBroadcaster(hub)
	events.Subscribe(func() {
		broadcaster.EventsChanged(events.Count())
	})

	// Midnight rollover invalidates today/past cell classification.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@midnight", broadcaster.DayRollover); err != nil {
		log.Printf("Warning: failed to schedule day rollover: %v", err)
	}
	scheduler.Start()

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	router := api.NewRouter(api.Deps{
		DB:        db,
		Store:     events,
		Hub:       hub,
		Renderer:  renderer,
		WeekStart: cfg.WeekStartDay(),
	})

	server := &http.Server{
		Addr:         cfg.Listen,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://%s", cfg.Listen)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
