// cmd/backoffice/main.go - Entry point
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/speakerbase/backoffice/internal/config"
	"github.com/speakerbase/backoffice/internal/handlers"
	"github.com/speakerbase/backoffice/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	// Init store. A missing DATABASE_URL is survivable; the API degrades.
	db, err := store.New(cfg.DatabaseURL, cfg.MigrationsPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Init handlers
	handler := handlers.New(db)
	handler.StripeWebhookSecret = cfg.StripeWebhookSecret
	if cfg.PortalTTLHours > 0 {
		handler.PortalTTL = time.Duration(cfg.PortalTTLHours) * time.Hour
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	// Project routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", handler.ListProjects)
		r.Post("/projects", handler.CreateProject)
		r.Get("/projects/{id}", handler.GetProject)
		r.Patch("/projects/{id}", handler.UpdateProject)
		r.Post("/projects/{id}/portal", handler.GrantPortal)
		r.Delete("/projects/{id}/portal", handler.RevokePortal)
		r.Get("/portal/{token}", handler.PortalProject)
		r.Get("/metrics", handler.Metrics)
	})

	// Stripe webhook
	r.Post("/webhooks/stripe", handler.StripeWebhook)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("error shutting down server: %v", err)
		}
	}()

	log.Printf("Back office listening on :%s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
