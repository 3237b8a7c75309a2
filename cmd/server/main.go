// Package main is the entry point for the hostel complaint server.
// It provides a REST API for complaint submission, triage, staff
// assignment, community voting, and resolution feedback.
//
// Architecture:
//   - All state is held in memory by a single store (no database)
//   - Mutations are serialized under the store's write lock
//   - Identity is caller-supplied (bearer token or headers) and trusted
//   - An in-memory activity log records every action on a complaint
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hostelhub/complaint-server/internal/config"
	"github.com/hostelhub/complaint-server/internal/handlers"
	"github.com/hostelhub/complaint-server/internal/middleware"
	"github.com/hostelhub/complaint-server/internal/service"
	"github.com/hostelhub/complaint-server/internal/store"
	"go.uber.org/zap"
)

func main() {
	// Initialize structured logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		sugar.Fatalf("Failed to load config: %v", err)
	}

	sugar.Infow("Starting Hostel Complaint Server",
		"port", cfg.Port,
		"env", cfg.Environment,
		"seed_demo_data", cfg.SeedDemoData,
	)

	// Initialize in-memory state
	staff := store.NewStaffDirectory(store.DefaultStaff())
	complaints := store.NewComplaintStore(staff)
	if cfg.SeedDemoData {
		store.LoadDemoData(complaints)
		sugar.Infow("Demo data loaded", "complaints", complaints.Count())
	}

	// Initialize services
	complaintSvc := service.NewComplaintService(complaints, staff, sugar)
	activitySvc := service.NewActivityLogService(sugar)

	// Initialize handlers
	complaintHandler := handlers.NewComplaintHandler(complaintSvc, activitySvc, sugar)
	activityHandler := handlers.NewActivityHandler(activitySvc, complaintSvc, sugar)
	staffHandler := handlers.NewStaffHandler(complaintSvc, sugar)
	authHandler := handlers.NewAuthHandler(cfg.JWTSecret, sugar)
	healthHandler := handlers.NewHealthHandler(complaints, sugar)

	// Build router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.StructuredLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.SecureHeaders())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-User-Email", "X-User-Name", "X-User-Role"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Rate limiting
	r.Use(middleware.RateLimit(cfg.RateLimitRPM))

	// Caller identity (bearer token or headers)
	r.Use(middleware.Identity(cfg.JWTSecret))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", healthHandler.Check)
		r.Get("/health/ready", healthHandler.Ready)

		// Mock auth — issues identity tokens without credential checks
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/signup", authHandler.Signup)
		})

		// Complaint lifecycle
		r.Route("/complaints", func(r chi.Router) {
			r.Post("/", complaintHandler.Submit)
			r.Get("/", complaintHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", complaintHandler.Get)
				r.Patch("/status", complaintHandler.ChangeStatus)
				r.Patch("/assign", complaintHandler.Assign)
				r.Post("/vote", complaintHandler.Vote)
				r.Get("/vote", complaintHandler.UserVote)
				r.Post("/feedback", complaintHandler.Feedback)
				r.Get("/activity", activityHandler.ForComplaint)
			})
		})

		// Staff roster
		r.Get("/staff", staffHandler.List)

		// Activity feed
		r.Get("/activity/recent", activityHandler.Recent)

		// Analytics for the admin dashboard
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/categories", complaintHandler.Categories)
			r.Get("/status", complaintHandler.Statuses)
		})
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sugar.Infof("Server listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	sugar.Info("Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		sugar.Fatalf("Forced shutdown: %v", err)
	}

	sugar.Info("Server stopped")
}
