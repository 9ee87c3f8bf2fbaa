// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the CharityPress server.
// It loads configuration, connects to services, sets up routing, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"charitypress/internal/cache"
	"charitypress/internal/config"
	"charitypress/internal/database"
	"charitypress/internal/handlers"
	"charitypress/internal/render"
	"charitypress/internal/router"
	"charitypress/internal/session"
	"charitypress/internal/storage"
	"charitypress/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache + session store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Session store backed by Valkey. Outside development, session
	// cookies are marked Secure (HTTPS-only).
	sessionStore := session.NewStore(valkeyClient, cfg.SecureCookies())

	// HTML template renderer for both the admin panel and the public site.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Data stores.
	stores := &handlers.Stores{
		Users:        store.NewUserStore(db),
		Settings:     store.NewSiteSettingStore(db),
		Posts:        store.NewPostStore(db),
		Pages:        store.NewPageStore(db),
		Banners:      store.NewBannerStore(db),
		ProgramCards: store.NewProgramCardStore(db),
		Partners:     store.NewPartnerStore(db),
		Programs:     store.NewProgramStore(db),
		Recruitments: store.NewRecruitmentStore(db),
		Gallery:      store.NewGalleryStore(db),
		Videos:       store.NewVideoStore(db),
		Resources:    store.NewResourceStore(db),
		Inbox:        store.NewInboxStore(db),
		Audit:        store.NewAuditLogStore(db),
	}

	// S3-compatible object storage (optional; the app works without it,
	// media uploads are just disabled).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	// Full-page HTML cache for the public site.
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	// Handler groups.
	adminHandlers := handlers.NewAdmin(renderer, sessionStore, stores, storageClient, pageCache)
	authHandlers := handlers.NewAuth(renderer, sessionStore, stores.Users)
	publicHandlers := handlers.NewPublic(renderer, stores, pageCache)

	r, limiter := router.New(sessionStore, adminHandlers, authHandlers, publicHandlers)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
