package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertthunder/aurabeat/internal/server"
	"github.com/desertthunder/aurabeat/internal/session"
	"github.com/desertthunder/aurabeat/internal/shared"
	"github.com/desertthunder/aurabeat/internal/web"
	"github.com/urfave/cli/v3"
)

// Serve starts the dashboard HTTP server and blocks until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)

	if err := config.Validate(); err != nil {
		return err
	}

	spotifyService, err := r.ensureSpotify()
	if err != nil {
		return err
	}

	ttl := time.Duration(config.Session.TTLDays) * 24 * time.Hour
	codec, err := session.NewCodec(config.Session.Secret, ttl)
	if err != nil {
		return err
	}

	store, cleanup, err := r.sessionStore(config, codec.TTL())
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	manager := session.NewManager(codec, store, spotifyService, r.logger)

	pages, err := web.NewPageHandler(manager, r.logger)
	if err != nil {
		return err
	}

	router := server.NewBasicRouter()
	router.Use(server.RequestID(), server.RequestLogger(r.logger))
	router.Handler(pages)
	router.Handler(server.NewAuthHandler(spotifyService, manager, r.logger))
	router.Handler(server.NewDashboardHandler(spotifyService, manager, r.logger))
	router.Handler(server.NewNowPlayingHandler(spotifyService, manager, r.logger))

	addr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("dashboard listening at http://%s", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		r.logger.Infof("received %v, shutting down", sig)
	case <-ctx.Done():
		r.logger.Info("context cancelled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

// sessionStore builds the configured session store. The returned cleanup
// func, when non-nil, closes backing resources.
func (r *Runner) sessionStore(config *shared.Config, ttl time.Duration) (session.Store, func(), error) {
	switch config.Session.Store {
	case "", "cookie":
		return session.NewCookieStore(ttl, false), nil, nil
	case "sqlite":
		db, err := shared.NewDatabase(config.Database.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open session database: %w", err)
		}
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		if err := shared.RunMigrations(db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to migrate session database: %w", err)
		}
		return session.NewSQLiteStore(db, ttl, false), func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown session store %q", shared.ErrInvalidConfig, config.Session.Store)
	}
}
