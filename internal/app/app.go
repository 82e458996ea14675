// Package app assembles the server from configuration: database pool,
// repositories, services, HTTP handlers and middleware.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/readlog-backend/internal/adapter/postgres"
	bookrepo "github.com/heartmarshall/readlog-backend/internal/adapter/postgres/book"
	goalrepo "github.com/heartmarshall/readlog-backend/internal/adapter/postgres/goal"
	userrepo "github.com/heartmarshall/readlog-backend/internal/adapter/postgres/user"
	userbookrepo "github.com/heartmarshall/readlog-backend/internal/adapter/postgres/userbook"
	"github.com/heartmarshall/readlog-backend/internal/adapter/provider/googlebooks"
	"github.com/heartmarshall/readlog-backend/internal/auth"
	"github.com/heartmarshall/readlog-backend/internal/config"
	"github.com/heartmarshall/readlog-backend/internal/metrics"
	authsvc "github.com/heartmarshall/readlog-backend/internal/service/auth"
	"github.com/heartmarshall/readlog-backend/internal/service/book"
	"github.com/heartmarshall/readlog-backend/internal/service/goal"
	"github.com/heartmarshall/readlog-backend/internal/service/library"
	"github.com/heartmarshall/readlog-backend/internal/transport/middleware"
	"github.com/heartmarshall/readlog-backend/internal/transport/rest"
)

// Run loads configuration and serves the API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, os.Stderr)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	handler, cleanup := newHandler(cfg, pool, logger)
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// newHandler wires repositories, services and the middleware stack into the
// API handler. cleanup releases background resources.
func newHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func()) {
	m := metrics.New()
	catalog := googlebooks.NewProvider(cfg.Catalog, logger, googlebooks.WithObserver(m))

	books := bookrepo.New(pool)
	users := userrepo.New(pool)
	entries := userbookrepo.New(pool)
	goals := goalrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwt, cfg.Auth)
	bookService := book.NewService(logger, books, tx, catalog)
	libraryService := library.NewService(logger, entries, entries, catalog, cfg.Library)
	goalService := goal.NewService(logger, goals, entries)

	limiter := middleware.NewRateLimiter(cfg.RateLimit)

	router := rest.NewRouter(
		rest.Handlers{
			Health:    rest.NewHealthHandler(pool, catalog, BuildVersion()),
			Auth:      rest.NewAuthHandler(authService, logger),
			Books:     rest.NewBookHandler(bookService, logger, cfg.Catalog.DefaultMaxResults),
			UserBooks: rest.NewUserBookHandler(libraryService, logger),
			Goals:     rest.NewGoalHandler(goalService, logger),
		},
		m.Handler(),
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Metrics(m),
		middleware.CORS(cfg.CORS),
		limiter.Middleware(),
		middleware.Auth(authService),
	)

	return router, limiter.Stop
}

// serve runs srv until ctx is done, then drains in-flight requests for at
// most ShutdownTimeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
