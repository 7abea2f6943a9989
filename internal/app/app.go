package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neolog/site-api/internal/adapter/postgres"
	advisorrepo "github.com/neolog/site-api/internal/adapter/postgres/advisor"
	"github.com/neolog/site-api/internal/adapter/postgres/setting"
	todorepo "github.com/neolog/site-api/internal/adapter/postgres/todo"
	"github.com/neolog/site-api/internal/adapter/provider/gemini"
	"github.com/neolog/site-api/internal/adapter/provider/linkfetch"
	"github.com/neolog/site-api/internal/auth"
	"github.com/neolog/site-api/internal/config"
	"github.com/neolog/site-api/internal/service/advisor"
	"github.com/neolog/site-api/internal/service/review"
	"github.com/neolog/site-api/internal/service/todo"
	"github.com/neolog/site-api/internal/transport/middleware"
	"github.com/neolog/site-api/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), wires services and handlers, and
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = newRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
	}

	gate := newGate(cfg.Access, rdb, cfg.Redis.KeyPrefix, logger)

	// Adapters.
	txm := postgres.NewTxManager(pool)
	items := todorepo.New(pool)
	settings := setting.New(pool)
	advisors := advisorrepo.New(pool)

	gen := gemini.NewGenerator(gemini.Options{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	}, logger)
	links := linkfetch.NewFetcher(nil, linkfetch.Options{
		MaxLinks: cfg.Review.MaxLinks,
		Timeout:  cfg.Review.LinkTimeout,
		MaxChars: cfg.Review.LinkMaxChars,
	}, logger)

	// Services.
	todoService := todo.NewService(logger, items, settings, txm, cfg.Todo.DefaultLimit)
	advisorService := advisor.NewService(logger, advisors).WithDrafter(gen, advisor.DraftOptions{
		Timeout:       cfg.Gemini.DraftTimeout,
		Temperature:   cfg.Gemini.ReviewTemperature,
		KeyConfigured: gen.HasDefaultKey(),
	})
	reviewService := review.NewService(logger, gen, links, advisorService, todoService, review.Options{
		DefaultConcurrency: cfg.Review.DefaultConcurrency,
		MaxConcurrency:     cfg.Review.MaxConcurrency,
		ReviewTimeout:      cfg.Gemini.ReviewTimeout,
		MergeTimeout:       cfg.Gemini.MergeTimeout,
		ReviewTemperature:  cfg.Gemini.ReviewTemperature,
		MergeTemperature:   cfg.Gemini.MergeTemperature,
		KeyConfigured:      gen.HasDefaultKey(),
	})

	// HTTP.
	health := rest.NewHealthHandler(pool, BuildVersion())
	if rdb != nil {
		health.WithCache(rest.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}))
	}

	guards := rest.Guards{
		Access: middleware.RequireAccess(gate, cfg.Access.Header, logger),
		Admin:  middleware.RequireAdmin(gate, cfg.Access.Header, logger),
	}
	if cfg.Review.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
		guards.ReviewLimit = limiter.Limit(cfg.Review.RateLimitPerMinute)
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:  health,
		Todo:    rest.NewTodoHandler(todoService, logger),
		Advisor: rest.NewAdvisorHandler(advisorService, logger),
		Review:  rest.NewReviewHandler(reviewService, logger),
	}, guards)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS, cfg.Access.Header),
	)(mux)

	return serve(ctx, cfg.Server, handler, logger)
}

// newGate builds the verification chain: origin fetcher, optional shared
// Redis tier, in-process key cache, verifier and policy gate.
func newGate(cfg config.AccessConfig, rdb *redis.Client, prefix string, logger *slog.Logger) *auth.Gate {
	var fetcher interface {
		Fetch(ctx context.Context) ([]byte, error)
	} = auth.NewHTTPFetcher(cfg.JWKSURL(), logger)
	if rdb != nil {
		fetcher = auth.NewRedisFetcher(fetcher, rdb, prefix+"jwks", cfg.KeyTTL, logger)
	}

	keys := auth.NewKeyCache(fetcher, cfg.KeyTTL, logger)
	return auth.NewGate(auth.NewVerifier(keys, cfg.Audience), cfg.AdminEmail, cfg.Subjects())
}

func newRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
