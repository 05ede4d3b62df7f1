package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/SiyahKale0/ucuzyol/internal/api/http/handlers"
	"github.com/SiyahKale0/ucuzyol/internal/application/service"
	"github.com/SiyahKale0/ucuzyol/internal/config"
	"github.com/SiyahKale0/ucuzyol/internal/domain/ports"
	"github.com/SiyahKale0/ucuzyol/internal/infrastructures/biletapi"
	"github.com/SiyahKale0/ucuzyol/internal/infrastructures/cache"
	"github.com/SiyahKale0/ucuzyol/internal/logger"
	"github.com/SiyahKale0/ucuzyol/internal/tracing"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := logger.Setup(cfg.Env, cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	tp, err := tracing.InitTracer("ucuzyol", cfg.Jaeger)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	log.Info("ucuzyol starting",
		zap.String("env", cfg.Env),
		zap.String("http_addr", cfg.HTTP.Address()))

	var ticketCache ports.TicketCache
	if cfg.Cache.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Warn("failed to close redis client", zap.Error(err))
			}
		}()
		ticketCache = cache.NewRedis(redisClient)
		log.Info("using redis ticket cache", zap.String("addr", cfg.Cache.RedisAddr))
	} else {
		ticketCache = cache.NewMemory(cfg.Cache.Capacity)
	}

	limiter := biletapi.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	ticketSource := biletapi.NewClient(
		log,
		cfg.BiletAPI.Endpoint,
		&http.Client{Timeout: cfg.BiletAPI.Timeout},
		limiter,
		ticketCache,
		cfg.Cache.TTL,
		cfg.BiletAPI.Retries,
	)

	searchService := service.NewSearchService(
		log,
		ticketSource,
		cfg.Search.MinConnection,
		cfg.Search.TransferCandidates,
		cfg.Search.MaxResults,
	)
	searchHandler := handlers.NewSearchHandler(log, searchService, cfg.HTTP.WriteTimeout)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", handlers.Healthz)
	mux.HandleFunc("/v1/cities", handlers.GetCities)
	mux.HandleFunc("/v1/itineraries", searchHandler.GetItineraries)

	server := &http.Server{
		Addr:         cfg.HTTP.Address(),
		Handler:      loggingMiddleware(log, mux),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("http shutdown error", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Error("http server stopped", zap.Error(err))
		}
	}
}

func loggingMiddleware(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
