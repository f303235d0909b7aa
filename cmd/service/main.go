package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "gigboard/internal/app"
	orderGateway "gigboard/internal/gateway/rest/order"
	"gigboard/internal/handlers/rest/healthcheck_head"
	"gigboard/internal/handlers/rest/notices_get"
	"gigboard/internal/handlers/rest/order_cancel_post"
	"gigboard/internal/handlers/rest/order_claim_post"
	"gigboard/internal/handlers/rest/order_complete_post"
	"gigboard/internal/handlers/rest/order_delete"
	"gigboard/internal/handlers/rest/order_pay_post"
	"gigboard/internal/handlers/rest/order_post"
	"gigboard/internal/handlers/rest/order_price_put"
	"gigboard/internal/handlers/rest/order_rate_post"
	"gigboard/internal/handlers/rest/orders_get"
	"gigboard/internal/handlers/rest/session_get"
	"gigboard/internal/handlers/rest/statistics_get"
	"gigboard/internal/handlers/rest/user_delete"
	"gigboard/internal/handlers/rest/user_ratings_get"
	"gigboard/internal/handlers/rest/users_get"
	"gigboard/internal/handlers/rest/worker_approve_post"
	"gigboard/internal/handlers/rest/workers_get"
	"gigboard/internal/pkg/config"
	"gigboard/internal/pkg/dotenv"
	"gigboard/internal/pkg/httpclient"
	"gigboard/internal/pkg/kafka"
	metrics_system "gigboard/internal/pkg/metrics"
	"gigboard/internal/pkg/middlewares/graceful_shutdown"
	"gigboard/internal/pkg/middlewares/metrics"
	"gigboard/internal/pkg/middlewares/rate_limiter"
	"gigboard/internal/pkg/middlewares/request_id"
	"gigboard/internal/pkg/middlewares/session"
	"gigboard/internal/pkg/middlewares/timeout"
	"gigboard/internal/pkg/postgres"
	"gigboard/internal/pkg/telemetry"
	"gigboard/pkg/logger"
	"gigboard/pkg/logger/zap_adapter"
	"gigboard/pkg/token_bucket"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// version подставляется при сборке через -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("version", version))

	mainLog.Info("starting gigboard")

	if err := run(context.Background(), cfg, appLogger); err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var (
		isShuttingDown atomic.Bool
		upstreamReady  atomic.Bool
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	shutdownTracing, err := telemetry.InitTracerProvider(ctx, &cfg.Tracing, version)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			runLog.Error("failed to flush traces", logger.NewField("error", err))
		}
	}()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, log, pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	client := httpclient.NewClient(&cfg.OrderService)
	if err := httpclient.WaitReady(ctx, log, &cfg.OrderService, orderGateway.New(client, cfg.OrderService.BaseURL)); err != nil {
		return fmt.Errorf("order service: %w", err)
	}

	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled {
		producer, err = kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		defer func() {
			if err := producer.Close(); err != nil {
				runLog.Error("failed to close kafka producer", logger.NewField("error", err))
			}
		}()
	} else {
		runLog.Warn("kafka publishing is disabled, action events stay in-process")
	}

	businessApp, err := application.InitializeApplication(
		ctx, log, pool, pgxv5.DefaultCtxGetter, client, producer, &upstreamReady, cfg,
	)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx не отменяется по SIGTERM, только после server.Shutdown(), чтобы in-flight запросы доработали.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, &upstreamReady, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, &upstreamReady),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil канал, если pprof выключен
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var pprofErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		pprofErr = pprofServer.Shutdown(shutdownCtx)
		if pprofErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", pprofErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || pprofErr != nil {
		runLog.Info("graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	upstreamReady *atomic.Bool,
	app *application.Application,
	cfg *config.Config,
) http.Handler {
	router := mux.NewRouter()

	router.Use(request_id.Middleware())
	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(
		log,
		cfg.Server.RateLimiterQPS,
		token_bucket.NewTokenBucket(cfg.Server.RateLimiterBurst, float64(cfg.Server.RateLimiterQPS)),
	))

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, upstreamReady)).Methods(http.MethodHead)

	api := router.NewRoute().Subrouter()
	api.Use(session.Middleware(log, app.Sessions))

	api.Handle("/session", session_get.New(log)).Methods(http.MethodGet)

	api.Handle("/orders", orders_get.New(log, app.ServiceLifecycle)).Methods(http.MethodGet)
	api.Handle("/orders", order_post.New(log, app.ServiceLifecycle, cfg.OrderService.MaxPhotoSize)).Methods(http.MethodPost)
	api.Handle("/orders/{id}", order_delete.New(log, app.ServiceLifecycle)).Methods(http.MethodDelete)
	api.Handle("/orders/{id}/claim", order_claim_post.New(log, app.ServiceLifecycle)).Methods(http.MethodPost)
	api.Handle("/orders/{id}/complete", order_complete_post.New(log, app.ServiceLifecycle)).Methods(http.MethodPost)
	api.Handle("/orders/{id}/price", order_price_put.New(log, app.ServiceLifecycle)).Methods(http.MethodPut)
	api.Handle("/orders/{id}/pay", order_pay_post.New(log, app.ServiceLifecycle)).Methods(http.MethodPost)
	api.Handle("/orders/{id}/cancel", order_cancel_post.New(log, app.ServiceLifecycle)).Methods(http.MethodPost)
	api.Handle("/orders/{id}/rate", order_rate_post.New(log, app.ServiceLifecycle)).Methods(http.MethodPost)

	api.Handle("/statistics", statistics_get.New(log, app.ServiceReport)).Methods(http.MethodGet)
	api.Handle("/users/{id}/ratings", user_ratings_get.New(log, app.ServiceReport)).Methods(http.MethodGet)
	api.Handle("/notices", notices_get.New(log, app.ServiceNotice)).Methods(http.MethodGet)

	api.Handle("/workers", workers_get.New(log, app.ServiceModeration)).Methods(http.MethodGet)
	api.Handle("/workers/{id}/approve", worker_approve_post.New(log, app.ServiceModeration)).Methods(http.MethodPost)
	api.Handle("/users", users_get.New(log, app.ServiceModeration)).Methods(http.MethodGet)
	api.Handle("/users/{id}", user_delete.New(log, app.ServiceModeration)).Methods(http.MethodDelete)

	return otelhttp.NewHandler(router, "gigboard")
}

func initPprofRouter(isShuttingDown, upstreamReady *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, upstreamReady)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
