package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	Log struct {
		Level string
	}

	Tasks struct {
		NoticeCleanupInterval time.Duration
		UpstreamProbeInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	OrderService struct {
		BaseURL        string
		RequestTimeout time.Duration
		MaxPhotoSize   int64 // байты, 0 - без ограничения
	}

	Notices struct {
		TTL time.Duration
	}

	Kafka struct {
		Enabled bool
		Brokers string
		Topic   string
		Sarama  Sarama
	}

	Sarama struct {
		Version string
	}

	Tracing struct {
		Enabled     bool
		Endpoint    string
		ServiceName string
	}

	Config struct {
		Log          Log
		Tasks        Tasks
		Server       HTTPServer
		Database     Database
		OrderService OrderService
		Notices      Notices
		Kafka        Kafka
		Tracing      Tracing
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	noticeCleanupInterval, err := osGetEnvDuration("BACKGROUND_NOTICE_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	upstreamProbeInterval, err := osGetEnvDuration("BACKGROUND_UPSTREAM_PROBE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderServiceTimeout, err := osGetEnvDuration("ORDER_SERVICE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxPhotoSize, err := osGetInt64("ORDER_SERVICE_MAX_PHOTO_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	noticeTTL, err := osGetEnvDuration("NOTICE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	kafkaEnabled, err := osGetBool("KAFKA_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	tracingEnabled, err := osGetBool("TRACING_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Log: Log{
			Level: os.Getenv("LOG_LEVEL"),
		},
		Tasks: Tasks{
			NoticeCleanupInterval: noticeCleanupInterval,
			UpstreamProbeInterval: upstreamProbeInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		OrderService: OrderService{
			BaseURL:        os.Getenv("ORDER_SERVICE_BASE_URL"),
			RequestTimeout: orderServiceTimeout,
			MaxPhotoSize:   maxPhotoSize,
		},
		Notices: Notices{
			TTL: noticeTTL,
		},
		Kafka: Kafka{
			Enabled: kafkaEnabled,
			Brokers: os.Getenv("KAFKA_BROKERS"),
			Topic:   os.Getenv("KAFKA_TOPIC"),
			Sarama: Sarama{
				Version: os.Getenv("KAFKA_SARAMA_VERSION"),
			},
		},
		Tracing: Tracing{
			Enabled:     tracingEnabled,
			Endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName: os.Getenv("OTEL_SERVICE_NAME"),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.NoticeCleanupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_NOTICE_CLEANUP_INTERVAL is required")
	}
	if cfg.Tasks.UpstreamProbeInterval == time.Duration(0) {
		return errors.New("BACKGROUND_UPSTREAM_PROBE_INTERVAL is required")
	}

	if cfg.OrderService.BaseURL == "" {
		return errors.New("ORDER_SERVICE_BASE_URL is required")
	}
	if u, err := url.Parse(cfg.OrderService.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("ORDER_SERVICE_BASE_URL must be an absolute URL, got %q", cfg.OrderService.BaseURL)
	}
	if cfg.OrderService.RequestTimeout == time.Duration(0) {
		return errors.New("ORDER_SERVICE_REQUEST_TIMEOUT is required")
	}
	if cfg.OrderService.MaxPhotoSize < 0 {
		return errors.New("ORDER_SERVICE_MAX_PHOTO_SIZE must not be negative")
	}

	if cfg.Notices.TTL == time.Duration(0) {
		return errors.New("NOTICE_TTL is required")
	}

	if cfg.Kafka.Enabled {
		if strings.TrimSpace(cfg.Kafka.Brokers) == "" {
			return errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED=true")
		}
		if cfg.Kafka.Topic == "" {
			return errors.New("KAFKA_TOPIC is required when KAFKA_ENABLED=true")
		}
		if cfg.Kafka.Sarama.Version == "" {
			return errors.New("KAFKA_SARAMA_VERSION is required when KAFKA_ENABLED=true")
		}
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		return errors.New("OTEL_EXPORTER_OTLP_ENDPOINT is required when TRACING_ENABLED=true")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetInt64(s string) (int64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int64 format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
