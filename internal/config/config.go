// Package config provides configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (TGDASH_BACKEND_TIMEOUT, ...).
const EnvPrefix = "TGDASH"

// APIURLEnv overrides the backend base URL.
const APIURLEnv = "TGDASH_API_URL"

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Backend     BackendConfig     `mapstructure:"backend"`
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Polling     PollingConfig     `mapstructure:"polling"`
	QR          QRConfig          `mapstructure:"qr"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Media       MediaConfig       `mapstructure:"media"`
	Receiver    ReceiverConfig    `mapstructure:"receiver"`
	Middleware  MiddlewareConfig  `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

// BackendConfig describes the Telegram sessions REST backend.
type BackendConfig struct {
	BaseURL        string               `mapstructure:"base_url"`
	HealthURL      string               `mapstructure:"health_url"`
	Timeout        int                  `mapstructure:"timeout"`
	RateLimit      float64              `mapstructure:"rate_limit"`
	RateLimitBurst int                  `mapstructure:"rate_limit_burst"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

// CredentialsConfig selects where bearer tokens are persisted between runs.
type CredentialsConfig struct {
	Store   string `mapstructure:"store"` // memory, file or redis
	File    string `mapstructure:"file"`
	Profile string `mapstructure:"profile"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	DBName         string `mapstructure:"dbname"`
	SSLMode        string `mapstructure:"sslmode"`
	AutoMigrate    bool   `mapstructure:"auto_migrate"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

// PollingConfig holds the polling intervals, in milliseconds.
type PollingConfig struct {
	SessionIntervalMs int `mapstructure:"session_interval_ms"`
	HistoryIntervalMs int `mapstructure:"history_interval_ms"`
	PoolIntervalMs    int `mapstructure:"pool_interval_ms"`
	JobIntervalMs     int `mapstructure:"job_interval_ms"`
}

type QRConfig struct {
	MaxAttempts    int `mapstructure:"max_attempts"`
	AttemptTimeout int `mapstructure:"attempt_timeout"` // seconds
}

// CacheConfig holds staleness windows, in milliseconds.
type CacheConfig struct {
	DefaultTTLMs int `mapstructure:"default_ttl_ms"`
	WebhookTTLMs int `mapstructure:"webhook_ttl_ms"`
	PoolTTLMs    int `mapstructure:"pool_ttl_ms"`
}

type MediaConfig struct {
	Uploader string   `mapstructure:"uploader"` // dataurl or s3
	S3       S3Config `mapstructure:"s3"`
}

type S3Config struct {
	Endpoint      string `mapstructure:"endpoint"`
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	PathStyle     bool   `mapstructure:"path_style"`
}

// ReceiverConfig configures the inbound webhook event inbox.
type ReceiverConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Secret  string `mapstructure:"secret"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	RequestTimeout int      `mapstructure:"request_timeout"`
}

// LoadConfig reads configPath (optional), applies defaults and environment overrides.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("backend.base_url", APIURLEnv); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", APIURLEnv, err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8090")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("backend.base_url", "http://localhost:8080/api/v1")
	v.SetDefault("backend.health_url", "")
	v.SetDefault("backend.timeout", 30)
	v.SetDefault("backend.rate_limit", 20.0)
	v.SetDefault("backend.rate_limit_burst", 40)
	v.SetDefault("backend.circuit_breaker.max_requests", 3)
	v.SetDefault("backend.circuit_breaker.interval", 60)
	v.SetDefault("backend.circuit_breaker.timeout", 30)
	v.SetDefault("backend.circuit_breaker.failure_ratio", 0.6)
	v.SetDefault("backend.circuit_breaker.consecutive_fails", 5)
	v.SetDefault("credentials.store", "file")
	v.SetDefault("credentials.file", ".tgdash/credentials.json")
	v.SetDefault("credentials.profile", "default")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("database.migrations_path", "./migrations")
	v.SetDefault("polling.session_interval_ms", 3000)
	v.SetDefault("polling.history_interval_ms", 4000)
	v.SetDefault("polling.pool_interval_ms", 5000)
	v.SetDefault("polling.job_interval_ms", 3000)
	v.SetDefault("qr.max_attempts", 3)
	v.SetDefault("qr.attempt_timeout", 120)
	v.SetDefault("cache.default_ttl_ms", 30000)
	v.SetDefault("cache.webhook_ttl_ms", 10000)
	v.SetDefault("cache.pool_ttl_ms", 3000)
	v.SetDefault("media.uploader", "dataurl")
	v.SetDefault("media.s3.region", "us-east-1")
	v.SetDefault("media.s3.path_style", true)
	v.SetDefault("receiver.enabled", false)
	v.SetDefault("middleware.rate_limit", 100)
	v.SetDefault("middleware.rate_limit_burst", 1000)
	v.SetDefault("middleware.enable_cors", true)
	v.SetDefault("middleware.allowed_origins", []string{"*"})
	v.SetDefault("middleware.request_timeout", 30)
}

// Validate rejects settings the rest of the application cannot run with.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	switch c.Credentials.Store {
	case "memory", "file", "redis":
	default:
		return fmt.Errorf("unknown credentials.store %q", c.Credentials.Store)
	}
	switch c.Media.Uploader {
	case "dataurl", "s3":
	default:
		return fmt.Errorf("unknown media.uploader %q", c.Media.Uploader)
	}
	if c.QR.MaxAttempts < 1 {
		return fmt.Errorf("qr.max_attempts must be at least 1")
	}
	return nil
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// GetURL returns the database URL form used by golang-migrate.
func (d *DatabaseConfig) GetURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// Enabled reports whether a database has been configured at all.
func (d *DatabaseConfig) Enabled() bool {
	return d.Host != "" && d.DBName != ""
}

// Addr is host:port for the redis client.
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// SessionInterval is the auth watch period.
func (p PollingConfig) SessionInterval() time.Duration {
	return time.Duration(p.SessionIntervalMs) * time.Millisecond
}

// HistoryInterval is the chat history watch period.
func (p PollingConfig) HistoryInterval() time.Duration {
	return time.Duration(p.HistoryIntervalMs) * time.Millisecond
}

// PoolInterval is the listener pool monitor period.
func (p PollingConfig) PoolInterval() time.Duration {
	return time.Duration(p.PoolIntervalMs) * time.Millisecond
}

// JobInterval is the message job watch period.
func (p PollingConfig) JobInterval() time.Duration {
	return time.Duration(p.JobIntervalMs) * time.Millisecond
}

// AttemptWindow is how long a single QR attempt lasts.
func (q QRConfig) AttemptWindow() time.Duration {
	return time.Duration(q.AttemptTimeout) * time.Second
}
