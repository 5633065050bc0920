package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	APIVersion     string
	APIPrefix      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	// Upstream booking backend
	Upstream UpstreamConfig

	// Payment gateway redirect
	Payment PaymentConfig

	// Redis configuration
	Redis RedisConfig

	// Kafka checkout events
	Kafka KafkaConfig

	// Rate limiting
	RateLimit RateLimitConfig

	// Dashboard statistics poller
	Stats StatsConfig

	// Logging
	LogLevel string
}

// UpstreamConfig holds the external booking backend settings. Paths are
// configuration, not protocol: the backend owns them.
type UpstreamConfig struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
}

// PaymentConfig holds client-side gateway redirect settings. The gateway
// URL and signature come from the backend at checkout time; only the
// return URLs are ours.
type PaymentConfig struct {
	SuccessURL string
	FailureURL string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string

	// TTL values for different stores
	CatalogSnapshotTTL time.Duration
	SelectionTTL       time.Duration
	RelayTTL           time.Duration
}

// KafkaConfig holds the optional checkout-events producer settings.
type KafkaConfig struct {
	Enabled       bool
	Brokers       []string
	CheckoutTopic string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool          `json:"enabled"`
	WindowDuration    time.Duration `json:"window_duration"`
	DefaultRequests   int           `json:"default_requests"`
	HealthRequests    int           `json:"health_requests"`
	CatalogRequests   int           `json:"catalog_requests"`
	SelectionRequests int           `json:"selection_requests"`
	CheckoutRequests  int           `json:"checkout_requests"`
	DashboardRequests int           `json:"dashboard_requests"`
	WhitelistedIPs    []string      `json:"whitelisted_ips"`
}

// StatsConfig holds the dashboard poller settings.
type StatsConfig struct {
	Enabled      bool
	PollInterval time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server configuration
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		APIVersion:     getEnv("API_VERSION", "v1"),
		APIPrefix:      getEnv("API_PREFIX", "/api"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB

		// Upstream booking backend
		Upstream: UpstreamConfig{
			BaseURL:    getEnv("UPSTREAM_BASE_URL", "http://localhost:9090/api"),
			Timeout:    getDurationEnv("UPSTREAM_TIMEOUT", 10*time.Second),
			RetryCount: getIntEnv("UPSTREAM_RETRY_COUNT", 3),
			RetryDelay: getDurationEnv("UPSTREAM_RETRY_DELAY", 500*time.Millisecond),
		},

		// Payment gateway redirect
		Payment: PaymentConfig{
			SuccessURL: getEnv("PAYMENT_SUCCESS_URL", "http://localhost:3000/payment/success"),
			FailureURL: getEnv("PAYMENT_FAILURE_URL", "http://localhost:3000/payment/failure"),
		},

		// Redis configuration
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),

			// TTL configurations with defaults
			CatalogSnapshotTTL: getDurationEnv("REDIS_CATALOG_SNAPSHOT_TTL", 30*time.Second),
			SelectionTTL:       getDurationEnv("REDIS_SELECTION_TTL", 30*time.Minute),
			RelayTTL:           getDurationEnv("REDIS_RELAY_TTL", 15*time.Minute),
		},

		// Kafka checkout events
		Kafka: KafkaConfig{
			Enabled:       getBoolEnv("KAFKA_ENABLED", false),
			Brokers:       getStringSliceEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
			CheckoutTopic: getEnv("KAFKA_CHECKOUT_TOPIC", "checkout-events"),
		},

		// Rate limiting
		RateLimit: RateLimitConfig{
			Enabled:           getBoolEnv("RATE_LIMIT_ENABLED", true),
			WindowDuration:    getDurationEnv("RATE_LIMIT_WINDOW_DURATION", 60*time.Second),
			DefaultRequests:   getIntEnv("RATE_LIMIT_DEFAULT_REQUESTS", 60),
			HealthRequests:    getIntEnv("RATE_LIMIT_HEALTH_REQUESTS", 120),
			CatalogRequests:   getIntEnv("RATE_LIMIT_CATALOG_REQUESTS", 100),
			SelectionRequests: getIntEnv("RATE_LIMIT_SELECTION_REQUESTS", 60),
			CheckoutRequests:  getIntEnv("RATE_LIMIT_CHECKOUT_REQUESTS", 20),
			DashboardRequests: getIntEnv("RATE_LIMIT_DASHBOARD_REQUESTS", 30),
			WhitelistedIPs:    getStringSliceEnv("RATE_LIMIT_WHITELISTED_IPS", []string{}),
		},

		// Dashboard statistics poller
		Stats: StatsConfig{
			Enabled:      getBoolEnv("STATS_POLL_ENABLED", true),
			PollInterval: getDurationEnv("STATS_POLL_INTERVAL", 60*time.Second),
		},

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}

	// Build composite values
	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port
	cfg.Upstream.BaseURL = strings.TrimRight(cfg.Upstream.BaseURL, "/")

	return cfg
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		var result []string
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// GetAPIBasePath returns the API base path
func (c *Config) GetAPIBasePath() string {
	return c.APIPrefix + "/" + c.APIVersion
}
