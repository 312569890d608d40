package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Redis      RedisConfig
	Services   ServicesConfig
	Tinybird   TinybirdConfig
	Kafka      KafkaConfig
	WorkerPool WorkerPoolConfig
	Buffer     BufferConfig
	Server     ServerConfig
	RateLimit  RateLimitConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// RedisConfig holds settings for the link cache and click dedupe store.
// The same instance backs the asynq task queue.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	StripeSecretKey     string
	StripeWebhookSecret string
	WebAppURI           string
}

// TinybirdConfig holds the analytics store endpoint.
// An empty token disables ingestion.
type TinybirdConfig struct {
	APIURL string
	Token  string
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers       string
	Topic         string
	ConsumerGroup string
}

// WorkerPoolConfig holds worker pool configuration for event processing
type WorkerPoolConfig struct {
	ClickWorkers   int // Number of workers forwarding recorded clicks to Kafka
	ClickQueueSize int // Buffered clicks waiting for a forwarder
	SinkWorkers    int // Number of workers in the click sink consumer
}

// BufferConfig controls the local fallback used when Kafka is unreachable
type BufferConfig struct {
	Path          string
	DrainInterval time.Duration
	MaxRetries    int
}

// RateLimitConfig caps conversion tracking requests per workspace.
// Zero disables the limit.
type RateLimitConfig struct {
	TrackRequestsPerMinute int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
	// RootRedirectURL is where requests for a bare short domain are sent.
	RootRedirectURL string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "true") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = getIntEnv("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getIntEnv("REDIS_DB", "0"); err != nil {
		return nil, err
	}

	// Services configuration
	if cfg.Services.StripeSecretKey, err = requireEnv("STRIPE_SECRET_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.StripeWebhookSecret, err = requireEnv("STRIPE_WEBHOOK_SECRET"); err != nil {
		return nil, err
	}
	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	// Tinybird configuration
	cfg.Tinybird.APIURL = getEnvWithDefault("TINYBIRD_API_URL", "https://api.tinybird.co")
	cfg.Tinybird.Token = os.Getenv("TINYBIRD_API_KEY")

	// Kafka configuration
	if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
		return nil, err
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "link-events")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "click-sink")

	// Worker pool configuration
	if cfg.WorkerPool.ClickWorkers, err = getIntEnv("CLICK_WORKERS", "10"); err != nil {
		return nil, err
	}
	if cfg.WorkerPool.ClickQueueSize, err = getIntEnv("CLICK_QUEUE_SIZE", "1000"); err != nil {
		return nil, err
	}
	if cfg.WorkerPool.SinkWorkers, err = getIntEnv("SINK_WORKERS", "10"); err != nil {
		return nil, err
	}

	// Buffer configuration
	cfg.Buffer.Path = getEnvWithDefault("BUFFER_PATH", "data/click-buffer.db")
	if cfg.Buffer.MaxRetries, err = getIntEnv("BUFFER_MAX_RETRIES", "5"); err != nil {
		return nil, err
	}
	cfg.Buffer.DrainInterval, err = time.ParseDuration(getEnvWithDefault("BUFFER_DRAIN_INTERVAL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse BUFFER_DRAIN_INTERVAL: %w", err)
	}

	if cfg.RateLimit.TrackRequestsPerMinute, err = getIntEnv("TRACK_RATE_LIMIT_RPM", "600"); err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.RootRedirectURL = os.Getenv("ROOT_REDIRECT_URL")

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// Addr returns the host:port pair for the Redis server
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BrokerList splits the comma separated broker setting
func (c *KafkaConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key, defaultValue string) (int, error) {
	v, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}
