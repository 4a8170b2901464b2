package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Status     ServiceConfig    `yaml:"status"`
	Telemetry  ServiceConfig    `yaml:"telemetry"`
	Users      UsersConfig      `yaml:"users"`
	CORS       CORSConfig       `yaml:"cors"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Kafka      KafkaConfig      `yaml:"kafka"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// ServiceConfig groups the listener and the database of one HTTP service.
type ServiceConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
}

// UsersConfig is the user CRUD service configuration.
type UsersConfig struct {
	Server          ServerConfig   `yaml:"server"`
	Database        DatabaseConfig `yaml:"database"`
	CacheTTLSeconds int            `yaml:"cache_ttl_seconds"`
	CacheTTL        time.Duration  `yaml:"-"` // Ignored by YAML parser
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"` // sqlite or postgres
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
	LogLevel               string `yaml:"log_level"` // silent, error, warn, info
}

// CORSConfig lists the browser origins allowed to call the services.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// KafkaConfig controls publishing of generated telemetry samples.
type KafkaConfig struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// SimulationConfig tunes the synthetic data generator.
type SimulationConfig struct {
	// Seed fixes the random source; 0 means a fresh seed per process.
	Seed int64 `yaml:"seed"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills every unset field with its default value.
func (c *Config) ApplyDefaults() {
	applyServiceDefaults(&c.Status.Server, &c.Status.Database, 8001, "./satellite_status.db")
	applyServiceDefaults(&c.Telemetry.Server, &c.Telemetry.Database, 8002, "./satellite_telemetry.db")
	applyServiceDefaults(&c.Users.Server, &c.Users.Database, 8000, "./users.db")

	if c.Users.CacheTTLSeconds <= 0 {
		c.Users.CacheTTLSeconds = 30
	}
	c.Users.CacheTTL = time.Duration(c.Users.CacheTTLSeconds) * time.Second

	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"http://localhost:8080", "http://127.0.0.1:8080"}
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "satellite.telemetry"
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		log.Printf("kafka.brokers is not set; defaulting to localhost:9092")
		c.Kafka.Brokers = []string{"localhost:9092"}
	}
}

func applyServiceDefaults(srv *ServerConfig, db *DatabaseConfig, port int, dsn string) {
	if srv.Port <= 0 {
		srv.Port = port
	}
	if srv.RateLimitPerSec <= 0 {
		srv.RateLimitPerSec = 10
	}
	if srv.RateLimitBurst <= 0 {
		srv.RateLimitBurst = 5
	}

	if db.Driver == "" {
		db.Driver = "sqlite"
	}
	if db.DSN == "" && db.Driver == "sqlite" {
		db.DSN = dsn
	}
	if db.MaxOpenConns <= 0 {
		db.MaxOpenConns = 10
	}
	if db.MaxIdleConns <= 0 {
		db.MaxIdleConns = 5
	}
	if db.ConnMaxLifetimeMinutes <= 0 {
		db.ConnMaxLifetimeMinutes = 30
	}
	if db.LogLevel == "" {
		db.LogLevel = "warn"
	}
}
