package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	APIKeys   APIKeyConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
	Storage   StorageConfig
	Delivery  DeliveryConfig
	Outbox    OutboxConfig
	RateLimit RateLimitConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	Timezone    string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL        string
	StreamName string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig holds the keys accepted on back-office routes
type APIKeyConfig struct {
	BackOffice string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	Enabled     bool
	LicenseKey  string
	AppName     string
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains zap logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}

// StorageConfig points at the object store holding proof-of-delivery media
type StorageConfig struct {
	Region        string
	Bucket        string
	PublicBaseURL string
	MaxProofBytes int64
}

// DeliveryConfig holds the business constants of the rider workflow
type DeliveryConfig struct {
	FeeRate          float64
	FallbackFee      int64
	MinPayout        int64
	StoreName        string
	StoreAddress     string
	StorePhone       string
	StoreLat         float64
	StoreLng         float64
	LocationTTL      time.Duration
	PresenceTTL      time.Duration
	ProofContentType []string
}

// OutboxConfig tunes the event relay
type OutboxConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

// RateLimitConfig bounds rider request rates
type RateLimitConfig struct {
	Requests int
	Period   time.Duration
}
