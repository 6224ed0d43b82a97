package models

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NATS       NATSConfig
	JWT        JWTConfig
	Signer     SignerConfig
	Aggregator AggregatorConfig
	Tracker    TrackerConfig
	Logger     LoggerConfig
	NewRelic   NewRelicConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
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
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// SignerConfig contains ticket signing key configuration.
// PrivateKeyHex holds the hex-encoded P-256 private scalar loaded from
// a secret store; when empty a fresh key pair is generated at startup
// and the public key is logged for distribution to offline verifiers.
type SignerConfig struct {
	PrivateKeyHex string
}

// AggregatorConfig contains the tunables of passenger location
// aggregation. Defaults: 90s window, 1km outlier cutoff, 3-sample
// floor, confidence n/10 capped at 0.95.
type AggregatorConfig struct {
	WindowSeconds     int     `json:"window_seconds"`
	OutlierMeters     float64 `json:"outlier_meters"`
	MinSamples        int     `json:"min_samples"`
	ConfidenceDivisor int     `json:"confidence_divisor"`
	ConfidenceCap     float64 `json:"confidence_cap"`
}

// TrackerConfig contains primary tracker staleness configuration
type TrackerConfig struct {
	StaleAfterSeconds int `json:"stale_after_seconds"` // telemetry older than this falls back to derived
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}
