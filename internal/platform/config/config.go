package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable read by Load.
const EnvPrefix = "WORKTIME"

// Config captures process level configuration for the server and the
// scheduler commands.
type Config struct {
	Addr      string `envconfig:"ADDR" default:":8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	DatabaseURL string `envconfig:"DATABASE_URL"`

	Redis RedisConfig `envconfig:"REDIS"`
	Kafka KafkaConfig `envconfig:"KAFKA"`
	QTSP  QTSPConfig  `envconfig:"QTSP"`

	// BatchWorkers bounds the per-tenant and per-employee worker pools.
	BatchWorkers int `envconfig:"BATCH_WORKERS" default:"4"`
	// EvaluationTimezone is the IANA zone used to cut evaluation days.
	// Daily roots always use UTC.
	EvaluationTimezone string        `envconfig:"EVALUATION_TIMEZONE" default:"UTC"`
	EvaluationLockTTL  time.Duration `envconfig:"EVALUATION_LOCK_TTL" default:"5m"`

	RuleCatalogPath string `envconfig:"RULE_CATALOG_PATH"`

	ServiceTokenKey    string        `envconfig:"SERVICE_TOKEN_KEY" default:"dev-secret-key-change-in-production"`
	ServiceTokenIssuer string        `envconfig:"SERVICE_TOKEN_ISSUER" default:"worktime"`
	ServiceTokenTTL    time.Duration `envconfig:"SERVICE_TOKEN_TTL" default:"15m"`
}

// RedisConfig holds Redis connection settings. An empty URL disables Redis
// and the evaluation lock falls back to the in-process implementation.
type RedisConfig struct {
	URL          string        `envconfig:"URL"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

// KafkaConfig holds the violation sink settings. No brokers means the sink
// is disabled.
type KafkaConfig struct {
	Brokers           []string `envconfig:"BROKERS"`
	ClientID          string   `envconfig:"CLIENT_ID" default:"worktime"`
	ViolationTopic    string   `envconfig:"VIOLATION_TOPIC" default:"worktime.compliance.violations"`
	Partitions        int32    `envconfig:"PARTITIONS" default:"3"`
	ReplicationFactor int16    `envconfig:"REPLICATION_FACTOR" default:"1"`
}

// QTSPConfig configures the qualified timestamp provider. An empty BaseURL
// disables notarization; roots are still persisted unsealed.
type QTSPConfig struct {
	BaseURL      string        `envconfig:"BASE_URL"`
	TokenURL     string        `envconfig:"TOKEN_URL"`
	ClientID     string        `envconfig:"CLIENT_ID"`
	ClientSecret string        `envconfig:"CLIENT_SECRET"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"30s"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"2s"`
	PollAttempts int           `envconfig:"POLL_ATTEMPTS" default:"5"`
	// Consecutive outages or timeouts that suspend provider calls for
	// BreakerCooldown.
	BreakerThreshold int           `envconfig:"BREAKER_THRESHOLD" default:"5"`
	BreakerCooldown  time.Duration `envconfig:"BREAKER_COOLDOWN" default:"1m"`
}

// Enabled reports whether notarization is configured.
func (c QTSPConfig) Enabled() bool { return c.BaseURL != "" }

// Load reads the configuration from WORKTIME_* environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values that would make the batch operations misbehave.
func (c Config) Validate() error {
	if c.BatchWorkers <= 0 {
		return fmt.Errorf("batch workers must be positive, got %d", c.BatchWorkers)
	}
	if c.EvaluationLockTTL <= 0 {
		return fmt.Errorf("evaluation lock ttl must be positive")
	}
	if c.QTSP.Enabled() && c.QTSP.Timeout <= 0 {
		return fmt.Errorf("qtsp timeout must be positive")
	}
	if _, err := time.LoadLocation(c.EvaluationTimezone); err != nil {
		return fmt.Errorf("invalid evaluation timezone %q: %w", c.EvaluationTimezone, err)
	}
	return nil
}

// Location returns the evaluation time zone. Validate has already checked it.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.EvaluationTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
