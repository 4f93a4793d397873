package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/dealflowhq/dealflow/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 20
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	DefaultTableName   = "vc-sourcing-analysis"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for a board render.
// This struct remains the "final, validated" config.
type Config struct {
	// Store
	Table     string
	Region    string
	Endpoint  string // optional override for DynamoDB-compatible stores
	AccessKey string // Please use env var as this is plaintext
	SecretKey string // Please use env var as this is plaintext

	// Pipeline
	ResultLimit int
	MinScore    float64
	CacheTTL    time.Duration

	// Output
	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Detail     bool
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	// Cache store
	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext
}

// Clone returns a copy of the Config struct. The config holds no reference
// types, so a value copy is a deep copy.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	Table          string  `mapstructure:"table"`
	Region         string  `mapstructure:"region"`
	Endpoint       string  `mapstructure:"endpoint"`
	AccessKey      string  `mapstructure:"access-key"`
	SecretKey      string  `mapstructure:"secret-key"`
	Limit          int     `mapstructure:"limit"`
	MinScore       float64 `mapstructure:"min-score"`
	TTL            string  `mapstructure:"ttl"`
	Output         string  `mapstructure:"output"`
	OutputFile     string  `mapstructure:"output-file"`
	Precision      int     `mapstructure:"precision"`
	Detail         bool    `mapstructure:"detail"`
	Width          int     `mapstructure:"width"`
	Color          string  `mapstructure:"color"`
	CacheBackend   string  `mapstructure:"cache-backend"`
	CacheDBConnect string  `mapstructure:"cache-db-connect"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateStoreInputs(cfg, input); err != nil {
		return err
	}
	if err := validatePipelineInputs(cfg, input); err != nil {
		return err
	}
	if err := validateOutputInputs(cfg, input); err != nil {
		return err
	}
	return validateBackendConfigs(cfg, input)
}

// validateStoreInputs checks the analysis store coordinates.
func validateStoreInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Table = strings.TrimSpace(input.Table)
	if cfg.Table == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	cfg.Region = strings.TrimSpace(input.Region)
	if cfg.Region == "" && input.Endpoint == "" {
		return fmt.Errorf("region is required unless an endpoint override is set")
	}
	cfg.Endpoint = strings.TrimSpace(input.Endpoint)
	cfg.AccessKey = input.AccessKey
	cfg.SecretKey = input.SecretKey
	if (cfg.AccessKey == "") != (cfg.SecretKey == "") {
		return fmt.Errorf("access-key and secret-key must be provided together")
	}
	return nil
}

// validatePipelineInputs checks limit, score filter and cache TTL.
func validatePipelineInputs(cfg *Config, input *ConfigRawInput) error {
	if input.Limit < 0 {
		return fmt.Errorf("limit must be >= 0, got %d", input.Limit)
	}
	if input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be <= %d, got %d", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.MinScore < 0 {
		return fmt.Errorf("min-score must be >= 0, got %g", input.MinScore)
	}
	cfg.MinScore = input.MinScore

	cfg.CacheTTL = schema.DefaultCacheTTL
	if input.TTL != "" {
		ttl, err := time.ParseDuration(input.TTL)
		if err != nil {
			return fmt.Errorf("invalid ttl %q: %w", input.TTL, err)
		}
		if ttl < 0 {
			return fmt.Errorf("ttl must be >= 0, got %s", ttl)
		}
		cfg.CacheTTL = ttl
	}
	return nil
}

// validateOutputInputs checks output mode, precision, width, and colors.
func validateOutputInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && input.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	cfg.OutputFile = input.OutputFile

	if input.Precision < 0 || input.Precision > 10 {
		return fmt.Errorf("precision must be between 0 and 10, got %d", input.Precision)
	}
	cfg.Precision = input.Precision

	if input.Width < 0 {
		return fmt.Errorf("width must be >= 0, got %d", input.Width)
	}
	cfg.Width = input.Width
	cfg.Detail = input.Detail

	switch strings.ToLower(input.Color) {
	case "yes", "true", "1", "":
		cfg.UseColors = true
	case "no", "false", "0":
		cfg.UseColors = false
	default:
		return fmt.Errorf("invalid color value '%s'. must be yes/no/true/false/1/0", input.Color)
	}
	return nil
}

// validateBackendConfigs validates the cache backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	return ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for the MySQL and PostgreSQL cache backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
