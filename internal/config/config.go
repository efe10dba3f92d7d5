// Package config loads server configuration.
//
// Values are resolved in order, each layer overriding the previous one:
//
//  1. built-in defaults
//  2. the YAML file named by --config or CLUBHOUSE_CONFIG
//  3. CLUBHOUSE_* environment variables (a .env file in the working
//     directory is loaded first when present)
//  4. command-line flags
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const envPrefix = "CLUBHOUSE_"

// Config is the complete server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// Timezone is the IANA zone used to interpret activity start times.
	Timezone string `yaml:"timezone"`

	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// DatabaseConfig configures the SQLite store.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AuthConfig configures token issuance and site administrators.
type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret"`
	TokenDuration time.Duration `yaml:"token_duration"`

	// AdminEmails are granted the site admin role when they register.
	AdminEmails []string `yaml:"admin_emails"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RateLimitConfig bounds mutating RPCs per caller.
type RateLimitConfig struct {
	PerMinute float64       `yaml:"per_minute"`
	Burst     int           `yaml:"burst"`
	TTL       time.Duration `yaml:"ttl"`
}

// Default returns a configuration suitable for local development.
func Default() *Config {
	return &Config{
		Addr:     ":8080",
		Timezone: "UTC",
		Database: DatabaseConfig{Path: "./data/clubhouse.db"},
		Auth: AuthConfig{
			JWTSecret:     "dev-secret-change-me",
			TokenDuration: 24 * time.Hour,
		},
		Log: LogConfig{Level: "info", Format: "text"},
		RateLimit: RateLimitConfig{
			PerMinute: 60,
			Burst:     10,
			TTL:       10 * time.Minute,
		},
	}
}

// LoadFile reads a YAML file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Load resolves the configuration from defaults, file, environment and args.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("clubhouse", pflag.ContinueOnError)
	configPath := fs.String("config", "", "path to YAML config file (env "+envPrefix+"CONFIG)")
	addr := fs.String("addr", "", "listen address")
	dbPath := fs.String("db", "", "SQLite database path")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// A missing .env is normal; anything else is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	path := *configPath
	if path == "" {
		path = os.Getenv(envPrefix + "CONFIG")
	}

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if fs.Changed("addr") {
		cfg.Addr = *addr
	}
	if fs.Changed("db") {
		cfg.Database.Path = *dbPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(envPrefix + key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("ADDR"); ok {
		c.Addr = v
	}
	if v, ok := get("TIMEZONE"); ok {
		c.Timezone = v
	}
	if v, ok := get("DB_PATH"); ok {
		c.Database.Path = v
	}
	if v, ok := get("JWT_SECRET"); ok {
		c.Auth.JWTSecret = v
	}
	if v, ok := get("TOKEN_DURATION"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTOKEN_DURATION: %w", envPrefix, err)
		}
		c.Auth.TokenDuration = d
	}
	if v, ok := get("ADMIN_EMAILS"); ok {
		c.Auth.AdminEmails = nil
		for _, email := range strings.Split(v, ",") {
			if email = strings.TrimSpace(email); email != "" {
				c.Auth.AdminEmails = append(c.Auth.AdminEmails, email)
			}
		}
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	if v, ok := get("RATE_LIMIT_PER_MINUTE"); ok {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sRATE_LIMIT_PER_MINUTE: %w", envPrefix, err)
		}
		c.RateLimit.PerMinute = n
	}
	if v, ok := get("RATE_LIMIT_BURST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sRATE_LIMIT_BURST: %w", envPrefix, err)
		}
		c.RateLimit.Burst = n
	}
	return nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("timezone %q: %w", c.Timezone, err))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required"))
	}
	if c.Auth.TokenDuration <= 0 {
		errs = append(errs, errors.New("auth.token_duration must be positive"))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q must be one of debug, info, warn, error", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q must be text or json", c.Log.Format))
	}
	if c.RateLimit.PerMinute <= 0 || c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("rate_limit.per_minute and rate_limit.burst must be positive"))
	}
	if c.RateLimit.TTL <= 0 {
		errs = append(errs, errors.New("rate_limit.ttl must be positive"))
	}

	return errors.Join(errs...)
}
