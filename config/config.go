package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port           string        `yaml:"port"`
	GinMode        string        `yaml:"ginMode"`
	DBDriver       string        `yaml:"dbDriver"`
	DBSource       string        `yaml:"dbSource"`
	LogLevel       string        `yaml:"logLevel"`
	LogFile        string        `yaml:"logFile"`
	SessionTTL     time.Duration `yaml:"sessionTTL"`
	SessionSweep   time.Duration `yaml:"sessionSweep"` // how often expired sessions are deactivated
	AllowedOrigins []string      `yaml:"allowedOrigins"`
	RateLimit      float64       `yaml:"rateLimit"` // requests per second per client IP
	RateBurst      int           `yaml:"rateBurst"`
}

func Default() *Config {
	return &Config{
		Port:           "8080",
		GinMode:        "debug",
		DBDriver:       "sqlite",
		DBSource:       "restaurant.db",
		LogLevel:       "info",
		SessionTTL:     2 * time.Hour,
		SessionSweep:   time.Minute,
		AllowedOrigins: []string{"http://localhost:3000"},
		RateLimit:      50,
		RateBurst:      100,
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// CONFIG_FILE, then environment variables. A .env file in the working
// directory is loaded into the environment first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.GinMode, "GIN_MODE")
	setString(&c.DBDriver, "DB_DRIVER")
	setString(&c.DBSource, "DB_SOURCE")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.LogFile, "LOG_FILE")

	if v, ok := os.LookupEnv("SESSION_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SESSION_TTL: %w", err)
		}
		c.SessionTTL = d
	}
	if v, ok := os.LookupEnv("SESSION_SWEEP"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SESSION_SWEEP: %w", err)
		}
		c.SessionSweep = d
	}
	if v, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok {
		c.AllowedOrigins = splitList(v)
	}
	if v, ok := os.LookupEnv("RATE_LIMIT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT: %w", err)
		}
		c.RateLimit = f
	}
	if v, ok := os.LookupEnv("RATE_BURST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RATE_BURST: %w", err)
		}
		c.RateBurst = n
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q: must be sqlite, mysql or postgres", c.DBDriver)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported GIN_MODE %q: must be debug, release or test", c.GinMode)
	}
	if c.DBSource == "" {
		return errors.New("DB_SOURCE must not be empty")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be > 0")
	}
	if c.SessionSweep <= 0 {
		return errors.New("SESSION_SWEEP must be > 0")
	}
	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		return errors.New("RATE_LIMIT and RATE_BURST must be > 0")
	}
	if len(c.AllowedOrigins) == 0 {
		return errors.New("ALLOWED_ORIGINS must list at least one origin")
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
