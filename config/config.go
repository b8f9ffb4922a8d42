// Package config provides configuration management for the meal planner.
//
// Values come from environment variables, optionally layered over a YAML or
// TOML file named by CONFIG_FILE. Keys are the lower-case environment names,
// e.g. rate_limit in a file or RATE_LIMIT in the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the complete application configuration.
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Cache   CacheConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port              string
	ShutdownTimeout   time.Duration
	RateLimit         int
	RateWindow        time.Duration
	MutationRateLimit int
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
}

// CatalogConfig locates the recipe and price files and tunes price reloads.
type CatalogConfig struct {
	RecipesFile string
	PricesFile  string
	// ReloadFailureThreshold consecutive reload failures suspend reloads for ReloadCooldown.
	ReloadFailureThreshold int
	ReloadCooldown         time.Duration
}

// CacheConfig holds shopping report cache configuration. A zero Size disables it.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

var defaultCORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

var defaults = map[string]interface{}{
	"port":                     "8080",
	"shutdown_timeout":         "10s",
	"rate_limit":               100,
	"rate_window":              "1m",
	"mutation_rate_limit":      30,
	"recipes_file":             "data/recipes.txt",
	"prices_file":              "data/prices.txt",
	"reload_failure_threshold": 3,
	"reload_cooldown":          "30s",
	"cache_size":               64,
	"cache_ttl":                "5m",
	"log_level":                "info",
	"log_pretty":               false,
}

// Load builds a Config from the environment and, when CONFIG_FILE is set,
// from that file. Every malformed value is reported in the returned error.
func Load() (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	r := &reader{v: v}
	cfg := Config{
		Server: ServerConfig{
			Port:              r.str("port"),
			ShutdownTimeout:   r.duration("shutdown_timeout"),
			RateLimit:         r.count("rate_limit"),
			RateWindow:        r.duration("rate_window"),
			MutationRateLimit: r.count("mutation_rate_limit"),
			CORSOrigins:       parseCORSOrigins(v.GetString("cors_origins")),
			SwaggerUser:       r.str("swagger_user"),
			SwaggerPass:       r.str("swagger_pass"),
		},
		Catalog: CatalogConfig{
			RecipesFile:            r.str("recipes_file"),
			PricesFile:             r.str("prices_file"),
			ReloadFailureThreshold: r.count("reload_failure_threshold"),
			ReloadCooldown:         r.duration("reload_cooldown"),
		},
		Cache: CacheConfig{
			Size: r.count("cache_size"),
			TTL:  r.duration("cache_ttl"),
		},
		Log: LogConfig{
			Level:  r.str("log_level"),
			Pretty: r.boolean("log_pretty"),
		},
	}
	if cfg.Server.Port == "" {
		r.fail("port", errors.New("must not be empty"))
	}
	return cfg, errors.Join(r.errs...)
}

// reader parses viper values and collects one error per malformed key.
type reader struct {
	v    *viper.Viper
	errs []error
}

func (r *reader) fail(key string, err error) {
	r.errs = append(r.errs, fmt.Errorf("%s: %w", strings.ToUpper(key), err))
}

func (r *reader) str(key string) string {
	return strings.TrimSpace(r.v.GetString(key))
}

// count parses a non-negative integer.
func (r *reader) count(key string) int {
	n, err := strconv.Atoi(r.str(key))
	switch {
	case err != nil:
		r.fail(key, err)
	case n < 0:
		r.fail(key, errors.New("must not be negative"))
	}
	return n
}

func (r *reader) duration(key string) time.Duration {
	d, err := time.ParseDuration(r.str(key))
	switch {
	case err != nil:
		r.fail(key, err)
	case d < 0:
		r.fail(key, errors.New("must not be negative"))
	}
	return d
}

func (r *reader) boolean(key string) bool {
	b, err := strconv.ParseBool(r.str(key))
	if err != nil {
		r.fail(key, err)
	}
	return b
}

// LoadDotEnv reads variables from the given .env files (".env" when none are
// given) without overriding the ones already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// parseCORSOrigins appends the comma separated origins in s to the local
// development defaults.
func parseCORSOrigins(s string) []string {
	origins := append([]string(nil), defaultCORSOrigins...)
	for _, p := range strings.Split(s, ",") {
		if origin := strings.TrimSpace(p); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
