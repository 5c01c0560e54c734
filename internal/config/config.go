package config

import (
	"errors"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env     string        `json:"env"`
	Http    HttpConfig    `json:"http"`
	Backend BackendConfig `json:"backend"`
	Geo     GeoConfig     `json:"geo"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

// BackendConfig points at the external events store. The base URL is always
// environment-provided; there is no sensible default beyond local dev.
type BackendConfig struct {
	BaseURL    string        `json:"base_url"`
	Timeout    time.Duration `json:"timeout"`
	RetryMax   uint64        `json:"retry_max"`
	RetryDelay time.Duration `json:"retry_delay"`
}

// GeoConfig configures the optional fixed observer coordinate used by the
// browse watcher (kiosk-style deployments). Disabled means no observer:
// ranking degrades to input order, which is the intended fallback.
type GeoConfig struct {
	Enabled bool          `json:"enabled"`
	Lat     float64       `json:"lat"`
	Lng     float64       `json:"lng"`
	Timeout time.Duration `json:"timeout"`
}

func LoadConfig() (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Backend: BackendConfig{
			BaseURL:    getEnv("BACKEND_BASE_URL", "http://localhost:8000"),
			Timeout:    getEnvDuration("BACKEND_TIMEOUT", 10*time.Second),
			RetryMax:   uint64(getEnvInt("BACKEND_RETRY_MAX", 3)),
			RetryDelay: getEnvDuration("BACKEND_RETRY_DELAY", 200*time.Millisecond),
		},
		Geo: GeoConfig{
			Enabled: getEnvBool("GEO_STATIC_ENABLED", false),
			Lat:     getEnvFloat("GEO_STATIC_LAT", 0),
			Lng:     getEnvFloat("GEO_STATIC_LNG", 0),
			Timeout: getEnvDuration("GEO_TIMEOUT", 5*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("backend_base_url", cfg.Backend.BaseURL),
		slog.Bool("geo_static", cfg.Geo.Enabled))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Backend.BaseURL == "" {
		return errors.New("BACKEND_BASE_URL required")
	}
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("BACKEND_BASE_URL must be an absolute URL")
	}

	if c.Geo.Enabled {
		if c.Geo.Lat < -90 || c.Geo.Lat > 90 {
			return errors.New("GEO_STATIC_LAT out of range")
		}
		if c.Geo.Lng < -180 || c.Geo.Lng > 180 {
			return errors.New("GEO_STATIC_LNG out of range")
		}
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
