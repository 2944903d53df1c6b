package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Tracker TrackerConfig `mapstructure:"tracker"`
}

type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	GinMode string `mapstructure:"gin_mode"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text or json
}

type TrackerConfig struct {
	// BaseURL of the position provider API.
	BaseURL string `mapstructure:"base_url"`
	// SatelliteID is the NORAD catalog number of the tracked satellite.
	SatelliteID int `mapstructure:"satellite_id"`
	// PollInterval between position fetches.
	PollInterval time.Duration `mapstructure:"poll_interval"`
	// TrackCapacity is the maximum number of fixes kept in the ground track.
	TrackCapacity int `mapstructure:"track_capacity"`
	// GeocoderBaseURL of the reverse geocoder used for the nadir place lookup.
	GeocoderBaseURL string `mapstructure:"geocoder_base_url"`
}

// Load reads configuration from an optional config file and ISS_* environment
// variables, falling back to defaults that need no external setup.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("tracker.base_url", "https://api.wheretheiss.at")
	v.SetDefault("tracker.satellite_id", 25544) // ISS (ZARYA)
	v.SetDefault("tracker.poll_interval", 15*time.Second)
	v.SetDefault("tracker.track_capacity", 500)
	v.SetDefault("tracker.geocoder_base_url", "https://nominatim.openstreetmap.org/reverse")

	// Optional config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; defaults and env take over
	}

	// Environment variables: ISS_SERVER_PORT, ISS_TRACKER_POLL_INTERVAL, ...
	v.SetEnvPrefix("ISS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Tracker.PollInterval <= 0 {
		return fmt.Errorf("invalid tracker poll interval: %s", c.Tracker.PollInterval)
	}
	if c.Tracker.TrackCapacity < 1 {
		return fmt.Errorf("invalid track capacity: %d", c.Tracker.TrackCapacity)
	}
	if c.Tracker.SatelliteID < 1 {
		return fmt.Errorf("invalid satellite id: %d", c.Tracker.SatelliteID)
	}
	return nil
}

// GetServerAddr returns the host:port address the HTTP server binds to.
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// NewLogger builds the application slog.Logger from the log configuration.
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(c.Log.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
