package config

import "time"

const (
	DefaultServerURL   = "http://127.0.0.1:5000"
	DefaultDownloadDir = "downloads"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// Config holds runtime settings for the filekeeper CLI.
//
// RequestTimeout of zero leaves the HTTP transport defaults in place.
// An empty MetricsAddr disables the metrics endpoint.
type Config struct {
	ServerURL      string
	DownloadDir    string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
	MetricsAddr    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = DefaultServerURL
	c.DownloadDir = DefaultDownloadDir
	c.RequestTimeout = 0
	c.LogLevel = DefaultLogLevel
	c.LogFormat = DefaultLogFormat
	c.MetricsAddr = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if any) and command-line flags. Later sources take
// precedence over earlier ones. Invalid input panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
