package config

import "time"

// Config holds runtime settings for the snoozer CLI.
//
// Fields:
//   - APIEndpointAddr: base URL of the stories service.
//   - RequestTimeout: per-request deadline for API calls; the remote service
//     is not trusted to answer promptly.
//   - SessionDBPath: path of the local sqlite database holding the saved
//     session.
type Config struct {
	APIEndpointAddr string
	RequestTimeout  time.Duration
	SessionDBPath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIEndpointAddr = "https://hack-or-snooze-v3.herokuapp.com"
	c.RequestTimeout = 10 * time.Second
	c.SessionDBPath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
