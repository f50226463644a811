package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/snoozer/internal/flagx"
	"github.com/dmitrijs2005/snoozer/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be written either as a string like "10s"
// or as integer nanoseconds.
type JsonConfig struct {
	APIEndpointAddr string         `json:"api_endpoint_addr"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	SessionDBPath   string         `json:"session_db_path"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c/-config flags. When no file is given the Config is left untouched;
// fields absent from the file keep their current values. Read or unmarshal
// errors panic (caller may recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIEndpointAddr != "" {
		cfg.APIEndpointAddr = jc.APIEndpointAddr
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
}
