package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/tobim/famvault/internal/flagx"
	"github.com/tobim/famvault/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so the timeout can be given either as a string like
// "3s" or as integer nanoseconds.
type JSONConfig struct {
	DatabasePath string         `json:"database_path"`
	StoreTimeout timex.Duration `json:"store_timeout"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flags. Without the flag nothing is loaded. Read or
// unmarshal errors panic; the caller may recover if desired.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.StoreTimeout.Duration != 0 {
		cfg.StoreTimeout = time.Duration(jc.StoreTimeout.Duration)
	}
}
