package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pillyapp/accountd/internal/flagx"
)

// JsonConfig is the DTO for reading JSON configuration files. Duration
// fields are plain integers in seconds.
type JsonConfig struct {
	ServerBaseURL      string `json:"server_base_url"`
	RequestTimeoutSec  int    `json:"request_timeout_sec"`
	SessionDurationSec int    `json:"session_duration_sec"`
	MetadataDBPath     string `json:"metadata_db_path"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags, if any. Invalid files panic.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.ServerBaseURL != "" {
		config.ServerBaseURL = c.ServerBaseURL
	}
	if c.RequestTimeoutSec > 0 {
		config.RequestTimeout = time.Duration(c.RequestTimeoutSec) * time.Second
	}
	if c.SessionDurationSec > 0 {
		config.SessionDuration = time.Duration(c.SessionDurationSec) * time.Second
	}
	if c.MetadataDBPath != "" {
		config.MetadataDBPath = c.MetadataDBPath
	}
}
