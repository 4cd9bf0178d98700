package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pillyapp/accountd/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. Duration fields are plain integers in seconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddrHTTP   string `json:"endpoint_addr_http"`
	DatabaseDSN        string `json:"database_dsn"`
	SecretKey          string `json:"secret_key"`
	SessionDurationSec int    `json:"session_duration_sec"`
	BcryptCost         int    `json:"bcrypt_cost"`
	LoginAttemptLimit  int    `json:"login_attempt_limit"`
	LoginAttemptWindow int    `json:"login_attempt_window_sec"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags. If it is
// not set, no JSON file is loaded. If the file cannot be read or contains
// invalid JSON, the function panics.
//
// The caller is expected to merge these values with defaults and
// command-line flags as part of the full configuration process.
func parseJson(config *Config) {

	// try flags
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

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.SessionDurationSec > 0 {
		config.SessionDuration = time.Duration(c.SessionDurationSec) * time.Second
	}
	if c.BcryptCost > 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.LoginAttemptLimit > 0 {
		config.LoginAttemptLimit = c.LoginAttemptLimit
	}
	if c.LoginAttemptWindow > 0 {
		config.LoginAttemptWindow = time.Duration(c.LoginAttemptWindow) * time.Second
	}
}
