package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	tests := []struct {
		expected *Config
		name     string
		args     []string
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret",
			"-t", "600", "-k", "12", "-l", "5", "-w", "120",
		},
			expected: &Config{
				EndpointAddrHTTP:   "127.0.0.1:9090",
				DatabaseDSN:        "db",
				SecretKey:          "secret",
				SessionDuration:    600 * time.Second,
				BcryptCost:         12,
				LoginAttemptLimit:  5,
				LoginAttemptWindow: 120 * time.Second,
			}},
		{name: "no flags keep defaults", args: []string{"cmd"},
			expected: func() *Config {
				c := &Config{}
				c.LoadDefaults()
				return c
			}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}
			config.LoadDefaults()

			require.NotPanics(t, func() { parseFlags(config) })

			// ShutdownTimeout has no flag, compare it separately
			assert.Equal(t, tt.expected.EndpointAddrHTTP, config.EndpointAddrHTTP)
			assert.Equal(t, tt.expected.DatabaseDSN, config.DatabaseDSN)
			assert.Equal(t, tt.expected.SecretKey, config.SecretKey)
			assert.Equal(t, tt.expected.SessionDuration, config.SessionDuration)
			assert.Equal(t, tt.expected.BcryptCost, config.BcryptCost)
			assert.Equal(t, tt.expected.LoginAttemptLimit, config.LoginAttemptLimit)
			assert.Equal(t, tt.expected.LoginAttemptWindow, config.LoginAttemptWindow)
		})
	}
}
