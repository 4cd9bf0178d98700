package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverridesValues(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	path := writeConfigFile(t, `{
		"endpoint_addr_http": ":4000",
		"database_dsn": "postgres://u:p@h:5432/db",
		"secret_key": "json-secret",
		"session_duration_sec": 300,
		"bcrypt_cost": 11,
		"login_attempt_limit": 3,
		"login_attempt_window_sec": 60
	}`)

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
	os.Args = []string{"cmd", "-c", path}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, ":4000", c.EndpointAddrHTTP)
	assert.Equal(t, "postgres://u:p@h:5432/db", c.DatabaseDSN)
	assert.Equal(t, "json-secret", c.SecretKey)
	assert.Equal(t, 300*time.Second, c.SessionDuration)
	assert.Equal(t, 11, c.BcryptCost)
	assert.Equal(t, 3, c.LoginAttemptLimit)
	assert.Equal(t, 60*time.Second, c.LoginAttemptWindow)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	path := writeConfigFile(t, `{"endpoint_addr_http": ":5000"}`)

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
	os.Args = []string{"cmd", "-config", path}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, ":5000", c.EndpointAddrHTTP)
	assert.Equal(t, 900*time.Second, c.SessionDuration)
	assert.Equal(t, "secretKey", c.SecretKey)
}

func TestParseJson_NoFileIsNoop(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
	os.Args = []string{"cmd"}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, ":3000", c.EndpointAddrHTTP)
}

func TestParseJson_InvalidJsonPanics(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	path := writeConfigFile(t, `{broken`)

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
	os.Args = []string{"cmd", "-c", path}

	c := &Config{}
	c.LoadDefaults()
	require.Panics(t, func() { parseJson(c) })
}
