package config

import (
	"flag"
	"os"
	"time"

	"github.com/pillyapp/accountd/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-d string   PostgreSQL DSN
//	-s string   session token HMAC secret key
//	-t int      session duration, seconds
//	-k int      bcrypt cost
//	-l int      failed login attempt limit
//	-w int      failed login attempt window, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Duration
// flags are accepted as integers in seconds and then converted to
// time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-k", "-l", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionDuration := fs.Int("t", int(config.SessionDuration.Seconds()), "session duration (in seconds)")
	fs.IntVar(&config.BcryptCost, "k", config.BcryptCost, "bcrypt cost")
	fs.IntVar(&config.LoginAttemptLimit, "l", config.LoginAttemptLimit, "failed login attempt limit")
	attemptWindow := fs.Int("w", int(config.LoginAttemptWindow.Seconds()), "failed login attempt window (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionDuration = time.Duration(*sessionDuration) * time.Second
	config.LoginAttemptWindow = time.Duration(*attemptWindow) * time.Second
}
