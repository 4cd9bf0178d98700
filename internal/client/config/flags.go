package config

import (
	"flag"
	"os"
	"time"

	"github.com/pillyapp/accountd/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server
//	-r int      request timeout in seconds
//	-t int      session duration in seconds
//	-m string   metadata database path
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-r", "-t", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL to access server")
	requestTimeout := fs.Int("r", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	sessionDuration := fs.Int("t", int(cfg.SessionDuration.Seconds()), "session duration (in seconds)")
	fs.StringVar(&cfg.MetadataDBPath, "m", cfg.MetadataDBPath, "metadata database path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.SessionDuration = time.Duration(*sessionDuration) * time.Second
}
