package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/snoozer/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the stories service (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-d string   path of the local session database (default from Config)
//
// The function filters os.Args down to the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIEndpointAddr, "a", cfg.APIEndpointAddr, "base URL of the stories service")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "path of the local session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
