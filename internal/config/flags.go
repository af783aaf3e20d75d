package config

import (
	"flag"
	"os"
	"time"

	"github.com/tobim/famvault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the local account database
//	-t int      store operation timeout in seconds
//
// Only the flags handled here are parsed; everything else in os.Args is
// filtered out via flagx.FilterArgs so other components can define their
// own flags.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local account database")
	storeTimeout := fs.Int("t", int(cfg.StoreTimeout.Seconds()), "store operation timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.StoreTimeout = time.Duration(*storeTimeout) * time.Second
}
