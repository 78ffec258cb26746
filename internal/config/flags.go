package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/taskmeet/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   storage backend, "sqlite" or "file" (default from Config)
//	-f string   path to the storage file (default from Config)
//	-d int      auth delay in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-f", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageBackend, "b", cfg.StorageBackend, "storage backend (sqlite or file)")
	fs.StringVar(&cfg.StorePath, "f", cfg.StorePath, "path to the storage file")
	authDelay := fs.Int("d", int(cfg.AuthDelay.Seconds()), "auth delay (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AuthDelay = time.Duration(*authDelay) * time.Second
}
