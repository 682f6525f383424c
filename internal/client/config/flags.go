package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/gophspend/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the finance API
//	-s string   token storage backend: auto, keyring, file, memory
//	-p string   path of the SQLite file used by the file backend
//	-t int      request timeout in seconds (0 disables it); applied only when set
//
// Other arguments are filtered out with flagx.FilterArgs so that the JSON
// loader's -c flag does not trip this parser.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-p", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the finance API")
	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "token storage backend (auto, keyring, file, memory)")
	fs.StringVar(&cfg.StoragePath, "p", cfg.StoragePath, "path of the token database file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t overrides only when given; earlier sources may hold sub-second values.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
