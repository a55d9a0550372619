package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/filekeeper/internal/flagx"
)

var clientFlags = []string{"-a", "-d", "-t", "-l", "-f", "-m"}

// parseFlags populates Config fields from command-line flags. Only the flags
// listed in clientFlags are looked at.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], clientFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the file-manager backend")
	fs.StringVar(&cfg.DownloadDir, "d", cfg.DownloadDir, "directory downloads are saved into")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
