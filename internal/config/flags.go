package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/coursenotes/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the local database file
//	-m string   Gemini model for note summaries
//	-t int      summary timeout in seconds
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-m", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database file")
	fs.StringVar(&cfg.GeminiModel, "m", cfg.GeminiModel, "gemini model for note summaries")
	summaryTimeout := fs.Int("t", int(cfg.SummaryTimeout.Seconds()), "summary timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SummaryTimeout = time.Duration(*summaryTimeout) * time.Second
}
