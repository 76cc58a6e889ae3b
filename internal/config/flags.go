package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/eventcache/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   SQLite database path
//	-r int      retention period, minutes
//	-i int      sweep interval, minutes
//	-m int      lookup memo capacity, entries
//	-t int      lookup memo TTL, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-r", "-i", "-m", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabasePath, "d", config.DatabasePath, "SQLite database path")

	retentionPeriod := fs.Int("r", int(config.RetentionPeriod.Minutes()), "retention period (in minutes)")
	sweepInterval := fs.Int("i", int(config.SweepInterval.Minutes()), "sweep interval (in minutes)")

	fs.IntVar(&config.MemoCapacity, "m", config.MemoCapacity, "lookup memo capacity")
	memoTTL := fs.Int("t", int(config.MemoTTL.Seconds()), "lookup memo TTL (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RetentionPeriod = time.Duration(*retentionPeriod) * time.Minute
	config.SweepInterval = time.Duration(*sweepInterval) * time.Minute
	config.MemoTTL = time.Duration(*memoTTL) * time.Second
}
