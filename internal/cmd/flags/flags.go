package flags

import (
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

var LogLevel = &cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "The level of the logs",
	Value:   "info",
	Validator: func(value string) error {
		if !slices.Contains(validLogLevels, value) {
			return fmt.Errorf("invalid log level: %s, allowed values are: %s", value, validLogLevels)
		}
		return nil
	},
	Sources: cli.EnvVars("ROOST_LOG_LEVEL"),
}

var ArchiveRoot = &cli.StringFlag{
	Name:    "archive-root",
	Aliases: []string{"r"},
	Usage:   "Directory holding one subdirectory per author",
	Value:   "./archive",
	Sources: cli.EnvVars("ROOST_ARCHIVE_ROOT"),
}

var DatabaseURL = &cli.StringFlag{
	Name:    "database-url",
	Aliases: []string{"d"},
	Usage:   "Postgres DSN, or a sqlite file path",
	Value:   "roost.db",
	Sources: cli.EnvVars("ROOST_DATABASE_URL"),
}

var MetricsAddr = &cli.StringFlag{
	Name:    "metrics-addr",
	Usage:   "Listen address of the metrics endpoint",
	Value:   ":8080",
	Sources: cli.EnvVars("ROOST_METRICS_ADDR"),
}

var ForceRescan = &cli.BoolFlag{
	Name:  "force-rescan",
	Usage: "Delete existing posts and repopulate from current files",
}

var Concurrency = &cli.IntFlag{
	Name:    "concurrency",
	Usage:   "How many authors a sweep syncs at once",
	Value:   4,
	Sources: cli.EnvVars("ROOST_CONCURRENCY"),
}

var ScanInterval = &cli.IntFlag{
	Name:    "scan-interval",
	Usage:   "Hours between background sweeps",
	Value:   24,
	Sources: cli.EnvVars("ROOST_SCAN_INTERVAL"),
}

var PageSize = &cli.IntFlag{
	Name:    "page-size",
	Usage:   "Posts per page in listings",
	Value:   20,
	Sources: cli.EnvVars("ROOST_PAGE_SIZE"),
}

var Page = &cli.IntFlag{
	Name:  "page",
	Usage: "Page number, newest first",
	Value: 1,
}
