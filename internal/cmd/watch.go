package cmd

import (
	"context"

	"github.com/urfave/cli/v3"

	"roost/internal/archive"
	"roost/internal/cmd/flags"
	"roost/internal/metrics"
	"roost/internal/persistence"
	"roost/internal/scheduling"
	"roost/internal/syncing"
)

var watchCmd = &cli.Command{
	Name:  "watch",
	Usage: "Sweep the archive periodically and serve metrics",
	Flags: []cli.Flag{
		flags.ArchiveRoot,
		flags.DatabaseURL,
		flags.MetricsAddr,
		flags.Concurrency,
		flags.ScanInterval,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			persistence.Provide(),
			archive.Provide(),
			syncing.Provide(),
			scheduling.Provide(),
			metrics.Provide(),
		)
	},
}
