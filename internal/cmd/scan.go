package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"roost/internal/archive"
	"roost/internal/cmd/flags"
	"roost/internal/config"
	"roost/internal/persistence"
	"roost/internal/syncing"
)

var scanCmd = &cli.Command{
	Name:      "scan",
	Usage:     "Scan one author's archive directory, or all of them, into the store",
	ArgsUsage: "[handle]",
	Flags: []cli.Flag{
		flags.ArchiveRoot,
		flags.DatabaseURL,
		flags.ForceRescan,
		flags.Concurrency,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			persistence.Provide(),
			archive.Provide(),
			syncing.Provide(),
			pal.Provide(&scanRunner{handle: c.Args().First()}),
		)
	},
}

type scanRunner struct {
	Logger *slog.Logger
	Config *config.Config
	Syncer *syncing.Syncer

	handle string
}

func (r *scanRunner) Run(ctx context.Context) error {
	if r.handle != "" {
		report := r.Syncer.Sync(ctx, r.handle, r.Config.ForceRescan)
		fmt.Printf("@%s: added %d posts, deleted %d posts\n", r.handle, report.Added, report.Deleted)
		return nil
	}

	total, err := r.Syncer.Sweep(ctx, r.Config.ForceRescan)
	if err != nil {
		return err
	}
	fmt.Printf("scan finished: added %d posts, deleted %d posts\n", total.Added, total.Deleted)
	return nil
}
