package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"roost/internal/archive"
	"roost/internal/cmd/flags"
	"roost/internal/config"
	"roost/internal/persistence"
	"roost/internal/persistence/authors"
	"roost/internal/persistence/posts"
	"roost/internal/syncing"
)

var postsCmd = &cli.Command{
	Name:      "posts",
	Usage:     "List an author's cached posts, newest first",
	ArgsUsage: "<handle>",
	Flags: []cli.Flag{
		flags.ArchiveRoot,
		flags.DatabaseURL,
		flags.Page,
		flags.PageSize,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		handle := c.Args().First()
		if handle == "" {
			return fmt.Errorf("%w: missing author handle", ErrUsage)
		}
		return run(ctx, c,
			persistence.Provide(),
			archive.Provide(),
			syncing.Provide(),
			pal.Provide(&postsRunner{handle: handle, page: int(c.Int("page"))}),
		)
	},
}

type postsRunner struct {
	Logger  *slog.Logger
	Config  *config.Config
	Syncer  *syncing.Syncer
	Authors *authors.Repository
	Posts   *posts.Repository

	handle string
	page   int
}

func (r *postsRunner) Run(ctx context.Context) error {
	author, err := r.Authors.FindByHandle(ctx, r.handle)
	if err != nil {
		return err
	}

	// The on-demand trigger: an author with nothing cached gets synced first.
	if author == nil {
		r.Syncer.Sync(ctx, r.handle, false)
		if author, err = r.Authors.FindByHandle(ctx, r.handle); err != nil {
			return err
		}
		if author == nil {
			return fmt.Errorf("%w: %s", ErrUnknownAuthor, r.handle)
		}
	} else if count, err := r.Posts.CountByAuthor(ctx, author.ID); err == nil && count == 0 {
		r.Syncer.Sync(ctx, r.handle, false)
	}

	page, err := r.Posts.PageByAuthor(ctx, author.ID, r.page, r.Config.PageSize)
	if err != nil {
		return err
	}

	for _, post := range page {
		when := "unknown"
		if post.Timestamp != nil {
			when = post.Timestamp.Format(archive.TimeLayout)
		}

		body := ""
		if post.Body != nil {
			body, _, _ = strings.Cut(*post.Body, "\n")
		}

		fmt.Printf("%s  %-20s  %s", when, post.ID, body)
		if len(post.MediaPaths) > 0 {
			fmt.Printf("  [%d media]", len(post.MediaPaths))
		}
		fmt.Println()
	}
	return nil
}
